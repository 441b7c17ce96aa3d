// Package mappings converts between upstream payloads, Postgrest rows and the
// DTOs served over HTTP.
package mappings
