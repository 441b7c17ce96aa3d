// Package dto holds the request and response payloads of the HTTP surface and
// of the upstream REST APIs. JSON field names are camelCase; optional fields
// are pointers or nil slices so that absence survives a round trip.
package dto
