// Package controllers translates HTTP requests into service calls. Every
// controller is built by the container from its `inject:""` fields.
package controllers
