// Package model defines the contact document stored in the database
// and the request/response payloads of the HTTP API.
package model
