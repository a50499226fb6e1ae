// Package handler is the HTTP layer of Jobly.
//
// Handlers bind path, query and body input into typed request structs,
// validate them, call the service layer and shape the JSON response
// envelopes ({company: ...}, {jobs: [...]}, {deleted: ...}).
package handler
