// Package service contains the business logic.
//
// It sits between the handler and repository layers: password hashing and
// token issuance, turning partial-update payloads into ordered field lists,
// and enqueueing background emails.
package service
