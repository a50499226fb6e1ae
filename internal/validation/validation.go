// Package validation binds request data and validates it with
// go-playground/validator struct tags, converting failures into 400
// responses with per-field messages.
package validation
