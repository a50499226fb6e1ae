// Package lib acts as a library for modules that do not fit
// strictly into other layers.
//
// It contains the SQL fragment builders (sqlb), signed tokens (token),
// dependency health checks (health), background job processing
// (Redis/Asynq) and the email client (Resend).
package lib
