// Package sqlerr handles database driver errors.
//
// It classifies Postgres SQLSTATE codes and converts them into
// user-facing errs values (e.g. a unique violation becomes a 400 with an
// "already exists" message).
package sqlerr
