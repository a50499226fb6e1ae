// Package errs defines the error shape every API response uses.
//
// Domain failures (bad input, missing rows, failed authentication) are
// created here as *HTTPError values so they can travel unchanged from the
// repository layer up to the global error handler, which serializes them.
package errs
