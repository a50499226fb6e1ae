// Package model holds the records Jobly stores and returns: companies,
// jobs, users and applications, plus the filter and partial-update inputs
// the repositories accept.
//
// JSON names are the camelCase API names; the matching snake_case storage
// columns live next to each update type.
package model
