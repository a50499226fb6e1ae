// Package repository handles all interactions with the database.
//
// It contains the raw SQL for companies, jobs, users and applications,
// builds filtered and partial-update queries with lib/sqlb, and translates
// constraint violations into errs values.
package repository
