// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer to store site content, uploaded asset
// metadata and admin accounts, translating driver errors into the domain's
// sentinel errors.
package persistence
