// Package models contains GORM database models for the infrastructure layer.
// These models handle database persistence and are kept apart from the domain
// entities so that column types and indexes never leak into the domain.
package models
