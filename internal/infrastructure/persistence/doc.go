// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer to keep users, photo posts, tags and
// comments, converting between domain entities and database models.
package persistence
