// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Student is the identity entity of the system. Students register with an
// email that doubles as their login key.
type Student struct {
	ID           uint      // Numeric identifier assigned by the store on creation.
	Name         string    // Display name, required at registration.
	Email        string    // Globally unique, used as the login key.
	PasswordHash string    // Opaque bcrypt hash. Never the plaintext, never serialized outward.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}
