package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by an access token. The
// student's identifier is the sole identity claim.
type Claims struct {
	StudentID uint `json:"studentId"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Generate creates a signed, time-bound access token for a student.
	Generate(studentID uint) (string, error)

	// Validate checks signature and expiry and returns the parsed claims.
	Validate(tokenString string) (*Claims, error)
}
