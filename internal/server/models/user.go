// Package models holds the persistent entities of SkillSwap.
package models

import "time"

// User is a registered account. Rating currently has no mutation path and
// always stays at the registration default.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Bio          string
	Rating       float64
	CreatedAt    time.Time
}

// DefaultRating is assigned to every newly registered user.
const DefaultRating = 5.0
