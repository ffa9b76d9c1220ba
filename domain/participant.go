// Package domain contains core concepts of the annotation system.
// This file defines the identity of users and the connections they own.
// No runtime, network, or storage logic should be added here.
package domain

import "time"

type UserID string

// ConnectionID identifies one live transport session.
// Unique for the lifetime of the process.
type ConnectionID string

// User is an identity as supplied by the store.
type User struct {
	ID           UserID    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Author is the public projection of a user embedded in populated notes.
type Author struct {
	ID   UserID `json:"id"`
	Name string `json:"name"`
}

func (u User) Author() Author {
	return Author{ID: u.ID, Name: u.Name}
}
