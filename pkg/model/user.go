// Package model holds the persisted entities of the dashboard.
package model

import "time"

// User is a local operator account for the password login fallback.
// OAuth logins are not stored here; they are checked against the
// configured allow-list instead.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:128" json:"email"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"isAdmin"`
	CreatedAt    time.Time `json:"createdAt"`
}
