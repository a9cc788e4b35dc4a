// Package models contains the database models for the central server.
package models

import (
	"time"
)

// Model is the base model for all other models in the central server.
type Model struct {
	ID        uint64    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
