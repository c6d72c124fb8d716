// Package models defines the entities Cofrinho tracks and their invariants.
package models

import (
	"time"

	"github.com/google/uuid"
)

type Model interface {
	Self() string
}

// DefaultModel is the base model for all models in Cofrinho.
type DefaultModel struct {
	ID uuid.UUID `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // UUID for the resource
	Timestamps
}

// Timestamps are managed by the store on create and update.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt" example:"2022-04-02T19:28:44.491514Z"` // Time the resource was created
	UpdatedAt time.Time `json:"updatedAt" example:"2022-04-17T20:14:01.048145Z"` // Last time the resource was updated
}

// Init assigns a fresh UUID and sets both timestamps.
func (m *DefaultModel) Init(now time.Time) {
	m.ID = uuid.New()
	m.CreatedAt = now.In(time.UTC)
	m.UpdatedAt = m.CreatedAt
}

// Touch refreshes the update timestamp.
func (m *DefaultModel) Touch(now time.Time) {
	m.UpdatedAt = now.In(time.UTC)
}
