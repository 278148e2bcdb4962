// Package store persists computed analyses so recent business cases can be
// listed and revisited from the dashboard.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jvelker/training-roi/internal/roi"
)

// Analysis is one persisted computation: the scenario as computed plus its
// derived result and verdict.
type Analysis struct {
	ID        string             `json:"id"`
	Name      string             `json:"name,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
	Scenario  roi.Scenario       `json:"scenario"`
	Result    roi.Result         `json:"result"`
	Verdict   roi.Recommendation `json:"verdict"`
}

// Store holds a capped history of analyses, newest first.
type Store interface {
	Save(ctx context.Context, analysis Analysis) error
	Recent(ctx context.Context, limit int) ([]Analysis, error)
}

// NewID returns a fresh analysis identifier.
func NewID() string {
	return uuid.NewString()
}
