// Package characterdraft defines the interface for saved character
// persistence. Implements a single-draft-per-session pattern: saving
// replaces the session's previous draft.
package characterdraft

//go:generate mockgen -destination=mock/mock_repository.go -package=characterdraftmock github.com/pixself/pixself-api/internal/repositories/characterdraft Repository

import (
	"context"

	"github.com/pixself/pixself-api/internal/entities"
)

// Repository defines the interface for character draft persistence
type Repository interface {
	// Save creates or replaces the session's draft
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// GetBySession retrieves the session's draft
	// Returns errors.InvalidArgument for empty session IDs
	// Returns errors.NotFound if the session has no draft
	// Returns errors.Internal for storage failures
	GetBySession(ctx context.Context, input GetBySessionInput) (*GetBySessionOutput, error)

	// Delete removes the session's draft
	// Returns errors.NotFound if the session has no draft
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// SaveInput defines the input for saving a draft
type SaveInput struct {
	Draft *entities.CharacterDraft
}

// SaveOutput defines the output for saving a draft
type SaveOutput struct {
	Draft *entities.CharacterDraft
}

// GetBySessionInput defines the input for fetching a session's draft
type GetBySessionInput struct {
	SessionID string
}

// GetBySessionOutput defines the output for fetching a session's draft
type GetBySessionOutput struct {
	Draft *entities.CharacterDraft
}

// DeleteInput defines the input for deleting a session's draft
type DeleteInput struct {
	SessionID string
}

// DeleteOutput defines the output for deleting a session's draft
type DeleteOutput struct{}
