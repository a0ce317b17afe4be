package usecase

import (
	"journal-backend/internal/entry/domain"
	"journal-backend/internal/entry/dto"
)

// EntryUsecase defines the interface for journal entry business logic.
// Every operation that touches a specific entry verifies ownership before
// reading or mutating anything.
type EntryUsecase interface {
	// CreateEntry creates a new entry owned by userID
	CreateEntry(userID uint, req *dto.CreateEntryRequest) (*domain.Entry, error)

	// GetEntry retrieves an entry by ID (with ownership check)
	GetEntry(userID, entryID uint) (*domain.Entry, error)

	// GetUserEntries retrieves all entries owned by a user
	GetUserEntries(userID uint) ([]*domain.Entry, error)

	// UpdateEntry updates an existing entry
	UpdateEntry(userID, entryID uint, req *dto.UpdateEntryRequest) (*domain.Entry, error)

	// DeleteEntry deletes an entry
	DeleteEntry(userID, entryID uint) error

	// AttachTag links a tag to an entry, creating the tag by name if needed
	AttachTag(userID, entryID uint, req *dto.AttachTagRequest) (*domain.Entry, error)

	// CreateTag creates a new tag
	CreateTag(req *dto.CreateTagRequest) (*domain.Tag, error)

	// GetTags lists every tag
	GetTags() ([]*domain.Tag, error)
}
