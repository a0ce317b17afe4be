package repository

import "journal-backend/internal/entry/domain"

// EntryRepository defines the interface for entry and tag data access
type EntryRepository interface {
	// Create creates a new entry
	Create(entry *domain.Entry) error

	// FindByID finds an entry by its ID, tags included; (nil, nil) when absent
	FindByID(id uint) (*domain.Entry, error)

	// FindByUserID finds all entries owned by a user, newest first
	FindByUserID(userID uint) ([]*domain.Entry, error)

	// Update updates an existing entry
	Update(entry *domain.Entry) error

	// Delete deletes an entry by ID
	Delete(id uint) error

	// AttachTag links a tag to an entry; attaching twice is a no-op
	AttachTag(entry *domain.Entry, tag *domain.Tag) error

	// CreateTag creates a new tag; name collisions surface as an error
	CreateTag(tag *domain.Tag) error

	// FindTagByID returns (nil, nil) when no tag has that id
	FindTagByID(id uint) (*domain.Tag, error)

	// FindTagByName returns (nil, nil) when no tag has that name
	FindTagByName(name string) (*domain.Tag, error)

	// FindAllTags lists every tag
	FindAllTags() ([]*domain.Tag, error)
}
