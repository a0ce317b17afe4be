package usecase

import (
	"time"

	"journal-backend/internal/entry/domain"
	"journal-backend/internal/entry/dto"
	"journal-backend/internal/entry/repository"
)

// entryUsecase implements EntryUsecase
type entryUsecase struct {
	entryRepo repository.EntryRepository
}

// NewEntryUsecase creates a new instance of entryUsecase
func NewEntryUsecase(entryRepo repository.EntryRepository) EntryUsecase {
	return &entryUsecase{
		entryRepo: entryRepo,
	}
}

func (u *entryUsecase) CreateEntry(userID uint, req *dto.CreateEntryRequest) (*domain.Entry, error) {
	entry := &domain.Entry{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
		Emotion: req.Emotion,
		Date:    time.Now(),
	}

	if err := u.entryRepo.Create(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// GetEntry is the shared ownership gate: every per-entry operation resolves
// the row through here before acting on it.
func (u *entryUsecase) GetEntry(userID, entryID uint) (*domain.Entry, error) {
	entry, err := u.entryRepo.FindByID(entryID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrEntryNotFound
	}
	if entry.UserID != userID {
		return nil, domain.ErrNotOwner
	}
	return entry, nil
}

func (u *entryUsecase) GetUserEntries(userID uint) ([]*domain.Entry, error) {
	return u.entryRepo.FindByUserID(userID)
}

func (u *entryUsecase) UpdateEntry(userID, entryID uint, req *dto.UpdateEntryRequest) (*domain.Entry, error) {
	entry, err := u.GetEntry(userID, entryID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		entry.Title = *req.Title
	}
	if req.Content != nil {
		entry.Content = *req.Content
	}
	if req.Emotion != nil {
		entry.Emotion = *req.Emotion
	}

	if err := u.entryRepo.Update(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (u *entryUsecase) DeleteEntry(userID, entryID uint) error {
	// Ownership is verified before the row is touched; nothing is deleted
	// for a caller that does not own the entry.
	entry, err := u.GetEntry(userID, entryID)
	if err != nil {
		return err
	}
	return u.entryRepo.Delete(entry.ID)
}

func (u *entryUsecase) AttachTag(userID, entryID uint, req *dto.AttachTagRequest) (*domain.Entry, error) {
	entry, err := u.GetEntry(userID, entryID)
	if err != nil {
		return nil, err
	}

	var tag *domain.Tag
	if req.TagID != nil {
		tag, err = u.entryRepo.FindTagByID(*req.TagID)
		if err != nil {
			return nil, err
		}
		if tag == nil {
			return nil, domain.ErrTagNotFound
		}
	} else {
		if req.Name == "" {
			return nil, domain.ErrTagNotFound
		}
		tag, err = u.entryRepo.FindTagByName(req.Name)
		if err != nil {
			return nil, err
		}
		if tag == nil {
			tag = &domain.Tag{Name: req.Name, Color: req.Color}
			if err := u.entryRepo.CreateTag(tag); err != nil {
				return nil, err
			}
		}
	}

	if err := u.entryRepo.AttachTag(entry, tag); err != nil {
		return nil, err
	}
	return u.GetEntry(userID, entryID)
}

func (u *entryUsecase) CreateTag(req *dto.CreateTagRequest) (*domain.Tag, error) {
	existing, err := u.entryRepo.FindTagByName(req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrTagAlreadyExists
	}

	tag := &domain.Tag{
		Name:  req.Name,
		Color: req.Color,
	}
	if err := u.entryRepo.CreateTag(tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (u *entryUsecase) GetTags() ([]*domain.Tag, error) {
	return u.entryRepo.FindAllTags()
}
