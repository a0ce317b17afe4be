package repository

import (
	"errors"
	"time"

	"journal-backend/internal/entry/domain"

	"gorm.io/gorm"
)

// gormEntryRepository implements EntryRepository using GORM
type gormEntryRepository struct {
	db *gorm.DB
}

// NewGormEntryRepository creates a new GORM-based EntryRepository
func NewGormEntryRepository(db *gorm.DB) EntryRepository {
	return &gormEntryRepository{db: db}
}

func (r *gormEntryRepository) Create(entry *domain.Entry) error {
	if entry.Date.IsZero() {
		entry.Date = time.Now()
	}
	entry.CreatedAt = time.Now()
	entry.UpdatedAt = time.Now()
	return r.db.Create(entry).Error
}

func (r *gormEntryRepository) FindByID(id uint) (*domain.Entry, error) {
	var entry domain.Entry
	err := r.db.Preload("Tags").Where("id = ?", id).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *gormEntryRepository) FindByUserID(userID uint) ([]*domain.Entry, error) {
	var entries []*domain.Entry
	err := r.db.Preload("Tags").Where("user_id = ?", userID).
		Order("date DESC").Find(&entries).Error
	return entries, err
}

func (r *gormEntryRepository) Update(entry *domain.Entry) error {
	entry.UpdatedAt = time.Now()
	return r.db.Save(entry).Error
}

func (r *gormEntryRepository) Delete(id uint) error {
	return r.db.Select("Tags").Delete(&domain.Entry{ID: id}).Error
}

func (r *gormEntryRepository) AttachTag(entry *domain.Entry, tag *domain.Tag) error {
	return r.db.Model(entry).Association("Tags").Append(tag)
}

func (r *gormEntryRepository) CreateTag(tag *domain.Tag) error {
	tag.CreatedAt = time.Now()
	return r.db.Create(tag).Error
}

func (r *gormEntryRepository) FindTagByID(id uint) (*domain.Tag, error) {
	var tag domain.Tag
	err := r.db.Where("id = ?", id).First(&tag).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tag, nil
}

func (r *gormEntryRepository) FindTagByName(name string) (*domain.Tag, error) {
	var tag domain.Tag
	err := r.db.Where("name = ?", name).First(&tag).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tag, nil
}

func (r *gormEntryRepository) FindAllTags() ([]*domain.Tag, error) {
	var tags []*domain.Tag
	err := r.db.Order("name ASC").Find(&tags).Error
	return tags, err
}
