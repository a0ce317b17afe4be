package delivery

import (
	"errors"
	"net/http"
	"strconv"

	authdelivery "journal-backend/internal/auth/delivery"
	"journal-backend/internal/entry/domain"
	"journal-backend/internal/entry/dto"
	"journal-backend/internal/entry/usecase"

	"github.com/gin-gonic/gin"
)

// EntryHandler handles journal entry and tag HTTP requests
type EntryHandler struct {
	entryUsecase usecase.EntryUsecase
}

// NewEntryHandler creates a new EntryHandler
func NewEntryHandler(entryUsecase usecase.EntryUsecase) *EntryHandler {
	return &EntryHandler{
		entryUsecase: entryUsecase,
	}
}

// GetEntries returns all entries owned by the authenticated user
// GET /entries/
func (h *EntryHandler) GetEntries(c *gin.Context) {
	user := authdelivery.CurrentUser(c)

	entries, err := h.entryUsecase.GetUserEntries(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// CreateEntry creates a new entry
// POST /entries/
func (h *EntryHandler) CreateEntry(c *gin.Context) {
	user := authdelivery.CurrentUser(c)

	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.entryUsecase.CreateEntry(user.ID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// GetEntry returns a single entry
// GET /entries/:id/
func (h *EntryHandler) GetEntry(c *gin.Context) {
	user := authdelivery.CurrentUser(c)
	entryID, ok := entryIDParam(c)
	if !ok {
		return
	}

	entry, err := h.entryUsecase.GetEntry(user.ID, entryID)
	if err != nil {
		respondEntryError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// UpdateEntry updates an entry's title, content or emotion
// POST /entries/:id/
func (h *EntryHandler) UpdateEntry(c *gin.Context) {
	user := authdelivery.CurrentUser(c)
	entryID, ok := entryIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.entryUsecase.UpdateEntry(user.ID, entryID, &req)
	if err != nil {
		respondEntryError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// DeleteEntry deletes an entry
// DELETE /entries/:id/
func (h *EntryHandler) DeleteEntry(c *gin.Context) {
	user := authdelivery.CurrentUser(c)
	entryID, ok := entryIDParam(c)
	if !ok {
		return
	}

	if err := h.entryUsecase.DeleteEntry(user.ID, entryID); err != nil {
		respondEntryError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "entry deleted"})
}

// AttachTag attaches a tag to an entry
// POST /entries/:id/tags/
func (h *EntryHandler) AttachTag(c *gin.Context) {
	user := authdelivery.CurrentUser(c)
	entryID, ok := entryIDParam(c)
	if !ok {
		return
	}

	var req dto.AttachTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.entryUsecase.AttachTag(user.ID, entryID, &req)
	if err != nil {
		respondEntryError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// GetTags lists all tags
// GET /tags/
func (h *EntryHandler) GetTags(c *gin.Context) {
	tags, err := h.entryUsecase.GetTags()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tags": tags})
}

// CreateTag creates a new tag
// POST /tags/
func (h *EntryHandler) CreateTag(c *gin.Context) {
	var req dto.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tag, err := h.entryUsecase.CreateTag(&req)
	if err != nil {
		if errors.Is(err, domain.ErrTagAlreadyExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Tag already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, tag)
}

func entryIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entry id"})
		return 0, false
	}
	return uint(id), true
}

func respondEntryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrEntryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
	case errors.Is(err, domain.ErrNotOwner):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not the owner of this entry"})
	case errors.Is(err, domain.ErrTagNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Tag not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
