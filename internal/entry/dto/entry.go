package dto

type CreateEntryRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
	Emotion string `json:"emotion"`
}

// UpdateEntryRequest carries the fields that can be changed after creation;
// nil fields are left untouched.
type UpdateEntryRequest struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
	Emotion *string `json:"emotion,omitempty"`
}

// AttachTagRequest attaches an existing tag by id, or finds/creates one by
// name when no id is given.
type AttachTagRequest struct {
	TagID *uint  `json:"tag_id,omitempty"`
	Name  string `json:"name,omitempty"`
	Color string `json:"color,omitempty"`
}

type CreateTagRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color"`
}
