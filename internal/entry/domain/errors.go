package domain

import "errors"

var (
	ErrEntryNotFound    = errors.New("entry not found")
	ErrNotOwner         = errors.New("not the owner of this entry")
	ErrTagNotFound      = errors.New("tag not found")
	ErrTagAlreadyExists = errors.New("tag already exists")
)
