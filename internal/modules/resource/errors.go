package resource

import "errors"

var (
	ErrNameTaken = errors.New("resource name already exists")
	ErrNotFound  = errors.New("resource not found")
)
