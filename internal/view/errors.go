package view

import "errors"

var (
	ErrLoadFailed     = errors.New("failed to load records")
	ErrDeleteFailed   = errors.New("failed to delete record")
	ErrDeleteDeclined = errors.New("delete declined")
	ErrRecordNotFound = errors.New("record not found")
)
