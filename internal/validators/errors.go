package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrInvalidRecord   = errors.New("invalid record")
	ErrInvalidCriteria = errors.New("invalid filter criteria")
)
