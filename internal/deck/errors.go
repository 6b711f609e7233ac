package deck

import "errors"

var (
	ErrDeckNotFound     = errors.New("deck not found")
	ErrCardNotFound     = errors.New("card not found")
	ErrNameRequired     = errors.New("name is required")
	ErrCardTextRequired = errors.New("front and back are required")
)

// IsNotFound reports whether err is one of the missing-resource errors.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrDeckNotFound) || errors.Is(err, ErrCardNotFound)
}

// IsValidation reports whether err is a user-correctable input error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrNameRequired) || errors.Is(err, ErrCardTextRequired)
}
