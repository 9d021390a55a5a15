package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrInvalidEmail     = errors.New("a valid email is required")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	ErrEmptyName        = errors.New("name is required")

	ErrEmptyTitle      = errors.New("title is required")
	ErrTitleTooLong    = errors.New("title must be at most 200 characters")
	ErrInvalidURL      = errors.New("url must be a valid https address")
	ErrNegativePrice   = errors.New("price must be a non-negative integer")
	ErrInvalidPriority = errors.New("priority must be one of high, medium, low")

	ErrInvalidItemID    = errors.New("a valid item id is required")
	ErrEmptyClaimerName = errors.New("claimer name is required")

	ErrNoFieldsToUpdate  = errors.New("at least one field must be provided for update")
	ErrWrongConfirmation = errors.New(`confirmation must be the literal string "DELETE"`)
	ErrEmptyPassword     = errors.New("password is required")
)
