package models

import "errors"

var (
	ErrNullArgument     = errors.New("argument cannot be null")
	ErrValidationFailed = errors.New("validation failed")

	ErrInvalidCountryName   = errors.New("invalid country name")
	ErrDuplicateCountryName = errors.New("given country name already exists")
	ErrWorksheetNotFound    = errors.New("worksheet not found")

	ErrInvalidPersonName = errors.New("invalid person name")
	ErrInvalidEmail      = errors.New("invalid email address")
	ErrInvalidGender     = errors.New("invalid gender")
	ErrInvalidDate       = errors.New("invalid date")
	ErrPersonNotFound    = errors.New("person not found")

	ErrDatabaseCredentialNotConfigured = errors.New("database credentials not configured")
	ErrInvalidTokenKey                 = errors.New("token symmetric key must be 32 bytes")
)
