package model

import "errors"

var (
	ErrUnauthenticated     = errors.New("user not authenticated")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidShow         = errors.New("invalid show")
	ErrInvalidRating       = errors.New("rating must be between 0 and 5")
	ErrReviewNotFound      = errors.New("review not found")
	ErrPlaylistNotFound    = errors.New("playlist not found")
	ErrInvalidPlaylistName = errors.New("playlist name cannot be empty")
	ErrInvalidProfileName  = errors.New("display name cannot be empty")
	ErrAccountNotFound     = errors.New("account not found")
	ErrEmailAlreadyExist   = errors.New("email already in use")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrWrongPassword       = errors.New("current password is incorrect")
	ErrMissingFields       = errors.New("missing required fields")
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrPasswordMismatch    = errors.New("passwords do not match")
	ErrWeakPassword        = errors.New("password too weak")
	ErrInvalidToken        = errors.New("invalid token")
	ErrUnsupportedProvider = errors.New("operation not supported for identity provider")
)
