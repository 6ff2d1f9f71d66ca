package services

import "errors"

var (
	ErrPostNotFound  = errors.New("post not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrValidation    = errors.New("missing required field")
	ErrUsernameTaken = errors.New("username already registered")
	ErrEmailTaken    = errors.New("email already registered")
	ErrBadLogin      = errors.New("invalid username or password")
)
