package domain

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrAlreadyExists    = errors.New("already exists")
	ErrInvalidInput     = errors.New("invalid input")
	ErrRoomNotFound     = errors.New("referenced room does not exist")
	ErrRoomInUse        = errors.New("room is assigned to customers")
	ErrNotAuthenticated = errors.New("invalid credentials")
	ErrInvalidToken     = errors.New("invalid or expired token")
)
