package services

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrEstateNotFound  = errors.New("estate not found")
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")

	ErrUserExists = errors.New("username or email already taken")
	ErrForbidden  = errors.New("not the owner of this resource")

	ErrAlreadyFavorite = errors.New("estate is already in favorites")
	ErrNotFavorite     = errors.New("estate is not in favorites")
	ErrOwnEstate       = errors.New("cannot favorite your own estate")
)
