package repository

import "errors"

// Sentinel errors the usecase layer maps onto the envelope error taxonomy.
var (
	ErrNotFound            = errors.New("record not found")
	ErrDuplicateRating     = errors.New("rating already exists for this tuple")
	ErrAlreadySubscribed   = errors.New("user already has an active subscription")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrAlreadySettled      = errors.New("record is not pending")
)
