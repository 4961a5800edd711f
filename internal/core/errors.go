package core

import (
	"errors"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateName     = errors.New("name already in use")
	ErrInvalidAmount     = errors.New("amount must be greater than zero")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrSameAccount       = errors.New("cannot transfer to the same account")
	ErrAccountLimit      = errors.New("customer already holds the maximum number of accounts")
	ErrNonZeroBalance    = errors.New("account balance must be zero to close")

	ErrSnapshotNotFound = errors.New("no saved snapshot")
	ErrCorruptSnapshot  = errors.New("corrupt snapshot")
)
