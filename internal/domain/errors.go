package domain

import "errors"

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrUnknown        = errors.New("unknown error")

	// ErrInsufficientFunds возвращается условным списанием, если баланса не хватает.
	// Это не сбой, а штатный исход: движок фиксирует failed-транзакцию.
	ErrInsufficientFunds = errors.New("insufficient funds")
)
