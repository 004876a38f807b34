// Package repository defines sentinel errors shared across repositories so
// that higher layers can distinguish failure scenarios with errors.Is instead
// of matching on message text.
package repository

import "errors"

// ErrNotFound is returned by conditional writes when the targeted row does
// not exist. Reads report absence as a nil entity instead.
var ErrNotFound = errors.New("record not found")

// ErrInsufficientBalance is returned by DebitBalance when the user's balance
// is lower than the requested amount. The balance check and the debit are a
// single conditional update, so concurrent purchases can never overdraw.
var ErrInsufficientBalance = errors.New("insufficient balance")

// ErrAlreadyCancelled is returned by the show status transition when the show
// was cancelled before. The Active -> Cancelled transition happens at most
// once per show.
var ErrAlreadyCancelled = errors.New("show already cancelled")
