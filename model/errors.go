package model

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedResourceID = errors.New("malformed resource id")
	ErrInvalidCredentials  = errors.New("invalid credential bundle")
	ErrUnsupportedCurrency = errors.New("unsupported currency")
	ErrUnknownSKU          = errors.New("unknown sku")
)

// MalformedResourceIDError describes why a resource id could not be parsed.
type MalformedResourceIDError struct {
	ID     string
	Reason string
}

func (e *MalformedResourceIDError) Error() string {
	return fmt.Sprintf("malformed resource id %q: %s", e.ID, e.Reason)
}

func (e *MalformedResourceIDError) Is(target error) bool {
	return target == ErrMalformedResourceID
}
