// Package utils provides utility functions for the application.
package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

func ToPtr[T any](v T) *T {
	return &v
}

func IsTrue(b *bool) bool {
	return b != nil && *b
}

// Deref returns the pointed-to value or the zero value for nil pointers.
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// ParseUUID parses a string into a uuid.UUID, rejecting empty input.
func ParseUUID(s string) (uuid.UUID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return uuid.Nil, fmt.Errorf("uuid is empty")
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid uuid %q: %w", s, err)
	}
	return parsed, nil
}

// FormatInt64 renders an int64 in base 10.
func FormatInt64(n int64) string {
	return strconv.FormatInt(n, 10)
}

// TrimToNil trims whitespace and converts empty strings to nil pointers.
func TrimToNil(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
