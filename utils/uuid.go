package utils

import (
	"github.com/google/uuid"
)

// NewSessionID returns a new unique identifier for a viewer session
func NewSessionID() string {
	return uuid.New().String()
}
