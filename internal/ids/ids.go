package ids

import (
	"github.com/google/uuid"
	"github.com/segmentio/ksuid"
)

// New returns a sortable id for user records.
func New() string {
	return ksuid.New().String()
}

// NewUUID returns a random id for projects and session tokens.
func NewUUID() string {
	return uuid.NewString()
}
