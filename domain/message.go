// Package domain contains core concepts of the channel messaging system.
// This file defines Message events and related rules.
// Messages are immutable once appended to a channel log.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message represents an immutable chat event inside a channel log.
// Log position is the authoritative order; CreatedAt is display/audit only.
type Message struct {
	ID        uuid.UUID // unique identifier
	Channel   string
	Author    string
	Content   string
	CreatedAt time.Time
}
