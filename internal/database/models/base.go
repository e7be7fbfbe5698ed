package models

import (
	"time"

	"github.com/google/uuid"
)

// Timestamps provides the audit columns shared by all models
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ensureID assigns a fresh UUID if id is still the zero value.
// IDs are generated here rather than by a database default so the schema is portable.
func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}
