// Package service implements the entity services: validation, uniqueness
// checks, cross-entity lookups and derived-field population over the
// flat-file store. Every operation reloads the collections it touches.
package service

import (
	"time"

	"github.com/google/uuid"
)

// createdAtLayout matches the timestamps already present in the stored data
// (local ISO without a zone).
const createdAtLayout = "2006-01-02T15:04:05"

func newID() string { return uuid.NewString() }

func timestamp(t time.Time) string { return t.Format(createdAtLayout) }
