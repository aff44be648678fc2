// Package repository contains the data access layer. Each entity gets a
// small interface plus a GORM-backed implementation built with constructor
// injection; services only ever see the interfaces.
package repository

import "errors"

// ErrNotFound is returned when a lookup matches no row. Owner-scoped
// lookups return it both when the row is absent and when it belongs to a
// different trainer, so callers cannot tell the two cases apart.
var ErrNotFound = errors.New("record not found")
