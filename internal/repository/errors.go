// Package repository implements MySQL persistence for the front-desk
// aggregates. This file defines sentinel errors shared across the
// repositories so handlers can map failures to HTTP statuses without
// inspecting driver error strings.
package repository

import "errors"

// ErrNotFound is returned when a referenced identity does not exist.
// Handlers translate it into a 404 response.
var ErrNotFound = errors.New("not found")

// ErrSettingsNotFound is returned when the settings document has never
// been written. Billing refuses to issue invoices in that state.
var ErrSettingsNotFound = errors.New("settings not found")

// ErrEmailExists is returned when registering a staff account with an
// email that is already taken. Handlers translate it into 409.
var ErrEmailExists = errors.New("email already exists")
