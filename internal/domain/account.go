// Package domain contains the core business entities and interfaces.
package domain

import "context"

// Account represents a registered user of the advisor.
// The password is stored as entered; login compares it verbatim.
type Account struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HealthData is one submission of vitals collected from the intake form.
// All fields are free text; nothing here is persisted.
type HealthData struct {
	Name          string
	BloodPressure string
	BloodSugar    string
	Temperature   string
	Symptom       string
}

// KeyValueStore is the port for durable string-keyed persistence. Each
// concern owns a single key and rewrites its whole value on every change.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
