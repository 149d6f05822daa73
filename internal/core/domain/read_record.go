package domain

import "time"

// ReadRecord remembers the fingerprint of the last successful read of a manifest.
type ReadRecord struct {
	Path        string    `json:"path,omitzero"`
	Fingerprint string    `json:"fingerprint,omitzero"`
	Timestamp   time.Time `json:"timestamp,omitzero"`
}
