package ports

import "go.trai.ch/recipe/internal/core/domain"

// ReadRecordStore defines the interface for storing and retrieving read records.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ReadRecordStore interface {
	// Get retrieves the record for a manifest path.
	// Returns nil, nil if not found.
	Get(path string) (*domain.ReadRecord, error)

	// Put stores the record.
	Put(record domain.ReadRecord) error
}
