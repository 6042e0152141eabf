// Package marketdata provides snapshot-source adapters: an in-memory pair
// for seeded or test data and a CSV-file loader.
package marketdata

import (
	"context"
	"errors"

	"github.com/jtkrd/investment-game/internal/domain"
)

// MemorySource serves a fixed pair of snapshots from memory
type MemorySource struct {
	initial *domain.Snapshot
	final   *domain.Snapshot
}

// NewMemorySource creates a MemorySource over the given snapshot pair
func NewMemorySource(initial, final *domain.Snapshot) (*MemorySource, error) {
	if initial == nil || final == nil {
		return nil, errors.New("memory source requires both snapshots")
	}
	return &MemorySource{initial: initial, final: final}, nil
}

// Initial implements domain.SnapshotSource
func (m *MemorySource) Initial(_ context.Context) (*domain.Snapshot, error) {
	return m.initial, nil
}

// Final implements domain.SnapshotSource
func (m *MemorySource) Final(_ context.Context) (*domain.Snapshot, error) {
	return m.final, nil
}
