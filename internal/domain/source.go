package domain

import "context"

// SnapshotSource defines the interface for the injected market-data
// collaborator. How the snapshots are produced (seeded tables, CSV files,
// an API) is an adapter concern; the core only consumes the two
// time-indexed views.
type SnapshotSource interface {
	// Initial retrieves the snapshot investments are made against
	Initial(ctx context.Context) (*Snapshot, error)

	// Final retrieves the later snapshot portfolios are revalued against
	Final(ctx context.Context) (*Snapshot, error)
}
