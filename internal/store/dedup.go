package store

import (
	"context"
	"fmt"
	"sync"
)

// DedupSet is an ingest.DedupSet loaded from the processed_records table.
// Ids reach the table through DB.ApplyChanges, in the same transaction as
// the totals they were counted in; Add only updates the in-memory view.
type DedupSet struct {
	mu   sync.RWMutex
	seen map[string]struct{}
}

// LoadDedupSet reads every processed record id.
func LoadDedupSet(ctx context.Context, db *DB) (*DedupSet, error) {
	rows, err := db.QueryContext(ctx, "SELECT id FROM processed_records")
	if err != nil {
		return nil, fmt.Errorf("failed to query processed records: %w", err)
	}
	defer rows.Close()

	seen := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan processed record: %w", err)
		}
		seen[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read processed records: %w", err)
	}

	return &DedupSet{seen: seen}, nil
}

func (d *DedupSet) Contains(id string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.seen[id]
	return ok
}

func (d *DedupSet) Add(id string) error {
	d.mu.Lock()
	d.seen[id] = struct{}{}
	d.mu.Unlock()
	return nil
}

func (d *DedupSet) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.seen)
}
