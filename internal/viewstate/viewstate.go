// Package viewstate keeps each viewer's widget records between requests. A
// record lives as long as the page it backs would: it expires after a TTL
// and is overwritten by fresh authoritative data.
package viewstate

import (
	"context"
	"time"

	"paperhub/internal/vote"
)

// Record is the cached state of one widget for one viewer.
type Record struct {
	Vote vote.Record `json:"vote"`
	// ParentGeneration is the parent comment's generation the record was
	// bound under. Only replies use it.
	ParentGeneration uint64    `json:"parent_generation"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type Store interface {
	Load(ctx context.Context, viewer, key string) (Record, bool, error)
	Save(ctx context.Context, viewer, key string, rec Record) error
	Delete(ctx context.Context, viewer, key string) error
}

func storeKey(viewer, key string) string {
	return viewer + ":" + key
}
