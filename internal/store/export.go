package store

import (
	"context"
	"fmt"
	"time"

	"github.com/nazma5979/moodlog/internal/model"
)

// ExportVersion tags the export format. Bump on incompatible changes.
const ExportVersion = 1

// Export is the versioned round-trip container for the full record set.
type Export struct {
	Version    int             `json:"version"`
	ExportedAt time.Time       `json:"exported_at"`
	CheckIns   []model.CheckIn `json:"check_ins"`
}

// ExportAll returns every check-in wrapped in a versioned envelope.
func (s *SQLiteStore) ExportAll(ctx context.Context) (Export, error) {
	checkIns, err := s.GetAll(ctx)
	if err != nil {
		return Export{}, err
	}
	return Export{
		Version:    ExportVersion,
		ExportedAt: time.Now().UTC(),
		CheckIns:   checkIns,
	}, nil
}

// Import stores check-ins from an export, skipping ids already present.
// Returns the number imported.
func (s *SQLiteStore) Import(ctx context.Context, e Export) (int, error) {
	if e.Version != ExportVersion {
		return 0, fmt.Errorf("unsupported export version %d (want %d)", e.Version, ExportVersion)
	}

	imported := 0
	for _, c := range e.CheckIns {
		if c.ID != "" {
			if _, err := s.Get(ctx, c.ID); err == nil {
				continue
			}
		}
		if _, err := s.Save(ctx, c); err != nil {
			return imported, err
		}
		imported++
	}
	return imported, nil
}
