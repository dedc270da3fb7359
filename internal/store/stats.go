package store

import (
	"context"
	"os"
	"time"
)

// Stats holds database statistics.
type Stats struct {
	DBPath        string     `json:"db_path"`
	DBSizeBytes   int64      `json:"db_size_bytes"`
	TotalCheckIns int        `json:"total_check_ins"`
	TaggedEntries int        `json:"tagged_entries"`
	NotedEntries  int        `json:"noted_entries"`
	Oldest        *time.Time `json:"oldest,omitempty"`
	Newest        *time.Time `json:"newest,omitempty"`
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	// DB file size
	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM checkins`).Scan(&st.TotalCheckIns)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM checkins WHERE tags IS NOT NULL`).Scan(&st.TaggedEntries)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM checkins WHERE note != ''`).Scan(&st.NotedEntries)

	var oldestMs, newestMs int64
	if err := s.db.QueryRowContext(ctx,
		`SELECT MIN(ts), MAX(ts) FROM checkins`).Scan(&oldestMs, &newestMs); err == nil && st.TotalCheckIns > 0 {
		o := time.UnixMilli(oldestMs).UTC()
		n := time.UnixMilli(newestMs).UTC()
		st.Oldest = &o
		st.Newest = &n
	}

	return st, nil
}
