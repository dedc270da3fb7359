package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/nazma5979/moodlog/internal/model"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db      *sql.DB
	entropy *rand.Rand
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS checkins (
		id           TEXT PRIMARY KEY,
		ts           INTEGER NOT NULL,
		tz_offset    INTEGER NOT NULL DEFAULT 0,
		emotions     TEXT NOT NULL,
		note         TEXT NOT NULL DEFAULT '',
		intensity    INTEGER,
		scale_values TEXT,
		tags         TEXT,
		created_at   TEXT NOT NULL,
		modified_at  TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_checkins_ts ON checkins(ts);
	CREATE INDEX IF NOT EXISTS idx_checkins_created ON checkins(created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Save inserts or, for an existing id, updates in place. Timestamps are
// user-editable; only ModifiedAt is stamped here.
func (s *SQLiteStore) Save(ctx context.Context, c model.CheckIn) (model.CheckIn, error) {
	// Stored timestamps are RFC3339; keep the returned struct at the
	// same second precision so round trips compare clean.
	now := time.Now().UTC().Truncate(time.Second)

	if c.ID == "" {
		c.ID = s.newID()
	}
	if c.Timestamp == 0 {
		c.Timestamp = now.UnixMilli()
	}

	emotions, err := json.Marshal(c.Emotions)
	if err != nil {
		return model.CheckIn{}, fmt.Errorf("marshal emotions: %w", err)
	}
	var scaleValues, tags *string
	if len(c.ScaleValues) > 0 {
		b, _ := json.Marshal(c.ScaleValues)
		v := string(b)
		scaleValues = &v
	}
	if len(c.Tags) > 0 {
		b, _ := json.Marshal(c.Tags)
		v := string(b)
		tags = &v
	}

	var exists bool
	err = s.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM checkins WHERE id = ?)`, c.ID).Scan(&exists)
	if err != nil {
		return model.CheckIn{}, err
	}

	if exists {
		modified := now
		c.ModifiedAt = &modified
		_, err = s.db.ExecContext(ctx,
			`UPDATE checkins SET ts = ?, tz_offset = ?, emotions = ?, note = ?,
			        intensity = ?, scale_values = ?, tags = ?, modified_at = ?
			 WHERE id = ?`,
			c.Timestamp, c.TimezoneOffset, string(emotions), c.Note,
			c.Intensity, scaleValues, tags, now.Format(time.RFC3339), c.ID)
		if err != nil {
			return model.CheckIn{}, fmt.Errorf("update checkin: %w", err)
		}
		// CreatedAt stays as stored.
		stored, err := s.Get(ctx, c.ID)
		if err != nil {
			return model.CheckIn{}, err
		}
		return stored, nil
	}

	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	var modifiedAt *string
	if c.ModifiedAt != nil {
		v := c.ModifiedAt.UTC().Format(time.RFC3339)
		modifiedAt = &v
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO checkins (id, ts, tz_offset, emotions, note, intensity, scale_values, tags, created_at, modified_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Timestamp, c.TimezoneOffset, string(emotions), c.Note,
		c.Intensity, scaleValues, tags, c.CreatedAt.UTC().Format(time.RFC3339), modifiedAt)
	if err != nil {
		return model.CheckIn{}, fmt.Errorf("insert checkin: %w", err)
	}

	return c, nil
}

const checkInColumns = `id, ts, tz_offset, emotions, note, intensity, scale_values, tags, created_at, modified_at`

func (s *SQLiteStore) Get(ctx context.Context, id string) (model.CheckIn, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+checkInColumns+` FROM checkins WHERE id = ?`, id)
	c, err := scanCheckIn(row)
	if err == sql.ErrNoRows {
		return model.CheckIn{}, fmt.Errorf("check-in not found: %s", id)
	}
	return c, err
}

func (s *SQLiteStore) GetAll(ctx context.Context) ([]model.CheckIn, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+checkInColumns+` FROM checkins ORDER BY ts ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var checkIns []model.CheckIn
	for rows.Next() {
		c, err := scanCheckIn(rows)
		if err != nil {
			return nil, err
		}
		checkIns = append(checkIns, c)
	}
	return checkIns, rows.Err()
}

func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM checkins WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("check-in not found: %s", id)
	}
	return nil
}

func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM checkins`).Scan(&n)
	return n, err
}

func (s *SQLiteStore) Oldest(ctx context.Context) (model.CheckIn, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+checkInColumns+` FROM checkins ORDER BY ts ASC LIMIT 1`)
	c, err := scanCheckIn(row)
	if err == sql.ErrNoRows {
		return model.CheckIn{}, fmt.Errorf("no check-ins stored")
	}
	return c, err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanCheckIn(row scanner) (model.CheckIn, error) {
	var c model.CheckIn
	var emotions string
	var intensity sql.NullInt64
	var scaleValues, tags, modifiedAt sql.NullString
	var createdAt string

	err := row.Scan(
		&c.ID, &c.Timestamp, &c.TimezoneOffset, &emotions, &c.Note,
		&intensity, &scaleValues, &tags, &createdAt, &modifiedAt,
	)
	if err != nil {
		return c, err
	}

	json.Unmarshal([]byte(emotions), &c.Emotions)
	if intensity.Valid {
		v := int(intensity.Int64)
		c.Intensity = &v
	}
	if scaleValues.Valid {
		json.Unmarshal([]byte(scaleValues.String), &c.ScaleValues)
	}
	if tags.Valid {
		json.Unmarshal([]byte(tags.String), &c.Tags)
	}
	c.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if modifiedAt.Valid {
		t, _ := time.Parse(time.RFC3339, modifiedAt.String)
		c.ModifiedAt = &t
	}

	return c, nil
}
