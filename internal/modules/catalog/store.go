// README: Catalog snapshot store backed by PostgreSQL.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrSnapshotNotFound = errors.New("catalog snapshot not found")

// SnapshotInfo describes a stored snapshot without its body.
type SnapshotInfo struct {
	Name      string
	Templates int
	Roads     int
	UpdatedAt time.Time
}

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// SaveSnapshot upserts src under name. The source is validated first so a
// broken catalog never reaches the table.
func (s *Store) SaveSnapshot(ctx context.Context, name string, src Source) error {
	if _, err := Build(src); err != nil {
		return err
	}
	body, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	_, err = s.db.Exec(ctx, `
        INSERT INTO catalog_snapshots (name, body, template_count, road_count, updated_at)
        VALUES ($1, $2, $3, $4, NOW())
        ON CONFLICT (name) DO UPDATE
        SET body = EXCLUDED.body,
            template_count = EXCLUDED.template_count,
            road_count = EXCLUDED.road_count,
            updated_at = NOW()`,
		name, body, len(src.Templates), len(src.Roads),
	)
	return err
}

// LoadSnapshot reads the raw source stored under name.
func (s *Store) LoadSnapshot(ctx context.Context, name string) (Source, error) {
	var body []byte
	err := s.db.QueryRow(ctx, `SELECT body FROM catalog_snapshots WHERE name = $1`, name).Scan(&body)
	if errors.Is(err, pgx.ErrNoRows) {
		return Source{}, ErrSnapshotNotFound
	}
	if err != nil {
		return Source{}, err
	}
	return DecodeBytes(body)
}

// Load reads the snapshot under name and builds it.
func (s *Store) Load(ctx context.Context, name string) (*Catalog, error) {
	src, err := s.LoadSnapshot(ctx, name)
	if err != nil {
		return nil, err
	}
	return Build(src)
}

func (s *Store) ListSnapshots(ctx context.Context) ([]SnapshotInfo, error) {
	rows, err := s.db.Query(ctx, `
        SELECT name, template_count, road_count, updated_at
        FROM catalog_snapshots
        ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SnapshotInfo
	for rows.Next() {
		var info SnapshotInfo
		if err := rows.Scan(&info.Name, &info.Templates, &info.Roads, &info.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, info)
	}
	return out, rows.Err()
}

func (s *Store) DeleteSnapshot(ctx context.Context, name string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM catalog_snapshots WHERE name = $1`, name)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSnapshotNotFound
	}
	return nil
}
