package repositories

import (
	"context"
	"encoding/json"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"dapur-mama/models"
)

// PostgresStorage keeps the catalog slot as a single JSONB row, one row per
// slot name.
type PostgresStorage struct {
	pool *pgxpool.Pool
	slot string
}

func NewPostgresStorage(pool *pgxpool.Pool, slot string) *PostgresStorage {
	return &PostgresStorage{pool: pool, slot: slot}
}

func (s *PostgresStorage) Load() ([]models.MenuItem, bool) {
	var data []byte
	err := s.pool.QueryRow(context.Background(),
		`SELECT data FROM catalog_slots WHERE name = $1`, s.slot,
	).Scan(&data)
	if err != nil {
		return nil, false
	}
	items, ok := decodeSlot(data)
	if !ok {
		log.Printf("Catalog slot %q is unreadable, falling back to seed menu", s.slot)
	}
	return items, ok
}

func (s *PostgresStorage) Save(items []models.MenuItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(context.Background(), `
		INSERT INTO catalog_slots (name, data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE SET
			data = $2,
			updated_at = now()`,
		s.slot, data,
	)
	return err
}
