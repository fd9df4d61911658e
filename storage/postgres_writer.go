package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ayushm74/olx-car-info/config"
	"github.com/Ayushm74/olx-car-info/models"
)

// PostgresWriter keeps scraped listings across runs so price history can be
// compared between scrapes. The flat files stay the primary artifact; this
// sink is optional and failures here never abort the run.
type PostgresWriter struct {
	pool *pgxpool.Pool
}

func NewPostgresWriter(cfg *config.Config) (*PostgresWriter, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBName,
		cfg.DBSSLMode,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect postgres: %w", err)
	}

	return &PostgresWriter{pool: pool}, nil
}

func (w *PostgresWriter) Close() {
	if w.pool != nil {
		w.pool.Close()
	}
}

func (w *PostgresWriter) EnsureSchema() error {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	// url is only unique when the page actually gave one; degraded-mode
	// records all carry the N/A sentinel and may repeat.
	sql := `
	CREATE TABLE IF NOT EXISTS car_cover_listings (
		id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		price TEXT,
		location TEXT,
		date TEXT,
		url TEXT NOT NULL,
		scraped_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE UNIQUE INDEX IF NOT EXISTS idx_car_cover_listings_url
		ON car_cover_listings(url) WHERE url <> 'N/A';
	CREATE INDEX IF NOT EXISTS idx_car_cover_listings_location
		ON car_cover_listings(location);
	`

	if _, err := w.pool.Exec(ctx, sql); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	return nil
}

func (w *PostgresWriter) WriteBatch(listings []models.Listing) error {
	if len(listings) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	batch := &pgx.Batch{}
	insertSQL := `
	INSERT INTO car_cover_listings (title, price, location, date, url)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT DO NOTHING;
	`

	enqueued := 0
	for _, l := range listings {
		title := strings.TrimSpace(l.Title)
		if title == "" || title == models.NA {
			continue
		}

		batch.Queue(
			insertSQL,
			title,
			strings.TrimSpace(l.Price),
			strings.TrimSpace(l.Location),
			strings.TrimSpace(l.Date),
			strings.TrimSpace(l.URL),
		)
		enqueued++
	}

	if enqueued == 0 {
		return nil
	}

	results := w.pool.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < enqueued; i++ {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("batch insert failed at row %d: %w", i, err)
		}
	}

	return nil
}
