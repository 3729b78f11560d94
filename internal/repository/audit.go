package repository

import (
	"context"
	"database/sql"

	"github.com/vaultpass/passgen-go/internal/model"
)

const MaxAuditLimit = 500

const createAuditTable = `
	CREATE TABLE IF NOT EXISTS generation_audit (
		id              BIGINT AUTO_INCREMENT PRIMARY KEY,
		client          VARCHAR(128) NOT NULL,
		length          INT NOT NULL,
		quantity        INT NOT NULL,
		categories      VARCHAR(64) NOT NULL,
		exclude_similar BOOLEAN NOT NULL,
		alphabet_size   INT NOT NULL,
		entropy_bits    DOUBLE NOT NULL,
		strength        VARCHAR(16) NOT NULL,
		created_at      TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		INDEX idx_generation_audit_created_at (created_at)
	)`

// AuditRepository stores generation metadata. It never receives password text.
type AuditRepository struct {
	db *sql.DB
}

// NewAuditRepository creates a new AuditRepository.
func NewAuditRepository(db *sql.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// EnsureSchema creates the audit table if it does not exist.
func (r *AuditRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, createAuditTable)
	return err
}

// Insert writes one record and sets its generated ID.
func (r *AuditRepository) Insert(ctx context.Context, rec *model.AuditRecord) error {
	query := `INSERT INTO generation_audit
		(client, length, quantity, categories, exclude_similar, alphabet_size, entropy_bits, strength)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		rec.Client,
		rec.Length,
		rec.Quantity,
		rec.Categories,
		rec.ExcludeSimilar,
		rec.AlphabetSize,
		rec.EntropyBits,
		rec.Strength,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	rec.ID = id
	return nil
}

// ListRecent returns up to limit records, newest first.
func (r *AuditRepository) ListRecent(ctx context.Context, limit int) ([]model.AuditRecord, error) {
	query := `SELECT id, client, length, quantity, categories, exclude_similar, alphabet_size,
		entropy_bits, strength, created_at
		FROM generation_audit ORDER BY created_at DESC, id DESC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, clampLimit(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []model.AuditRecord{}
	for rows.Next() {
		var rec model.AuditRecord
		if err := rows.Scan(
			&rec.ID, &rec.Client, &rec.Length, &rec.Quantity, &rec.Categories, &rec.ExcludeSimilar,
			&rec.AlphabetSize, &rec.EntropyBits, &rec.Strength, &rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return 50
	case limit > MaxAuditLimit:
		return MaxAuditLimit
	}
	return limit
}
