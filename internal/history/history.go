package history

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/DCTR-QUASAR/Hytale-Playtime/internal/db"
	"github.com/DCTR-QUASAR/Hytale-Playtime/pkg/models"
)

// RankedFile is a cache entry with its position among all recorded files
type RankedFile struct {
	Rank         int
	Name         string
	Seconds      int64
	Share        float64 // percent of the total
	RunningTotal int64
}

// TopFiles ranks records by playtime. A limit <= 0 returns every file.
func TopFiles(ctx context.Context, records []models.FileRecord, limit int) ([]RankedFile, error) {
	database, err := db.GetDB()
	if err != nil {
		return nil, err
	}
	return topFiles(ctx, database, records, limit)
}

func topFiles(ctx context.Context, database *sql.DB, records []models.FileRecord, limit int) ([]RankedFile, error) {
	if err := loadRecords(ctx, database, records); err != nil {
		return nil, err
	}

	query := `
		SELECT
			CAST(RANK() OVER (ORDER BY seconds DESC) AS INTEGER) AS file_rank,
			name,
			seconds,
			CAST(COALESCE(seconds * 100.0 / NULLIF(SUM(seconds) OVER (), 0), 0) AS DOUBLE) AS share,
			CAST(SUM(seconds) OVER (ORDER BY seconds DESC, name ASC ROWS UNBOUNDED PRECEDING) AS BIGINT) AS running_total
		FROM file_records
		ORDER BY seconds DESC, name ASC
	`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := database.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute ranking query: %w", err)
	}
	defer rows.Close()

	var ranked []RankedFile
	for rows.Next() {
		var f RankedFile
		if err := rows.Scan(&f.Rank, &f.Name, &f.Seconds, &f.Share, &f.RunningTotal); err != nil {
			continue
		}
		ranked = append(ranked, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ranking rows: %w", err)
	}

	return ranked, nil
}

func loadRecords(ctx context.Context, database *sql.DB, records []models.FileRecord) error {
	if _, err := database.ExecContext(ctx, `CREATE OR REPLACE TEMP TABLE file_records (name VARCHAR, seconds BIGINT)`); err != nil {
		return fmt.Errorf("failed to create records table: %w", err)
	}

	tx, err := database.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin insert: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO file_records VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		if _, err := stmt.ExecContext(ctx, rec.Name, rec.Seconds); err != nil {
			return fmt.Errorf("failed to insert %s: %w", rec.Name, err)
		}
	}

	return tx.Commit()
}
