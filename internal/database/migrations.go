package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"
)

// AddIndexes adds composite indexes that struct tags cannot express.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// "my applications" and dashboard reads: filter by owner, newest first
		{"applications", "idx_applications_user_applied_at", "user_id, applied_at"},
		// dashboard status counts
		{"applications", "idx_applications_user_status", "user_id, status"},
		// catalog listing
		{"jobs", "idx_jobs_company_created_at", "company_id, created_at"},
	}

	migrator := db.Migrator()
	for _, idx := range indexes {
		if migrator.HasIndex(idx.table, idx.name) {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		log.Printf("Created index %s on %s(%s)", idx.name, idx.table, idx.columns)
	}

	return nil
}
