package migrations

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// addUserColumn adds the optional owner reference. Ownership is enforced by
// the user-service existence gate, not by a storage-level constraint, so the
// column carries no foreign key.
func addUserColumn() *gormigrate.Migration {
	return &gormigrate.Migration{
		ID: "002_add_user_id",
		Migrate: func(tx *gorm.DB) error {
			return tx.Exec(
				"ALTER TABLE contents ADD COLUMN IF NOT EXISTS user_id VARCHAR(100);",
			).Error
		},
		Rollback: func(tx *gorm.DB) error {
			return tx.Exec("ALTER TABLE contents DROP COLUMN IF EXISTS user_id;").Error
		},
	}
}
