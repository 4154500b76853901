package postgres

import (
	"context"

	"loyalty/internal/errors"
	"loyalty/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or alters every table to match the models. Existing columns
// and rows are never dropped.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
