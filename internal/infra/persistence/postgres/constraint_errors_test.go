package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolationHelpers(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		unique     bool
		foreignKey bool
		notNull    bool
	}{
		{name: "nil", err: nil},
		{name: "gorm duplicated key", err: errors.Wrap(gorm.ErrDuplicatedKey, "insert"), unique: true},
		{name: "pg unique", err: &pgconn.PgError{Code: pgUniqueViolation}, unique: true},
		{name: "sqlite unique message", err: errors.New("UNIQUE constraint failed: barcode_items.code"), unique: true},
		{name: "gorm foreign key", err: gorm.ErrForeignKeyViolated, foreignKey: true},
		{name: "pg foreign key", err: &pgconn.PgError{Code: pgForeignKeyViolation}, foreignKey: true},
		{name: "pg not null", err: &pgconn.PgError{Code: pgNotNullViolation}, notNull: true},
		{name: "not null message", err: errors.New("NOT NULL constraint failed: customers.name"), notNull: true},
		{name: "unrelated", err: errors.New("connection reset")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unique, isUniqueConstraintViolation(tt.err))
			assert.Equal(t, tt.foreignKey, isForeignKeyConstraintViolation(tt.err))
			assert.Equal(t, tt.notNull, isNotNullConstraintViolation(tt.err))
		})
	}
}
