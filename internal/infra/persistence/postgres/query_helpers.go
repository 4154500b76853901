package postgres

import (
	"strings"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`!`, `!!`, `%`, `!%`, `_`, `!_`)

// containsPattern builds a lower-cased LIKE pattern matching q as a substring.
// Callers pair it with ESCAPE '!', which PostgreSQL and SQLite both accept.
func containsPattern(q string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(q))) + "%"
}

// paginate applies skip/take. A non-positive take leaves the query unbounded.
func paginate(skip, take int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if skip > 0 {
			db = db.Offset(skip)
		}
		if take > 0 {
			db = db.Limit(take)
		}

		return db
	}
}
