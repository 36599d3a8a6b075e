package postgres

import (
	"strings"

	"portal/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// paginate applies offset and limit. A non-positive limit leaves the query unbounded.
func paginate(db *gorm.DB, page repository.Page) *gorm.DB {
	if page.Offset > 0 {
		db = db.Offset(page.Offset)
	}
	if page.Limit > 0 {
		db = db.Limit(page.Limit)
	}

	return db
}

// likePattern escapes LIKE wildcards in s and wraps it for a contains match.
func likePattern(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

	return "%" + replacer.Replace(strings.TrimSpace(s)) + "%"
}

// replica routes a read to a replica when any are configured. Inside a
// transaction dbresolver keeps the statement on the transaction's connection.
func replica(db *gorm.DB) *gorm.DB {
	return db.Clauses(dbresolver.Read)
}
