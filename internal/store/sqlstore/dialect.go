package sqlstore

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Dialect holds what differs between the supported engines: upsert syntax and
// the shape of unique-violation errors.
type Dialect interface {
	Name() string
	// UpsertSuffix is appended to an INSERT so that a conflict on
	// conflictColumn updates updateColumns instead of failing.
	UpsertSuffix(conflictColumn string, updateColumns []string) string
	// DuplicateField reports whether err is a unique violation and, if so,
	// the API field it happened on.
	DuplicateField(err error) (string, bool)
}

func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case "mysql":
		return MySQL{}, nil
	case "sqlite", "sqlite3":
		return SQLite{}, nil
	default:
		return nil, fmt.Errorf("sqlstore: unsupported driver %q", driver)
	}
}

// mysqlDuplicateEntry is ER_DUP_ENTRY.
const mysqlDuplicateEntry = 1062

type MySQL struct{}

func (MySQL) Name() string { return "mysql" }

func (MySQL) UpsertSuffix(_ string, updateColumns []string) string {
	sets := make([]string, len(updateColumns))
	for i, col := range updateColumns {
		sets[i] = fmt.Sprintf("%s = VALUES(%s)", col, col)
	}
	return "ON DUPLICATE KEY UPDATE " + strings.Join(sets, ", ")
}

// DuplicateField parses messages like
// "Duplicate entry 'x' for key 'articles.uq_articles_title'".
func (MySQL) DuplicateField(err error) (string, bool) {
	var me *mysql.MySQLError
	if !errors.As(err, &me) || me.Number != mysqlDuplicateEntry {
		return "", false
	}
	const marker = "for key '"
	i := strings.LastIndex(me.Message, marker)
	if i < 0 {
		return "", true
	}
	key := strings.TrimSuffix(me.Message[i+len(marker):], "'")
	return constraintField(key), true
}

type SQLite struct{}

func (SQLite) Name() string { return "sqlite" }

func (SQLite) UpsertSuffix(conflictColumn string, updateColumns []string) string {
	sets := make([]string, len(updateColumns))
	for i, col := range updateColumns {
		sets[i] = fmt.Sprintf("%s = excluded.%s", col, col)
	}
	return fmt.Sprintf("ON CONFLICT (%s) DO UPDATE SET %s", conflictColumn, strings.Join(sets, ", "))
}

// DuplicateField parses messages like
// "UNIQUE constraint failed: articles.title".
func (SQLite) DuplicateField(err error) (string, bool) {
	if err == nil {
		return "", false
	}
	var se *sqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		default:
			return "", false
		}
	}
	msg := err.Error()
	const marker = "UNIQUE constraint failed: "
	i := strings.Index(msg, marker)
	if i < 0 {
		return "", false
	}
	col := msg[i+len(marker):]
	if j := strings.IndexAny(col, ", ("); j >= 0 {
		col = col[:j]
	}
	if j := strings.LastIndex(col, "."); j >= 0 {
		col = col[j+1:]
	}
	return apiField(col), true
}

// constraintField maps "uq_<table>_<column>", optionally prefixed with
// "<table>.", to the API field name.
func constraintField(key string) string {
	if i := strings.LastIndex(key, "."); i >= 0 {
		key = key[i+1:]
	}
	if key == "PRIMARY" {
		return "id"
	}
	if parts := strings.SplitN(key, "_", 3); len(parts) == 3 && parts[0] == "uq" {
		key = parts[2]
	}
	return apiField(key)
}

var apiFields = map[string]string{
	"article_id": "articleId",
}

func apiField(column string) string {
	if f, ok := apiFields[column]; ok {
		return f
	}
	return column
}
