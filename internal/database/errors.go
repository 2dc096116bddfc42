package database

import (
	"errors"
	"fmt"
	"strings"

	"tastebuds/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes for integrity violations.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgNotNullViolation    = "23502"
	pgStringTooLong       = "22001"
)

// ClassifyError converts a storage error into an AppError: uniqueness
// violations become conflicts, foreign-key, check and not-null violations
// become validation errors, and everything else is internal.
func ClassifyError(resource string, err error) error {
	if err == nil {
		return nil
	}

	var appErr *models.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return uniqueConflict(resource, columnFromIndex(pgErr.ConstraintName))
		case pgForeignKeyViolation:
			return models.NewValidationError("Referenced record does not exist")
		case pgCheckViolation:
			return models.NewValidationError(fmt.Sprintf("Value violates constraint %s", pgErr.ConstraintName))
		case pgNotNullViolation:
			return models.NewValidationError(fmt.Sprintf("%s is required", pgErr.ColumnName))
		case pgStringTooLong:
			return models.NewValidationError("Value is too long")
		}
		return models.NewInternalError(err)
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return uniqueConflict(resource, "")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return models.NewValidationError("Referenced record does not exist")
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return models.NewValidationError("Value violates a check constraint")
	}

	// mattn/go-sqlite3 reports constraint failures only through the message.
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return uniqueConflict(resource, columnFromSQLite(msg))
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return models.NewValidationError("Referenced record does not exist")
	case strings.Contains(msg, "CHECK constraint failed"):
		return models.NewValidationError("Value violates a check constraint")
	case strings.Contains(msg, "NOT NULL constraint failed"):
		return models.NewValidationError(fmt.Sprintf("%s is required", columnFromSQLite(msg)))
	}

	return models.NewInternalError(err)
}

// IsUniqueViolation reports whether err is a uniqueness violation from either driver.
func IsUniqueViolation(err error) bool {
	var appErr *models.AppError
	if errors.As(ClassifyError("", err), &appErr) {
		return appErr.Code == models.CodeConflict
	}
	return false
}

func uniqueConflict(resource, column string) *models.AppError {
	if resource == "" {
		resource = "Record"
	}
	if column == "" {
		return models.NewConflictError(resource + " already exists")
	}
	return models.NewConflictError(fmt.Sprintf("%s with this %s already exists", resource, column))
}

// columnFromIndex turns "idx_users_email" into "email". Table names may contain
// underscores, so the longest known table prefix wins.
func columnFromIndex(name string) string {
	rest, ok := strings.CutPrefix(name, "idx_")
	if !ok {
		return ""
	}
	best := ""
	for _, table := range tableNames() {
		if strings.HasPrefix(rest, table+"_") && len(table) > len(best) {
			best = table
		}
	}
	if best == "" {
		return ""
	}
	return strings.TrimPrefix(rest, best+"_")
}

// columnFromSQLite extracts "email" from "UNIQUE constraint failed: users.email".
// Composite keys ("a.x, a.y") yield the column list.
func columnFromSQLite(msg string) string {
	_, cols, ok := strings.Cut(msg, "failed: ")
	if !ok {
		return ""
	}
	parts := strings.Split(cols, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if _, col, found := strings.Cut(p, "."); found {
			p = col
		}
		names = append(names, p)
	}
	return strings.Join(names, ", ")
}

func tableNames() []string {
	return []string{
		"users", "ingredients", "cocktails", "dishes", "favorites", "pairings",
		"posts", "comments", "chats", "chat_participants", "messages",
		"notifications", "follows",
	}
}
