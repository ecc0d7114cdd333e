package repository

import (
	"errors"
	"gorm.io/gorm"
	"strings"
)

// ErrDuplicate is returned by Create when the row collides with a unique
// constraint (primary key or unique index).
var ErrDuplicate = errors.New("duplicate record")

func translateCreateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}

	// Fallback for dialects that do not translate constraint errors
	msg := err.Error()
	if strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "SQLSTATE 23505") {
		return ErrDuplicate
	}
	return err
}
