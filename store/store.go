package store

import (
	"errors"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"
)

// Field length limits, matching the persisted schema.
const (
	MaxDisplayName = 30
	MaxTitle       = 200
	MaxBody        = 4000
	MaxCommentBody = 1000
)

// ForumStore owns all reads and writes against the forum schema: users,
// posts, comments and votes. Every write runs as a single transaction;
// callers resolve the current identity per request and pass it in
// explicitly.
type ForumStore struct {
	db *gorm.DB
}

// New returns a ForumStore backed by the given database handle.
func New(db *gorm.DB) *ForumStore {
	return &ForumStore{db: db}
}

// normalize trims surrounding whitespace and truncates to at most max runes.
func normalize(s string, max int) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}

// wrapWriteErr classifies a gorm error from a write path. Uniqueness
// violations become ConflictError, anything else a StorageError.
func wrapWriteErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &ConflictError{Err: err}
	}
	return &StorageError{Op: op, Err: err}
}
