package storage

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/chris-regnier/devrewind/internal/rewind"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Sentinel errors for storage operations.
var (
	ErrNotFound   = errors.New("archive not found")
	ErrConflict   = errors.New("archive already exists")
	ErrStorage    = errors.New("storage error")
	ErrValidation = errors.New("validation error")
)

const (
	idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 8
)

var idPattern = regexp.MustCompile(`^[a-z0-9]{8}$`)

// Archive is a saved rewind. The dataset is stored as generated and never
// modified afterwards.
type Archive struct {
	ID        string         `json:"id"`
	Label     string         `json:"label,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	Dataset   rewind.Dataset `json:"dataset"`
}

// NewID generates a new nanoid for an archive.
func NewID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}

// ValidateID checks whether an ID matches the expected pattern.
func ValidateID(id string) error {
	if !idPattern.MatchString(id) {
		return fmt.Errorf("invalid archive ID: %q (must be 8 lowercase alphanumeric characters)", id)
	}
	return nil
}

// Validate checks an archive before it is written.
func (a Archive) Validate() error {
	if err := ValidateID(a.ID); err != nil {
		return err
	}
	if a.Dataset.Year <= 0 {
		return fmt.Errorf("archive %s has no year", a.ID)
	}
	if a.CreatedAt.IsZero() {
		return fmt.Errorf("archive %s has no creation time", a.ID)
	}
	return nil
}

// ListOptions controls filtering for List operations.
type ListOptions struct {
	Year   int    // 0 = any year
	Source string // "" = any source
	Limit  int    // 0 = no limit
	Offset int    // pagination offset
}

// Matches reports whether an archive passes the Year and Source filters.
func (o ListOptions) Matches(a Archive) bool {
	if o.Year != 0 && a.Dataset.Year != o.Year {
		return false
	}
	if o.Source != "" && a.Dataset.Source != o.Source {
		return false
	}
	return true
}

// Storage persists rewind archives.
type Storage interface {
	Save(a Archive) error
	Get(id string) (Archive, error)
	// List returns archives newest first.
	List(opts ListOptions) ([]Archive, error)
	Delete(id string) error
	Close() error
}
