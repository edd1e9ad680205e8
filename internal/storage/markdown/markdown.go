package markdown

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/chris-regnier/devrewind/internal/rewind"
	"github.com/chris-regnier/devrewind/internal/storage"
)

const (
	datasetFence = "```json\n"
	closingFence = "\n```"
)

// Store implements storage.Storage using Markdown files with YAML
// front-matter. The dataset rides along as a fenced JSON block after a
// human-readable summary.
type Store struct {
	baseDir string // e.g. ~/.devrewind/archives/
}

// New creates a new Markdown file storage backend.
func New(dataDir string) (*Store, error) {
	baseDir := filepath.Join(dataDir, "archives")
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: creating archives directory: %v", storage.ErrStorage, err)
	}
	return &Store{baseDir: baseDir}, nil
}

// Close is a no-op for the Markdown backend.
func (s *Store) Close() error {
	return nil
}

func (s *Store) archivePath(a storage.Archive) string {
	return filepath.Join(s.baseDir, strconv.Itoa(a.Dataset.Year), a.ID+".md")
}

func (s *Store) marshal(a storage.Archive) ([]byte, error) {
	data, err := json.MarshalIndent(a.Dataset, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: encoding dataset: %v", storage.ErrStorage, err)
	}

	st := a.Dataset.Stats
	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "id: %s\n", a.ID)
	if a.Label != "" {
		fmt.Fprintf(&b, "label: %q\n", a.Label)
	}
	fmt.Fprintf(&b, "created_at: %s\n", a.CreatedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "year: %d\n", a.Dataset.Year)
	fmt.Fprintf(&b, "seed: %d\n", a.Dataset.Seed)
	fmt.Fprintf(&b, "source: %s\n", a.Dataset.Source)
	fmt.Fprintf(&b, "total_commits: %d\n", st.TotalCommits)
	fmt.Fprintf(&b, "favorite_commit_type: %s\n", st.FavoriteCommitType)
	b.WriteString("---\n\n")

	fmt.Fprintf(&b, "# %d Developer Rewind\n\n", a.Dataset.Year)
	fmt.Fprintf(&b, "- Commits: %d\n", st.TotalCommits)
	fmt.Fprintf(&b, "- Lines of code: %d\n", st.LinesOfCode)
	fmt.Fprintf(&b, "- Late night commits: %d\n", st.LateNightCommits)
	fmt.Fprintf(&b, "- Weekend commits: %d\n", st.WeekendCommits)
	fmt.Fprintf(&b, "- Bugs squashed: %d\n", st.TotalBugsFixed)
	fmt.Fprintf(&b, "- Cups of coffee: %d\n", st.CoffeeConsumed)
	fmt.Fprintf(&b, "- Emergency hotfixes: %d\n\n", st.ProductionHotfixes)

	b.WriteString(datasetFence)
	b.Write(data)
	b.WriteString(closingFence + "\n")
	return []byte(b.String()), nil
}

type frontMatter struct {
	ID        string `yaml:"id"`
	Label     string `yaml:"label"`
	CreatedAt string `yaml:"created_at"`
	Year      int    `yaml:"year"`
}

func (s *Store) unmarshal(data []byte) (storage.Archive, error) {
	var fm frontMatter
	body, err := frontmatter.Parse(bytes.NewReader(data), &fm)
	if err != nil {
		return storage.Archive{}, fmt.Errorf("%w: parsing front-matter: %v", storage.ErrStorage, err)
	}

	createdAt, err := time.Parse(time.RFC3339, fm.CreatedAt)
	if err != nil {
		return storage.Archive{}, fmt.Errorf("%w: parsing created_at: %v", storage.ErrStorage, err)
	}

	raw, err := extractDataset(string(body))
	if err != nil {
		return storage.Archive{}, err
	}
	var ds rewind.Dataset
	if err := json.Unmarshal([]byte(raw), &ds); err != nil {
		return storage.Archive{}, fmt.Errorf("%w: decoding dataset: %v", storage.ErrStorage, err)
	}

	return storage.Archive{
		ID:        fm.ID,
		Label:     fm.Label,
		CreatedAt: createdAt,
		Dataset:   ds,
	}, nil
}

// extractDataset returns the contents of the last fenced JSON block.
func extractDataset(body string) (string, error) {
	start := strings.LastIndex(body, datasetFence)
	if start < 0 {
		return "", fmt.Errorf("%w: dataset block missing", storage.ErrStorage)
	}
	rest := body[start+len(datasetFence):]
	end := strings.LastIndex(rest, closingFence)
	if end < 0 {
		return "", fmt.Errorf("%w: dataset block not terminated", storage.ErrStorage)
	}
	return rest[:end], nil
}

// atomicWrite writes data to a temp file then renames it to the target path.
func (s *Store) atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: creating directory: %v", storage.ErrStorage, err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: creating temp file: %v", storage.ErrStorage, err)
	}
	tmpName := tmp.Name()

	// Lock the temp file during write
	if err := syscall.Flock(int(tmp.Fd()), syscall.LOCK_EX); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: acquiring lock: %v", storage.ErrStorage, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: writing temp file: %v", storage.ErrStorage, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: closing temp file: %v", storage.ErrStorage, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: renaming file: %v", storage.ErrStorage, err)
	}

	return nil
}

// Save persists a new archive as a Markdown file.
func (s *Store) Save(a storage.Archive) error {
	if err := a.Validate(); err != nil {
		return fmt.Errorf("%w: %v", storage.ErrValidation, err)
	}

	if _, err := s.findArchivePath(a.ID); err == nil {
		return fmt.Errorf("%w: %s", storage.ErrConflict, a.ID)
	}

	data, err := s.marshal(a)
	if err != nil {
		return err
	}
	return s.atomicWrite(s.archivePath(a), data)
}

// Get retrieves an archive by ID by scanning the directory tree.
func (s *Store) Get(id string) (storage.Archive, error) {
	path, err := s.findArchivePath(id)
	if err != nil {
		return storage.Archive{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return storage.Archive{}, fmt.Errorf("%w: reading file: %v", storage.ErrStorage, err)
	}

	return s.unmarshal(data)
}

// findArchivePath locates the file for a given archive ID.
func (s *Store) findArchivePath(id string) (string, error) {
	var found string
	err := filepath.WalkDir(s.baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip errors
		}
		if d.IsDir() {
			return nil
		}
		if d.Name() == id+".md" {
			found = path
			return filepath.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: scanning archives: %v", storage.ErrStorage, err)
	}
	if found == "" {
		return "", storage.ErrNotFound
	}
	return found, nil
}

// List returns archives matching the given options, newest first.
func (s *Store) List(opts storage.ListOptions) ([]storage.Archive, error) {
	archives := []storage.Archive{}

	err := filepath.WalkDir(s.baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil // skip unreadable files
		}

		a, err := s.unmarshal(data)
		if err != nil {
			return nil // skip malformed files
		}

		if opts.Matches(a) {
			archives = append(archives, a)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: listing archives: %v", storage.ErrStorage, err)
	}

	sort.Slice(archives, func(i, j int) bool {
		return archives[i].CreatedAt.After(archives[j].CreatedAt)
	})

	// Apply offset
	if opts.Offset > 0 && opts.Offset < len(archives) {
		archives = archives[opts.Offset:]
	} else if opts.Offset >= len(archives) && opts.Offset > 0 {
		return []storage.Archive{}, nil
	}

	// Apply limit
	if opts.Limit > 0 && opts.Limit < len(archives) {
		archives = archives[:opts.Limit]
	}

	return archives, nil
}

// Delete removes an archive permanently.
func (s *Store) Delete(id string) error {
	path, err := s.findArchivePath(id)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("%w: removing file: %v", storage.ErrStorage, err)
	}
	return nil
}
