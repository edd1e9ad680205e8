// Package gitlog reads a year of commits from a local git repository and
// maps them onto rewind commit records.
package gitlog

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/chris-regnier/devrewind/internal/rewind"
)

const (
	recordSep = "\x1e"
	fieldSep  = "\x1f"
)

// Reader reads commits from the repository at Dir, optionally restricted
// to one author (name or email pattern, as accepted by git log --author).
type Reader struct {
	Dir    string // working directory; empty = current dir
	Author string
}

// NewReader creates a git commit reader.
func NewReader(dir, author string) *Reader {
	return &Reader{Dir: dir, Author: author}
}

// Commits returns the commits authored during year, oldest first. A
// directory that is not a git repository, or a repository without commits,
// yields an empty slice. Any other git failure is returned.
//
// Timestamps keep the author's wall clock and are stored as UTC, so the
// hour and weekday reflect when the author was actually typing.
func (r *Reader) Commits(ctx context.Context, year int) ([]rewind.Commit, error) {
	if year <= 0 {
		year = rewind.DefaultYear
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := runGitCmd(ctx, r.Dir, "rev-parse", "--git-dir"); err != nil {
		return []rewind.Commit{}, nil
	}
	// an unborn HEAD has no history to read
	if _, err := runGitCmd(ctx, r.Dir, "rev-parse", "--verify", "--quiet", "HEAD"); err != nil {
		return []rewind.Commit{}, nil
	}

	args := []string{
		"log",
		"--no-merges",
		"--numstat",
		fmt.Sprintf("--since=%d-01-01T00:00:00", year),
		fmt.Sprintf("--until=%d-01-01T00:00:00", year+1),
		"--pretty=format:" + recordSep + "%H" + fieldSep + "%aI" + fieldSep + "%s",
	}
	if r.Author != "" {
		args = append(args, "--author="+r.Author)
	}

	out, err := runGitCmd(ctx, r.Dir, args...)
	if err != nil {
		return nil, fmt.Errorf("running git log: %w", err)
	}
	commits, err := parseLog(out)
	if err != nil {
		return nil, err
	}

	kept := commits[:0]
	for _, c := range commits {
		if c.Date.Year() == year {
			kept = append(kept, c)
		}
	}
	rewind.SortCommits(kept)
	return kept, nil
}

// parseLog turns the custom git log format into commits.
func parseLog(out string) ([]rewind.Commit, error) {
	commits := []rewind.Commit{}
	for _, rec := range strings.Split(out, recordSep) {
		rec = strings.TrimSpace(rec)
		if rec == "" {
			continue
		}
		lines := strings.Split(rec, "\n")
		fields := strings.SplitN(lines[0], fieldSep, 3)
		if len(fields) != 3 {
			return nil, fmt.Errorf("malformed git log record: %q", lines[0])
		}

		authored, err := time.Parse(time.RFC3339, fields[1])
		if err != nil {
			return nil, fmt.Errorf("parsing author date %q: %w", fields[1], err)
		}
		wall := time.Date(authored.Year(), authored.Month(), authored.Day(),
			authored.Hour(), authored.Minute(), authored.Second(), 0, time.UTC)

		added, removed := sumNumstat(lines[1:])
		hash := fields[0]
		if len(hash) > 8 {
			hash = hash[:8]
		}

		commits = append(commits, rewind.Commit{
			ID:           hash,
			Date:         wall,
			Message:      fields[2],
			Type:         Classify(fields[2]),
			LinesAdded:   added,
			LinesRemoved: removed,
			Hour:         wall.Hour(),
		})
	}
	return commits, nil
}

// sumNumstat totals "added<TAB>removed<TAB>path" lines. Binary files
// report "-" and count as zero.
func sumNumstat(lines []string) (added, removed int) {
	for _, l := range lines {
		parts := strings.SplitN(strings.TrimSpace(l), "\t", 3)
		if len(parts) < 2 {
			continue
		}
		if n, err := strconv.Atoi(parts[0]); err == nil {
			added += n
		}
		if n, err := strconv.Atoi(parts[1]); err == nil {
			removed += n
		}
	}
	return added, removed
}

var conventionalPrefixes = map[string]rewind.CommitType{
	"feat":     rewind.CommitFeature,
	"feature":  rewind.CommitFeature,
	"fix":      rewind.CommitFix,
	"bugfix":   rewind.CommitFix,
	"hotfix":   rewind.CommitHotfix,
	"refactor": rewind.CommitRefactor,
	"perf":     rewind.CommitRefactor,
	"chore":    rewind.CommitChore,
	"build":    rewind.CommitChore,
	"ci":       rewind.CommitChore,
	"docs":     rewind.CommitChore,
	"test":     rewind.CommitChore,
	"style":    rewind.CommitChore,
}

var keywordTypes = []struct {
	prefix string
	typ    rewind.CommitType
}{
	{"fix", rewind.CommitFix},
	{"bug", rewind.CommitFix},
	{"resolve", rewind.CommitFix},
	{"refactor", rewind.CommitRefactor},
	{"extract", rewind.CommitRefactor},
	{"simplify", rewind.CommitRefactor},
	{"optimize", rewind.CommitRefactor},
	{"improve", rewind.CommitRefactor},
	{"update", rewind.CommitChore},
	{"bump", rewind.CommitChore},
	{"upgrade", rewind.CommitChore},
	{"clean", rewind.CommitChore},
	{"remove", rewind.CommitChore},
	{"merge", rewind.CommitChore},
}

// Classify guesses a commit type from its subject line. Anything marked as
// a hotfix wins; then conventional-commit prefixes ("feat(ui): ..."); then
// a leading keyword. Everything else is a feature.
func Classify(subject string) rewind.CommitType {
	s := strings.ToLower(strings.TrimSpace(subject))
	if strings.Contains(s, "hotfix") {
		return rewind.CommitHotfix
	}

	if i := strings.IndexAny(s, ":("); i > 0 {
		prefix := strings.TrimSuffix(s[:i], "!")
		if t, ok := conventionalPrefixes[prefix]; ok {
			return t
		}
	}

	for _, kw := range keywordTypes {
		if strings.HasPrefix(s, kw.prefix) {
			return kw.typ
		}
	}
	return rewind.CommitFeature
}

// runGitCmd runs git in dir. A failing command's stderr is folded into
// the returned error.
func runGitCmd(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	if dir != "" {
		cmd.Dir = dir
	}
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return "", fmt.Errorf("%w: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
