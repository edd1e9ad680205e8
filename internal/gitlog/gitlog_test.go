package gitlog

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chris-regnier/devrewind/internal/rewind"
)

func setupGitRepo(t *testing.T) (string, func(date, msg, file, content string)) {
	t.Helper()
	dir := t.TempDir()
	run := func(env []string, args ...string) {
		t.Helper()
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		cmd.Env = append(os.Environ(),
			"GIT_AUTHOR_NAME=test",
			"GIT_AUTHOR_EMAIL=test@test.com",
			"GIT_COMMITTER_NAME=test",
			"GIT_COMMITTER_EMAIL=test@test.com",
		)
		cmd.Env = append(cmd.Env, env...)
		out, err := cmd.CombinedOutput()
		if err != nil {
			t.Fatalf("git %s: %v\n%s", strings.Join(args, " "), err, out)
		}
	}
	run(nil, "init", "-b", "main")

	commit := func(date, msg, file, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, file), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		env := []string{"GIT_AUTHOR_DATE=" + date, "GIT_COMMITTER_DATE=" + date}
		run(env, "add", ".")
		run(env, "commit", "-m", msg)
	}
	return dir, commit
}

func TestReader_Commits(t *testing.T) {
	dir, commit := setupGitRepo(t)
	commit("2024-12-31T12:00:00+00:00", "feat: last year", "old.txt", "old\n")
	commit("2025-03-15T23:10:00+00:00", "hotfix: stop the bleeding", "a.txt", "one\ntwo\nthree\n")
	commit("2025-03-17T09:00:00+00:00", "fix(api): handle nil", "a.txt", "one\n")
	commit("2025-06-02T14:00:00+02:00", "Refactor loader", "b.txt", "x\ny\n")

	r := NewReader(dir, "")
	commits, err := r.Commits(context.Background(), 2025)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(commits) != 3 {
		t.Fatalf("expected 3 commits in 2025, got %d", len(commits))
	}

	first := commits[0]
	if first.Type != rewind.CommitHotfix {
		t.Errorf("expected hotfix, got %q", first.Type)
	}
	if first.Hour != 23 || first.Date.Hour() != 23 {
		t.Errorf("expected hour 23, got %d (%v)", first.Hour, first.Date)
	}
	if first.LinesAdded != 3 || first.LinesRemoved != 0 {
		t.Errorf("expected +3/-0, got +%d/-%d", first.LinesAdded, first.LinesRemoved)
	}
	if len(first.ID) != 8 {
		t.Errorf("expected 8-char short hash, got %q", first.ID)
	}

	second := commits[1]
	if second.Type != rewind.CommitFix {
		t.Errorf("expected fix, got %q", second.Type)
	}
	if second.LinesAdded != 0 || second.LinesRemoved != 2 {
		t.Errorf("expected +0/-2, got +%d/-%d", second.LinesAdded, second.LinesRemoved)
	}

	// Author wall clock is kept.
	third := commits[2]
	if third.Hour != 14 {
		t.Errorf("expected wall-clock hour 14, got %d", third.Hour)
	}
	if third.Type != rewind.CommitRefactor {
		t.Errorf("expected refactor, got %q", third.Type)
	}

	stats := rewind.ComputeStats(commits, 0)
	if stats.ProductionHotfixes != 1 || stats.LateNightCommits != 1 || stats.WeekendCommits != 1 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestReader_AuthorFilter(t *testing.T) {
	dir, commit := setupGitRepo(t)
	commit("2025-01-10T10:00:00+00:00", "feat: thing", "a.txt", "a\n")

	commits, err := NewReader(dir, "nobody-else").Commits(context.Background(), 2025)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(commits) != 0 {
		t.Errorf("expected no commits for other author, got %d", len(commits))
	}
}

func TestReader_GitLogFailure(t *testing.T) {
	dir, commit := setupGitRepo(t)
	commit("2025-01-10T10:00:00+00:00", "feat: thing", "a.txt", "a\n")

	commits, err := NewReader(dir, "[").Commits(context.Background(), 2025)
	if err == nil {
		t.Fatalf("expected error for invalid author pattern, got %d commits", len(commits))
	}
	if !strings.Contains(err.Error(), "running git log") {
		t.Errorf("expected git log context in error, got %v", err)
	}
	if !strings.Contains(err.Error(), "fatal") {
		t.Errorf("expected git stderr in error, got %v", err)
	}
}

func TestReader_CancelledContext(t *testing.T) {
	dir, commit := setupGitRepo(t)
	commit("2025-01-10T10:00:00+00:00", "feat: thing", "a.txt", "a\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewReader(dir, "").Commits(ctx, 2025); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestReader_EmptyRepo(t *testing.T) {
	dir, _ := setupGitRepo(t)

	commits, err := NewReader(dir, "").Commits(context.Background(), 2025)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if commits == nil || len(commits) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", commits)
	}
}

func TestReader_NotARepo(t *testing.T) {
	commits, err := NewReader(t.TempDir(), "").Commits(context.Background(), 2025)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if commits == nil || len(commits) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", commits)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		subject string
		want    rewind.CommitType
	}{
		{"HOTFIX: Reverted the revert", rewind.CommitHotfix},
		{"Emergency hotfix for login", rewind.CommitHotfix},
		{"feat: add dark mode", rewind.CommitFeature},
		{"feat(ui)!: new layout", rewind.CommitFeature},
		{"fix: off by one", rewind.CommitFix},
		{"chore(deps): bump x", rewind.CommitChore},
		{"docs: readme", rewind.CommitChore},
		{"refactor: split file", rewind.CommitRefactor},
		{"perf: cache lookups", rewind.CommitRefactor},
		{"Fixed the bug that fixed the other bug", rewind.CommitFix},
		{"Bump dependencies", rewind.CommitChore},
		{"Extract reusable components", rewind.CommitRefactor},
		{"Add real-time notifications", rewind.CommitFeature},
		{"", rewind.CommitFeature},
	}
	for _, tt := range tests {
		if got := Classify(tt.subject); got != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.subject, got, tt.want)
		}
	}
}

func TestParseLog_Malformed(t *testing.T) {
	if _, err := parseLog(recordSep + "onlyonefield"); err == nil {
		t.Error("expected error for malformed record")
	}
	if _, err := parseLog(recordSep + "abc" + fieldSep + "notadate" + fieldSep + "msg"); err == nil {
		t.Error("expected error for bad date")
	}
}

func TestSumNumstat(t *testing.T) {
	added, removed := sumNumstat([]string{"3\t1\ta.go", "-\t-\timg.png", "", "10\t0\tb.go"})
	if added != 13 || removed != 1 {
		t.Errorf("got +%d/-%d", added, removed)
	}
}
