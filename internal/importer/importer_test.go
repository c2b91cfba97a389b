package importer

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/and161185/flashrecall/internal/model"
)

const deck = `# Go basics

Q: What keyword starts a goroutine?
A: go

Q: What does a nil map do on write?
A: It panics.
Assignments need make() first.
C: Reading from a nil map is fine.
D: Medium
---
Some prose between cards is ignored.
---
Q: Question without answer
---
Q: Multi-line
question
A: answer
`

func TestParse(t *testing.T) {
	t.Parallel()
	cards, err := Parse(strings.NewReader(deck))
	require.NoError(t, err)
	require.Len(t, cards, 3)

	require.Equal(t, "What keyword starts a goroutine?", cards[0].Front)
	require.Equal(t, "go", cards[0].Back)

	require.Equal(t, "What does a nil map do on write?", cards[1].Front)
	require.Equal(t, "It panics.\nAssignments need make() first.\n\nReading from a nil map is fine.", cards[1].Back)
	require.Equal(t, model.DifficultyMedium, cards[1].Difficulty)

	require.Equal(t, "Multi-line\nquestion", cards[2].Front)
	require.Equal(t, "answer", cards[2].Back)
}

func TestParse_CRLFAndEmpty(t *testing.T) {
	t.Parallel()
	cards, err := Parse(strings.NewReader("Q: a\r\nA: b\r\n"))
	require.NoError(t, err)
	require.Equal(t, []model.NewFlashcard{{Front: "a", Back: "b"}}, cards)

	cards, err = Parse(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, cards)
}

func TestContentHash(t *testing.T) {
	t.Parallel()
	h := ContentHash("What is Go?", "A language")
	require.Len(t, h, 64)
	require.Equal(t, h, ContentHash("  what is go?\r\n", "A LANGUAGE "))
	require.NotEqual(t, h, ContentHash("What is Go?", "A language!"))
	// Front/back boundary matters.
	require.NotEqual(t, ContentHash("ab", "c"), ContentHash("a", "bc"))
	require.NotEqual(t,
		ContentHash("capital of france\nand spain", "paris"),
		ContentHash("capital of france", "and spain\nparis"))
	require.NotEqual(t, ContentHash("a:b", "c"), ContentHash("a", "b:c"))
}

func TestLoader_LoadDir(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"), []byte("Q: one\nA: 1\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "b.MD"), []byte("Q: two\nA: 2\n---\nQ: three\nA: 3\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("Q: skip\nA: me\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".git", "x.md"), []byte("Q: hidden\nA: h\n"), 0o644))

	l := NewLoader(t.TempDir(), zaptest.NewLogger(t))
	cards, err := l.Load(context.Background(), dir)
	require.NoError(t, err)

	fronts := make([]string, 0, len(cards))
	for _, c := range cards {
		fronts = append(fronts, c.Front)
	}
	require.ElementsMatch(t, []string{"one", "two", "three"}, fronts)

	_, err = l.LoadDir(context.Background(), filepath.Join(dir, "missing"))
	require.Error(t, err)
}

func TestGitLocalPath(t *testing.T) {
	t.Parallel()
	base := "/cache"
	tests := []struct {
		in, want string
		wantErr  bool
	}{
		{in: "https://github.com/user/cards.git", want: "/cache/github.com/user/cards"},
		{in: "https://gitlab.com:8443/team/deck", want: "/cache/gitlab.com/team/deck"},
		{in: "git@github.com:user/cards.git", want: "/cache/github.com/user/cards"},
		{in: "ssh://git@host.example/repo.git", want: "/cache/host.example/repo"},
		{in: "git@github.com", wantErr: true},
		{in: "https://github.com/", wantErr: true},
		{in: "https://evil.example/../../etc", wantErr: true},
		{in: "git@example.com:../../../etc/evil.git", wantErr: true},
		{in: "git@example.com:user/../../../../etc/evil.git", wantErr: true},
		{in: "git@..:etc/evil.git", wantErr: true},
		{in: "git@:user/cards.git", wantErr: true},
	}
	for _, tt := range tests {
		got, err := GitLocalPath(base, tt.in)
		if tt.wantErr {
			require.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		require.Equal(t, filepath.FromSlash(tt.want), got)
	}
}

func TestLoader_LoadRejectsEscapingGitURL(t *testing.T) {
	t.Parallel()
	cache := t.TempDir()
	l := NewLoader(filepath.Join(cache, "repos"), nil)
	_, err := l.Load(context.Background(), "git@example.com:../../evil.git")
	require.Error(t, err)
	_, statErr := os.Stat(filepath.Join(cache, "evil"))
	require.True(t, os.IsNotExist(statErr))
}

func TestIsGitURL(t *testing.T) {
	t.Parallel()
	require.True(t, IsGitURL("https://github.com/a/b.git"))
	require.True(t, IsGitURL("git@github.com:a/b.git"))
	require.False(t, IsGitURL("./decks"))
	require.False(t, IsGitURL("/abs/path"))
}

func TestLoader_SyncRejectsNonRepository(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	l := NewLoader(dir, nil)
	err := l.Sync(context.Background(), "https://example.invalid/x.git", dir)
	require.Error(t, err)
}
