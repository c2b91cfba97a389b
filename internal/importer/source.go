package importer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"go.uber.org/zap"

	"github.com/and161185/flashrecall/internal/model"
)

// Loader reads cards from local directories and git repositories.
type Loader struct {
	// CacheDir holds git checkouts, one per repository URL.
	CacheDir string
	Log      *zap.Logger
}

// NewLoader constructs a Loader. A nil logger disables logging.
func NewLoader(cacheDir string, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{CacheDir: cacheDir, Log: log}
}

// Load reads cards from source: a git URL is synced into the cache first,
// anything else is treated as a local file or directory.
func (l *Loader) Load(ctx context.Context, source string) ([]model.NewFlashcard, error) {
	if IsGitURL(source) {
		local, err := GitLocalPath(l.CacheDir, source)
		if err != nil {
			return nil, err
		}
		if err := l.Sync(ctx, source, local); err != nil {
			return nil, err
		}
		source = local
	}
	return l.LoadDir(ctx, source)
}

// LoadDir walks path for *.md files and parses each one. A single file is accepted too.
func (l *Loader) LoadDir(ctx context.Context, path string) ([]model.NewFlashcard, error) {
	var out []model.NewFlashcard
	err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(d.Name()), ".md") {
			return nil
		}
		cards, err := ParseFile(p)
		if err != nil {
			return err
		}
		l.Log.Debug("parsed card file", zap.String("path", p), zap.Int("cards", len(cards)))
		out = append(out, cards...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	l.Log.Info("cards loaded", zap.String("path", path), zap.Int("cards", len(out)))
	return out, nil
}

// Sync clones url into localPath, or pulls when a checkout already exists.
func (l *Loader) Sync(ctx context.Context, repoURL, localPath string) error {
	_, err := os.Stat(localPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		l.Log.Info("cloning repository", zap.String("url", repoURL), zap.String("path", localPath))
		if _, err := git.PlainCloneContext(ctx, localPath, false, &git.CloneOptions{URL: repoURL, Depth: 1}); err != nil {
			return fmt.Errorf("clone %s: %w", repoURL, err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("stat %s: %w", localPath, err)
	}

	repo, err := git.PlainOpen(localPath)
	if err != nil {
		return fmt.Errorf("open checkout %s: %w", localPath, err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("worktree %s: %w", localPath, err)
	}
	l.Log.Info("pulling repository", zap.String("path", localPath))
	err = wt.PullContext(ctx, &git.PullOptions{RemoteName: "origin"})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return fmt.Errorf("pull %s: %w", localPath, err)
	}
	return nil
}

// IsGitURL reports whether source looks like a remote repository address.
func IsGitURL(source string) bool {
	switch {
	case strings.HasPrefix(source, "https://"), strings.HasPrefix(source, "http://"),
		strings.HasPrefix(source, "ssh://"), strings.HasPrefix(source, "git://"):
		return true
	case strings.HasPrefix(source, "git@"):
		return true
	}
	return false
}

// GitLocalPath maps a repository URL to baseDir/host/path, without the .git
// suffix. The result always stays inside baseDir.
func GitLocalPath(baseDir, repoURL string) (string, error) {
	var host, path string
	if rest, ok := strings.CutPrefix(repoURL, "git@"); ok {
		var found bool
		host, path, found = strings.Cut(rest, ":")
		if !found {
			return "", fmt.Errorf("could not parse git URL: %s", repoURL)
		}
	} else {
		u, err := url.Parse(repoURL)
		if err != nil {
			return "", fmt.Errorf("could not parse git URL: %s", repoURL)
		}
		host, path = u.Hostname(), u.Path
	}
	path = strings.TrimSuffix(strings.Trim(path, "/"), ".git")
	if host == "" || path == "" || strings.Contains(host, "..") || strings.ContainsAny(host, `/\`) ||
		strings.Contains(path, "..") {
		return "", fmt.Errorf("could not parse git URL: %s", repoURL)
	}

	base := filepath.Clean(baseDir)
	local := filepath.Join(base, host, path)
	if !strings.HasPrefix(local, base+string(filepath.Separator)) {
		return "", fmt.Errorf("git URL escapes cache dir: %s", repoURL)
	}
	return local, nil
}
