package driver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// FetchResult reports what InstallSources/UpdateSources did with one
// source: newly cloned, already present and left alone, or pulled to a new
// ref.
type FetchResult struct {
	Name    string
	Action  string // "cloned", "up to date", "updated"
	Path    string
	Commit  string
}

// InstallSources clones every declared source into cacheDir that isn't
// already present, mirroring the teacher's `able deps install`: existing
// checkouts are left untouched.
func InstallSources(cfg *Config, cacheDir string) ([]FetchResult, error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("driver: create cache dir %s: %w", cacheDir, err)
	}
	var results []FetchResult
	for _, name := range cfg.SourceOrder {
		src := cfg.Sources[name]
		dest := filepath.Join(cacheDir, name)
		if _, err := os.Stat(dest); err == nil {
			commit, cerr := headCommit(dest)
			if cerr != nil {
				return nil, cerr
			}
			results = append(results, FetchResult{Name: name, Action: "up to date", Path: dest, Commit: commit})
			continue
		}
		commit, err := cloneSource(src, dest)
		if err != nil {
			return nil, fmt.Errorf("driver: clone source %q: %w", name, err)
		}
		results = append(results, FetchResult{Name: name, Action: "cloned", Path: dest, Commit: commit})
	}
	return results, nil
}

// UpdateSources re-fetches and checks out each named source (all declared
// sources if names is empty), mirroring `able deps update`.
func UpdateSources(cfg *Config, cacheDir string, names []string) ([]FetchResult, error) {
	targets := names
	if len(targets) == 0 {
		targets = cfg.SourceOrder
	}
	var results []FetchResult
	for _, name := range targets {
		src, ok := cfg.FindSource(name)
		if !ok {
			return nil, fmt.Errorf("driver: source %q not declared in ziria-eval.yml", name)
		}
		dest := filepath.Join(cacheDir, name)
		if _, err := os.Stat(dest); os.IsNotExist(err) {
			commit, cerr := cloneSource(src, dest)
			if cerr != nil {
				return nil, fmt.Errorf("driver: clone source %q: %w", name, cerr)
			}
			results = append(results, FetchResult{Name: name, Action: "cloned", Path: dest, Commit: commit})
			continue
		}
		commit, err := updateSource(src, dest)
		if err != nil {
			return nil, fmt.Errorf("driver: update source %q: %w", name, err)
		}
		results = append(results, FetchResult{Name: name, Action: "updated", Path: dest, Commit: commit})
	}
	return results, nil
}

func cloneSource(src *SourceSpec, dest string) (string, error) {
	opts := &git.CloneOptions{URL: src.Git}
	if ref := refName(src); ref != "" {
		opts.ReferenceName = ref
		opts.SingleBranch = true
	}
	repo, err := git.PlainClone(dest, false, opts)
	if err != nil {
		return "", err
	}
	if src.Rev != "" {
		wt, err := repo.Worktree()
		if err != nil {
			return "", err
		}
		if err := wt.Checkout(&git.CheckoutOptions{Hash: plumbing.NewHash(src.Rev)}); err != nil {
			return "", err
		}
	}
	return headCommitOf(repo)
}

func updateSource(src *SourceSpec, dest string) (string, error) {
	repo, err := git.PlainOpen(dest)
	if err != nil {
		return "", err
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", err
	}
	pullOpts := &git.PullOptions{RemoteName: "origin"}
	if ref := refName(src); ref != "" {
		pullOpts.ReferenceName = ref
		pullOpts.SingleBranch = true
	}
	if err := wt.Pull(pullOpts); err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return "", err
	}
	if src.Rev != "" {
		if err := wt.Checkout(&git.CheckoutOptions{Hash: plumbing.NewHash(src.Rev)}); err != nil {
			return "", err
		}
	}
	return headCommitOf(repo)
}

func refName(src *SourceSpec) plumbing.ReferenceName {
	switch {
	case src.Branch != "":
		return plumbing.NewBranchReferenceName(src.Branch)
	case src.Tag != "":
		return plumbing.NewTagReferenceName(src.Tag)
	default:
		return ""
	}
}

func headCommit(dest string) (string, error) {
	repo, err := git.PlainOpen(dest)
	if err != nil {
		return "", err
	}
	return headCommitOf(repo)
}

func headCommitOf(repo *git.Repository) (string, error) {
	head, err := repo.Head()
	if err != nil {
		return "", err
	}
	return head.Hash().String(), nil
}
