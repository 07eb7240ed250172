// Package vcs wraps the git operations used to manage the vendor checkout.
package vcs

import (
	"context"

	"github.com/tskforge/cli/internal/run"
)

// Git executes git commands through a Runner. Operations return an error
// when git exits non-zero, with the command line and output attached.
type Git struct {
	Runner run.Runner
}

// NewGit creates a Git wrapper.
func NewGit(runner run.Runner) *Git {
	return &Git{Runner: runner}
}

// Stash saves local modifications in dir.
func (g *Git) Stash(ctx context.Context, dir string) error {
	return g.run(ctx, dir, "stash")
}

// SubmoduleInit initializes submodule configuration in dir.
func (g *Git) SubmoduleInit(ctx context.Context, dir string) error {
	return g.run(ctx, dir, "submodule", "init")
}

// SubmoduleUpdate checks out the recorded submodule revisions in dir.
func (g *Git) SubmoduleUpdate(ctx context.Context, dir string) error {
	return g.run(ctx, dir, "submodule", "update")
}

// ResetHard discards all tracked modifications in dir.
func (g *Git) ResetHard(ctx context.Context, dir string) error {
	return g.run(ctx, dir, "reset", "--hard")
}

// Clean removes untracked and ignored files in dir.
func (g *Git) Clean(ctx context.Context, dir string) error {
	return g.run(ctx, dir, "clean", "-x", "-f", "-d")
}

// Checkout switches dir to the given branch or ref.
func (g *Git) Checkout(ctx context.Context, dir string, ref string) error {
	return g.run(ctx, dir, "checkout", ref)
}

// Pull fast-forwards the current branch in dir.
func (g *Git) Pull(ctx context.Context, dir string) error {
	return g.run(ctx, dir, "pull")
}

// FetchTags fetches all tags in dir.
func (g *Git) FetchTags(ctx context.Context, dir string) error {
	return g.run(ctx, dir, "fetch", "--tags")
}

// CheckoutTag pins dir to a release tag.
func (g *Git) CheckoutTag(ctx context.Context, dir string, tag string) error {
	return g.run(ctx, dir, "checkout", "tags/"+tag)
}

func (g *Git) run(ctx context.Context, dir string, args ...string) error {
	_, err := run.RunChecked(ctx, g.Runner, dir, "git", args...)
	return err
}
