package patch

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	tskerrors "github.com/tskforge/cli/internal/errors"
	"github.com/tskforge/cli/internal/output"
)

// Engine applies rule sets to files under a project root. Every write goes
// through a temp file and rename, so an interrupted run never leaves a
// half-written source behind.
type Engine struct {
	root string
	log  *log.Logger
}

// NewEngine returns an engine rooted at the project directory.
func NewEngine(root string) *Engine {
	return &Engine{
		root: root,
		log:  output.StageLogger("patch"),
	}
}

// FileResult reports what one rule set did to its file.
type FileResult struct {
	// Path is the target file, slash-separated relative to the root.
	Path string

	// Matches is the total number of replacements across all rules.
	Matches int

	// Changed reports whether the written text differs from what was read.
	Changed bool
}

// Status returns the display status for the result.
func (r FileResult) Status() string {
	if r.Changed {
		return output.StatusPatched
	}
	return output.StatusUnchanged
}

// Apply runs one rule set against its target file. The target must exist.
// A rule that matches nothing is not an error; stale patterns surface only
// through the match counts, so results are worth reporting.
func (e *Engine) Apply(set FileRuleSet) (FileResult, error) {
	full := filepath.Join(e.root, filepath.FromSlash(set.Path))

	data, err := os.ReadFile(full)
	if err != nil {
		if os.IsNotExist(err) {
			return FileResult{}, tskerrors.NewNotFoundError(
				fmt.Sprintf("patch target %s does not exist", set.Path),
				full,
				"Fetch the vendor sources with 'tskforge update' before patching.",
			)
		}
		return FileResult{}, fmt.Errorf("reading %s: %w", set.Path, err)
	}

	orig := string(data)
	text := orig
	result := FileResult{Path: set.Path}

	for i, rule := range set.Rules {
		var n int
		text, n = rule.Apply(text)
		result.Matches += n
		e.log.Debug("applied rule", "file", set.Path, "rule", i+1, "matches", n)
	}

	if set.Swap != nil {
		text, err = set.Swap.Apply(set.Path, text)
		if err != nil {
			return FileResult{}, err
		}
		e.log.Debug("swapped lines", "file", set.Path, "remove", set.Swap.Remove, "insert", set.Swap.Insert)
	}

	result.Changed = text != orig

	if err := writeFileAtomic(full, []byte(text)); err != nil {
		return FileResult{}, fmt.Errorf("writing %s: %w", set.Path, err)
	}

	return result, nil
}

// ApplyAll runs every rule set in order, stopping at the first failure.
// Results for the files finished before the failure are returned with the
// error.
func (e *Engine) ApplyAll(sets []FileRuleSet) ([]FileResult, error) {
	results := make([]FileResult, 0, len(sets))
	for _, set := range sets {
		res, err := e.Apply(set)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// writeFileAtomic replaces path's contents via a temp file and rename in
// the same directory, keeping the original file mode.
func writeFileAtomic(path string, data []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	_, err = tmp.Write(data)
	if err == nil {
		err = tmp.Chmod(mode)
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmpName, path)
	}
	if err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
