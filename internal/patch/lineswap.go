package patch

import (
	"fmt"
	"strings"

	tskerrors "github.com/tskforge/cli/internal/errors"
)

// LineSwap moves one line of a file to an earlier position. Indices are
// zero-based and refer to the text after all rules for the file have run.
type LineSwap struct {
	// Remove is the index of the line taken out.
	Remove int

	// Insert is the index the removed line is reinserted at.
	Insert int
}

// Apply performs the swap on text. The file must have more lines than the
// larger of the two indices; a shorter file means the vendor release no
// longer matches the table and the swap fails rather than guessing.
func (s LineSwap) Apply(path, text string) (string, error) {
	lines := strings.Split(text, "\n")

	max := s.Remove
	if s.Insert > max {
		max = s.Insert
	}
	if max >= len(lines) {
		return "", tskerrors.NewPatchShapeError(
			fmt.Sprintf("line %d out of range (file has %d lines)", max, len(lines)),
			path,
		)
	}

	moved := lines[s.Remove]
	lines = append(lines[:s.Remove], lines[s.Remove+1:]...)
	lines = append(lines[:s.Insert], append([]string{moved}, lines[s.Insert:]...)...)

	return strings.Join(lines, "\n"), nil
}
