package patch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tskerrors "github.com/tskforge/cli/internal/errors"
)

func TestLineSwapMovesLineEarlier(t *testing.T) {
	swap := LineSwap{Remove: 4, Insert: 2}

	out, err := swap.Apply("fixture.c", "a\nb\nc\nd\ne\nf")

	require.NoError(t, err)
	assert.Equal(t, "a\nb\ne\nc\nd\nf", out)
}

func TestLineSwapKeepsLineCount(t *testing.T) {
	swap := LineSwap{Remove: 3, Insert: 1}

	out, err := swap.Apply("fixture.c", "a\nb\nc\nd\ne")

	require.NoError(t, err)
	assert.Len(t, strings.Split(out, "\n"), 5)
}

func TestLineSwapShortFileFails(t *testing.T) {
	swap := LineSwap{Remove: 381, Insert: 372}

	_, err := swap.Apply("tsk/img/raw.c", "only\nthree\nlines")

	require.Error(t, err)
	assert.ErrorIs(t, err, tskerrors.ErrPatchShape)
	assert.Contains(t, err.Error(), "line 381 out of range")
	assert.Contains(t, err.Error(), "file has 3 lines")
}

func TestLineSwapIndexEqualToLengthFails(t *testing.T) {
	swap := LineSwap{Remove: 2, Insert: 3}

	_, err := swap.Apply("fixture.c", "a\nb\nc")

	assert.ErrorIs(t, err, tskerrors.ErrPatchShape)
}
