package bindings

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tskerrors "github.com/tskforge/cli/internal/errors"
	"github.com/tskforge/cli/internal/run"
)

var testHeaders = []string{
	"sleuthkit/tsk/libtsk.h",
	"sleuthkit/tsk/base/tsk_base.h",
	"sleuthkit/tsk/fs/tsk_fs.h",
	"sleuthkit/tsk/img/tsk_img.h",
	"sleuthkit/tsk/vs/tsk_vs.h",
	"tsk3.h",
}

func testSpec() Spec {
	return Spec{
		Artifact:       "pytsk3.c",
		Generator:      []string{"python", "class_parser.py"},
		Initialization: "tsk_init();",
		Headers:        testHeaders,
	}
}

func TestEnsureGeneratesWhenArtifactMissing(t *testing.T) {
	root := t.TempDir()
	fake := &run.Fake{Responses: []run.Response{{Output: "wrote pytsk3.c\n"}}}

	ran, err := NewGenerator(root, fake).Ensure(context.Background(), testSpec())

	require.NoError(t, err)
	assert.True(t, ran)
	require.Len(t, fake.Calls, 1)

	call := fake.Calls[0]
	assert.Equal(t, root, call.Dir)
	assert.Equal(t, "python", call.Name)
	assert.Equal(t, append([]string{
		"class_parser.py", "-o", "pytsk3.c", "--init", "tsk_init();",
	}, testHeaders...), call.Args)
}

func TestEnsureSkipsWhenArtifactExists(t *testing.T) {
	root := t.TempDir()
	full := filepath.Join(root, "pytsk3.c")
	require.NoError(t, os.WriteFile(full, []byte("/* generated earlier */\n"), 0o644))
	stamp := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(full, stamp, stamp))

	fake := &run.Fake{}

	ran, err := NewGenerator(root, fake).Ensure(context.Background(), testSpec())

	require.NoError(t, err)
	assert.False(t, ran)
	assert.Empty(t, fake.Calls)

	data, err := os.ReadFile(full)
	require.NoError(t, err)
	assert.Equal(t, "/* generated earlier */\n", string(data))

	info, err := os.Stat(full)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(stamp))
}

func TestGenerateRunsEvenWhenArtifactExists(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "pytsk3.c"), []byte("stale\n"), 0o644))
	fake := &run.Fake{Responses: []run.Response{{}}}

	err := NewGenerator(root, fake).Generate(context.Background(), testSpec())

	require.NoError(t, err)
	assert.Len(t, fake.Calls, 1)
}

func TestGenerateFailureSurfacesOutput(t *testing.T) {
	fake := &run.Fake{Responses: []run.Response{{ExitCode: 2, Output: "parse error in tsk_fs.h"}}}

	err := NewGenerator(t.TempDir(), fake).Generate(context.Background(), testSpec())

	require.Error(t, err)
	assert.ErrorIs(t, err, tskerrors.ErrSubprocess)
	assert.Contains(t, err.Error(), "parse error in tsk_fs.h")
}

func TestGenerateWithoutGeneratorConfigured(t *testing.T) {
	spec := testSpec()
	spec.Generator = nil
	fake := &run.Fake{}

	err := NewGenerator(t.TempDir(), fake).Generate(context.Background(), spec)

	require.Error(t, err)
	assert.ErrorIs(t, err, tskerrors.ErrConfiguration)
	assert.Contains(t, err.Error(), "bindings.generator")
	assert.Empty(t, fake.Calls)
}
