package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tskforge/cli/internal/config"
	tskerrors "github.com/tskforge/cli/internal/errors"
)

// seedBuildProject lays out a project root the msvc build path can run
// against without any external tools: a stamped version, the binding
// artifact already generated, and a small vendor tree.
func seedBuildProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(root, "version.txt"), []byte("20260823"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "pytsk3.c"), []byte("/* generated */\n"), 0o644))

	for _, rel := range []string{
		"sleuthkit/tsk/fs/ntfs.c",
		"sleuthkit/tsk/img/raw.c",
		"sleuthkit/tsk/util/detect.c", // not a configured subdir
		"sleuthkit/tsk/fs/tsk_fs.h",   // headers are never sources
	} {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("// "+rel+"\n"), 0o644))
	}

	return root
}

// execBuild runs a fresh build command against root and returns its stdout.
func execBuild(t *testing.T, root string, args ...string) (*bytes.Buffer, error) {
	t.Helper()

	cmd := NewBuildCmd(&GlobalConfig{Config: config.DefaultConfig()})
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append(args, root))

	return buf, cmd.Execute()
}

func TestNewBuildCmd(t *testing.T) {
	cmd := NewBuildCmd(&GlobalConfig{})

	assert.Equal(t, "build [path]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	assert.NotNil(t, cmd.Flags().Lookup("compiler"))
	assert.NotNil(t, cmd.Flags().Lookup("show-diff"))
	assert.NotNil(t, cmd.Flags().Lookup("report"))
	assert.NotNil(t, cmd.Flags().Lookup("output"))
}

func TestBuildCmdWritesRequestJSON(t *testing.T) {
	root := seedBuildProject(t)

	buf, err := execBuild(t, root, "--compiler", "msvc", "-o", "json")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "tsk3", doc["name"])
	assert.Equal(t, "20260823", doc["version"])
	assert.Equal(t, "msvc", doc["compiler"])
	assert.Equal(t, false, doc["configured"])

	sources, ok := doc["sources"].([]any)
	require.True(t, ok)
	assert.Equal(t, []any{
		"class.c",
		"error.c",
		"pytsk3.c",
		"sleuthkit/tsk/fs/ntfs.c",
		"sleuthkit/tsk/img/raw.c",
		"talloc/talloc.c",
		"tsk3.c",
	}, sources)

	macros, ok := doc["macros"].([]any)
	require.True(t, ok)
	require.Len(t, macros, 3)
	first, ok := macros[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "HAVE_TSK_LIBTSK_H", first["name"])

	assert.FileExists(t, filepath.Join(root, "build", "extension.yaml"))
}

func TestBuildCmdDefaultOutputSummary(t *testing.T) {
	root := seedBuildProject(t)

	buf, err := execBuild(t, root, "--compiler", "msvc")
	require.NoError(t, err)

	got := buf.String()
	assert.Contains(t, got, "pytsk3.c")
	assert.Contains(t, got, "skipped") // artifact already present
	assert.Contains(t, got, "tsk3")
	assert.Contains(t, got, "msvc")
	assert.Contains(t, got, "build request written to build/extension.yaml")
}

func TestBuildCmdShowDiffFirstRun(t *testing.T) {
	root := seedBuildProject(t)

	buf, err := execBuild(t, root, "--compiler", "msvc", "--show-diff")
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "No previous request to compare.")
}

func TestBuildCmdShowDiffNoChanges(t *testing.T) {
	root := seedBuildProject(t)

	_, err := execBuild(t, root, "--compiler", "msvc")
	require.NoError(t, err)

	buf, err := execBuild(t, root, "--compiler", "msvc", "--show-diff")
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "No changes since the last request.")
}

func TestBuildCmdShowDiffReportsChangedSources(t *testing.T) {
	root := seedBuildProject(t)

	_, err := execBuild(t, root, "--compiler", "msvc")
	require.NoError(t, err)

	added := filepath.Join(root, "sleuthkit", "tsk", "fs", "yaffs.c")
	require.NoError(t, os.WriteFile(added, []byte("// yaffs\n"), 0o644))

	buf, err := execBuild(t, root, "--compiler", "msvc", "--show-diff")
	require.NoError(t, err)

	got := buf.String()
	assert.Contains(t, got, "Changes since the last request:")
	assert.Contains(t, got, "yaffs.c")
}

func TestBuildCmdReportHuman(t *testing.T) {
	root := seedBuildProject(t)

	buf, err := execBuild(t, root, "--compiler", "msvc", "--report")
	require.NoError(t, err)

	got := buf.String()
	assert.Contains(t, got, "Extension:")
	assert.Contains(t, got, "Name:    tsk3")
	assert.Contains(t, got, "Version: 20260823")
	assert.Contains(t, got, "Compiler:   msvc")
	assert.Contains(t, got, "Configured: no")
	assert.Contains(t, got, "WIN32=1")
	assert.Contains(t, got, "UNICODE=1")
	assert.Contains(t, got, "seed")
	assert.Contains(t, got, "generated")
	assert.Contains(t, got, "vendor")
	assert.Contains(t, got, "Digest: sha256:3772242ba51e366d16c073721f59bede141842a3cd5a67ab1b6d5f99016db5f1")
	assert.Contains(t, got, "Request file: build/extension.yaml")
}

func TestBuildCmdReportJSON(t *testing.T) {
	root := seedBuildProject(t)

	buf, err := execBuild(t, root, "--compiler", "msvc", "--report", "-o", "json")
	require.NoError(t, err)

	var report struct {
		Extension struct {
			Name    string `json:"name"`
			Version string `json:"version"`
		} `json:"extension"`
		Toolchain struct {
			Compiler   string `json:"compiler"`
			Configured bool   `json:"configured"`
			Macros     []struct {
				Name  string `json:"name"`
				Value string `json:"value"`
			} `json:"macros"`
		} `json:"toolchain"`
		Bindings struct {
			Artifact  string `json:"artifact"`
			Generated bool   `json:"generated"`
		} `json:"bindings"`
		Sources []struct {
			Path   string `json:"path"`
			Origin string `json:"origin"`
		} `json:"sources"`
		SourcesDigest string `json:"sourcesDigest"`
		RequestFile   string `json:"requestFile"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))

	assert.Equal(t, "tsk3", report.Extension.Name)
	assert.Equal(t, "msvc", report.Toolchain.Compiler)
	assert.False(t, report.Toolchain.Configured)
	require.Len(t, report.Toolchain.Macros, 3)
	assert.Equal(t, "pytsk3.c", report.Bindings.Artifact)
	assert.False(t, report.Bindings.Generated)
	assert.Equal(t, "sha256:3772242ba51e366d16c073721f59bede141842a3cd5a67ab1b6d5f99016db5f1", report.SourcesDigest)
	assert.Equal(t, "build/extension.yaml", report.RequestFile)

	origins := make(map[string]string)
	for _, src := range report.Sources {
		origins[src.Path] = src.Origin
	}
	assert.Equal(t, "seed", origins["class.c"])
	assert.Equal(t, "generated", origins["pytsk3.c"])
	assert.Equal(t, "vendor", origins["sleuthkit/tsk/fs/ntfs.c"])
}

func TestBuildCmdInvalidCompiler(t *testing.T) {
	root := seedBuildProject(t)

	_, err := execBuild(t, root, "--compiler", "clang")
	require.Error(t, err)
	assert.ErrorIs(t, err, tskerrors.ErrConfiguration)
}

func TestBuildCmdInvalidOutputFormat(t *testing.T) {
	root := seedBuildProject(t)

	_, err := execBuild(t, root, "--compiler", "msvc", "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestBuildCmdMissingVersionStamp(t *testing.T) {
	root := seedBuildProject(t)
	require.NoError(t, os.Remove(filepath.Join(root, "version.txt")))

	_, err := execBuild(t, root, "--compiler", "msvc")
	require.Error(t, err)
	assert.ErrorIs(t, err, tskerrors.ErrConfiguration)
	assert.Contains(t, err.Error(), "tskforge update")
}
