package output

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStatusStyle(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		wantBold bool
		wantFG   lipgloss.Color
		wantDim  bool
	}{
		{
			name:   "patched returns green",
			status: StatusPatched,
			wantFG: ColorGreen,
		},
		{
			name:   "generated returns green",
			status: StatusGenerated,
			wantFG: ColorGreen,
		},
		{
			name:   "updated returns yellow",
			status: StatusUpdated,
			wantFG: ColorYellow,
		},
		{
			name:    "unchanged returns faint",
			status:  StatusUnchanged,
			wantDim: true,
		},
		{
			name:    "skipped returns faint",
			status:  StatusSkipped,
			wantDim: true,
		},
		{
			name:   "valid returns green",
			status: StatusValid,
			wantFG: ColorGreen,
		},
		{
			name:     "failed returns bold red",
			status:   StatusFailed,
			wantBold: true,
			wantFG:   ColorBoldRed,
		},
		{
			name:   "unknown returns default unstyled",
			status: "unknown-value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := StatusStyle(tt.status)
			if tt.wantBold {
				assert.True(t, style.GetBold(), "expected bold")
			}
			if tt.wantFG != "" {
				assert.Equal(t, tt.wantFG, style.GetForeground(), "foreground color mismatch")
			}
			if tt.wantDim {
				assert.True(t, style.GetFaint(), "expected faint")
			}
		})
	}
}

func TestFormatFileLine(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		status string
	}{
		{
			name:   "patched source file",
			path:   "sleuthkit/tsk/fs/fs_open.c",
			status: StatusPatched,
		},
		{
			name:   "untouched file",
			path:   "sleuthkit/Makefile.am",
			status: StatusUnchanged,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatFileLine(tt.path, tt.status)

			// The rendered string contains ANSI codes. Strip them for content checks.
			assert.Contains(t, result, tt.path, "should contain file path")
			assert.Contains(t, result, tt.status, "should contain status text")
			assert.True(t, strings.HasPrefix(stripAnsi(result), "f:"), "should start with f: prefix")
		})
	}

	t.Run("alignment consistency", func(t *testing.T) {
		// Two lines with different path lengths should have status starting
		// at the same position (both paths shorter than min column width).
		line1 := FormatFileLine("sleuthkit/tsk/fs/fs_name.c", StatusPatched)
		line2 := FormatFileLine("class_parser.py", StatusPatched)

		stripped1 := stripAnsi(line1)
		stripped2 := stripAnsi(line2)

		idx1 := strings.Index(stripped1, StatusPatched)
		idx2 := strings.Index(stripped2, StatusPatched)

		assert.Equal(t, idx1, idx2, "status words should align to same column")
	})
}

func TestFormatCheckmark(t *testing.T) {
	result := FormatCheckmark("Build request written")
	assert.Contains(t, result, "✔", "should contain checkmark")
	assert.Contains(t, result, "Build request written", "should contain message")
}

func TestStatusValidSameColorAsPatched(t *testing.T) {
	validStyle := StatusStyle(StatusValid)
	patchedStyle := StatusStyle(StatusPatched)
	assert.Equal(t, patchedStyle.GetForeground(), validStyle.GetForeground(),
		"valid and patched should have the same color")
}

func TestFormatVetCheck(t *testing.T) {
	tests := []struct {
		name       string
		label      string
		detail     string
		wantLabel  string
		wantDetail string
	}{
		{
			name:       "with detail",
			label:      "Config file found",
			detail:     "~/.tskforge/config.yaml",
			wantLabel:  "Config file found",
			wantDetail: "~/.tskforge/config.yaml",
		},
		{
			name:      "without detail",
			label:     "Vendor tree readable",
			detail:    "",
			wantLabel: "Vendor tree readable",
		},
		{
			name:       "short label with detail",
			label:      "File exists",
			detail:     "/path/to/file",
			wantLabel:  "File exists",
			wantDetail: "/path/to/file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatVetCheck(tt.label, tt.detail)

			// The rendered string contains ANSI codes. Strip them for content checks.
			assert.Contains(t, result, "✔", "should contain checkmark")
			assert.Contains(t, result, tt.wantLabel, "should contain label")

			if tt.detail != "" {
				assert.Contains(t, result, tt.wantDetail, "should contain detail")
			} else {
				// No detail means no trailing whitespace beyond the label
				stripped := stripAnsi(result)
				assert.False(t, strings.HasSuffix(stripped, " "), "should not have trailing whitespace when detail is empty")
			}
		})
	}

	t.Run("alignment consistency", func(t *testing.T) {
		// Multiple check lines with different label lengths should have
		// detail text starting at the same column position.
		line1 := FormatVetCheck("Config file found", "~/.tskforge/config.yaml")
		line2 := FormatVetCheck("Configure script present", "sleuthkit/configure")

		stripped1 := stripAnsi(line1)
		stripped2 := stripAnsi(line2)

		idx1 := strings.Index(stripped1, "~/.tskforge/config.yaml")
		idx2 := strings.Index(stripped2, "sleuthkit/configure")

		assert.Equal(t, idx1, idx2, "detail text should align to same column")
	})
}

func TestFormatStageLine(t *testing.T) {
	t.Run("with detail", func(t *testing.T) {
		result := FormatStageLine("checkout-tag", "sleuthkit-4.4.2")
		stripped := stripAnsi(result)

		assert.Contains(t, stripped, "▸", "should contain bullet")
		assert.Contains(t, stripped, "checkout-tag", "should contain stage name")
		assert.Contains(t, stripped, "sleuthkit-4.4.2", "should contain detail")
	})

	t.Run("empty detail", func(t *testing.T) {
		result := FormatStageLine("patch", "")
		stripped := stripAnsi(result)

		assert.Contains(t, stripped, "▸", "should contain bullet")
		assert.Contains(t, stripped, "patch", "should contain stage name")
		assert.False(t, strings.HasSuffix(stripped, " "), "should not have trailing whitespace when detail is empty")
	})
}

// stripAnsi removes ANSI escape sequences for content assertions.
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for i := 0; i < len(s); i++ {
		if s[i] == '\033' {
			inEscape = true
			continue
		}
		if inEscape {
			if s[i] == 'm' {
				inEscape = false
			}
			continue
		}
		result.WriteByte(s[i])
	}
	return result.String()
}
