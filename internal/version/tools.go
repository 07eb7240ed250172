package version

import (
	"fmt"
	"os/exec"
	"strings"
)

// ToolInfo describes one external tool the CLI shells out to.
type ToolInfo struct {
	// Name is the command name looked up on PATH.
	Name string `json:"name"`

	// Path is the resolved binary path.
	Path string `json:"path,omitempty"`

	// Found indicates whether the tool is on PATH.
	Found bool `json:"found"`
}

// DetectTool looks up one external command on PATH.
func DetectTool(name string) ToolInfo {
	path, err := exec.LookPath(name)
	if err != nil {
		return ToolInfo{Name: name}
	}
	return ToolInfo{Name: name, Path: path, Found: true}
}

// DetectTools reports on every external tool a full update run needs:
// git, sh for the vendor configure script, and the configured binding
// generator command.
func DetectTools(generator []string) []ToolInfo {
	names := []string{"git", "sh"}
	if len(generator) > 0 && strings.TrimSpace(generator[0]) != "" {
		names = append(names, generator[0])
	}

	tools := make([]ToolInfo, 0, len(names))
	for _, name := range names {
		tools = append(tools, DetectTool(name))
	}
	return tools
}

// String returns a human-readable tool status line.
func (t ToolInfo) String() string {
	if !t.Found {
		return fmt.Sprintf("  %-8s not found in PATH", t.Name)
	}
	return fmt.Sprintf("  %-8s %s", t.Name, t.Path)
}

// FullString returns complete version information including the external
// tool report.
func FullString(info Info, tools []ToolInfo) string {
	var b strings.Builder
	b.WriteString(info.String())
	b.WriteString("\n\nExternal tools:")
	for _, tool := range tools {
		b.WriteString("\n")
		b.WriteString(tool.String())
	}
	return b.String()
}
