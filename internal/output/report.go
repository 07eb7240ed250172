package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// ReportOptions controls build report output.
type ReportOptions struct {
	// JSON outputs structured JSON instead of human-readable text
	JSON bool
	// Writer is the output destination
	Writer io.Writer
}

// buildReport is the structured report output.
type buildReport struct {
	Extension     reportExtension `json:"extension"`
	Toolchain     reportToolchain `json:"toolchain"`
	Bindings      reportBindings  `json:"bindings"`
	Sources       []reportSource  `json:"sources"`
	SourcesDigest string          `json:"sourcesDigest,omitempty"`
	RequestFile   string          `json:"requestFile"`
	Warnings      []string        `json:"warnings,omitempty"`
}

// reportExtension contains extension metadata for report output.
type reportExtension struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// reportToolchain contains toolchain probe results for report output.
type reportToolchain struct {
	Compiler   string        `json:"compiler"`
	Configured bool          `json:"configured"`
	Macros     []reportMacro `json:"macros"`
}

// reportMacro describes a preprocessor macro definition.
type reportMacro struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

// reportBindings describes the binding artifact decision.
type reportBindings struct {
	Artifact  string `json:"artifact"`
	Generated bool   `json:"generated"`
}

// reportSource describes a discovered source file.
type reportSource struct {
	Path   string `json:"path"`
	Origin string `json:"origin"`
}

// BuildReportInfo provides access to build assembly data without importing
// the build package.
type BuildReportInfo struct {
	ExtensionName    string
	ExtensionVersion string
	Compiler         string
	Configured       bool
	Macros           []MacroInfo
	BindingArtifact  string
	BindingGenerated bool
	Sources          []SourceInfo
	SourcesDigest    string
	RequestFile      string
	Warnings         []string
}

// MacroInfo provides macro definition data.
type MacroInfo struct {
	Name  string
	Value string
}

// SourceInfo provides source file data with its discovery origin.
type SourceInfo struct {
	Path   string
	Origin string
}

// WriteBuildReport writes a verbose build report from a BuildReportInfo.
func WriteBuildReport(info *BuildReportInfo, opts ReportOptions) error {
	report := buildReportFromInfo(info)

	if opts.JSON {
		return writeReportJSON(report, opts.Writer)
	}
	return writeReportHuman(report, opts.Writer)
}

// buildReportFromInfo constructs the report from info.
func buildReportFromInfo(info *BuildReportInfo) *buildReport {
	report := &buildReport{
		Extension: reportExtension{
			Name:    info.ExtensionName,
			Version: info.ExtensionVersion,
		},
		Toolchain: reportToolchain{
			Compiler:   info.Compiler,
			Configured: info.Configured,
			Macros:     make([]reportMacro, 0, len(info.Macros)),
		},
		Bindings: reportBindings{
			Artifact:  info.BindingArtifact,
			Generated: info.BindingGenerated,
		},
		Sources:       make([]reportSource, 0, len(info.Sources)),
		SourcesDigest: info.SourcesDigest,
		RequestFile:   info.RequestFile,
		Warnings:      info.Warnings,
	}

	for _, m := range info.Macros {
		report.Toolchain.Macros = append(report.Toolchain.Macros, reportMacro{
			Name:  m.Name,
			Value: m.Value,
		})
	}

	for _, s := range info.Sources {
		report.Sources = append(report.Sources, reportSource{
			Path:   s.Path,
			Origin: s.Origin,
		})
	}

	return report
}

// writeReportJSON writes the report as JSON.
func writeReportJSON(report *buildReport, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

// sourceAlignColumn is the column where source origins start in human output.
const sourceAlignColumn = 44

// writeReportHuman writes the report in human-readable format.
func writeReportHuman(report *buildReport, w io.Writer) error {
	var sb strings.Builder

	// Extension info
	sb.WriteString("Extension:\n")
	sb.WriteString(fmt.Sprintf("  Name:    %s\n", report.Extension.Name))
	sb.WriteString(fmt.Sprintf("  Version: %s\n", report.Extension.Version))
	sb.WriteString("\n")

	// Toolchain probe results
	sb.WriteString("Toolchain:\n")
	sb.WriteString(fmt.Sprintf("  Compiler:   %s\n", report.Toolchain.Compiler))
	configured := "no"
	if report.Toolchain.Configured {
		configured = "yes"
	}
	sb.WriteString(fmt.Sprintf("  Configured: %s\n", configured))
	if len(report.Toolchain.Macros) > 0 {
		sb.WriteString("  Macros:\n")
		for _, m := range report.Toolchain.Macros {
			if m.Value != "" {
				sb.WriteString(fmt.Sprintf("    %s=%s\n", m.Name, m.Value))
			} else {
				sb.WriteString(fmt.Sprintf("    %s\n", m.Name))
			}
		}
	}
	sb.WriteString("\n")

	// Binding artifact decision
	sb.WriteString("Bindings:\n")
	status := StatusSkipped
	if report.Bindings.Generated {
		status = StatusGenerated
	}
	sb.WriteString("  " + FormatFileLine(report.Bindings.Artifact, status) + "\n")
	sb.WriteString("\n")

	// Discovered sources
	if len(report.Sources) > 0 {
		sb.WriteString("Sources:\n")
		entries := make([]FileEntry, 0, len(report.Sources))
		for _, s := range report.Sources {
			entries = append(entries, FileEntry{Path: "  " + s.Path, Description: s.Origin})
		}
		sb.WriteString(RenderFileTree(entries, sourceAlignColumn))
		if report.SourcesDigest != "" {
			sb.WriteString(fmt.Sprintf("  Digest: %s\n", report.SourcesDigest))
		}
		sb.WriteString("\n")
	}

	// Warnings
	if len(report.Warnings) > 0 {
		sb.WriteString("Warnings:\n")
		for _, warning := range report.Warnings {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", warning))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Request file: %s\n", report.RequestFile))

	_, err := w.Write([]byte(sb.String()))
	return err
}
