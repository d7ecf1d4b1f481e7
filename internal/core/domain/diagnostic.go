package domain

import (
	"fmt"
	"slices"
)

// Category is the severity of a diagnostic.
type Category uint8

const (
	// CategoryError marks a diagnostic that fails the transpilation.
	CategoryError Category = iota
	// CategoryWarning marks a diagnostic that callers may choose to ignore.
	CategoryWarning
	// CategorySuggestion marks an informational hint.
	CategorySuggestion
	// CategoryMessage marks a plain message.
	CategoryMessage
)

// String returns the lowercase name of the category.
func (c Category) String() string {
	switch c {
	case CategoryError:
		return "error"
	case CategoryWarning:
		return "warning"
	case CategorySuggestion:
		return "suggestion"
	default:
		return "message"
	}
}

// DiagnosticKind identifies the stage that produced a diagnostic.
type DiagnosticKind uint8

const (
	// KindConfig is produced while loading a project configuration.
	KindConfig DiagnosticKind = iota
	// KindSyntactic is produced by parsing a single file.
	KindSyntactic
	// KindSemantic is produced by type-checking.
	KindSemantic
	// KindEmit is produced when emit did not yield usable output.
	KindEmit
	// KindIO is produced when a source file could not be read.
	KindIO
	// KindTransform is produced when an output transformer failed.
	KindTransform
)

// String returns the lowercase name of the kind.
func (k DiagnosticKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindSyntactic:
		return "syntactic"
	case KindSemantic:
		return "semantic"
	case KindEmit:
		return "emit"
	case KindIO:
		return "io"
	default:
		return "transform"
	}
}

// Diagnostic codes produced by this system rather than the compiler front end.
const (
	CodeParseFailed        = 1005
	CodeOptionType         = 5024
	CodeCannotReadFile     = 5083
	CodeOptionValue        = 6046
	CodeEmitSkipped        = 5055
	CodeNoOutput           = 5056
	CodeNoInputs           = 18003
	CodeExtendsCycle       = 18000
	CodeFileNotFound       = 6053
	CodeTransformFailed    = 9001
	CodeWriteOutputSkipped = 6059
	CodeEmptyFilesList     = 18002
)

// DefaultIgnoredCodes are diagnostic codes that are filtered unless explicitly requested.
var DefaultIgnoredCodes = []int{CodeWriteOutputSkipped, CodeEmptyFilesList, CodeNoInputs}

// Diagnostic is a single message about a file or configuration.
type Diagnostic struct {
	// File is the absolute path the diagnostic refers to, or "" for global diagnostics.
	File string `json:"file,omitempty"`
	// Line is 1-based; 0 when the diagnostic has no position.
	Line int `json:"line,omitempty"`
	// Column is 1-based; 0 when the diagnostic has no position.
	Column   int            `json:"column,omitempty"`
	Code     int            `json:"code"`
	Category Category       `json:"category"`
	Kind     DiagnosticKind `json:"kind"`
	Message  string         `json:"message"`
	// LineText is the source line the diagnostic points at, when known.
	LineText string `json:"-"`
}

// String formats the diagnostic in the compiler's plain style.
func (d Diagnostic) String() string {
	prefix := ""
	if d.File != "" {
		prefix = d.File
		if d.Line > 0 {
			prefix += fmt.Sprintf("(%d,%d)", d.Line, d.Column)
		}
		prefix += ": "
	}
	return fmt.Sprintf("%s%s TS%d: %s", prefix, d.Category, d.Code, d.Message)
}

// IsError reports whether the diagnostic has error severity.
func (d Diagnostic) IsError() bool {
	return d.Category == CategoryError
}

// EmitSkipped is the synthetic diagnostic returned when the front end skipped emit.
func EmitSkipped(file string) Diagnostic {
	return Diagnostic{
		File:     file,
		Code:     CodeEmitSkipped,
		Category: CategoryError,
		Kind:     KindEmit,
		Message:  "Emit skipped for file",
	}
}

// NoOutput is the synthetic diagnostic returned when emit produced no main output file.
func NoOutput(file string) Diagnostic {
	return Diagnostic{
		File:     file,
		Code:     CodeNoOutput,
		Category: CategoryError,
		Kind:     KindEmit,
		Message:  "Unable to require file: no output produced",
	}
}

// ReadFailure is the synthetic diagnostic returned when a source file is unreadable.
func ReadFailure(file string, err error) Diagnostic {
	return Diagnostic{
		File:     file,
		Code:     CodeCannotReadFile,
		Category: CategoryError,
		Kind:     KindIO,
		Message:  fmt.Sprintf("Cannot read file '%s': %v.", file, err),
	}
}

// TransformFailure is the synthetic diagnostic returned when an output transformer failed.
func TransformFailure(file string, err error) Diagnostic {
	return Diagnostic{
		File:     file,
		Code:     CodeTransformFailed,
		Category: CategoryError,
		Kind:     KindTransform,
		Message:  fmt.Sprintf("Transformer failed: %v", err),
	}
}

// FilterDiagnostics drops diagnostics whose code is in ignore.
// The input slice is not modified.
func FilterDiagnostics(diags []Diagnostic, ignore []int) []Diagnostic {
	if len(diags) == 0 || len(ignore) == 0 {
		return diags
	}
	out := make([]Diagnostic, 0, len(diags))
	for _, d := range diags {
		if !slices.Contains(ignore, d.Code) {
			out = append(out, d)
		}
	}
	return out
}

// HasErrors reports whether any diagnostic has error severity.
func HasErrors(diags []Diagnostic) bool {
	return slices.ContainsFunc(diags, Diagnostic.IsError)
}
