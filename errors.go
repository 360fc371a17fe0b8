package namerig

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeEmptyPartName     = "empty_part_name"
	CodeDuplicatePart     = "duplicate_part"
	CodeMissingRealName   = "missing_realname"
	CodeDuplicateRealName = "duplicate_realname"
	CodeDuplicateIndex    = "duplicate_index"
	CodeInvalidPartType   = "invalid_part_type"
	CodeLengthMismatch    = "length_mismatch"
	// Configuration loading
	CodeParseError        = "parse_error"
	CodeUnsupportedFormat = "unsupported_format"
	// Path generation
	CodeMissingRoot = "missing_root"
	CodeEmptyName   = "empty_name"
)

// Issue represents a single schema or configuration error entry.
type Issue struct {
	Path    string // Pointer into the schema/config (for example: /nameParts/2).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
}

// Issues is a collection of errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. duplicate_part at /nameParts/2
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
