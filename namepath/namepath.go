// Package namepath maps structured names onto filesystem paths. A parsed
// name's enumerated values become directory names through their
// plain-language labels, while the real name is kept verbatim. This reuses
// the engine's combine semantics with the platform path separator as the
// delimiter.
package namepath

import (
	"os"
	"path/filepath"

	namerig "github.com/namerig/namerig"
)

// Builder generates paths from names. Source is the schema the incoming
// names are written in. Layout selects and orders the parts that become
// path segments; when nil, Source doubles as the layout. CheckRoot makes
// GenPath fail when Root does not exist on disk.
type Builder struct {
	Root      string
	Source    *namerig.Schema
	Layout    *namerig.Schema
	CheckRoot bool
}

// GenPath builds the directory path for a name: Root, then one segment per
// layout part that resolves to a non-empty label.
func (b *Builder) GenPath(name string) (string, error) {
	if b.Root == "" {
		return "", namerig.Issues{{Path: "/root", Code: namerig.CodeMissingRoot, Message: "root path is not set"}}
	}
	if b.CheckRoot {
		if _, err := os.Stat(b.Root); err != nil {
			return "", err
		}
	}

	parsed := b.Source.Decompose(name)
	layout := b.Layout
	if layout == nil {
		layout = b.Source
	}

	var segments []string
	for _, lp := range layout.Parts() {
		sp := b.Source.Part(lp.Name())
		if sp == nil {
			continue
		}
		v := parsed[lp.Name()]
		if v == "" {
			continue
		}
		seg := v
		if !sp.IsRealName() {
			seg = sp.Description(v)
		}
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	if len(segments) == 0 {
		return "", namerig.Issues{{Path: "/name", Code: namerig.CodeEmptyName, Message: "name resolved to no path segments"}}
	}

	return filepath.Clean(filepath.Join(append([]string{b.Root}, segments...)...)), nil
}
