package namepath_test

import (
	"path/filepath"
	"testing"

	namerig "github.com/namerig/namerig"
	"github.com/namerig/namerig/namepath"
)

func sideArmSchema(t *testing.T) *namerig.Schema {
	t.Helper()
	s, err := namerig.NewSchema(
		namerig.NewPart("Side", namerig.Prefix,
			[]string{"L", "R"}, []string{"Left", "Right"}, nil, true),
		namerig.NewPart("RealName", namerig.RealName, nil, nil, nil, false),
		namerig.NewPart("Index", namerig.Index, nil, nil, nil, false),
	)
	if err != nil {
		t.Fatalf("NewSchema: %v", err)
	}
	return s
}

func TestGenPath(t *testing.T) {
	b := &namepath.Builder{Root: "root", Source: sideArmSchema(t)}
	got, err := b.GenPath("L_Arm_01")
	if err != nil {
		t.Fatalf("GenPath: %v", err)
	}
	// Enumerated values map to their labels, the real name stays verbatim,
	// and the index yields no segment.
	want := filepath.Join("root", "Left", "Arm")
	if got != want {
		t.Fatalf("GenPath = %q, want %q", got, want)
	}
}

func TestGenPath_NoDirectionValue(t *testing.T) {
	b := &namepath.Builder{Root: "root", Source: sideArmSchema(t)}
	got, err := b.GenPath("Spine_01")
	if err != nil {
		t.Fatalf("GenPath: %v", err)
	}
	if want := filepath.Join("root", "Spine"); got != want {
		t.Fatalf("GenPath = %q, want %q", got, want)
	}
}

func TestGenPath_LayoutSubset(t *testing.T) {
	src := sideArmSchema(t)
	// The layout keeps only the real name, so side and index vanish.
	layout, err := namerig.NewSchema(
		namerig.NewPart("RealName", namerig.RealName, nil, nil, nil, false),
	)
	if err != nil {
		t.Fatalf("NewSchema: %v", err)
	}
	b := &namepath.Builder{Root: "root", Source: src, Layout: layout}
	got, err := b.GenPath("L_Arm_01")
	if err != nil {
		t.Fatalf("GenPath: %v", err)
	}
	if want := filepath.Join("root", "Arm"); got != want {
		t.Fatalf("GenPath = %q, want %q", got, want)
	}
}

func TestGenPath_MissingRoot(t *testing.T) {
	b := &namepath.Builder{Source: sideArmSchema(t)}
	_, err := b.GenPath("L_Arm_01")
	iss, ok := namerig.AsIssues(err)
	if !ok || iss[0].Code != namerig.CodeMissingRoot {
		t.Fatalf("error = %v, want missing_root issue", err)
	}
}

func TestGenPath_EmptyName(t *testing.T) {
	b := &namepath.Builder{Root: "root", Source: sideArmSchema(t)}
	_, err := b.GenPath("")
	iss, ok := namerig.AsIssues(err)
	if !ok || iss[0].Code != namerig.CodeEmptyName {
		t.Fatalf("error = %v, want empty_name issue", err)
	}
}

func TestGenPath_CheckRoot(t *testing.T) {
	dir := t.TempDir()
	b := &namepath.Builder{Root: dir, Source: sideArmSchema(t), CheckRoot: true}
	got, err := b.GenPath("R_Leg_02")
	if err != nil {
		t.Fatalf("GenPath: %v", err)
	}
	if want := filepath.Join(dir, "Right", "Leg"); got != want {
		t.Fatalf("GenPath = %q, want %q", got, want)
	}

	b.Root = filepath.Join(dir, "missing")
	if _, err := b.GenPath("R_Leg_02"); err == nil {
		t.Fatal("GenPath with nonexistent root succeeded")
	}
}
