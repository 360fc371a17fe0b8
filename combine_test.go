package namerig_test

import (
	"reflect"
	"testing"
)

func TestCombine(t *testing.T) {
	s := sideArmSchema(t)
	cases := []struct {
		name  string
		parts map[string]string
		delim string
		want  string
	}{
		{
			name:  "all parts with index padding",
			parts: map[string]string{"Side": "L", "RealName": "Arm", "Index": "1"},
			delim: "_",
			want:  "L_Arm_01",
		},
		{
			name:  "empty parts dropped from join",
			parts: map[string]string{"RealName": "Arm", "Index": "7"},
			delim: "_",
			want:  "Arm_07",
		},
		{
			name:  "space delimiter",
			parts: map[string]string{"Side": "R", "RealName": "Leg"},
			delim: " ",
			want:  "R Leg",
		},
		{
			name:  "unknown keys ignored",
			parts: map[string]string{"RealName": "Arm", "Bogus": "x"},
			delim: "_",
			want:  "Arm",
		},
		{
			name:  "single part no delimiter emitted",
			parts: map[string]string{"RealName": "Arm"},
			delim: "_",
			want:  "Arm",
		},
		{
			name:  "empty mapping",
			parts: map[string]string{},
			delim: "_",
			want:  "",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.Combine(tc.parts, tc.delim); got != tc.want {
				t.Fatalf("Combine = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	s := riggingSchema(t)
	names := []string{
		"b_P_L_F_Arm_01_Nub",
		"b_L_Arm_01",
		"L_UpperArm_Twist_01",
		"Arm_01",
		"Arm",
		"R_B_Spine_12",
	}
	for _, n := range names {
		d := s.Decompose(n)
		if got := s.Combine(d, "_"); got != n {
			t.Fatalf("round trip of %q = %q (parts %v)", n, got, d)
		}
	}
}

func TestRoundTrip_CamelCase(t *testing.T) {
	s := sideArmSchema(t)
	d := s.Decompose("LArm01")
	want := map[string]string{"Side": "L", "RealName": "Arm", "Index": "01"}
	if !reflect.DeepEqual(d, want) {
		t.Fatalf("Decompose(LArm01) = %v, want %v", d, want)
	}
	if got := s.Combine(d, ""); got != "LArm01" {
		t.Fatalf("Combine with empty delimiter = %q, want LArm01", got)
	}
}

func TestDescribe(t *testing.T) {
	s := sideArmSchema(t)
	if got := s.Describe("L_Arm_01"); got != "Left_Arm_01" {
		t.Fatalf("Describe = %q, want Left_Arm_01", got)
	}
	// Values without a label pass through.
	if got := s.Describe("Arm_01"); got != "Arm_01" {
		t.Fatalf("Describe of unlabeled name = %q, want Arm_01", got)
	}
}

func TestDescribeKorean(t *testing.T) {
	s := sideArmSchema(t)
	if got := s.DescribeKorean("L_Arm_01"); got != "왼쪽_Arm_01" {
		t.Fatalf("DescribeKorean = %q", got)
	}

	// Korean label missing: falls back to the plain label, then the value.
	noKorean := mustSchema(t,
		part(t, "Side", "PREFIX", "L", "R"),
		realNamePart(t),
	)
	noKorean.Part("Side").SetDescription("L", "Left")
	if got := noKorean.DescribeKorean("L_Arm"); got != "Left_Arm" {
		t.Fatalf("DescribeKorean fallback = %q, want Left_Arm", got)
	}
}

func TestReplacePart(t *testing.T) {
	s := sideArmSchema(t)
	if got := s.ReplacePart("Side", "L_Arm_01", "R"); got != "R_Arm_01" {
		t.Fatalf("ReplacePart(Side) = %q, want R_Arm_01", got)
	}
	if got := s.ReplacePart("RealName", "L_Arm_01", "Leg"); got != "L_Leg_01" {
		t.Fatalf("ReplacePart(RealName) = %q, want L_Leg_01", got)
	}
	// Replacing the index re-normalizes padding.
	if got := s.ReplacePart("Index", "L_Arm_01", "7"); got != "L_Arm_07" {
		t.Fatalf("ReplacePart(Index) = %q, want L_Arm_07", got)
	}
	if got := s.ReplacePart("Nope", "L_Arm_01", "x"); got != "L_Arm_01" {
		t.Fatalf("ReplacePart of unknown part = %q, want input", got)
	}
}

func TestRemovePart(t *testing.T) {
	s := sideArmSchema(t)
	if got := s.RemovePart("Side", "L_Arm_01"); got != "Arm_01" {
		t.Fatalf("RemovePart(Side) = %q, want Arm_01", got)
	}
	if got := s.RemovePart("Index", "L_Arm_01"); got != "L_Arm" {
		t.Fatalf("RemovePart(Index) = %q, want L_Arm", got)
	}
}

func TestAddAffixToPart(t *testing.T) {
	s := sideArmSchema(t)
	if got := s.AddPrefixToPart("RealName", "L_Arm_01", "Upper"); got != "L_UpperArm_01" {
		t.Fatalf("AddPrefixToPart = %q, want L_UpperArm_01", got)
	}
	if got := s.AddSuffixToPart("RealName", "L_Arm_01", "Twist"); got != "L_ArmTwist_01" {
		t.Fatalf("AddSuffixToPart = %q, want L_ArmTwist_01", got)
	}
	if got := s.AddSuffixToRealName("L_Arm_01", "Mirrored"); got != "L_ArmMirrored_01" {
		t.Fatalf("AddSuffixToRealName = %q", got)
	}
	if got := s.AddPrefixToPart("RealName", "L_Arm_01", ""); got != "L_Arm_01" {
		t.Fatalf("empty affix changed the name: %q", got)
	}
}

func TestReplaceDelimiter(t *testing.T) {
	s := sideArmSchema(t)
	if got := s.ReplaceDelimiter("L_Arm_01", " "); got != "L Arm 01" {
		t.Fatalf("ReplaceDelimiter = %q, want %q", got, "L Arm 01")
	}
	if got := s.ReplaceDelimiter("L Arm 01", "_"); got != "L_Arm_01" {
		t.Fatalf("ReplaceDelimiter = %q, want L_Arm_01", got)
	}
}
