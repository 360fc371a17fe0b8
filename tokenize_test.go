package namerig_test

import (
	"reflect"
	"testing"

	namerig "github.com/namerig/namerig"
)

func TestDelimiter(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"L Arm 01", " "},
		{"L_Arm_01", "_"},
		{"LArm01", ""},
		// Space wins over underscore when both occur.
		{"L Arm_01", " "},
		{"", ""},
	}
	for _, tc := range cases {
		if got := namerig.Delimiter(tc.in); got != tc.want {
			t.Fatalf("Delimiter(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTokens(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"underscore", "L_UpperArm_Twist_01", []string{"L", "UpperArm", "Twist", "01"}},
		{"space", "L Arm 01", []string{"L", "Arm", "01"}},
		{"double delimiter drops empties", "L__Arm__01", []string{"L", "Arm", "01"}},
		{"camel case", "LArm", []string{"L", "Arm"}},
		{"camel case trailing digits", "LArm01", []string{"L", "Arm", "01"}},
		{"lowercase head", "lArm01", []string{"l", "Arm", "01"}},
		{"bare digits", "01", []string{"01"}},
		{"single word", "arm", []string{"arm"}},
		{"empty", "", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := namerig.Tokens(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Tokens(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
