package namerig

import "strings"

// Delimiter returns the separator detected in s, scanning in priority order:
// a space, then an underscore, then none. A name is expected to use at most
// one delimiter style; mixed styles yield undefined tokenization.
func Delimiter(s string) string {
	if strings.Contains(s, " ") {
		return " "
	}
	if strings.Contains(s, "_") {
		return "_"
	}
	return ""
}

// Tokens splits s into its raw name tokens. With a detected delimiter the
// string is split on it and empty segments dropped. Without one, the string
// is split at upper-case boundaries and any segment with trailing digits is
// further split into its letter run and digit run.
func Tokens(s string) []string {
	if s == "" {
		return nil
	}
	delim := Delimiter(s)
	if delim != "" {
		var out []string
		for _, seg := range strings.Split(s, delim) {
			if seg != "" {
				out = append(out, seg)
			}
		}
		return out
	}

	var out []string
	for _, seg := range splitUpperCase(s) {
		letters, digits := splitTrailingDigits(seg)
		if letters != "" {
			out = append(out, letters)
		}
		if digits != "" {
			out = append(out, digits)
		}
	}
	return out
}

// splitUpperCase starts a new segment at every upper-case ASCII letter.
func splitUpperCase(s string) []string {
	var out []string
	start := 0
	for i := 1; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			out = append(out, s[start:i])
			start = i
		}
	}
	return append(out, s[start:])
}

// splitTrailingDigits cuts s into a head and its trailing digit run.
func splitTrailingDigits(s string) (string, string) {
	i := len(s)
	for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
		i--
	}
	return s[:i], s[i:]
}

// joinTokens joins the non-empty entries of tokens with delim. Empty entries
// never produce a doubled delimiter.
func joinTokens(tokens []string, delim string) string {
	var kept []string
	for _, t := range tokens {
		if t != "" {
			kept = append(kept, t)
		}
	}
	return strings.Join(kept, delim)
}
