package namerig

// PartType classifies a slot in a naming schema.
type PartType int

const (
	// Undefined is a placeholder type with no constraints.
	Undefined PartType = iota
	// Prefix parts sit ahead of the real name and must match a predefined value.
	Prefix
	// Suffix parts sit after the real name and must match a predefined value.
	Suffix
	// RealName is the unconstrained free-text slot. Exactly one per schema.
	RealName
	// Index accepts digit strings only and participates in padding/renumbering.
	Index
)

// String returns the canonical keyword for the part type, as used by
// configuration files.
func (t PartType) String() string {
	switch t {
	case Prefix:
		return "PREFIX"
	case Suffix:
		return "SUFFIX"
	case RealName:
		return "REALNAME"
	case Index:
		return "INDEX"
	default:
		return "UNDEFINED"
	}
}

// ParsePartType maps a configuration keyword onto a PartType. Unknown
// keywords report ok=false and Undefined.
func ParsePartType(s string) (PartType, bool) {
	switch s {
	case "PREFIX":
		return Prefix, true
	case "SUFFIX":
		return Suffix, true
	case "REALNAME":
		return RealName, true
	case "INDEX":
		return Index, true
	case "UNDEFINED", "":
		return Undefined, true
	default:
		return Undefined, false
	}
}

// enumerated reports whether the type carries a predefined value set.
func (t PartType) enumerated() bool {
	return t == Prefix || t == Suffix || t == Undefined
}
