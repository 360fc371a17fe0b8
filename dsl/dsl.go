// Package dsl provides a fluent builder for naming schemas.
//
// Typical usage:
//
//	s, err := dsl.Schema().
//		Prefix("Side").Values("L", "R").Describe("Left", "Right").Direction().
//		RealName("RealName").
//		Index("Index").
//		Padding(2).
//		Build()
package dsl

import (
	namerig "github.com/namerig/namerig"
)

// SchemaBuilder accumulates parts in declaration order. Build funnels the
// result through namerig.NewSchema, so every construction rule (unique part
// names, exactly one RealName, at most one Index) still applies.
type SchemaBuilder struct {
	parts   []*namerig.Part
	padding int
	pending *PartStep
}

// Schema creates a new empty schema builder.
func Schema() *SchemaBuilder {
	return &SchemaBuilder{padding: namerig.DefaultPadding}
}

// PartStep configures the enumerated part currently being declared. Any
// SchemaBuilder method flushes the step and moves on.
type PartStep struct {
	b      *SchemaBuilder
	name   string
	typ    namerig.PartType
	values []string
	descs  []string
	korean []string
	dir    bool
}

func (b *SchemaBuilder) flush() {
	if b.pending == nil {
		return
	}
	p := b.pending
	b.pending = nil
	b.parts = append(b.parts, namerig.NewPart(p.name, p.typ, p.values, p.descs, p.korean, p.dir))
}

func (b *SchemaBuilder) startPart(name string, typ namerig.PartType) *PartStep {
	b.flush()
	b.pending = &PartStep{b: b, name: name, typ: typ}
	return b.pending
}

// Prefix declares an enumerated part expected ahead of the real name.
func (b *SchemaBuilder) Prefix(name string) *PartStep { return b.startPart(name, namerig.Prefix) }

// Suffix declares an enumerated part expected after the real name.
func (b *SchemaBuilder) Suffix(name string) *PartStep { return b.startPart(name, namerig.Suffix) }

// RealName declares the free-text part. A schema needs exactly one.
func (b *SchemaBuilder) RealName(name string) *SchemaBuilder {
	b.flush()
	b.parts = append(b.parts, namerig.NewPart(name, namerig.RealName, nil, nil, nil, false))
	return b
}

// Index declares the numeric part. A schema holds at most one.
func (b *SchemaBuilder) Index(name string) *SchemaBuilder {
	b.flush()
	b.parts = append(b.parts, namerig.NewPart(name, namerig.Index, nil, nil, nil, false))
	return b
}

// Padding sets the default index digit width.
func (b *SchemaBuilder) Padding(n int) *SchemaBuilder {
	b.flush()
	b.padding = n
	return b
}

// Build assembles and validates the schema.
func (b *SchemaBuilder) Build() (*namerig.Schema, error) {
	b.flush()
	s, err := namerig.NewSchema(b.parts...)
	if err != nil {
		return nil, err
	}
	s.SetPaddingWidth(b.padding)
	return s, nil
}

// Values sets the part's predefined values in declaration order; the order
// determines the derived weights.
func (p *PartStep) Values(vs ...string) *PartStep {
	p.values = append(p.values, vs...)
	return p
}

// Describe attaches plain-language labels parallel to the declared values.
func (p *PartStep) Describe(ds ...string) *PartStep {
	p.descs = append(p.descs, ds...)
	return p
}

// Korean attaches Korean labels parallel to the declared values.
func (p *PartStep) Korean(ds ...string) *PartStep {
	p.korean = append(p.korean, ds...)
	return p
}

// Direction flags the part as eligible for mirroring.
func (p *PartStep) Direction() *PartStep {
	p.dir = true
	return p
}

// The following delegate to the parent builder so declarations chain
// without an explicit terminator.

func (p *PartStep) Prefix(name string) *PartStep        { return p.b.Prefix(name) }
func (p *PartStep) Suffix(name string) *PartStep        { return p.b.Suffix(name) }
func (p *PartStep) RealName(name string) *SchemaBuilder { return p.b.RealName(name) }
func (p *PartStep) Index(name string) *SchemaBuilder    { return p.b.Index(name) }
func (p *PartStep) Padding(n int) *SchemaBuilder        { return p.b.Padding(n) }
func (p *PartStep) Build() (*namerig.Schema, error)     { return p.b.Build() }
