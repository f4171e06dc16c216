package vis

// StructureNode is one labeled node in a structure tree. A node with a set
// value and no children is a leaf field; a node with children and no value is
// a group. Depth is unbounded.
type StructureNode struct {
	Label    string
	Value    ScalarValue
	Children []StructureNode
}

// StructureEntry is a wholesale-rebuildable snapshot of one named structure.
// HasContent is true only when the last rebuild produced at least one child;
// entries without content stay allocated but are invisible to readers.
type StructureEntry struct {
	Root       StructureNode
	HasContent bool
}

// StructureBuilder appends nodes to a single child list during a rebuild.
// It is write-only and only valid for the duration of the builder callback
// that received it. The zero value is inert.
type StructureBuilder struct {
	nodes *[]StructureNode
}

// NewStructureBuilder returns a builder bound to the given child list.
func NewStructureBuilder(nodes *[]StructureNode) *StructureBuilder {
	return &StructureBuilder{nodes: nodes}
}

// Field appends a leaf node carrying an arbitrary scalar value.
func (b *StructureBuilder) Field(label string, value ScalarValue) {
	if b == nil || b.nodes == nil {
		return
	}
	*b.nodes = append(*b.nodes, StructureNode{Label: label, Value: value})
}

// Int appends a leaf node with an integer value.
func (b *StructureBuilder) Int(label string, v int64) { b.Field(label, Int(v)) }

// Float appends a leaf node with a float value.
func (b *StructureBuilder) Float(label string, v float64) { b.Field(label, Float(v)) }

// Bool appends a leaf node with a bool value.
func (b *StructureBuilder) Bool(label string, v bool) { b.Field(label, Bool(v)) }

// Text appends a leaf node with a text value.
func (b *StructureBuilder) Text(label, v string) { b.Field(label, Text(v)) }

// Nested appends a valueless group node and returns a builder scoped to its
// child list. Builders nest recursively.
func (b *StructureBuilder) Nested(label string) *StructureBuilder {
	if b == nil || b.nodes == nil {
		return &StructureBuilder{}
	}
	*b.nodes = append(*b.nodes, StructureNode{Label: label})
	return &StructureBuilder{nodes: &(*b.nodes)[len(*b.nodes)-1].Children}
}
