package entity

// FilterOp represents a filter operation type.
type FilterOp int

const (
	// Logical operators
	And FilterOp = iota
	Or
	Not

	// Comparison operators
	Eq       // ==
	Ne       // !=
	Gt       // >
	Gte      // >=
	Lt       // <
	Lte      // <=
	Contains // substring match
)

// Filter represents a composable filter for record queries.
// Filters can be simple comparisons or logical combinations.
type Filter struct {
	Op       FilterOp `yaml:"op"`
	Field    string   `yaml:"field,omitempty"`
	Value    any      `yaml:"value,omitempty"`
	Children []Filter `yaml:"children,omitempty"`
}

// Sort represents a sort directive for record queries.
type Sort struct {
	Field string `yaml:"field"`
	Desc  bool   `yaml:"desc,omitempty"`
}
