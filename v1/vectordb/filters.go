package vectordb

// FilterCondition is the interface all filter conditions implement.
// Backends that keep namespaces and IDs as payload fields convert these to
// their native filter format.
type FilterCondition interface {
	IsFilterCondition()
}

// FilterSet supports Must (AND) and MustNot (NOT) clauses.
//
// Example:
//
//	filters := NewFilterSet(
//	    Must(NewMatch("namespace", "qa"), NewMatchAny("_id", "a", "b")),
//	)
type FilterSet struct {
	// Must: All conditions must match (AND)
	Must *ConditionSet `json:"must,omitempty"`
	// MustNot: None of the conditions should match (NOT)
	MustNot *ConditionSet `json:"mustNot,omitempty"`
}

// ConditionSet holds a group of conditions for a single clause.
type ConditionSet struct {
	Conditions []FilterCondition `json:"conditions,omitempty"`
}

// MatchCondition represents an exact match filter (WHERE field = value).
// Supports string, bool and int64 values.
type MatchCondition struct {
	Field string `json:"field"`
	Value any    `json:"equalTo"`
}

func (c *MatchCondition) IsFilterCondition() {}

// MatchAnyCondition matches if value is one of the given values (IN operator).
type MatchAnyCondition struct {
	Field  string `json:"field"`
	Values []any  `json:"anyOf"`
}

func (c *MatchAnyCondition) IsFilterCondition() {}
