package vectordb

import "fmt"

// NewFilterSet creates a FilterSet with the given clauses.
func NewFilterSet(clauses ...func(*FilterSet)) *FilterSet {
	fs := &FilterSet{}
	for _, clause := range clauses {
		clause(fs)
	}
	return fs
}

// Must creates a Must clause (AND logic) with the given conditions.
func Must(conditions ...FilterCondition) func(*FilterSet) {
	return func(fs *FilterSet) {
		fs.Must = &ConditionSet{Conditions: conditions}
	}
}

// MustNot creates a MustNot clause (NOT logic) with the given conditions.
func MustNot(conditions ...FilterCondition) func(*FilterSet) {
	return func(fs *FilterSet) {
		fs.MustNot = &ConditionSet{Conditions: conditions}
	}
}

// NewMatch creates an equality condition.
func NewMatch(field string, value any) *MatchCondition {
	return &MatchCondition{Field: field, Value: value}
}

// NewMatchAny creates an IN condition. All values must share one type.
func NewMatchAny(field string, values ...any) *MatchAnyCondition {
	validateHomogeneousTypes(values)
	return &MatchAnyCondition{Field: field, Values: values}
}

// NamespaceFilter matches every record of ns, optionally restricted to ids.
// idField names the payload field holding the caller's record ID.
func NamespaceFilter(nsField string, ns Namespace, idField string, ids []string) *FilterSet {
	conditions := []FilterCondition{NewMatch(nsField, string(ns))}
	if len(ids) > 0 {
		values := make([]any, len(ids))
		for i, id := range ids {
			values[i] = id
		}
		conditions = append(conditions, NewMatchAny(idField, values...))
	}
	return NewFilterSet(Must(conditions...))
}

// validateHomogeneousTypes panics if values contains mixed types.
func validateHomogeneousTypes(values []any) {
	if len(values) <= 1 {
		return
	}
	first := fmt.Sprintf("%T", values[0])
	for i, v := range values[1:] {
		if got := fmt.Sprintf("%T", v); got != first {
			panic(fmt.Sprintf("vectordb: mixed types in filter values: index 0 is %s, index %d is %s", first, i+1, got))
		}
	}
}
