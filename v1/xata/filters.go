package xata

import (
	"fmt"

	"github.com/vectoradapters/std/v1/vectorstore"
)

// Operator mapping from the abstract condition grammar to the
// backend's comparison primitives.
var operatorKeys = map[vectorstore.FilterOperator]string{
	vectorstore.OpEqual:              "$is",
	vectorstore.OpNotEqual:           "$isNot",
	vectorstore.OpLessThan:           "$lt",
	vectorstore.OpLessThanOrEqual:    "$le",
	vectorstore.OpGreaterThan:        "$gt",
	vectorstore.OpGreaterThanOrEqual: "$ge",
	vectorstore.OpIn:                 "$any",
	vectorstore.OpNotIn:              "$none",
	vectorstore.OpLike:               "$contains",
}

// translatedQuery is the outcome of running the translator over a
// condition list. The three parts feed distinct backend call shapes:
// filter goes into the generic filter grammar, vector drives the
// similarity path, and ids become an explicit id-list filter in the
// plain-retrieval and delete paths.
type translatedQuery struct {
	filter map[string]any
	vector *vectorstore.FilterCondition
	ids    []string
}

// translateConditions converts an ordered condition list into the
// backend's native filter expression, extracting conditions that
// target the reserved search-vector and id columns.
//
// An empty or nil list yields an empty translation. More than one
// search-vector condition violates the select invariant and is
// rejected as a usage error.
func translateConditions(conditions []vectorstore.FilterCondition) (*translatedQuery, error) {
	tq := &translatedQuery{}

	var exprs []map[string]any
	for _, cond := range conditions {
		switch cond.Column {
		case vectorstore.FieldSearchVector:
			if tq.vector != nil {
				return nil, vectorstore.NewError(vectorstore.ErrUsage, "",
					fmt.Errorf("at most one %s condition is allowed", vectorstore.FieldSearchVector))
			}
			c := cond
			tq.vector = &c

		case vectorstore.FieldID:
			ids, err := idValues(cond.Value)
			if err != nil {
				return nil, vectorstore.NewError(vectorstore.ErrUsage, "", err)
			}
			tq.ids = append(tq.ids, ids...)

		default:
			expr, err := conditionExpr(cond)
			if err != nil {
				return nil, err
			}
			exprs = append(exprs, expr)
		}
	}

	tq.filter = conjoin(exprs)
	return tq, nil
}

// conditionExpr maps one condition onto the backend filter grammar:
// {"column": {"$op": value}}.
func conditionExpr(cond vectorstore.FilterCondition) (map[string]any, error) {
	key, ok := operatorKeys[cond.Operator]
	if !ok {
		return nil, vectorstore.NewError(vectorstore.ErrUsage, "",
			fmt.Errorf("unsupported filter operator %q", cond.Operator))
	}

	value := cond.Value
	switch cond.Operator {
	case vectorstore.OpIn, vectorstore.OpNotIn:
		values, err := anySlice(value)
		if err != nil {
			return nil, vectorstore.NewError(vectorstore.ErrUsage, "",
				fmt.Errorf("operator %q: %w", cond.Operator, err))
		}
		value = values
	}

	return map[string]any{cond.Column: map[string]any{key: value}}, nil
}

// conjoin combines condition expressions with AND semantics. A single
// expression stands alone; multiple are wrapped in $all.
func conjoin(exprs []map[string]any) map[string]any {
	switch len(exprs) {
	case 0:
		return nil
	case 1:
		return exprs[0]
	default:
		all := make([]any, len(exprs))
		for i, e := range exprs {
			all[i] = e
		}
		return map[string]any{"$all": all}
	}
}

// idValues extracts the id list carried by an id-targeted condition.
// A scalar value contributes one id; a list value contributes all.
func idValues(value any) ([]string, error) {
	switch v := value.(type) {
	case string:
		return []string{v}, nil
	case []string:
		return v, nil
	case []any:
		ids := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("id condition values must be strings, got %T", item)
			}
			ids = append(ids, s)
		}
		return ids, nil
	default:
		return nil, fmt.Errorf("id condition value must be a string or list of strings, got %T", value)
	}
}

// anySlice normalizes a list-shaped condition value to []any.
func anySlice(value any) ([]any, error) {
	switch v := value.(type) {
	case []any:
		return v, nil
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out, nil
	case []int:
		out := make([]any, len(v))
		for i, n := range v {
			out[i] = n
		}
		return out, nil
	case []int64:
		out := make([]any, len(v))
		for i, n := range v {
			out[i] = n
		}
		return out, nil
	case []float64:
		out := make([]any, len(v))
		for i, n := range v {
			out[i] = n
		}
		return out, nil
	default:
		return nil, fmt.Errorf("value must be a list, got %T", value)
	}
}
