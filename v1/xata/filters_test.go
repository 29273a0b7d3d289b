package xata

import (
	"reflect"
	"testing"

	"github.com/vectoradapters/std/v1/vectorstore"
)

func TestTranslateConditions_Nil(t *testing.T) {
	tq, err := translateConditions(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tq.filter != nil {
		t.Errorf("expected nil filter, got %v", tq.filter)
	}
	if tq.vector != nil {
		t.Errorf("expected no vector condition, got %v", tq.vector)
	}
	if len(tq.ids) != 0 {
		t.Errorf("expected no ids, got %v", tq.ids)
	}
}

func TestTranslateConditions_Empty(t *testing.T) {
	tq, err := translateConditions([]vectorstore.FilterCondition{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tq.filter != nil {
		t.Errorf("expected nil filter, got %v", tq.filter)
	}
}

func TestTranslateConditions_SingleCondition(t *testing.T) {
	tq, err := translateConditions([]vectorstore.FilterCondition{
		vectorstore.NewCondition("city", vectorstore.OpEqual, "London"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]any{"city": map[string]any{"$is": "London"}}
	if !reflect.DeepEqual(tq.filter, want) {
		t.Errorf("expected %v, got %v", want, tq.filter)
	}
}

func TestTranslateConditions_ConjoinsMultiple(t *testing.T) {
	tq, err := translateConditions([]vectorstore.FilterCondition{
		vectorstore.NewCondition("city", vectorstore.OpEqual, "London"),
		vectorstore.NewCondition("priority", vectorstore.OpGreaterThan, 3),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]any{
		"$all": []any{
			map[string]any{"city": map[string]any{"$is": "London"}},
			map[string]any{"priority": map[string]any{"$gt": 3}},
		},
	}
	if !reflect.DeepEqual(tq.filter, want) {
		t.Errorf("expected %v, got %v", want, tq.filter)
	}
}

func TestTranslateConditions_OperatorMapping(t *testing.T) {
	cases := []struct {
		op   vectorstore.FilterOperator
		key  string
		val  any
		want any
	}{
		{vectorstore.OpEqual, "$is", "a", "a"},
		{vectorstore.OpNotEqual, "$isNot", "a", "a"},
		{vectorstore.OpLessThan, "$lt", 5, 5},
		{vectorstore.OpLessThanOrEqual, "$le", 5, 5},
		{vectorstore.OpGreaterThan, "$gt", 5, 5},
		{vectorstore.OpGreaterThanOrEqual, "$ge", 5, 5},
		{vectorstore.OpIn, "$any", []string{"a", "b"}, []any{"a", "b"}},
		{vectorstore.OpNotIn, "$none", []string{"a", "b"}, []any{"a", "b"}},
		{vectorstore.OpLike, "$contains", "lond", "lond"},
	}

	for _, tc := range cases {
		tq, err := translateConditions([]vectorstore.FilterCondition{
			vectorstore.NewCondition("field", tc.op, tc.val),
		})
		if err != nil {
			t.Fatalf("operator %q: unexpected error: %v", tc.op, err)
		}

		want := map[string]any{"field": map[string]any{tc.key: tc.want}}
		if !reflect.DeepEqual(tq.filter, want) {
			t.Errorf("operator %q: expected %v, got %v", tc.op, want, tq.filter)
		}
	}
}

func TestTranslateConditions_UnsupportedOperator(t *testing.T) {
	_, err := translateConditions([]vectorstore.FilterCondition{
		vectorstore.NewCondition("field", vectorstore.FilterOperator("BETWEEN"), 1),
	})
	if !vectorstore.IsUsageError(err) {
		t.Fatalf("expected usage error, got %v", err)
	}
}

func TestTranslateConditions_InRequiresList(t *testing.T) {
	_, err := translateConditions([]vectorstore.FilterCondition{
		vectorstore.NewCondition("field", vectorstore.OpIn, "not-a-list"),
	})
	if !vectorstore.IsUsageError(err) {
		t.Fatalf("expected usage error, got %v", err)
	}
}

func TestTranslateConditions_ExtractsVector(t *testing.T) {
	vec := []float64{0.1, 0.2}
	tq, err := translateConditions([]vectorstore.FilterCondition{
		vectorstore.NewCondition("city", vectorstore.OpEqual, "London"),
		vectorstore.NewCondition(vectorstore.FieldSearchVector, vectorstore.OpEqual, vec),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tq.vector == nil {
		t.Fatal("expected vector condition to be extracted")
	}
	if !reflect.DeepEqual(tq.vector.Value, vec) {
		t.Errorf("expected vector value %v, got %v", vec, tq.vector.Value)
	}

	// The vector predicate must not leak into the generic filter.
	want := map[string]any{"city": map[string]any{"$is": "London"}}
	if !reflect.DeepEqual(tq.filter, want) {
		t.Errorf("expected %v, got %v", want, tq.filter)
	}
}

func TestTranslateConditions_RejectsMultipleVectors(t *testing.T) {
	_, err := translateConditions([]vectorstore.FilterCondition{
		vectorstore.NewCondition(vectorstore.FieldSearchVector, vectorstore.OpEqual, []float64{0.1}),
		vectorstore.NewCondition(vectorstore.FieldSearchVector, vectorstore.OpEqual, []float64{0.2}),
	})
	if !vectorstore.IsUsageError(err) {
		t.Fatalf("expected usage error, got %v", err)
	}
}

func TestTranslateConditions_ExtractsIDs(t *testing.T) {
	tq, err := translateConditions([]vectorstore.FilterCondition{
		vectorstore.NewCondition(vectorstore.FieldID, vectorstore.OpEqual, "rec1"),
		vectorstore.NewCondition(vectorstore.FieldID, vectorstore.OpIn, []string{"rec2", "rec3"}),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"rec1", "rec2", "rec3"}
	if !reflect.DeepEqual(tq.ids, want) {
		t.Errorf("expected ids %v, got %v", want, tq.ids)
	}
	if tq.filter != nil {
		t.Errorf("id conditions must not reach the generic filter, got %v", tq.filter)
	}
}

func TestTranslateConditions_RejectsNonStringID(t *testing.T) {
	_, err := translateConditions([]vectorstore.FilterCondition{
		vectorstore.NewCondition(vectorstore.FieldID, vectorstore.OpEqual, 42),
	})
	if !vectorstore.IsUsageError(err) {
		t.Fatalf("expected usage error, got %v", err)
	}
}
