package filter

import (
	"reflect"
	"testing"
)

func TestApply_EmptyExpression(t *testing.T) {
	data := map[string]any{"a": 1}
	got, err := Apply(data, "")
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	if !reflect.DeepEqual(got, data) {
		t.Errorf("Apply with empty expression = %v, want input unchanged", got)
	}
}

func TestApply_FieldSelect(t *testing.T) {
	data := map[string]any{"subject": "hello", "from": "a@example.com"}
	got, err := Apply(data, ".subject")
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	if got != "hello" {
		t.Errorf("Apply(.subject) = %v, want hello", got)
	}
}

func TestApply_ArrayIteration(t *testing.T) {
	data := []any{
		map[string]any{"id": "1"},
		map[string]any{"id": "2"},
	}
	got, err := Apply(data, ".[].id")
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	want := []any{"1", "2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Apply(.[].id) = %v, want %v", got, want)
	}
}

func TestApply_InvalidExpression(t *testing.T) {
	if _, err := Apply(map[string]any{}, ".["); err == nil {
		t.Error("Apply with invalid expression should error")
	}
}
