package tree

import (
	"reflect"
	"strings"
	"testing"
)

func sampleTree() *Node {
	b := NewBuilder()
	b.Open("Predicates", "")
	b.Leaf("predicates", "predicates")
	b.Open("Predicate Declaration", "")
	b.Leaf("Predicate ID", "foo")
	b.Leaf("(", "(")
	b.Leaf("Data Type", "integer")
	b.Leaf(")", ")")
	b.Close()
	b.Close()
	b.Open("Clauses", "")
	b.Leaf("clauses", "clauses")
	b.Leaf(ErrorLabel, "")
	b.Close()
	return b.Build()
}

func TestBuilder_Nesting(t *testing.T) {
	root := sampleTree()

	if root.Label != RootLabel {
		t.Fatalf("Expected root %s, got %s", RootLabel, root.Label)
	}
	if got := root.Labels(); !reflect.DeepEqual(got, []string{"Predicates", "Clauses"}) {
		t.Fatalf("Unexpected sections: %v", got)
	}

	decl := root.Child("Predicates").Child("Predicate Declaration")
	if decl == nil {
		t.Fatal("Predicate Declaration not found under Predicates")
	}
	want := []string{"Predicate ID", "(", "Data Type", ")"}
	if got := decl.Labels(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
	if decl.Children[0].Lexeme != "foo" {
		t.Errorf("Expected lexeme foo, got %q", decl.Children[0].Lexeme)
	}
}

func TestBuilder_CloseRootIsNoop(t *testing.T) {
	b := NewBuilder()
	b.Close()
	b.Close()
	b.Leaf("x", "")
	if b.Depth() != 0 {
		t.Errorf("Expected depth 0, got %d", b.Depth())
	}
	root := b.Build()
	if len(root.Children) != 1 {
		t.Errorf("Expected 1 child, got %d", len(root.Children))
	}
}

func TestBuilder_BuildClosesOpenScopes(t *testing.T) {
	b := NewBuilder()
	b.Open("Goal", "")
	b.Open("Inner", "")
	if b.Current() != "Inner" || b.Depth() != 2 {
		t.Fatalf("Expected Inner at depth 2, got %s at %d", b.Current(), b.Depth())
	}
	root := b.Build()
	if root.Find("Inner") == nil {
		t.Error("Inner node lost by Build")
	}

	defer func() {
		if recover() == nil {
			t.Error("Expected panic when appending after Build")
		}
	}()
	b.Leaf("late", "")
}

func TestNode_Queries(t *testing.T) {
	root := sampleTree()

	if n := root.Count(ErrorLabel); n != 1 {
		t.Errorf("Expected 1 error node, got %d", n)
	}
	if root.Find("Data Type") == nil {
		t.Error("Expected to find Data Type")
	}
	if root.Find("missing") != nil {
		t.Error("Expected nil for a missing label")
	}

	var labels []string
	for _, leaf := range root.Leaves() {
		labels = append(labels, leaf.Label)
	}
	want := []string{"predicates", "Predicate ID", "(", "Data Type", ")", "clauses", "Error"}
	if !reflect.DeepEqual(labels, want) {
		t.Errorf("Expected leaves %v, got %v", want, labels)
	}
}

func TestNode_Render(t *testing.T) {
	root := sampleTree()

	bracketed := root.Bracketed()
	want := `(Program (Predicates predicates ("Predicate Declaration" "Predicate ID" "(" "Data Type" ")")) (Clauses clauses Error))`
	if bracketed != want {
		t.Errorf("Bracketed mismatch\n want: %s\n  got: %s", want, bracketed)
	}

	pretty := root.Pretty()
	if !strings.HasPrefix(pretty, "Program\n  Predicates\n") {
		t.Errorf("Unexpected outline start:\n%s", pretty)
	}
	if !strings.Contains(pretty, `      Predicate ID "foo"`) {
		t.Errorf("Expected lexeme annotation in outline:\n%s", pretty)
	}
	if strings.Contains(pretty, `predicates "predicates"`) {
		t.Errorf("Lexeme equal to label should not be repeated:\n%s", pretty)
	}
}
