package tree

import (
	"fmt"
	"strings"
)

const (
	RootLabel  = "Program"
	ErrorLabel = "Error"
)

// Node is one labeled vertex of a parse tree. Lexeme holds the source text
// for terminals and is empty for structural nodes.
type Node struct {
	Label    string  `json:"label" yaml:"label"`
	Lexeme   string  `json:"lexeme,omitempty" yaml:"lexeme,omitempty"`
	Children []*Node `json:"children,omitempty" yaml:"children,omitempty"`
}

func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Walk visits n and its descendants depth-first in order. Returning false
// from fn skips the children of that node.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) {
	if !fn(n, depth) {
		return
	}
	for _, child := range n.Children {
		child.walk(fn, depth+1)
	}
}

// Find returns the first node labeled label in depth-first order.
func (n *Node) Find(label string) *Node {
	var found *Node
	n.Walk(func(node *Node, _ int) bool {
		if found != nil {
			return false
		}
		if node.Label == label {
			found = node
			return false
		}
		return true
	})
	return found
}

// Child returns the direct child labeled label.
func (n *Node) Child(label string) *Node {
	for _, child := range n.Children {
		if child.Label == label {
			return child
		}
	}
	return nil
}

func (n *Node) Count(label string) int {
	count := 0
	n.Walk(func(node *Node, _ int) bool {
		if node.Label == label {
			count++
		}
		return true
	})
	return count
}

func (n *Node) Leaves() []*Node {
	var leaves []*Node
	n.Walk(func(node *Node, _ int) bool {
		if node.IsLeaf() {
			leaves = append(leaves, node)
		}
		return true
	})
	return leaves
}

// Labels returns the labels of the direct children.
func (n *Node) Labels() []string {
	labels := make([]string, len(n.Children))
	for i, child := range n.Children {
		labels[i] = child.Label
	}
	return labels
}

// Pretty renders the tree as an indented outline, one node per line.
func (n *Node) Pretty() string {
	var sb strings.Builder
	n.Walk(func(node *Node, depth int) bool {
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString(node.Label)
		if node.Lexeme != "" && node.Lexeme != node.Label {
			fmt.Fprintf(&sb, " %q", node.Lexeme)
		}
		sb.WriteString("\n")
		return true
	})
	return sb.String()
}

// Bracketed renders the tree in s-expression form, leaves as bare labels:
// (Program (Predicates predicates ...) ...)
func (n *Node) Bracketed() string {
	var sb strings.Builder
	n.bracketed(&sb)
	return sb.String()
}

func (n *Node) bracketed(sb *strings.Builder) {
	if n.IsLeaf() && n.Label != RootLabel {
		sb.WriteString(quoteLabel(n.Label))
		return
	}
	sb.WriteString("(")
	sb.WriteString(quoteLabel(n.Label))
	for _, child := range n.Children {
		sb.WriteString(" ")
		child.bracketed(sb)
	}
	sb.WriteString(")")
}

func quoteLabel(label string) string {
	if strings.ContainsAny(label, " ()") {
		return fmt.Sprintf("%q", label)
	}
	return label
}
