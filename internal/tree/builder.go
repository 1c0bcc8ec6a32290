package tree

// Builder assembles a parse tree in token order. Nodes live in an arena and
// refer to each other by index; an explicit stack tracks the open scopes.
// The root scope is always open.
type Builder struct {
	arena []entry
	scope []int
	built bool
}

type entry struct {
	label    string
	lexeme   string
	children []int
}

func NewBuilder() *Builder {
	b := &Builder{}
	b.arena = append(b.arena, entry{label: RootLabel})
	b.scope = []int{0}
	return b
}

// Leaf appends a terminal to the current scope and returns its index.
func (b *Builder) Leaf(label, lexeme string) int {
	if b.built {
		panic("tree: append after Build")
	}
	idx := len(b.arena)
	b.arena = append(b.arena, entry{label: label, lexeme: lexeme})
	parent := b.scope[len(b.scope)-1]
	b.arena[parent].children = append(b.arena[parent].children, idx)
	return idx
}

// Open appends a node to the current scope and makes it the current scope.
func (b *Builder) Open(label, lexeme string) int {
	idx := b.Leaf(label, lexeme)
	b.scope = append(b.scope, idx)
	return idx
}

// Close returns to the enclosing scope. Closing the root is a no-op.
func (b *Builder) Close() {
	if len(b.scope) > 1 {
		b.scope = b.scope[:len(b.scope)-1]
	}
}

// Depth is the number of open scopes below the root.
func (b *Builder) Depth() int {
	return len(b.scope) - 1
}

// Current is the label of the innermost open scope.
func (b *Builder) Current() string {
	return b.arena[b.scope[len(b.scope)-1]].label
}

// Build materializes the arena into linked nodes. Scopes still open are
// closed implicitly. The builder accepts no further nodes afterwards.
func (b *Builder) Build() *Node {
	b.built = true
	b.scope = b.scope[:1]

	nodes := make([]*Node, len(b.arena))
	// children always have larger indices than their parent
	for i := len(b.arena) - 1; i >= 0; i-- {
		e := b.arena[i]
		node := &Node{Label: e.label, Lexeme: e.lexeme}
		if len(e.children) > 0 {
			node.Children = make([]*Node, len(e.children))
			for j, c := range e.children {
				node.Children[j] = nodes[c]
			}
		}
		nodes[i] = node
	}
	return nodes[0]
}
