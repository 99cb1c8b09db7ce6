package exprtree

// ExprTree owns a root node and caches the number of nodes below it. The
// zero value is an empty tree.
type ExprTree struct {
	root *Node
	size int
}

// NewTree creates a tree rooted at root. A nil root gives an empty tree.
func NewTree(root *Node) *ExprTree {
	return &ExprTree{
		root: root,
		size: countNodes(root),
	}
}

func countNodes(node *Node) int {
	if node == nil {
		return 0
	}
	return countNodes(node.Left) + countNodes(node.Right) + 1
}

func (t *ExprTree) Root() *Node {
	return t.root
}

// Size returns the number of value and operator nodes in the tree.
func (t *ExprTree) Size() int {
	return t.size
}

func (t *ExprTree) IsEmpty() bool {
	return t.size == 0
}
