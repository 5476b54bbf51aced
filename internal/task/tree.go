// Package task holds task records and the binary search tree that indexes them by id.
package task

import "fmt"

// node owns one task and its two subtrees.
type node struct {
	task        *Task
	left, right *node
}

// Tree is an unbalanced binary search tree keyed by task id. Every id in a
// node's left subtree is smaller than the node's id; every id in its right
// subtree is greater or equal. Shape depends only on insertion order.
//
// A Tree is not safe for concurrent use. The zero value is an empty tree
// that rejects duplicate ids.
type Tree struct {
	root       *node
	size       int
	duplicates bool
	walking    int // traversals in progress
}

// Option configures a Tree.
type Option func(*Tree)

// WithDuplicates lets Insert accept ids that are already present. A duplicate
// is routed into the right subtree of the first occupant, so Find keeps
// returning the first-inserted task and later ones are shadowed.
func WithDuplicates() Option {
	return func(t *Tree) {
		t.duplicates = true
	}
}

// NewTree creates an empty tree.
func NewTree(opts ...Option) *Tree {
	t := &Tree{}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Len returns the number of tasks in the tree.
func (t *Tree) Len() int {
	return t.size
}

// AllowsDuplicates reports whether the tree was built WithDuplicates.
func (t *Tree) AllowsDuplicates() bool {
	return t.duplicates
}

// Find returns the task with the given id, or false if no such task exists.
// The returned task is still owned by the tree.
func (t *Tree) Find(id int) (*Task, bool) {
	n := t.root
	for n != nil {
		switch {
		case id == n.task.ID:
			return n.task, true
		case id > n.task.ID:
			n = n.right
		default:
			n = n.left
		}
	}
	return nil, false
}

// Min returns the task with the smallest id, or false on an empty tree.
func (t *Tree) Min() (*Task, bool) {
	if t.root == nil {
		return nil, false
	}
	return minNode(t.root).task, true
}

// minNode follows left links down from n. n must not be nil.
func minNode(n *node) *node {
	if n == nil {
		panic("task: minimum of an empty subtree")
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// Insert adds tk to the tree. It fails with ErrDuplicateID when the id is
// already present, unless the tree was built WithDuplicates.
func (t *Tree) Insert(tk *Task) error {
	if tk == nil {
		return ErrNilTask
	}
	t.checkMutable()
	if !t.duplicates {
		if _, ok := t.Find(tk.ID); ok {
			return fmt.Errorf("%w: %d", ErrDuplicateID, tk.ID)
		}
	}
	t.root = insert(t.root, tk)
	t.size++
	return nil
}

// insert returns the root of the subtree after placing tk under n.
// Equal ids go right.
func insert(n *node, tk *Task) *node {
	if n == nil {
		return &node{task: tk}
	}
	if tk.ID < n.task.ID {
		n.left = insert(n.left, tk)
	} else {
		n.right = insert(n.right, tk)
	}
	return n
}

// Delete removes the task with the given id and reports whether one was found.
// A node with two children takes over its in-order successor's task, and the
// successor's node is then removed from the right subtree.
func (t *Tree) Delete(id int) bool {
	t.checkMutable()
	var removed bool
	t.root = remove(t.root, id, &removed)
	if removed {
		t.size--
	}
	return removed
}

func remove(n *node, id int, removed *bool) *node {
	if n == nil {
		return nil
	}
	switch {
	case id < n.task.ID:
		n.left = remove(n.left, id, removed)
	case id > n.task.ID:
		n.right = remove(n.right, id, removed)
	default:
		if n.left == nil {
			*removed = true
			return n.right
		}
		if n.right == nil {
			*removed = true
			return n.left
		}
		succ := minNode(n.right)
		n.task = succ.task
		n.right = remove(n.right, succ.task.ID, removed)
	}
	return n
}

// Clear removes every task from the tree.
func (t *Tree) Clear() {
	t.checkMutable()
	t.root = nil
	t.size = 0
}

// SetStatus changes the status of the task with the given id and reports
// whether the task exists. Status is not part of the key, so this is allowed
// during traversal.
func (t *Tree) SetStatus(id int, status Status) bool {
	tk, ok := t.Find(id)
	if !ok {
		return false
	}
	tk.Status = status
	return true
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree) Height() int {
	if t.root == nil {
		return 0
	}
	height := 0
	level := []*node{t.root}
	for len(level) > 0 {
		height++
		var next []*node
		for _, n := range level {
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}
		level = next
	}
	return height
}

// InOrder calls fn for every task in ascending id order.
// fn must not insert, delete or clear; doing so panics.
func (t *Tree) InOrder(fn func(*Task)) {
	t.walking++
	defer func() { t.walking-- }()

	var stack []*node
	n := t.root
	for n != nil || len(stack) > 0 {
		for n != nil {
			stack = append(stack, n)
			n = n.left
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fn(n.task)
		n = n.right
	}
}

// PreOrder calls fn for every task, visiting a node before its left and then
// its right subtree. Re-inserting tasks in this order rebuilds the same shape.
// fn must not insert, delete or clear; doing so panics.
func (t *Tree) PreOrder(fn func(*Task)) {
	t.walking++
	defer func() { t.walking-- }()

	if t.root == nil {
		return
	}
	stack := []*node{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fn(n.task)
		if n.right != nil {
			stack = append(stack, n.right)
		}
		if n.left != nil {
			stack = append(stack, n.left)
		}
	}
}

// ForEachCompletedInOrder calls fn for every completed task in ascending id order.
func (t *Tree) ForEachCompletedInOrder(fn func(*Task)) {
	t.InOrder(func(tk *Task) {
		if tk.Status == StatusCompleted {
			fn(tk)
		}
	})
}

// IDs returns every id in ascending order.
func (t *Tree) IDs() []int {
	ids := make([]int, 0, t.size)
	t.InOrder(func(tk *Task) {
		ids = append(ids, tk.ID)
	})
	return ids
}

func (t *Tree) checkMutable() {
	if t.walking > 0 {
		panic("task: tree mutated during traversal")
	}
}
