package report

import (
	"fmt"
	"io"

	"github.com/tasktree/tasktree/internal/task"
)

// activeNode is one element of an ActiveList. It borrows task: the tree
// still owns it and the list never modifies it.
type activeNode struct {
	task *task.Task
	next *activeNode
}

// ActiveList is the transient view behind the active task report. It is
// built by CollectActive, ordered by Sort, written by Emit and dropped by
// Release. The tree must not change while a list is alive.
type ActiveList struct {
	head, tail *activeNode
	len        int
}

// CollectActive gathers every active task of tree in pre-order.
func CollectActive(tree *task.Tree) *ActiveList {
	l := &ActiveList{}
	tree.PreOrder(func(t *task.Task) {
		if t.Status == task.StatusActive {
			l.append(t)
		}
	})
	return l
}

func (l *ActiveList) append(t *task.Task) {
	n := &activeNode{task: t}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.len++
}

// Len returns the number of collected tasks.
func (l *ActiveList) Len() int {
	return l.len
}

// Sort orders the list by time limit, smallest first. Elements keep their
// position; only the borrowed task references are exchanged. Equal time
// limits end up in no particular order.
func (l *ActiveList) Sort() {
	for cur := l.head; cur != nil; cur = cur.next {
		for next := cur.next; next != nil; next = next.next {
			if cur.task.TimeLimit > next.task.TimeLimit {
				cur.task, next.task = next.task, cur.task
			}
		}
	}
}

// Tasks returns the borrowed tasks in list order.
func (l *ActiveList) Tasks() []*task.Task {
	tasks := make([]*task.Task, 0, l.len)
	for n := l.head; n != nil; n = n.next {
		tasks = append(tasks, n.task)
	}
	return tasks
}

// Emit writes one row per element in list order.
func (l *ActiveList) Emit(w io.Writer) (int, error) {
	rows := 0
	for n := l.head; n != nil; n = n.next {
		if _, err := fmt.Fprintln(w, FormatRow(n.task)); err != nil {
			return rows, err
		}
		rows++
	}
	return rows, nil
}

// Release unlinks every element and drops the borrowed references. The tasks
// themselves are untouched.
func (l *ActiveList) Release() {
	n := l.head
	for n != nil {
		next := n.next
		n.task = nil
		n.next = nil
		n = next
	}
	l.head, l.tail, l.len = nil, nil, 0
}

// Active writes the active tasks of tree ordered by time limit and returns
// the number of rows written. An empty tree writes nothing.
func Active(w io.Writer, tree *task.Tree) (int, error) {
	l := CollectActive(tree)
	defer l.Release()
	l.Sort()
	return l.Emit(w)
}

// ActiveTasks returns the active tasks of tree ordered by time limit, for
// callers that render their own table.
func ActiveTasks(tree *task.Tree) []*task.Task {
	l := CollectActive(tree)
	defer l.Release()
	l.Sort()
	return l.Tasks()
}
