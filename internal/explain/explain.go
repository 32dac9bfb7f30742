// Package explain provides the optional evaluation-tree sink used by the
// ranking and satisfaction algorithms (spec.md §4.5.2). It is a
// cross-cutting concern: every algorithm that accepts a *Collector runs
// identically whether or not one is supplied, and a nil collector never
// allocates or changes the computed result.
package explain

// Node is one step of an evaluation tree: a rule name, a short human-
// readable detail string, and the sub-evaluations it depended on.
type Node struct {
	Rule     string
	Detail   string
	Children []*Node
}

// Collector accumulates Nodes emitted during a single rank/acceptance
// computation. The zero value is ready to use; a nil *Collector is also
// safe to call methods on and silently discards everything, so every
// call site can pass a possibly-nil collector without branching.
type Collector struct {
	root *Node
	cur  []*Node // stack of open nodes; cur[len(cur)-1] is the current parent
}

// New creates an empty Collector.
func New() *Collector { return &Collector{} }

// Enter pushes a new node with the given rule/detail as a child of the
// current node (or as the root, if this is the first call), and makes it
// the current node for subsequent Emit/Enter calls until the matching
// Leave.
func (c *Collector) Enter(rule, detail string) {
	if c == nil {
		return
	}
	n := &Node{Rule: rule, Detail: detail}
	if len(c.cur) == 0 {
		c.root = n
	} else {
		parent := c.cur[len(c.cur)-1]
		parent.Children = append(parent.Children, n)
	}
	c.cur = append(c.cur, n)
}

// Leave closes the node opened by the matching Enter.
func (c *Collector) Leave() {
	if c == nil || len(c.cur) == 0 {
		return
	}
	c.cur = c.cur[:len(c.cur)-1]
}

// Leaf records a childless node under the current node — shorthand for
// Enter followed immediately by Leave.
func (c *Collector) Leaf(rule, detail string) {
	if c == nil {
		return
	}
	c.Enter(rule, detail)
	c.Leave()
}

// Tree returns the completed evaluation tree's root, or nil if nothing was
// recorded (including when c is nil).
func (c *Collector) Tree() *Node {
	if c == nil {
		return nil
	}
	return c.root
}
