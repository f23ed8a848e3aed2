package internal

import (
	"iter"
	"math/rand/v2"
	"slices"
)

// Node is a stable handle to one element of a Sequence. A node stays valid
// while other nodes are inserted, removed or reordered around it.
type Node[T any] struct {
	Value T

	left, right, parent *Node[T]
	priority            uint32
	owner               *Sequence[T]
}

// Sequence is an ordered collection backed by a treap with parent links:
// insertion at either end or at a sorted position, removal by handle and
// neighbor stepping are O(log n) expected.
type Sequence[T any] struct {
	root   *Node[T]
	length int
}

// NewSequence creates an empty sequence.
func NewSequence[T any]() *Sequence[T] {
	return &Sequence[T]{}
}

// Len returns the number of elements.
func (s *Sequence[T]) Len() int {
	return s.length
}

// Append inserts v after every existing element.
func (s *Sequence[T]) Append(v T) *Node[T] {
	n := s.newNode(v)
	if s.root == nil {
		s.root = n
	} else {
		p := s.root
		for p.right != nil {
			p = p.right
		}
		p.right = n
		n.parent = p
	}
	s.bubbleUp(n)
	s.length++
	return n
}

// InsertSorted inserts v after the last element that compares less than or
// equal to it, so equal elements keep their insertion order.
func (s *Sequence[T]) InsertSorted(v T, cmp func(a, b T) int) *Node[T] {
	n := s.newNode(v)
	s.insertSortedNode(n, cmp)
	s.length++
	return n
}

// Remove detaches n from the sequence. Removing a node that does not belong
// to s is a no-op.
func (s *Sequence[T]) Remove(n *Node[T]) {
	if n == nil || n.owner != s {
		return
	}
	s.unlink(n)
	n.owner = nil
	s.length--
}

// SortChanged moves n to its sorted position after its value changed.
func (s *Sequence[T]) SortChanged(n *Node[T], cmp func(a, b T) int) {
	if n == nil || n.owner != s {
		return
	}
	s.unlink(n)
	s.insertSortedNode(n, cmp)
}

// Sort stably reorders every element with cmp. Node handles survive.
func (s *Sequence[T]) Sort(cmp func(a, b T) int) {
	nodes := make([]*Node[T], 0, s.length)
	for n := s.First(); n != nil; n = n.Next() {
		nodes = append(nodes, n)
	}
	slices.SortStableFunc(nodes, func(a, b *Node[T]) int {
		return cmp(a.Value, b.Value)
	})

	s.root = nil
	for _, n := range nodes {
		n.left, n.right, n.parent = nil, nil, nil
		if s.root == nil {
			s.root = n
			continue
		}
		p := s.root
		for p.right != nil {
			p = p.right
		}
		p.right = n
		n.parent = p
		s.bubbleUp(n)
	}
}

// First returns the first node, or nil when empty.
func (s *Sequence[T]) First() *Node[T] {
	if s.root == nil {
		return nil
	}
	return leftmost(s.root)
}

// Last returns the last node, or nil when empty.
func (s *Sequence[T]) Last() *Node[T] {
	if s.root == nil {
		return nil
	}
	return rightmost(s.root)
}

// All iterates values in order. The sequence must not be modified while
// iterating.
func (s *Sequence[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := s.First(); n != nil; n = n.Next() {
			if !yield(n.Value) {
				return
			}
		}
	}
}

// Next returns the following node, or nil at the end.
func (n *Node[T]) Next() *Node[T] {
	if n.right != nil {
		return leftmost(n.right)
	}
	c := n
	for c.parent != nil && c.parent.right == c {
		c = c.parent
	}
	return c.parent
}

// Prev returns the preceding node, or nil at the beginning.
func (n *Node[T]) Prev() *Node[T] {
	if n.left != nil {
		return rightmost(n.left)
	}
	c := n
	for c.parent != nil && c.parent.left == c {
		c = c.parent
	}
	return c.parent
}

// Attached reports whether the node still belongs to a sequence.
func (n *Node[T]) Attached() bool {
	return n.owner != nil
}

func (s *Sequence[T]) newNode(v T) *Node[T] {
	return &Node[T]{Value: v, priority: rand.Uint32(), owner: s}
}

func (s *Sequence[T]) insertSortedNode(n *Node[T], cmp func(a, b T) int) {
	n.left, n.right, n.parent = nil, nil, nil
	if s.root == nil {
		s.root = n
		return
	}
	p := s.root
	for {
		if cmp(n.Value, p.Value) < 0 {
			if p.left == nil {
				p.left = n
				break
			}
			p = p.left
		} else {
			if p.right == nil {
				p.right = n
				break
			}
			p = p.right
		}
	}
	n.parent = p
	s.bubbleUp(n)
}

func (s *Sequence[T]) unlink(n *Node[T]) {
	for n.left != nil || n.right != nil {
		c := n.left
		if c == nil || (n.right != nil && n.right.priority > c.priority) {
			c = n.right
		}
		s.rotateUp(c)
	}
	switch {
	case n.parent == nil:
		s.root = nil
	case n.parent.left == n:
		n.parent.left = nil
	default:
		n.parent.right = nil
	}
	n.parent = nil
}

func (s *Sequence[T]) bubbleUp(n *Node[T]) {
	for n.parent != nil && n.parent.priority < n.priority {
		s.rotateUp(n)
	}
}

// rotateUp makes x take its parent's place, preserving in-order sequence.
func (s *Sequence[T]) rotateUp(x *Node[T]) {
	p := x.parent
	g := p.parent

	if p.left == x {
		p.left = x.right
		if x.right != nil {
			x.right.parent = p
		}
		x.right = p
	} else {
		p.right = x.left
		if x.left != nil {
			x.left.parent = p
		}
		x.left = p
	}
	p.parent = x
	x.parent = g

	switch {
	case g == nil:
		s.root = x
	case g.left == p:
		g.left = x
	default:
		g.right = x
	}
}

func leftmost[T any](n *Node[T]) *Node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func rightmost[T any](n *Node[T]) *Node[T] {
	for n.right != nil {
		n = n.right
	}
	return n
}
