package bptree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tendrilcode/sjson/bptree"
)

// build constructs a Sequence from a string of '(' and ')' characters, in
// the order a depth-first parse would emit them.
func build(t *testing.T, pattern string) *bptree.Sequence {
	t.Helper()
	b := bptree.NewBuilder()
	for _, c := range pattern {
		switch c {
		case '(':
			b.Open()
		case ')':
			b.Close()
		default:
			t.Fatalf("bad pattern char %q", c)
		}
	}
	return b.Build()
}

func TestSingletonRoot(t *testing.T) {
	s := build(t, "()")
	root := s.Root()
	require.Equal(t, bptree.Node(0), root)
	require.Equal(t, bptree.NoNode, s.FirstChild(root))
	require.Equal(t, bptree.NoNode, s.NextSibling(root))
	require.Equal(t, bptree.NoNode, s.Parent(root))
	require.Equal(t, bptree.Node(1), s.FindClose(root))
}

func TestThreeSiblingLeaves(t *testing.T) {
	// ["a","b","c"]: one Array wrapping three leaves.
	s := build(t, "(()()())")
	root := s.Root()
	first := s.FirstChild(root)
	require.Equal(t, bptree.Node(1), first)
	second := s.NextSibling(first)
	require.Equal(t, bptree.Node(3), second)
	third := s.NextSibling(second)
	require.Equal(t, bptree.Node(5), third)
	require.Equal(t, bptree.NoNode, s.NextSibling(third))
	require.Equal(t, root, s.Parent(first))
	require.Equal(t, root, s.Parent(second))
	require.Equal(t, root, s.Parent(third))
}

func TestNestedArray(t *testing.T) {
	// [1,[2,3],4]
	s := build(t, "(()(()())())")
	root := s.Root()
	n1 := s.FirstChild(root)
	require.Equal(t, bptree.Node(1), n1)
	inner := s.NextSibling(n1)
	require.Equal(t, bptree.Node(3), inner)
	n2 := s.FirstChild(inner)
	require.Equal(t, bptree.Node(4), n2)
	n3 := s.NextSibling(n2)
	require.Equal(t, bptree.Node(6), n3)
	require.Equal(t, bptree.NoNode, s.NextSibling(n3))
	n4 := s.NextSibling(inner)
	require.Equal(t, bptree.Node(9), n4)
	require.Equal(t, bptree.NoNode, s.NextSibling(n4))

	require.Equal(t, inner, s.Parent(n2))
	require.Equal(t, inner, s.Parent(n3))
	require.Equal(t, root, s.Parent(inner))
	require.Equal(t, root, s.Parent(n4))
}

func TestFindOpenIsInverseOfFindClose(t *testing.T) {
	s := build(t, "(()(()())())")
	for i := 0; i < s.Len(); i++ {
		if !s.IsOpen(i2node(i)) {
			continue
		}
		closePos := s.FindClose(i2node(i))
		require.NotEqual(t, bptree.NoNode, closePos)
		require.Equal(t, i2node(i), s.FindOpen(closePos))
	}
}

func i2node(i int) bptree.Node { return bptree.Node(i) }

func TestDeepNestingCrossesBlockBoundary(t *testing.T) {
	// Build a sequence deep enough to span several 256-bit aggregate
	// blocks, to exercise the block-skip path in find-close/find-open.
	depth := 2000
	pattern := make([]byte, 0, depth*2)
	for i := 0; i < depth; i++ {
		pattern = append(pattern, '(')
	}
	for i := 0; i < depth; i++ {
		pattern = append(pattern, ')')
	}
	s := build(t, string(pattern))

	root := s.Root()
	require.Equal(t, bptree.Node(2*depth-1), s.FindClose(root))

	// Walk first_child all the way down, then verify find_open inverts
	// find_close at every level.
	cur := root
	depthCount := 0
	for {
		child := s.FirstChild(cur)
		if child == bptree.NoNode {
			break
		}
		cur = child
		depthCount++
	}
	require.Equal(t, depth, depthCount)

	for i := 0; i < s.Len(); i++ {
		if s.IsOpen(bptree.Node(i)) {
			c := s.FindClose(bptree.Node(i))
			require.Equal(t, bptree.Node(i), s.FindOpen(c))
		}
	}
}

func TestWideSiblingsCrossBlockBoundary(t *testing.T) {
	count := 600
	pattern := make([]byte, 0, (count+1)*2)
	pattern = append(pattern, '(')
	for i := 0; i < count; i++ {
		pattern = append(pattern, '(', ')')
	}
	pattern = append(pattern, ')')
	s := build(t, string(pattern))

	root := s.Root()
	cur := s.FirstChild(root)
	require.NotEqual(t, bptree.NoNode, cur)
	seen := 1
	for {
		next := s.NextSibling(cur)
		if next == bptree.NoNode {
			break
		}
		require.Equal(t, root, s.Parent(next))
		cur = next
		seen++
	}
	require.Equal(t, count, seen)
}
