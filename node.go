package main

import "math"

// DiagonalCost is the cost of a diagonal step
const DiagonalCost = math.Sqrt2

// compass lists the 8 neighbor offsets in a fixed order:
//
//	1 2 3
//	4 X 5
//	6 7 8
var compass = [8]Point{
	{-1, 1}, {0, 1}, {1, 1},
	{-1, 0}, {1, 0},
	{-1, -1}, {0, -1}, {1, -1},
}

// stepCost returns 1 for orthogonal moves and DiagonalCost for diagonal ones
func stepCost(offset Point) float64 {
	if offset.X != 0 && offset.Y != 0 {
		return DiagonalCost
	}
	return 1
}

// Neighbor is a legal move out of a node
type Neighbor struct {
	Point Point
	Cost  float64
}

// Node is a lattice vertex plus its search bookkeeping. Parent is a store
// key; HasParent is false only for the start node.
type Node struct {
	Point     Point
	G         float64
	F         float64
	Parent    Point
	HasParent bool
	Closed    bool
	Index     int // Index in the heap, -1 when not in OPEN
	seq       int // insertion order, last-resort tie break

	neighbors []Neighbor
	expanded  bool
}

// NodeStore maps coordinates to node state. Every coordinate has at most one
// Node, whatever path reached it.
type NodeStore struct {
	nodes map[Point]*Node
	seq   int
}

// NewNodeStore creates an empty store
func NewNodeStore() *NodeStore {
	return &NodeStore{nodes: make(map[Point]*Node)}
}

// Get returns the node at p, if any
func (s *NodeStore) Get(p Point) (*Node, bool) {
	n, ok := s.nodes[p]
	return n, ok
}

// Create adds a fresh node at p. The caller must know p is absent.
func (s *NodeStore) Create(p Point, g float64) *Node {
	s.seq++
	n := &Node{Point: p, G: g, Index: -1, seq: s.seq}
	s.nodes[p] = n
	return n
}

// Len returns the number of nodes discovered so far
func (s *NodeStore) Len() int {
	return len(s.nodes)
}

// Chain walks the predecessor links from p back to the start and returns the
// points in start-to-p order.
func (s *NodeStore) Chain(p Point) []Point {
	path := []Point{}
	for {
		n, ok := s.nodes[p]
		if !ok {
			break
		}
		path = append(path, n.Point)
		if !n.HasParent {
			break
		}
		p = n.Parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Neighbors returns the cached legal moves of n, generating them on first use
func (n *Node) Neighbors(e expander) []Neighbor {
	if !n.expanded {
		n.neighbors = e.expand(n.Point)
		n.expanded = true
	}
	return n.neighbors
}
