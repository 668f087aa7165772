package scene

import (
	"fmt"

	"scenetrace/internal/geometry"
	"scenetrace/internal/mathutil"
)

// Node is one element of the scene tree. A parent owns its children by
// value; the tree is built once and is read-only while rendering.
type Node struct {
	ID        uint32
	Name      string
	Transform mathutil.Affine
	Material  Material
	Primitive geometry.Primitive
	Children  []Node
}

// NewNode returns an empty node with an identity transform.
func NewNode(id uint32, name string) Node {
	return Node{ID: id, Name: name, Transform: mathutil.Identity()}
}

func (n *Node) AddChild(child Node) {
	n.Children = append(n.Children, child)
}

// Scale applies a non-uniform scale after the current transform.
func (n *Node) Scale(x, y, z float64) error {
	t, err := n.Transform.Scale(x, y, z)
	if err != nil {
		return fmt.Errorf("scene: node %q: %w", n.Name, err)
	}
	n.Transform = t
	return nil
}

// Translate applies a translation after the current transform.
func (n *Node) Translate(x, y, z float64) {
	n.Transform = n.Transform.Translate(x, y, z)
}

// Rotate applies a rotation of deg degrees about axis "x", "y" or "z".
func (n *Node) Rotate(axis string, deg float64) error {
	t, err := n.Transform.Rotate(axis, deg)
	if err != nil {
		return fmt.Errorf("scene: node %q: %w", n.Name, err)
	}
	n.Transform = t
	return nil
}

// Intersect returns the nearest hit of r, given in the parent's frame,
// against this node and its subtree. Candidates are ranked by squared
// distance from the local ray origin rather than by t, because t values
// from differently scaled children are not comparable.
func (n *Node) Intersect(r geometry.Ray) (Intersection, bool) {
	lr := r.Transform(n.Transform.Inverse)

	var best Intersection
	bestDist := 0.0
	found := false

	if h, ok := n.Primitive.Collide(lr); ok {
		best = Intersection{
			T:      h.T,
			Point:  lr.At(h.T),
			Normal: h.Normal,
			Node:   n,
			U:      h.U,
			V:      h.V,
		}
		bestDist = best.Point.Sub(lr.Src).LenSqr()
		found = true
	}

	for i := range n.Children {
		hit, ok := n.Children[i].Intersect(lr)
		if !ok {
			continue
		}
		d := hit.Point.Sub(lr.Src).LenSqr()
		if !found || d < bestDist {
			best, bestDist, found = hit, d, true
		}
	}

	if !found {
		return Intersection{}, false
	}
	return best.toParent(n.Transform), true
}

// Walk visits the subtree depth-first, parents before children, passing
// each node's transform composed with its ancestors'.
func (n *Node) Walk(fn func(node *Node, depth int, world mathutil.Affine)) {
	n.walk(fn, 0, mathutil.Identity())
}

func (n *Node) walk(fn func(*Node, int, mathutil.Affine), depth int, parent mathutil.Affine) {
	world := parent.Compose(n.Transform)
	fn(n, depth, world)
	for i := range n.Children {
		n.Children[i].walk(fn, depth+1, world)
	}
}

// Count returns the number of nodes in the subtree.
func (n *Node) Count() int {
	c := 1
	for i := range n.Children {
		c += n.Children[i].Count()
	}
	return c
}
