package tree

import "strings"

// Node is one directory or file in a path tree. Children keep the order in
// which their names were first seen.
type Node struct {
	Name     string
	IsLeaf   bool
	Children []*Node
}

// Line is one row of a flattened tree, ready for display.
type Line struct {
	Text   string
	Path   string
	Depth  int
	IsLeaf bool
}

const (
	branchGlyph     = "├─ "
	lastBranchGlyph = "└─ "
	indentStep      = "  "
)

// Build converts an ordered list of relative paths into a tree under a
// synthetic root. Leading separators are stripped, intermediate directories
// are created on first use and reused by later paths, and the final segment
// of every path is marked as a leaf. Output order is determined entirely by
// input order.
func Build(paths []string) *Node {
	root := &Node{}
	for _, path := range paths {
		segments := splitPath(path)
		if len(segments) == 0 {
			continue
		}
		node := root
		for i, segment := range segments {
			child := node.child(segment)
			if child == nil {
				child = &Node{Name: segment}
				node.Children = append(node.Children, child)
			}
			if i == len(segments)-1 {
				child.IsLeaf = true
			}
			node = child
		}
	}
	return root
}

func splitPath(path string) []string {
	parts := strings.Split(strings.TrimPrefix(path, "/"), "/")
	segments := parts[:0]
	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

// child finds an existing child by name. Linear scan is fine at the fan-out
// seen in repository file lists.
func (n *Node) child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Flatten walks the tree depth-first, pre-order, emitting one line per node.
// Indentation grows with depth and the branch glyph reflects whether the node
// is the last of its siblings.
func Flatten(root *Node) []Line {
	if root == nil {
		return nil
	}

	lines := make([]Line, 0, 16)
	var walk func(node *Node, depth int, parentPath string, last bool)
	walk = func(node *Node, depth int, parentPath string, last bool) {
		fullPath := node.Name
		if parentPath != "" {
			fullPath = parentPath + "/" + node.Name
		}

		glyph := branchGlyph
		if last {
			glyph = lastBranchGlyph
		}
		lines = append(lines, Line{
			Text:   strings.Repeat(indentStep, depth) + glyph + node.Name,
			Path:   fullPath,
			Depth:  depth,
			IsLeaf: node.IsLeaf,
		})

		for i, c := range node.Children {
			walk(c, depth+1, fullPath, i == len(node.Children)-1)
		}
	}

	for i, c := range root.Children {
		walk(c, 0, "", i == len(root.Children)-1)
	}
	return lines
}
