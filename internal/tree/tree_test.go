package tree

import (
	"strings"
	"testing"
)

func TestBuildReusesDirectoryNodes(t *testing.T) {
	root := Build([]string{
		"src/app/main.go",
		"src/app/loop.go",
		"src/util.go",
		"README.md",
	})

	if len(root.Children) != 2 {
		t.Fatalf("expected 2 top-level nodes, got %d", len(root.Children))
	}
	src := root.Children[0]
	if src.Name != "src" || src.IsLeaf {
		t.Fatalf("expected non-leaf src first, got %+v", src)
	}
	if len(src.Children) != 2 {
		t.Fatalf("expected src to hold app and util.go, got %d children", len(src.Children))
	}
	app := src.Children[0]
	if app.Name != "app" || len(app.Children) != 2 {
		t.Fatalf("expected app with 2 files, got %+v", app)
	}
	if root.Children[1].Name != "README.md" || !root.Children[1].IsLeaf {
		t.Fatalf("expected README.md leaf last, got %+v", root.Children[1])
	}
}

func TestBuildPreservesFirstSeenOrder(t *testing.T) {
	root := Build([]string{"b/x", "a/y", "b/z"})

	if root.Children[0].Name != "b" || root.Children[1].Name != "a" {
		t.Fatalf("expected first-seen order [b a], got [%s %s]",
			root.Children[0].Name, root.Children[1].Name)
	}
	b := root.Children[0]
	if len(b.Children) != 2 || b.Children[0].Name != "x" || b.Children[1].Name != "z" {
		t.Fatalf("expected b to hold [x z], got %+v", b.Children)
	}
}

func TestBuildStripsLeadingSeparator(t *testing.T) {
	root := Build([]string{"/etc/conf", "etc/other"})

	if len(root.Children) != 1 {
		t.Fatalf("expected leading separator stripped, got %d roots", len(root.Children))
	}
	if len(root.Children[0].Children) != 2 {
		t.Fatalf("expected etc to hold both files, got %d", len(root.Children[0].Children))
	}
}

func TestFlattenReproducesLeafPaths(t *testing.T) {
	paths := []string{
		"cmd/dash/main.go",
		"cmd/dash/flags.go",
		"internal/render/frame.go",
		"internal/render/theme.go",
		"internal/state/scroll.go",
		"go.mod",
	}

	lines := Flatten(Build(paths))

	leaves := make(map[string]bool)
	for _, line := range lines {
		if line.IsLeaf {
			leaves[line.Path] = true
		}
	}
	if len(leaves) != len(paths) {
		t.Fatalf("expected %d leaves, got %d", len(paths), len(leaves))
	}
	for _, p := range paths {
		if !leaves[p] {
			t.Fatalf("leaf path %q missing from flattened output", p)
		}
	}
}

func TestFlattenGlyphsAndIndent(t *testing.T) {
	lines := Flatten(Build([]string{"dir/one.txt", "dir/two.txt", "last.txt"}))

	expect := []string{
		"├─ dir",
		"  ├─ one.txt",
		"  └─ two.txt",
		"└─ last.txt",
	}
	if len(lines) != len(expect) {
		t.Fatalf("expected %d lines, got %d", len(expect), len(lines))
	}
	for i, want := range expect {
		if lines[i].Text != want {
			t.Fatalf("line %d = %q, want %q", i, lines[i].Text, want)
		}
	}
}

func TestFlattenDepthMatchesIndent(t *testing.T) {
	lines := Flatten(Build([]string{"a/b/c/d.txt"}))

	for _, line := range lines {
		indent := len(line.Text) - len(strings.TrimLeft(line.Text, " "))
		if indent != line.Depth*len(indentStep) {
			t.Fatalf("line %q depth %d has indent %d", line.Text, line.Depth, indent)
		}
	}
}
