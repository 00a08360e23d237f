package pack

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

type treeNode struct {
	dirs  map[string]*treeNode
	files []string
}

func newTreeNode() *treeNode {
	return &treeNode{dirs: map[string]*treeNode{}}
}

func (n *treeNode) insert(parts []string) {
	if len(parts) == 1 {
		n.files = append(n.files, parts[0])
		return
	}
	child, ok := n.dirs[parts[0]]
	if !ok {
		child = newTreeNode()
		n.dirs[parts[0]] = child
	}
	child.insert(parts[1:])
}

// Tree renders the selected entries as a tree rooted at the project
// directory's base name, for previewing what an archive would contain.
func Tree(root string, entries []Entry) string {
	top := newTreeNode()
	for _, entry := range entries {
		top.insert(strings.Split(entry.Name, "/"))
	}

	var b strings.Builder
	b.WriteString(filepath.Base(root) + "/\n")
	renderTree(&b, top, "")
	return b.String()
}

// renderTree writes one level of the tree: directories first, then files,
// each group sorted case-insensitively.
func renderTree(b *strings.Builder, n *treeNode, prefix string) {
	names := make([]string, 0, len(n.dirs))
	for name := range n.dirs {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})

	files := append([]string(nil), n.files...)
	sort.Slice(files, func(i, j int) bool {
		return strings.ToLower(files[i]) < strings.ToLower(files[j])
	})

	total := len(names) + len(files)
	for i, name := range names {
		connector, extension := "├── ", "│   "
		if i == total-1 {
			connector, extension = "└── ", "    "
		}
		fmt.Fprintf(b, "%s%s%s/\n", prefix, connector, name)
		renderTree(b, n.dirs[name], prefix+extension)
	}
	for i, name := range files {
		connector := "├── "
		if len(names)+i == total-1 {
			connector = "└── "
		}
		fmt.Fprintf(b, "%s%s%s\n", prefix, connector, name)
	}
}
