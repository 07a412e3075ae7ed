package scan

import (
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/corey/megagrep/internal/ports"
)

// Node is one directory or file in the aggregated result tree. A node owns
// its children exclusively; there are no parent pointers. Count is the sum
// of match counts over all files in the subtree.
type Node struct {
	Name     string
	IsDir    bool
	Count    int
	Keywords *Counter
	children map[string]*Node
}

func newNode(name string, dir bool) *Node {
	return &Node{
		Name:     name,
		IsDir:    dir,
		Keywords: NewCounter(),
		children: make(map[string]*Node),
	}
}

// Tree builds the directory tree from the aggregate's per-file counts.
// Files insert in first-seen order and counts merge associatively, so the
// result does not depend on input traversal order beyond ranking tie-breaks.
func (a *Aggregate) Tree(rootName string) *Node {
	if rootName == "" {
		rootName = "."
	}
	root := newNode(rootName, true)
	for _, file := range a.Files.Keys() {
		parts := strings.Split(path.Clean(filepath.ToSlash(file)), "/")
		root.insert(parts, a.Files.Count(file), a.perFile[file])
	}
	return root
}

// insert adds a file's count and keywords to every node along its path.
func (n *Node) insert(parts []string, count int, kws *Counter) {
	n.Count += count
	n.Keywords.Merge(kws)
	if len(parts) == 0 {
		return
	}
	name := parts[0]
	child := n.children[name]
	if child == nil {
		child = newNode(name, len(parts) > 1)
		n.children[name] = child
	}
	child.insert(parts[1:], count, kws)
}

// Children returns directories first, then files, each alphabetically —
// the same order a filesystem listing renders.
func (n *Node) Children() []*Node {
	var dirs, files []*Node
	for _, c := range n.children {
		if c.IsDir {
			dirs = append(dirs, c)
		} else {
			files = append(files, c)
		}
	}
	sort.Slice(dirs, func(i, j int) bool { return dirs[i].Name < dirs[j].Name })
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return append(dirs, files...)
}

// TopKeywords returns the k most frequent keywords in this subtree, ranked
// the same way as the global keyword ranking.
func (n *Node) TopKeywords(k int) []ports.RankEntry {
	return n.Keywords.Top(k)
}
