// Package tree provides the read-only index over menu records that the
// navigation core queries. The index is built once per content snapshot and
// never mutated afterwards.
package tree

import (
	"fmt"

	"github.com/Vaaaaal/flyout-menu-control/internal/content"
)

// Kind mirrors content.Kind for indexed nodes.
type Kind int

const (
	Folder Kind = iota
	Leaf
)

func (k Kind) String() string {
	if k == Leaf {
		return "leaf"
	}
	return "folder"
}

// Node is one navigable unit. A ParentID of "" marks a root node.
type Node struct {
	ID       string
	ParentID string
	Kind     Kind
	Name     string
	Title    string
}

// Index holds lookup tables over an immutable content snapshot.
type Index struct {
	nodes    map[string]Node
	byName   map[string]string
	children map[string][]string
	roots    []string
}

// Build constructs an index from validated content records. Child order
// follows record order, which is the order the CMS export lists entries in.
func Build(records []content.Record) (*Index, error) {
	idx := &Index{
		nodes:    make(map[string]Node, len(records)),
		byName:   make(map[string]string, len(records)),
		children: make(map[string][]string),
	}
	for _, rec := range records {
		if _, dup := idx.nodes[rec.ID]; dup {
			return nil, fmt.Errorf("duplicate node id %q", rec.ID)
		}
		kind := Folder
		if rec.Kind == content.KindLeaf {
			kind = Leaf
		}
		idx.nodes[rec.ID] = Node{
			ID:       rec.ID,
			ParentID: rec.ParentID,
			Kind:     kind,
			Name:     rec.Name,
			Title:    rec.Title,
		}
		if rec.Name != "" {
			if _, taken := idx.byName[rec.Name]; !taken {
				idx.byName[rec.Name] = rec.ID
			}
		}
		if rec.ParentID == "" {
			idx.roots = append(idx.roots, rec.ID)
		} else {
			idx.children[rec.ParentID] = append(idx.children[rec.ParentID], rec.ID)
		}
	}
	return idx, nil
}

// FindByID looks up a node by identifier. Identifiers are case-sensitive.
func (idx *Index) FindByID(id string) (Node, bool) {
	node, ok := idx.nodes[id]
	return node, ok
}

// FindByName looks up a node by its CMS name. Exact match only; when names
// collide the first record wins.
func (idx *Index) FindByName(name string) (Node, bool) {
	id, ok := idx.byName[name]
	if !ok {
		return Node{}, false
	}
	return idx.nodes[id], true
}

// ChildrenOf returns the ordered children of a node. Unknown IDs and leaves
// yield nil.
func (idx *Index) ChildrenOf(id string) []Node {
	ids := idx.children[id]
	if len(ids) == 0 {
		return nil
	}
	nodes := make([]Node, 0, len(ids))
	for _, child := range ids {
		nodes = append(nodes, idx.nodes[child])
	}
	return nodes
}

// Roots returns the top-level nodes in record order.
func (idx *Index) Roots() []Node {
	nodes := make([]Node, 0, len(idx.roots))
	for _, id := range idx.roots {
		nodes = append(nodes, idx.nodes[id])
	}
	return nodes
}

// Len reports the number of indexed nodes.
func (idx *Index) Len() int {
	return len(idx.nodes)
}
