package nav

import (
	"fmt"

	"github.com/Vaaaaal/flyout-menu-control/internal/tree"
)

// Resolver computes ancestor paths against the tree index.
type Resolver struct {
	index *tree.Index
}

// NewResolver wraps an index for path resolution.
func NewResolver(index *tree.Index) *Resolver {
	return &Resolver{index: index}
}

// ResolvePath returns the ordered chain of identifiers from the outermost
// ancestor down to targetID inclusive. Unknown targets return
// ErrUnknownTarget. The parent walk is bounded by the index node count; a
// longer walk means the parent links form a cycle, which is reported as
// ErrCyclicHierarchy rather than looped on. Identifiers are case-sensitive.
func (r *Resolver) ResolvePath(targetID string) ([]string, error) {
	node, ok := r.index.FindByID(targetID)
	if !ok {
		return nil, fmt.Errorf("resolve %q: %w", targetID, ErrUnknownTarget)
	}
	limit := r.index.Len()
	path := make([]string, 0, 4)
	for steps := 0; ; steps++ {
		if steps >= limit {
			return nil, fmt.Errorf("resolve %q: %w", targetID, ErrCyclicHierarchy)
		}
		path = append(path, node.ID)
		if node.ParentID == "" {
			break
		}
		parent, ok := r.index.FindByID(node.ParentID)
		if !ok {
			// Validation guarantees parents resolve; a miss here means the
			// index and the walk disagree about the snapshot.
			return nil, fmt.Errorf("resolve %q: parent %q: %w", targetID, node.ParentID, ErrUnknownTarget)
		}
		node = parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
