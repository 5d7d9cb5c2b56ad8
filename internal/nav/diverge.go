package nav

// Divergence describes how the open chain must change to reach a new path:
// ToClose lists panels to shut deepest-first, ToOpen lists panels to open
// outermost-first.
type Divergence struct {
	CommonPrefix int
	ToClose      []string
	ToOpen       []string
}

// Diverge compares the current history against a resolved target path. The
// common prefix stays open; the remainder of the history closes innermost
// first and the remainder of the path opens outermost first. Equal inputs
// produce an empty instruction set, which makes repeated requests for the
// already-current panel idempotent.
func Diverge(history, path []string) Divergence {
	k := 0
	for k < len(history) && k < len(path) && history[k] == path[k] {
		k++
	}
	div := Divergence{CommonPrefix: k}
	if n := len(history) - k; n > 0 {
		div.ToClose = make([]string, 0, n)
		for i := len(history) - 1; i >= k; i-- {
			div.ToClose = append(div.ToClose, history[i])
		}
	}
	if n := len(path) - k; n > 0 {
		div.ToOpen = make([]string, 0, n)
		div.ToOpen = append(div.ToOpen, path[k:]...)
	}
	return div
}
