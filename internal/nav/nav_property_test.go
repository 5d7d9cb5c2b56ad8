package nav

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"pgregory.net/rapid"

	"github.com/Vaaaaal/flyout-menu-control/internal/content"
	"github.com/Vaaaaal/flyout-menu-control/internal/transition"
	"github.com/Vaaaaal/flyout-menu-control/internal/tree"
)

// TestHistoryStaysValidRootPath drives the orchestrator with random request
// sequences over random forests and checks that the history is always the
// exact ancestor path of its deepest element.
func TestHistoryStaysValidRootPath(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 20).Draw(t, "nodes")
		records := make([]content.Record, 0, n)
		ids := make([]string, 0, n)
		for i := 0; i < n; i++ {
			id := fmt.Sprintf("n%d", i)
			parent := ""
			if i > 0 && rapid.Bool().Draw(t, fmt.Sprintf("hasParent%d", i)) {
				parent = ids[rapid.IntRange(0, i-1).Draw(t, fmt.Sprintf("parent%d", i))]
			}
			records = append(records, content.Record{
				ID: id, ParentID: parent, Kind: content.KindFolder, Name: id,
			})
			ids = append(ids, id)
		}
		index, err := tree.Build(records)
		if err != nil {
			t.Fatalf("build index: %v", err)
		}

		noop := transition.Func(func(context.Context, transition.Request) error { return nil })
		o := NewOrchestrator(Options{Index: index, Executor: noop})
		resolver := NewResolver(index)

		ops := rapid.IntRange(1, 30).Draw(t, "ops")
		for i := 0; i < ops; i++ {
			target := ids[rapid.IntRange(0, n-1).Draw(t, fmt.Sprintf("target%d", i))]
			switch rapid.IntRange(0, 2).Draw(t, fmt.Sprintf("op%d", i)) {
			case 0:
				if err := o.NavigateTo(context.Background(), target); err != nil {
					t.Fatalf("navigate %q: %v", target, err)
				}
			case 1:
				if err := o.CloseNode(context.Background(), target); err != nil {
					t.Fatalf("close %q: %v", target, err)
				}
			default:
				if err := o.CloseAll(context.Background()); err != nil {
					t.Fatalf("close all: %v", err)
				}
			}

			history := o.History().Snapshot()
			if len(history) == 0 {
				continue
			}
			path, err := resolver.ResolvePath(history[len(history)-1])
			if err != nil {
				t.Fatalf("resolve %q: %v", history[len(history)-1], err)
			}
			if !reflect.DeepEqual(history, path) {
				t.Fatalf("history %v is not the ancestor path %v", history, path)
			}

			snap := ComputeSnapshot(history)
			if snap.Current != history[len(history)-1] {
				t.Fatalf("current %q does not match history tail %v", snap.Current, history)
			}
			if len(snap.Breadcrumb) != len(history)-1 {
				t.Fatalf("breadcrumb %v inconsistent with history %v", snap.Breadcrumb, history)
			}
		}
	})
}
