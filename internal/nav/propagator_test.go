package nav

import (
	"reflect"
	"testing"
)

func TestComputeSnapshot(t *testing.T) {
	snap := ComputeSnapshot([]string{"a", "b", "c"})
	if !reflect.DeepEqual(snap.Active, []string{"a", "b", "c"}) {
		t.Fatalf("unexpected active set %v", snap.Active)
	}
	if snap.Current != "c" {
		t.Fatalf("expected current 'c', got %q", snap.Current)
	}
	if !reflect.DeepEqual(snap.Breadcrumb, []string{"a", "b"}) {
		t.Fatalf("unexpected breadcrumb %v", snap.Breadcrumb)
	}
	if !snap.Contains("b") || snap.Contains("z") {
		t.Fatal("Contains misreported membership")
	}
}

func TestComputeSnapshotEmptyHistory(t *testing.T) {
	snap := ComputeSnapshot(nil)
	if snap.Active != nil || snap.Current != "" || snap.Breadcrumb != nil {
		t.Fatalf("expected zero snapshot, got %+v", snap)
	}
}

func TestComputeSnapshotSingleNode(t *testing.T) {
	snap := ComputeSnapshot([]string{"a"})
	if snap.Current != "a" {
		t.Fatalf("expected current 'a', got %q", snap.Current)
	}
	if len(snap.Breadcrumb) != 0 {
		t.Fatalf("expected empty breadcrumb, got %v", snap.Breadcrumb)
	}
}

func TestSnapshotBreadcrumbDetachedFromActive(t *testing.T) {
	snap := ComputeSnapshot([]string{"a", "b", "c"})
	grown := append(snap.Breadcrumb, "x")
	if snap.Active[2] != "c" {
		t.Fatalf("appending to breadcrumb clobbered active set: %v", snap.Active)
	}
	if !reflect.DeepEqual(grown, []string{"a", "b", "x"}) {
		t.Fatalf("unexpected grown breadcrumb %v", grown)
	}
}

func TestComputeSnapshotCopiesHistory(t *testing.T) {
	history := []string{"a", "b"}
	snap := ComputeSnapshot(history)
	history[0] = "mutated"
	if snap.Active[0] != "a" {
		t.Fatal("expected snapshot to be detached from the input slice")
	}
}

func TestPublishNotifiesEachSubscriberOnce(t *testing.T) {
	p := NewPropagator()
	var first, second []Snapshot
	p.Subscribe(func(s Snapshot) { first = append(first, s) })
	p.Subscribe(func(s Snapshot) { second = append(second, s) })
	p.Subscribe(nil)

	snap := p.Publish([]string{"a", "b"})
	if snap.Current != "b" {
		t.Fatalf("unexpected published snapshot %+v", snap)
	}
	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("expected exactly one notification per subscriber, got %d/%d", len(first), len(second))
	}
	if !reflect.DeepEqual(first[0], second[0]) {
		t.Fatal("expected subscribers to observe the same snapshot")
	}

	p.Publish(nil)
	if len(first) != 2 || first[1].Current != "" {
		t.Fatalf("expected an empty follow-up snapshot, got %+v", first)
	}
}
