package tree

import (
	"reflect"
	"testing"

	"github.com/Vaaaaal/flyout-menu-control/internal/content"
)

func testRecords() []content.Record {
	return []content.Record{
		{ID: "projects", Kind: content.KindFolder, Name: "projects", Title: "Projects"},
		{ID: "residential", ParentID: "projects", Kind: content.KindFolder, Name: "residential", Title: "Residential"},
		{ID: "villa", ParentID: "residential", Kind: content.KindLeaf, Name: "villa", Title: "Villa"},
		{ID: "public", ParentID: "projects", Kind: content.KindFolder, Name: "public", Title: "Public"},
		{ID: "about", Kind: content.KindFolder, Name: "about", Title: "About"},
	}
}

func TestBuildIndexesNodes(t *testing.T) {
	idx, err := Build(testRecords())
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if idx.Len() != 5 {
		t.Fatalf("expected 5 nodes, got %d", idx.Len())
	}

	node, ok := idx.FindByID("villa")
	if !ok {
		t.Fatal("expected villa to be indexed")
	}
	if node.Kind != Leaf {
		t.Fatalf("expected leaf kind, got %s", node.Kind)
	}
	if node.ParentID != "residential" {
		t.Fatalf("unexpected parent %q", node.ParentID)
	}

	if _, ok := idx.FindByID("Villa"); ok {
		t.Fatal("expected ID lookup to be case-sensitive")
	}
}

func TestBuildRejectsDuplicateIDs(t *testing.T) {
	records := []content.Record{
		{ID: "a", Kind: content.KindFolder, Name: "a"},
		{ID: "a", Kind: content.KindLeaf, Name: "b"},
	}
	if _, err := Build(records); err == nil {
		t.Fatal("expected error for duplicate id")
	}
}

func TestChildrenOfPreservesRecordOrder(t *testing.T) {
	idx, err := Build(testRecords())
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	children := idx.ChildrenOf("projects")
	ids := make([]string, 0, len(children))
	for _, child := range children {
		ids = append(ids, child.ID)
	}
	if !reflect.DeepEqual(ids, []string{"residential", "public"}) {
		t.Fatalf("unexpected child order %v", ids)
	}

	if idx.ChildrenOf("villa") != nil {
		t.Fatal("expected nil children for a leaf")
	}
	if idx.ChildrenOf("missing") != nil {
		t.Fatal("expected nil children for an unknown id")
	}
}

func TestRootsReturnTopLevelNodesInOrder(t *testing.T) {
	idx, err := Build(testRecords())
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	roots := idx.Roots()
	if len(roots) != 2 || roots[0].ID != "projects" || roots[1].ID != "about" {
		t.Fatalf("unexpected roots %#v", roots)
	}
}

func TestFindByNameIsExactAndFirstWins(t *testing.T) {
	records := append(testRecords(), content.Record{
		ID: "about-2", ParentID: "projects", Kind: content.KindLeaf, Name: "about", Title: "Other About",
	})
	idx, err := Build(records)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	node, ok := idx.FindByName("about")
	if !ok {
		t.Fatal("expected name lookup to succeed")
	}
	if node.ID != "about" {
		t.Fatalf("expected first record to win, got %q", node.ID)
	}
	if _, ok := idx.FindByName("abo"); ok {
		t.Fatal("expected exact match only")
	}
	if _, ok := idx.FindByName("About"); ok {
		t.Fatal("expected name lookup to be case-sensitive")
	}
}
