package content

import (
	"errors"
	"strings"
	"testing"
)

func TestDecodeParsesExport(t *testing.T) {
	data := []byte(`[
		{"id": "projects", "kind": "folder", "name": "projects", "title": "Projects"},
		{"id": "villa", "parentId": "projects", "kind": "leaf", "name": "villa", "title": "Villa"}
	]`)
	records, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[1].ParentID != "projects" || records[1].Kind != KindLeaf {
		t.Fatalf("unexpected record %#v", records[1])
	}
}

func TestDecodeRejectsMalformedJSON(t *testing.T) {
	if _, err := Decode([]byte(`{"not": "a list"`)); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		records []Record
		wantErr string
	}{
		{
			name: "valid",
			records: []Record{
				{ID: "a", Kind: KindFolder},
				{ID: "b", ParentID: "a", Kind: KindLeaf},
			},
		},
		{
			name:    "empty id",
			records: []Record{{Kind: KindFolder}},
			wantErr: "empty id",
		},
		{
			name: "duplicate id",
			records: []Record{
				{ID: "a", Kind: KindFolder},
				{ID: "a", Kind: KindLeaf},
			},
			wantErr: "duplicate id",
		},
		{
			name:    "unknown kind",
			records: []Record{{ID: "a", Kind: "page"}},
			wantErr: "unknown kind",
		},
		{
			name:    "self parent",
			records: []Record{{ID: "a", ParentID: "a", Kind: KindFolder}},
			wantErr: "its own parent",
		},
		{
			name:    "dangling parent",
			records: []Record{{ID: "a", ParentID: "ghost", Kind: KindFolder}},
			wantErr: "does not exist",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.records)
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("expected valid records, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tc.wantErr)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %q", tc.wantErr, err)
			}
		})
	}
}
