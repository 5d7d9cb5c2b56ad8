package nav

import (
	"reflect"
	"testing"
)

func TestDiverge(t *testing.T) {
	cases := []struct {
		name    string
		history []string
		path    []string
		want    Divergence
	}{
		{
			name:    "empty history opens full path",
			history: nil,
			path:    []string{"a", "b", "c"},
			want:    Divergence{CommonPrefix: 0, ToOpen: []string{"a", "b", "c"}},
		},
		{
			name:    "sibling branch swaps the tail",
			history: []string{"a", "b"},
			path:    []string{"a", "c"},
			want:    Divergence{CommonPrefix: 1, ToClose: []string{"b"}, ToOpen: []string{"c"}},
		},
		{
			name:    "descend keeps everything open",
			history: []string{"a", "b"},
			path:    []string{"a", "b", "c"},
			want:    Divergence{CommonPrefix: 2, ToOpen: []string{"c"}},
		},
		{
			name:    "ascend closes the suffix deepest first",
			history: []string{"a", "b", "c"},
			path:    []string{"a"},
			want:    Divergence{CommonPrefix: 1, ToClose: []string{"c", "b"}},
		},
		{
			name:    "disjoint root closes all then opens all",
			history: []string{"a", "b"},
			path:    []string{"x", "y"},
			want:    Divergence{CommonPrefix: 0, ToClose: []string{"b", "a"}, ToOpen: []string{"x", "y"}},
		},
		{
			name:    "identical path is a no-op",
			history: []string{"a", "b"},
			path:    []string{"a", "b"},
			want:    Divergence{CommonPrefix: 2},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Diverge(tc.history, tc.path)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Diverge(%v, %v) = %+v, want %+v", tc.history, tc.path, got, tc.want)
			}
		})
	}
}

func TestDivergeMatchesMiddleOnlyByPrefix(t *testing.T) {
	// "b" appears in both but not at the same depth, so nothing is shared.
	got := Diverge([]string{"a", "b"}, []string{"b", "c"})
	want := Divergence{CommonPrefix: 0, ToClose: []string{"b", "a"}, ToOpen: []string{"b", "c"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Diverge = %+v, want %+v", got, want)
	}
}
