package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/graphgen/pkg/graph"
)

func buildSample() *graph.Graph {
	g := graph.New("sample")
	g.AddNode("a").Attrs["weight"] = 1.5
	g.AddNode("b")
	g.AddEdge("a_b", "a", "b", true).Attrs["label"] = "a_b"
	return g
}

func TestRoundTrip(t *testing.T) {
	g := buildSample()

	var buf bytes.Buffer
	if err := Write(g, &buf); err != nil {
		t.Fatalf("Write: %v", err)
	}

	back, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if back.ID() != "sample" {
		t.Errorf("ID = %q, want sample", back.ID())
	}
	if back.NodeCount() != 2 || back.EdgeCount() != 1 {
		t.Errorf("counts = %d, %d, want 2, 1", back.NodeCount(), back.EdgeCount())
	}
	if back.Node("a").Attrs["weight"] != 1.5 {
		t.Errorf("node attr = %v, want 1.5", back.Node("a").Attrs["weight"])
	}
	e := back.Edge("a_b")
	if e == nil || !e.Directed || e.From != "a" || e.To != "b" {
		t.Errorf("edge = %+v", e)
	}
	if e.Attrs["label"] != "a_b" {
		t.Errorf("edge attr = %v", e.Attrs["label"])
	}
}

func TestMarshalDeterministic(t *testing.T) {
	first, err := Marshal(buildSample())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	second, err := Marshal(buildSample())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("Marshal output should be deterministic")
	}
}

func TestReadToleratesDanglingEdges(t *testing.T) {
	in := `{"nodes":[{"id":"a"}],"edges":[{"id":"a_x","from":"a","to":"x"}]}`
	g, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !g.HasNode("x") {
		t.Error("missing endpoint should be created on import")
	}
	if g.EdgeCount() != 1 {
		t.Errorf("edges = %d, want 1", g.EdgeCount())
	}
}

func TestReadRejectsMalformedJSON(t *testing.T) {
	if _, err := Read(strings.NewReader("{not json")); err == nil {
		t.Error("expected decode error")
	}
}

func TestReadRejectsInvalidIDs(t *testing.T) {
	cases := []string{
		`{"nodes":[{"id":""}],"edges":[]}`,
		"{\"nodes\":[{\"id\":\"a\x00b\"}],\"edges\":[]}",
		`{"nodes":[{"id":"a"}],"edges":[{"id":"","from":"a","to":"a"}]}`,
	}
	for _, in := range cases {
		if _, err := Read(strings.NewReader(in)); err == nil {
			t.Errorf("expected id validation error for %s", in)
		}
	}
}
