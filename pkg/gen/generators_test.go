package gen

import (
	"testing"

	"github.com/matzehuels/graphgen/pkg/graph"
	"github.com/matzehuels/graphgen/pkg/stream"
)

func drive(g Generator, steps int) {
	g.Begin()
	for i := 0; i < steps && g.NextEvents(); i++ {
	}
	g.End()
}

func TestFullGeneratorBuildsCompleteGraph(t *testing.T) {
	collected := graph.New("k4")
	g := NewFullGenerator(collected)
	drive(g, 3)

	if collected.NodeCount() != 4 {
		t.Errorf("nodes = %d, want 4", collected.NodeCount())
	}
	// K4 has 6 edges.
	if collected.EdgeCount() != 6 {
		t.Errorf("edges = %d, want 6", collected.EdgeCount())
	}
	for _, n := range collected.Nodes() {
		if n.Degree() != 3 {
			t.Errorf("node %s degree = %d, want 3", n.ID, n.Degree())
		}
	}
}

func TestRandomGeneratorDeterminism(t *testing.T) {
	run := func() []stream.Event {
		rec := stream.NewRecorder()
		g := NewRandomGenerator(rec, 3)
		g.AddEdgeAttributeUnit("weight")
		g.SetRandomSeed(42)
		drive(g, 50)
		return rec.Events()
	}

	first := run()
	second := run()
	if len(first) != len(second) {
		t.Fatalf("runs emitted %d and %d events", len(first), len(second))
	}
	for i := range first {
		if first[i].String() != second[i].String() {
			t.Errorf("event %d differs: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestRandomGeneratorDegree(t *testing.T) {
	collected := graph.New("random")
	g := NewRandomGenerator(collected, 2)
	g.SetRandomSeed(7)
	drive(g, 200)

	if collected.NodeCount() != 201 {
		t.Fatalf("nodes = %d, want 201", collected.NodeCount())
	}
	// With average degree 2 each step attempts one link; duplicates may be
	// skipped, so allow slack below the upper bound.
	if e := collected.EdgeCount(); e < 130 || e > 200 {
		t.Errorf("edges = %d, want roughly 200", e)
	}
}

func TestRandomGeneratorRestart(t *testing.T) {
	rec := stream.NewRecorder()
	g := NewRandomGenerator(rec, 2)
	g.SetRandomSeed(11)
	drive(g, 20)
	first := make([]stream.Event, rec.Len())
	copy(first, rec.Events())

	rec.Reset()
	g.SetRandomSeed(11)
	drive(g, 20)

	if rec.Len() != len(first) {
		t.Fatalf("restart emitted %d events, want %d", rec.Len(), len(first))
	}
	for i, e := range rec.Events() {
		if e.String() != first[i].String() {
			t.Errorf("event %d differs after restart: %v vs %v", i, e, first[i])
		}
	}
}

func TestGridGenerator(t *testing.T) {
	collected := graph.New("grid")
	g := NewGridGenerator(collected)
	drive(g, 2)

	// 3x3 grid: 9 nodes, 12 edges.
	if collected.NodeCount() != 9 {
		t.Errorf("nodes = %d, want 9", collected.NodeCount())
	}
	if collected.EdgeCount() != 12 {
		t.Errorf("edges = %d, want 12", collected.EdgeCount())
	}

	corner := collected.Node("0_0")
	if corner == nil || corner.Degree() != 2 {
		t.Errorf("corner degree = %v, want 2", corner)
	}
	center := collected.Node("1_1")
	if center == nil || center.Degree() != 4 {
		t.Errorf("center degree = %v, want 4", center)
	}

	xy, ok := center.Attrs["xy"].([]float64)
	if !ok || xy[0] != 1 || xy[1] != 1 {
		t.Errorf("center position = %v, want [1 1]", center.Attrs["xy"])
	}
}

func TestGridGeneratorTorus(t *testing.T) {
	collected := graph.New("torus")
	g := NewGridGenerator(collected)
	g.SetTorus(true)
	drive(g, 2)

	// 3x3 torus: 12 grid edges plus 6 wrap edges, every node degree 4.
	if collected.EdgeCount() != 18 {
		t.Errorf("edges = %d, want 18", collected.EdgeCount())
	}
	for _, n := range collected.Nodes() {
		if n.Degree() != 4 {
			t.Errorf("node %s degree = %d, want 4", n.ID, n.Degree())
		}
	}
}

func TestGridGeneratorTorusRewrap(t *testing.T) {
	collected := graph.New("torus")
	g := NewGridGenerator(collected)
	g.SetTorus(true)
	drive(g, 3)

	// Growing to 4x4 drops the 3x3 wrap edges and closes the new borders:
	// 24 grid edges plus 8 wrap edges.
	if collected.EdgeCount() != 32 {
		t.Errorf("edges = %d, want 32", collected.EdgeCount())
	}
	if n := collected.Node("3_3"); n == nil || n.Degree() != 4 {
		t.Errorf("new corner degree = %v, want 4", n)
	}
}

func TestGeneratorsSatisfyInterface(t *testing.T) {
	var _ Generator = NewFullGenerator(nil)
	var _ Generator = NewRandomGenerator(nil, 1)
	var _ Generator = NewGridGenerator(nil)
}
