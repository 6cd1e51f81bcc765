package gen

import (
	"math/rand"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/matzehuels/graphgen/pkg/graph"
	"github.com/matzehuels/graphgen/pkg/stream"
)

func TestSourceIDFormat(t *testing.T) {
	b := NewBase(nil)
	id := b.SourceID()
	if !strings.HasPrefix(id, "generator-") {
		t.Fatalf("source ID = %q, want generator- prefix", id)
	}
	if len(id) != len("generator-")+8 {
		t.Errorf("source ID = %q, want 8 hex digits after prefix", id)
	}
}

func TestSourceIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewBase(nil).SourceID()
		if seen[id] {
			t.Fatalf("source ID %q assigned twice", id)
		}
		seen[id] = true
	}
}

func TestDeterminism(t *testing.T) {
	run := func() []stream.Event {
		rec := stream.NewRecorder()
		b := NewBase(rec)
		b.SetRandomSeed(42)
		b.SetDirectedEdges(true, true)
		b.AddNodeAttributeRange("weight", 0, 10)
		b.AddEdgeAttributeUnit("cost")
		for i := 0; i < 20; i++ {
			b.AddNode(strconv.Itoa(i))
			if i > 0 {
				b.AddEdge("", strconv.Itoa(i), strconv.Itoa(i-1))
			}
		}
		return rec.Events()
	}

	first := run()
	second := run()
	if len(first) != len(second) {
		t.Fatalf("runs emitted %d and %d events", len(first), len(second))
	}
	for i := range first {
		if first[i].Type != second[i].Type || first[i].ElementID != second[i].ElementID ||
			first[i].Name != second[i].Name || first[i].Value != second[i].Value ||
			first[i].From != second[i].From || first[i].To != second[i].To {
			t.Errorf("event %d differs: %v vs %v", i, first[i], second[i])
		}
	}
}

// TestEdgeDrawOrder checks the draw protocol against a reference stream:
// with random orientation on, AddEdge consumes the orientation draw first,
// then one draw per registered edge attribute.
func TestEdgeDrawOrder(t *testing.T) {
	rec := stream.NewRecorder()
	b := NewBase(rec)
	b.SetRandomSeed(7)
	b.SetDirectedEdges(true, true)
	b.AddEdgeAttributeRange("weight", 2, 4)

	b.AddEdge("", "a", "b")

	ref := rand.New(rand.NewSource(7))
	orientDraw := ref.Float64()
	attrDraw := ref.Float64()

	events := rec.Events()
	if len(events) != 2 {
		t.Fatalf("emitted %d events, want 2", len(events))
	}

	edge := events[0]
	wantFrom, wantTo := "a", "b"
	if orientDraw > 0.5 {
		wantFrom, wantTo = "b", "a"
	}
	if edge.From != wantFrom || edge.To != wantTo {
		t.Errorf("orientation = %s->%s, want %s->%s", edge.From, edge.To, wantFrom, wantTo)
	}

	wantWeight := 2 + 2*attrDraw
	if events[1].Value != wantWeight {
		t.Errorf("weight = %v, want %v", events[1].Value, wantWeight)
	}
}

// TestUndirectedEdgeConsumesNoOrientationDraw checks that without random
// orientation the first draw goes straight to the attribute factory.
func TestUndirectedEdgeConsumesNoOrientationDraw(t *testing.T) {
	rec := stream.NewRecorder()
	b := NewBase(rec)
	b.SetRandomSeed(7)
	b.AddEdgeAttributeUnit("weight")

	b.AddEdge("", "a", "b")

	ref := rand.New(rand.NewSource(7))
	want := ref.Float64()

	events := rec.Events()
	if events[0].From != "a" || events[0].To != "b" {
		t.Errorf("undirected edge must keep endpoint order, got %s->%s", events[0].From, events[0].To)
	}
	if events[1].Value != want {
		t.Errorf("weight = %v, want %v (no orientation draw expected)", events[1].Value, want)
	}
}

func TestDirectedToggleQuirk(t *testing.T) {
	rec := stream.NewRecorder()
	b := NewBase(rec)
	b.SetRandomSeed(7)
	b.SetDirectedEdges(true, true)

	// Disabling directed edges does not clear the random orientation; it is
	// sidelined and reactivates when directed edges come back.
	b.SetDirectedEdges(false, false)
	b.AddEdge("", "a", "b")
	if rec.Events()[0].Directed {
		t.Error("edge should be undirected after disabling")
	}
	if rec.Events()[0].From != "a" {
		t.Error("undirected edge must not consume an orientation draw")
	}

	b.SetDirectedEdges(true, false)
	rec.Reset()
	ref := rand.New(rand.NewSource(7))
	b.SetRandomSeed(7)
	b.AddEdge("", "a", "b")
	wantSwap := ref.Float64() > 0.5
	swapped := rec.Events()[0].From == "b"
	if swapped != wantSwap {
		t.Errorf("swap = %v, want %v: random orientation should be live again", swapped, wantSwap)
	}
}

func TestRangeLaw(t *testing.T) {
	rec := stream.NewRecorder()
	b := NewBase(rec)
	b.SetRandomSeed(1)
	b.AddNodeAttributeRange("v", 5, 10)

	for i := 0; i < 1000; i++ {
		b.AddNode(strconv.Itoa(i))
	}
	for _, e := range rec.Events() {
		if e.Type != stream.NodeAttributeAdded {
			continue
		}
		v, ok := e.Value.(float64)
		if !ok {
			t.Fatalf("value type = %T, want float64", e.Value)
		}
		if v < 5 || v >= 10 {
			t.Fatalf("value %v outside [5, 10)", v)
		}
	}
}

func TestDirectionBalance(t *testing.T) {
	rec := stream.NewRecorder()
	b := NewBase(rec)
	b.SetRandomSeed(99)
	b.SetDirectedEdges(true, true)

	const n = 10000
	swapped := 0
	for i := 0; i < n; i++ {
		from := "a" + strconv.Itoa(i)
		b.AddEdge("", from, "b"+strconv.Itoa(i))
		if rec.Events()[i].From != from {
			swapped++
		}
	}
	rate := float64(swapped) / n
	if rate < 0.45 || rate > 0.55 {
		t.Errorf("swap rate = %.3f, want 0.5 ± 0.05", rate)
	}
}

func TestDefaultEdgeID(t *testing.T) {
	rec := stream.NewRecorder()
	b := NewBase(rec)

	id := b.AddEdge("", "a", "b")
	if id != "a_b" {
		t.Errorf("synthesized ID = %q, want a_b", id)
	}
	if rec.Events()[0].ElementID != "a_b" {
		t.Errorf("emitted ID = %q, want a_b", rec.Events()[0].ElementID)
	}
}

func TestDefaultEdgeIDUsesEffectiveEndpoints(t *testing.T) {
	// With random orientation the synthesized ID must reflect the endpoints
	// after a potential swap. Find a seed whose first draw swaps.
	seed := int64(0)
	for {
		if rand.New(rand.NewSource(seed)).Float64() > 0.5 {
			break
		}
		seed++
	}

	rec := stream.NewRecorder()
	b := NewBase(rec)
	b.SetRandomSeed(seed)
	b.SetDirectedEdges(true, true)

	if id := b.AddEdge("", "a", "b"); id != "b_a" {
		t.Errorf("synthesized ID = %q, want b_a for a swapped edge", id)
	}
}

func TestLabelEmission(t *testing.T) {
	rec := stream.NewRecorder()
	b := NewBase(rec)
	b.AddNodeLabels(true)

	b.AddNode("n1")

	events := rec.Events()
	if len(events) != 2 {
		t.Fatalf("emitted %d events, want 2", len(events))
	}
	if events[0].Type != stream.NodeAdded || events[0].ElementID != "n1" {
		t.Errorf("first event = %v", events[0])
	}
	if events[1].Type != stream.NodeAttributeAdded || events[1].Name != "label" || events[1].Value != "n1" {
		t.Errorf("second event = %v, want label n1", events[1])
	}
}

func TestEdgeLabelEmission(t *testing.T) {
	rec := stream.NewRecorder()
	b := NewBase(rec)
	b.AddEdgeLabels(true)
	b.SetUseInternalGraph(true)

	b.AddEdge("e1", "a", "b")

	events := rec.Events()
	if events[1].Type != stream.EdgeAttributeAdded || events[1].Name != "label" || events[1].Value != "e1" {
		t.Errorf("label event = %v", events[1])
	}
	if b.Internal().Edge("e1").Attrs["label"] != "e1" {
		t.Error("edge label should be mirrored")
	}
}

func TestAddNodeAt(t *testing.T) {
	rec := stream.NewRecorder()
	b := NewBase(rec)
	b.AddNodeAttributeUnit("w")
	b.SetUseInternalGraph(true)

	b.AddNodeAt("n", 1.5, -2)

	events := rec.Events()
	// NodeAdded, then the registered attribute, then the position.
	last := events[len(events)-1]
	if last.Name != "xy" {
		t.Fatalf("last event = %v, want xy attribute", last)
	}
	xy, ok := last.Value.([]float64)
	if !ok || len(xy) != 2 || xy[0] != 1.5 || xy[1] != -2 {
		t.Errorf("xy = %v, want [1.5 -2]", last.Value)
	}
	if mirror := b.Internal().Node("n").Attrs["xy"]; mirror == nil {
		t.Error("position should be mirrored")
	}
}

func TestAttributeApplicationOrder(t *testing.T) {
	rec := stream.NewRecorder()
	b := NewBase(rec)
	b.AddNodeAttributeUnit("b")
	b.AddNodeAttributeUnit("a")
	b.AddNodeAttributeUnit("c")
	// Overwriting keeps the original position.
	b.AddNodeAttribute("a", func(*Rand) any { return "fixed" })

	b.AddNode("n")

	var got []string
	for _, e := range rec.Events() {
		if e.Type == stream.NodeAttributeAdded {
			got = append(got, e.Name)
		}
	}
	want := []string{"b", "a", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("attribute order = %v, want %v", got, want)
		}
	}
	if rec.Events()[2].Value != "fixed" {
		t.Errorf("overwritten factory not applied: %v", rec.Events()[2])
	}
}

func TestRemoveAttributeIdempotent(t *testing.T) {
	b := NewBase(nil)
	b.AddNodeAttributeUnit("x")
	b.RemoveNodeAttribute("x")
	b.RemoveNodeAttribute("x") // absent, must not panic
	b.RemoveEdgeAttribute("never-registered")

	rec := stream.NewRecorder()
	b = NewBase(rec)
	b.AddNodeAttributeUnit("x")
	b.RemoveNodeAttribute("x")
	b.AddNode("n")
	if rec.Len() != 1 {
		t.Errorf("removed attribute still applied: %v", rec.Events())
	}
}

func TestMirrorConsistency(t *testing.T) {
	rec := stream.NewRecorder()
	b := NewBase(rec)
	b.SetUseInternalGraph(true)
	b.SetRandomSeed(3)

	for i := 0; i < 10; i++ {
		b.AddNode(strconv.Itoa(i))
	}
	for i := 1; i < 10; i++ {
		b.AddEdge("", strconv.Itoa(i-1), strconv.Itoa(i))
	}
	b.DelNode("4") // also drops edges 3_4 and 4_5
	b.DelEdge("7_8")

	// Replay the events into a fresh graph and compare element sets.
	implied := graph.New("implied")
	rec.Replay(implied)

	mirror := b.Internal()
	if !slices.Equal(mirror.NodeIDs(), implied.NodeIDs()) {
		t.Errorf("mirror nodes = %v, events imply %v", mirror.NodeIDs(), implied.NodeIDs())
	}
	if !slices.Equal(mirror.EdgeIDs(), implied.EdgeIDs()) {
		t.Errorf("mirror edges = %v, events imply %v", mirror.EdgeIDs(), implied.EdgeIDs())
	}
}

func TestDeletionOrdering(t *testing.T) {
	b := NewBase(nil)
	b.SetUseInternalGraph(true)

	probe := &deletionProbe{t: t, base: b}
	b.sink = probe

	b.AddNode("n")
	b.AddEdge("e", "n", "n")
	b.DelEdge("e")
	b.DelNode("n")

	if !probe.sawEdgeRemoved || !probe.sawNodeRemoved {
		t.Fatal("probe did not observe both removals")
	}
}

// deletionProbe asserts the mirror-update ordering: node removals update the
// mirror before the event fires, edge removals after.
type deletionProbe struct {
	stream.Discard
	t              *testing.T
	base           *Base
	sawEdgeRemoved bool
	sawNodeRemoved bool
}

func (p *deletionProbe) OnEdgeRemoved(_, edgeID string) {
	p.sawEdgeRemoved = true
	if !p.base.Internal().HasEdge(edgeID) {
		p.t.Error("edge should still be in the mirror when the removal event fires")
	}
}

func (p *deletionProbe) OnNodeRemoved(_, nodeID string) {
	p.sawNodeRemoved = true
	if p.base.Internal().HasNode(nodeID) {
		p.t.Error("node should already be out of the mirror when the removal event fires")
	}
}

func TestInternalGraphLifecycle(t *testing.T) {
	b := NewBase(nil)
	if b.IsUsingInternalGraph() {
		t.Fatal("internal graph should start disabled")
	}
	if b.Internal() != nil {
		t.Fatal("Internal() should be nil while disabled")
	}

	b.SetUseInternalGraph(true)
	if !b.IsUsingInternalGraph() {
		t.Fatal("internal graph should be enabled")
	}
	mirror := b.Internal()
	b.AddNode("n")

	// Enabling again is a no-op and keeps the populated mirror.
	b.SetUseInternalGraph(true)
	if b.Internal() != mirror || !b.Internal().HasNode("n") {
		t.Error("redundant enable must not replace the mirror")
	}

	// Disabling clears and releases.
	b.SetUseInternalGraph(false)
	if b.IsUsingInternalGraph() || b.Internal() != nil {
		t.Error("disable should release the mirror")
	}
	if mirror.NodeCount() != 0 {
		t.Error("disable should clear the released mirror")
	}
	// Disabling again is a no-op.
	b.SetUseInternalGraph(false)
}

func TestEndClearsMirrorAndIsRestartable(t *testing.T) {
	run := func(b *Base) []stream.Event {
		rec := stream.NewRecorder()
		b.sink = rec
		b.AddNode("a")
		b.AddNode("b")
		b.AddEdge("", "a", "b")
		return rec.Events()
	}

	b := NewBase(nil)
	b.SetUseInternalGraph(true)
	b.SetRandomSeed(5)
	b.AddEdgeAttributeUnit("w")

	first := run(b)
	b.End()
	b.End() // idempotent

	if !b.IsUsingInternalGraph() {
		t.Fatal("End must keep the internal graph enabled")
	}
	if b.Internal().NodeCount() != 0 {
		t.Fatal("End must clear the internal graph")
	}

	b.SetRandomSeed(5)
	second := run(b)

	if len(first) != len(second) {
		t.Fatalf("restart emitted %d events, want %d", len(second), len(first))
	}
	for i := range first {
		if first[i].Value != second[i].Value || first[i].ElementID != second[i].ElementID {
			t.Errorf("event %d differs after restart: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestNilSinkIsTolerated(t *testing.T) {
	b := NewBase(nil)
	b.SetUseInternalGraph(true)
	b.AddNode("a")
	b.AddEdge("", "a", "a")
	if b.Internal().NodeCount() != 1 {
		t.Error("bookkeeping should work without a sink")
	}
}
