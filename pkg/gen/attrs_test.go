package gen

import (
	"slices"
	"testing"
)

func registryNames(a *attributeRegistry) []string {
	var names []string
	a.each(func(name string, _ AttributeFactory) {
		names = append(names, name)
	})
	return names
}

func TestRegistryPreservesInsertionOrder(t *testing.T) {
	var a attributeRegistry
	a.set("z", UniformRange(0, 1))
	a.set("a", UniformRange(0, 1))
	a.set("m", UniformRange(0, 1))

	if got := registryNames(&a); !slices.Equal(got, []string{"z", "a", "m"}) {
		t.Errorf("order = %v, want [z a m]", got)
	}
}

func TestRegistryRemoveThenReAddMovesToEnd(t *testing.T) {
	var a attributeRegistry
	a.set("x", UniformRange(0, 1))
	a.set("y", UniformRange(0, 1))
	a.remove("x")
	a.set("x", UniformRange(0, 1))

	if got := registryNames(&a); !slices.Equal(got, []string{"y", "x"}) {
		t.Errorf("order = %v, want [y x]", got)
	}
	if a.len() != 2 {
		t.Errorf("len = %d, want 2", a.len())
	}
}

func TestUniformRangeBounds(t *testing.T) {
	r := NewRand(11)
	f := UniformRange(-3, 3)
	for i := 0; i < 1000; i++ {
		v := f(r).(float64)
		if v < -3 || v >= 3 {
			t.Fatalf("value %v outside [-3, 3)", v)
		}
	}
}

func TestRandBoolMatchesFloatStream(t *testing.T) {
	a := NewRand(7)
	b := NewRand(7)
	for i := 0; i < 1000; i++ {
		if got, want := a.Bool(), b.Float64() > 0.5; got != want {
			t.Fatalf("draw %d: Bool() = %v, Float64() threshold gives %v", i, got, want)
		}
	}
}

func TestRandReseedResetsStream(t *testing.T) {
	r := NewRand(123)
	first := []float64{r.Float64(), r.Float64(), r.Float64()}

	r.Seed(123)
	for i, want := range first {
		if got := r.Float64(); got != want {
			t.Fatalf("draw %d after reseed = %v, want %v", i, got, want)
		}
	}
}
