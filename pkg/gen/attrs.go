package gen

// AttributeFactory produces a value for one attribute from the generator's
// random source. Factories must derive their result only from the draws they
// take, so that a fixed seed reproduces the same values.
type AttributeFactory func(*Rand) any

// UniformRange returns a factory producing float64 values uniformly drawn
// from [min, max). It consumes exactly one draw per application.
func UniformRange(min, max float64) AttributeFactory {
	return func(r *Rand) any {
		return min + (max-min)*r.Float64()
	}
}

// attributeRegistry maps attribute names to factories while preserving
// registration order. Enumeration order determines the order in which
// factories consume random draws, so it is kept explicit instead of relying
// on map iteration.
type attributeRegistry struct {
	names     []string
	factories map[string]AttributeFactory
}

// set registers or overwrites a factory. Overwriting keeps the name's
// original position in the enumeration order.
func (a *attributeRegistry) set(name string, factory AttributeFactory) {
	if a.factories == nil {
		a.factories = make(map[string]AttributeFactory)
	}
	if _, exists := a.factories[name]; !exists {
		a.names = append(a.names, name)
	}
	a.factories[name] = factory
}

// remove deregisters a factory. Removing an absent name is a no-op.
func (a *attributeRegistry) remove(name string) {
	if _, exists := a.factories[name]; !exists {
		return
	}
	delete(a.factories, name)
	for i, n := range a.names {
		if n == name {
			a.names = append(a.names[:i], a.names[i+1:]...)
			break
		}
	}
}

// each applies fn to every registered factory in registration order.
func (a *attributeRegistry) each(fn func(name string, factory AttributeFactory)) {
	for _, name := range a.names {
		fn(name, a.factories[name])
	}
}

// len returns the number of registered attributes.
func (a *attributeRegistry) len() int {
	return len(a.names)
}
