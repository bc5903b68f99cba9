package ident

// Map is a case-insensitive map keyed by identifier. Keys are normalized on
// every Set/Get/Has so "Total", "TOTAL", and "total" all reach the same
// slot; the most recently Set casing is remembered for Range and error
// messages.
type Map[V any] struct {
	values map[string]V
	cased  map[string]string
}

// NewMap creates an empty case-insensitive map.
func NewMap[V any]() *Map[V] {
	return &Map[V]{values: make(map[string]V), cased: make(map[string]string)}
}

// NewMapWithCapacity creates an empty case-insensitive map pre-sized for n
// entries.
func NewMapWithCapacity[V any](n int) *Map[V] {
	return &Map[V]{values: make(map[string]V, n), cased: make(map[string]string, n)}
}

// Set stores val under name, overwriting any existing entry regardless of
// the casing it was originally stored with.
func (m *Map[V]) Set(name string, val V) {
	key := Normalize(name)
	m.values[key] = val
	m.cased[key] = name
}

// Get retrieves the value stored under name, ignoring case.
func (m *Map[V]) Get(name string) (V, bool) {
	val, ok := m.values[Normalize(name)]
	return val, ok
}

// Has reports whether name is present, ignoring case.
func (m *Map[V]) Has(name string) bool {
	_, ok := m.values[Normalize(name)]
	return ok
}

// Delete removes name, ignoring case.
func (m *Map[V]) Delete(name string) {
	key := Normalize(name)
	delete(m.values, key)
	delete(m.cased, key)
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	return len(m.values)
}

// Range iterates entries in unspecified order, using the casing they were
// last Set with. Stops early if f returns false.
func (m *Map[V]) Range(f func(name string, value V) bool) {
	for key, val := range m.values {
		name := m.cased[key]
		if !f(name, val) {
			return
		}
	}
}
