package domain

// OrderedSet accumulates distinct strings preserving first-seen order.
// Scan results are serialized in discovery order, so a deterministic
// traversal yields a byte-identical artifact.
type OrderedSet struct {
	seen   map[string]bool
	values []string
}

func NewOrderedSet() *OrderedSet {
	return &OrderedSet{seen: make(map[string]bool)}
}

// Add inserts v unless already present. Empty strings are ignored.
func (s *OrderedSet) Add(v string) {
	if v == "" || s.seen[v] {
		return
	}
	s.seen[v] = true
	s.values = append(s.values, v)
}

// AddAll inserts each value in order.
func (s *OrderedSet) AddAll(vs []string) {
	for _, v := range vs {
		s.Add(v)
	}
}

func (s *OrderedSet) Has(v string) bool { return s.seen[v] }

func (s *OrderedSet) Len() int { return len(s.values) }

// Values returns the accumulated values in insertion order. The returned
// slice is never nil so JSON serialization yields [] rather than null.
func (s *OrderedSet) Values() []string {
	if s.values == nil {
		return []string{}
	}
	return s.values
}
