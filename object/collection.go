package object

import (
	"sort"
	"strings"
)

// List is an ordered, immutable sequence of Values. Every "modifying"
// operation (push, rest, +) returns a freshly built List rather than
// mutating Elements in place, per spec.md §3.3 invariant 3.
type List struct {
	Elements []Value
}

func (l *List) Kind() Kind { return ListKind }

func (l *List) String() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Set is an unordered collection of structurally-distinct Values,
// stored internally as an append-ordered slice (spec.md §3.3: "stored
// internally as a sequence"). Membership and deduplication both use
// Equal.
type Set struct {
	Elements []Value
}

func (s *Set) Kind() Kind { return SetKind }

func (s *Set) Contains(v Value) bool {
	for _, e := range s.Elements {
		if Equal(e, v) {
			return true
		}
	}
	return false
}

// Add returns a new Set with v appended if not already present.
func (s *Set) Add(v Value) *Set {
	if s.Contains(v) {
		return &Set{Elements: append([]Value{}, s.Elements...)}
	}
	out := append(append([]Value{}, s.Elements...), v)
	return &Set{Elements: out}
}

func (s *Set) String() string {
	sorted := append([]Value{}, s.Elements...)
	sort.SliceStable(sorted, func(i, j int) bool { return PrintLess(sorted[i], sorted[j]) })
	parts := make([]string, len(sorted))
	for i, e := range sorted {
		parts[i] = e.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// DictPair is one (key, value) entry of a Dictionary.
type DictPair struct {
	Key   Value
	Value Value
}

// Dictionary is an insertion-ordered sequence of unique-keyed pairs.
// Keys are compared by structural equality (Equal); printed form is
// sorted by key (spec.md §6.2), but the internal Pairs slice retains
// insertion order as required by §3.3.
type Dictionary struct {
	Pairs []DictPair
}

func (d *Dictionary) Kind() Kind { return DictionaryKind }

// Get returns the value bound to key, if any.
func (d *Dictionary) Get(key Value) (Value, bool) {
	for _, p := range d.Pairs {
		if Equal(p.Key, key) {
			return p.Value, true
		}
	}
	return nil, false
}

// Assoc returns a new Dictionary with key bound to value, updating an
// existing pair in place (by position) or appending a new one.
func (d *Dictionary) Assoc(key, value Value) *Dictionary {
	out := make([]DictPair, len(d.Pairs))
	copy(out, d.Pairs)
	for i, p := range out {
		if Equal(p.Key, key) {
			out[i] = DictPair{Key: key, Value: value}
			return &Dictionary{Pairs: out}
		}
	}
	out = append(out, DictPair{Key: key, Value: value})
	return &Dictionary{Pairs: out}
}

func (d *Dictionary) String() string {
	sorted := make([]DictPair, len(d.Pairs))
	copy(sorted, d.Pairs)
	sort.SliceStable(sorted, func(i, j int) bool { return PrintLess(sorted[i].Key, sorted[j].Key) })
	parts := make([]string, len(sorted))
	for i, p := range sorted {
		parts[i] = p.Key.String() + ": " + p.Value.String()
	}
	return "#{" + strings.Join(parts, ", ") + "}"
}

// printRank implements the heterogeneous ordering of spec.md §9:
// Integer < Decimal < String < Boolean < Nil.
func printRank(v Value) int {
	switch v.(type) {
	case *Integer:
		return 0
	case *Decimal:
		return 1
	case *String:
		return 2
	case *Boolean:
		return 3
	case *Nil:
		return 4
	default:
		return 5
	}
}

func numericValue(v Value) (float64, bool) {
	switch t := v.(type) {
	case *Integer:
		return float64(t.Value), true
	case *Decimal:
		return t.Value, true
	}
	return 0, false
}

// PrintLess orders two values for the Set/Dictionary printed forms of
// spec.md §6.2: by kind rank first, then by value within a rank.
func PrintLess(a, b Value) bool {
	ra, rb := printRank(a), printRank(b)
	if ra != rb {
		return ra < rb
	}
	switch ra {
	case 0, 1:
		na, _ := numericValue(a)
		nb, _ := numericValue(b)
		return na < nb
	case 2:
		return a.(*String).Value < b.(*String).Value
	case 3:
		av, bv := a.(*Boolean).Value, b.(*Boolean).Value
		return !av && bv
	default:
		return false
	}
}
