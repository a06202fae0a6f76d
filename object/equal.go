package object

// Equal implements the structural equality of spec.md §4.3.4: values
// of different kinds are never equal, collections compare
// element-wise (Sets/Dictionaries as unordered multisets), and
// Functions/Builtins are equal only by identity (the same value).
func Equal(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case *Integer:
		return av.Value == b.(*Integer).Value
	case *Decimal:
		return av.Value == b.(*Decimal).Value
	case *String:
		return av.Value == b.(*String).Value
	case *Boolean:
		return av.Value == b.(*Boolean).Value
	case *Nil:
		return true
	case *List:
		bv := b.(*List)
		if len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !Equal(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	case *Set:
		bv := b.(*Set)
		if len(av.Elements) != len(bv.Elements) {
			return false
		}
		for _, e := range av.Elements {
			if !bv.Contains(e) {
				return false
			}
		}
		return true
	case *Dictionary:
		bv := b.(*Dictionary)
		if len(av.Pairs) != len(bv.Pairs) {
			return false
		}
		for _, p := range av.Pairs {
			other, ok := bv.Get(p.Key)
			if !ok || !Equal(p.Value, other) {
				return false
			}
		}
		return true
	case *Function, *Builtin:
		return a == b
	default:
		return false
	}
}

// IsTruthy implements the truthiness mapping of spec.md §4.3.5.
func IsTruthy(v Value) bool {
	switch t := v.(type) {
	case *Boolean:
		return t.Value
	case *Nil:
		return false
	case *Integer:
		return t.Value != 0
	case *Decimal:
		return t.Value != 0
	case *String:
		return t.Value != ""
	case *List:
		return len(t.Elements) > 0
	case *Set:
		return len(t.Elements) > 0
	case *Dictionary:
		return len(t.Pairs) > 0
	case *Function, *Builtin:
		return true
	default:
		return true
	}
}
