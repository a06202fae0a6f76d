package eval

import "testing"

// TestConcreteScenarios exercises spec.md §8's ten end-to-end
// input/output pairs verbatim, grounded on the teacher's plain
// testing.T table-driven style (eval/evaluator_test.go).
func TestConcreteScenarios(t *testing.T) {
	cases := []struct {
		name   string
		source string
		want   string
	}{
		{"puts then final value", `puts("hello")`, "\"hello\" \nnil"},
		{"integer truncating division", `let x = 10; let y = 3; x / y`, "3"},
		{"decimal promotion", `let a = 1.5; a + 2`, "3.5"},
		{"fold with operator identifier", `let xs = [1,2,3]; fold(0, +, xs)`, "6"},
		{"currying", `let add = |a, b| a + b; let inc = add(1); inc(4)`, "5"},
		{"thread filter then map", `let nums = [1,2,3,4]; nums |> filter(|n| n > 2) |> map(|n| n * 10)`, "[30, 40]"},
		{"dictionary sorted print", `#{ "b": 2, "a": 1 }`, `#{"a": 1, "b": 2}`},
		{"set sorted deduplicated print", `{ 3, 1, 2, 1 }`, "{1, 2, 3}"},
		{"mutable reassignment", `let mut c = 0; c = c + 1; c = c + 1; c`, "2"},
		{"division by zero", `1 / 0`, "[Error] Division by zero"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Evaluate(tc.source)
			if got != tc.want {
				t.Fatalf("Evaluate(%q) = %q, want %q", tc.source, got, tc.want)
			}
		})
	}
}

func TestImmutableBindingRejectsAssignment(t *testing.T) {
	got := Evaluate(`let x = 1; x = 2`)
	want := "[Error] Variable 'x' is not mutable"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestUnknownIdentifierFails(t *testing.T) {
	got := Evaluate(`missing`)
	want := "[Error] Identifier can not be found: missing"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCompositionLaw(t *testing.T) {
	got := Evaluate(`let inc = |x| x + 1; let dbl = |x| x * 2; let sq = |x| x * x; ((inc >> dbl) >> sq)(3)`)
	want := Evaluate(`let inc = |x| x + 1; let dbl = |x| x * 2; let sq = |x| x * x; (inc >> (dbl >> sq))(3)`)
	if got != want {
		t.Fatalf("composition should be associative: %q vs %q", got, want)
	}
}

func TestStructuralEquality(t *testing.T) {
	got := Evaluate(`[1, 2] == [1, 2]`)
	if got != "true" {
		t.Fatalf("expected structurally-equal lists to compare equal, got %q", got)
	}
}

func TestIndexingOutOfRangeIsNil(t *testing.T) {
	got := Evaluate(`[1,2,3][10]`)
	if got != "nil" {
		t.Fatalf("got %q, want nil", got)
	}
}

func TestPushAndAssocDoNotMutateInputs(t *testing.T) {
	got := Evaluate(`let xs = [1,2]; push(3, xs); xs`)
	if got != "[1, 2]" {
		t.Fatalf("push must not mutate its input, got %q", got)
	}
	got = Evaluate(`let d = #{"a": 1}; assoc("b", 2, d); d`)
	if got != `#{"a": 1}` {
		t.Fatalf("assoc must not mutate its input, got %q", got)
	}
}

func TestSetRejectsEmbeddedDictionary(t *testing.T) {
	got := Evaluate(`{ #{"a": 1} }`)
	want := "[Error] Unable to include a Dictionary within a Set"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
