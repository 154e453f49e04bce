package symbol

import (
	"errors"
	"testing"
)

// 构造 Maybe 风格的测试环境: Nothing 无参数, Just 一个参数
func maybeTable() *Table {
	table := New()
	table.Add(&Constructor{
		Module:   "Data.Maybe",
		Name:     "Nothing",
		TypeName: "Maybe",
		Kind:     KindData,
		Type:     &Con{Name: "Maybe"},
	})
	table.Add(&Constructor{
		Module:   "Data.Maybe",
		Name:     "Just",
		TypeName: "Maybe",
		Kind:     KindData,
		Type: &ForAll{Var: "a", Body: &Fun{
			Arg: &TypeVar{Name: "a"},
			Ret: &TypeApp{Fn: &Con{Name: "Maybe"}, Arg: &TypeVar{Name: "a"}},
		}},
	})
	return table
}

func TestArityCountsArrows(t *testing.T) {
	table := New()
	// T1 -> T2 -> T3 -> Result
	ty := &Fun{
		Arg: &Con{Name: "T1"},
		Ret: &Fun{
			Arg: &Con{Name: "T2"},
			Ret: &Fun{
				Arg: &Con{Name: "T3"},
				Ret: &Con{Name: "Result"},
			},
		},
	}
	table.Add(&Constructor{
		Module: "M", Name: "Mk", TypeName: "Result", Kind: KindData, Type: ty,
	})
	table.Add(&Constructor{
		Module: "M", Name: "MkQ", TypeName: "Result", Kind: KindData,
		Type: &ForAll{Var: "a", Body: &ForAll{Var: "b", Body: ty}},
	})

	arity, err := table.Arity(Qualified{Module: "M", Name: "Mk"})
	if err != nil {
		t.Fatalf("Arity: %v", err)
	}
	if arity != 3 {
		t.Errorf("arity = %d, want 3", arity)
	}

	// 头部量词不影响参数个数
	quantified, err := table.Arity(Qualified{Module: "M", Name: "MkQ"})
	if err != nil {
		t.Fatalf("Arity: %v", err)
	}
	if quantified != arity {
		t.Errorf("quantified arity = %d, want %d", quantified, arity)
	}
}

func TestIsNullary(t *testing.T) {
	table := maybeTable()

	nothing := Qualified{Module: "Data.Maybe", Name: "Nothing"}
	just := Qualified{Module: "Data.Maybe", Name: "Just"}

	nullary, err := table.IsNullary(nothing)
	if err != nil {
		t.Fatalf("IsNullary: %v", err)
	}
	if !nullary {
		t.Errorf("Nothing should be nullary")
	}

	nullary, err = table.IsNullary(just)
	if err != nil {
		t.Fatalf("IsNullary: %v", err)
	}
	if nullary {
		t.Errorf("Just should not be nullary")
	}

	// IsNullary 与 Arity == 0 始终一致
	for _, ref := range []Qualified{nothing, just} {
		arity, _ := table.Arity(ref)
		nullary, _ := table.IsNullary(ref)
		if nullary != (arity == 0) {
			t.Errorf("%s: nullary=%v but arity=%d", ref, nullary, arity)
		}
	}
}

func TestIsOnlyConstructor(t *testing.T) {
	table := maybeTable()
	table.Add(&Constructor{
		Module:   "Data.Id",
		Name:     "Id",
		TypeName: "Id",
		Kind:     KindNewtype,
		Type: &ForAll{Var: "a", Body: &Fun{
			Arg: &TypeVar{Name: "a"},
			Ret: &TypeApp{Fn: &Con{Name: "Id"}, Arg: &TypeVar{Name: "a"}},
		}},
	})

	only, err := table.IsOnlyConstructor(Qualified{Module: "Data.Id", Name: "Id"})
	if err != nil {
		t.Fatalf("IsOnlyConstructor: %v", err)
	}
	if !only {
		t.Errorf("Id should be the only constructor of its type")
	}

	for _, name := range []string{"Nothing", "Just"} {
		only, err := table.IsOnlyConstructor(Qualified{Module: "Data.Maybe", Name: name})
		if err != nil {
			t.Fatalf("IsOnlyConstructor: %v", err)
		}
		if only {
			t.Errorf("%s has a sibling constructor, IsOnlyConstructor should be false", name)
		}
	}
}

func TestIsNewtypeConstructor(t *testing.T) {
	table := maybeTable()
	table.Add(&Constructor{
		Module: "Data.Id", Name: "Id", TypeName: "Id", Kind: KindNewtype,
		Type: &Fun{Arg: &TypeVar{Name: "a"}, Ret: &Con{Name: "Id"}},
	})

	isNewtype, err := table.IsNewtypeConstructor(Qualified{Module: "Data.Id", Name: "Id"})
	if err != nil {
		t.Fatalf("IsNewtypeConstructor: %v", err)
	}
	if !isNewtype {
		t.Errorf("Id should be a newtype constructor")
	}

	isNewtype, err = table.IsNewtypeConstructor(Qualified{Module: "Data.Maybe", Name: "Just"})
	if err != nil {
		t.Fatalf("IsNewtypeConstructor: %v", err)
	}
	if isNewtype {
		t.Errorf("Just should not be a newtype constructor")
	}
}

func TestLookupMissing(t *testing.T) {
	table := maybeTable()
	ref := Qualified{Module: "Data.Maybe", Name: "Nope"}

	_, err := table.Lookup(ref)
	if err == nil {
		t.Fatalf("expected an error for a missing constructor")
	}
	var missing *MissingConstructorError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingConstructorError, got %T", err)
	}
	if missing.Ref != ref {
		t.Errorf("error carries ref %v, want %v", missing.Ref, ref)
	}
}

func TestQualifiedString(t *testing.T) {
	if got := (Qualified{Module: "Data.Maybe", Name: "Just"}).String(); got != "Data.Maybe.Just" {
		t.Errorf("String() = %q", got)
	}
	if got := (Qualified{Name: "Just"}).String(); got != "Just" {
		t.Errorf("unqualified String() = %q", got)
	}
}
