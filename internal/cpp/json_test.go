package cpp

import (
	"bytes"
	"encoding/json"
	"reflect"
	"testing"
)

func TestNodeRoundTrip(t *testing.T) {
	node := &Namespace{
		Name: "Data_Maybe",
		Statements: []Node{
			&Struct{
				Name:           "Just",
				Parent:         "Maybe",
				TemplateParams: []string{"A"},
				Fields:         []StructField{{Name: "value0", Type: "A"}},
				Create: &Function{
					Name:       "create",
					Params:     []string{"value0"},
					ReturnType: "any",
					Body: &Block{Statements: []Node{
						&Return{Value: &Construct{Type: "Just", Args: []Node{&Var{Name: "value0"}}}},
					}},
				},
			},
			&VariableIntroduction{
				Name: "fromMaybe",
				Value: &Function{
					Params: []string{"def", "m"},
					Body: &Block{Statements: []Node{
						&IfElse{
							Condition: &InstanceOf{Value: &Var{Name: "m"}, Type: "Just"},
							Then: &Block{Statements: []Node{
								&Return{Value: &Accessor{Name: "value0", Target: &Cast{Type: "Just", Value: &Var{Name: "m"}}}},
							}},
							Else: &Block{Statements: []Node{
								&Return{Value: &Var{Name: "def"}},
							}},
						},
					}},
				},
			},
			&Comment{
				Comments: []CommentText{{Text: "entry point"}},
				Node: &Assignment{
					Target: &Var{Name: "main"},
					Value: &Conditional{
						Condition: &Binary{Op: BinaryEqualTo, Left: &Var{Name: "x"}, Right: &NumericLiteral{Int: 0}},
						Then:      &Unary{Op: UnaryNegate, Operand: &NumericLiteral{IsFloat: true, Float: 1.5}},
						Else:      &Indexer{Index: &NumericLiteral{Int: 2}, Target: &ArrayLiteral{Elements: []Node{&BoolLiteral{Value: true}}}},
					},
				},
			},
			&ForIn{
				Name:       "item",
				Collection: &App{Callee: &Var{Name: "items"}, Args: nil},
				Body: &Block{Statements: []Node{
					&While{Condition: &BoolLiteral{Value: false}, Body: &Block{Statements: []Node{&Break{Label: "out"}}}},
				}},
			},
			&ObjectLiteral{Pairs: []KeyValue{
				{Key: "raw", Value: &Raw{Text: "0 /* verbatim */"}},
				{Key: "s", Value: &StringLiteral{Value: "text"}},
			}},
			&Label{Name: "out", Node: &Continue{}},
			&Throw{Value: &TypeOf{Value: &Var{Name: "x"}}},
			&For{
				Name:  "i",
				Start: &NumericLiteral{Int: 0},
				End:   &NumericLiteral{Int: 8},
				Body:  &Block{},
			},
			&Return{},
		},
	}

	// 经过真正的 JSON 编解码，模拟 CLI 边界
	encoded, err := json.Marshal(NodeToMap(node))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var data map[string]interface{}
	if err := json.Unmarshal(encoded, &data); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	decoded, err := NodeFromMap(data)
	if err != nil {
		t.Fatalf("NodeFromMap: %v", err)
	}

	if !reflect.DeepEqual(node, decoded) {
		t.Errorf("round trip mismatch:\noriginal: %#v\ndecoded:  %#v", node, decoded)
	}
}

func TestNodeFromMapUnknownKind(t *testing.T) {
	_, err := NodeFromMap(map[string]interface{}{"kind": "Mystery"})
	if err == nil {
		t.Fatalf("expected an error for an unknown kind")
	}
	unknown, ok := err.(*UnknownKindError)
	if !ok {
		t.Fatalf("expected UnknownKindError, got %T", err)
	}
	if unknown.Kind != "Mystery" {
		t.Errorf("error carries kind %q", unknown.Kind)
	}
}

func TestNodeFromMapBadField(t *testing.T) {
	_, err := NodeFromMap(map[string]interface{}{"kind": "Assignment", "target": "oops"})
	if err == nil {
		t.Fatalf("expected an error for a bad field")
	}
	bad, ok := err.(*BadFieldError)
	if !ok {
		t.Fatalf("expected BadFieldError, got %T", err)
	}
	if bad.Kind != "Assignment" || bad.Field != "target" {
		t.Errorf("error carries %s.%s", bad.Kind, bad.Field)
	}
}

func TestLargeIntegerDecode(t *testing.T) {
	// 2^53 以上的整数经 float64 会丢精度，解码端用 UseNumber 保全
	const big = int64(1) << 60
	node := &NumericLiteral{Int: big}

	data, err := json.Marshal(NodeToMap(node))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var m map[string]interface{}
	if err := dec.Decode(&m); err != nil {
		t.Fatalf("Decode: %v", err)
	}

	decoded, err := NodeFromMap(m)
	if err != nil {
		t.Fatalf("NodeFromMap: %v", err)
	}
	lit, ok := decoded.(*NumericLiteral)
	if !ok {
		t.Fatalf("decoded to %T", decoded)
	}
	if lit.Int != big {
		t.Errorf("Int = %d, want %d", lit.Int, big)
	}
}

func TestNoOpMarker(t *testing.T) {
	if !IsNoOp(NoOp()) {
		t.Errorf("NoOp() should be a no-op marker")
	}
	if IsNoOp(&Raw{Text: "x"}) {
		t.Errorf("non-empty Raw is not a no-op")
	}
	if IsNoOp(&Return{}) {
		t.Errorf("Return is not a no-op")
	}
}
