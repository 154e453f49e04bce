package cpp

import (
	"encoding/json"

	"github.com/pure11/pscpp/internal/i18n"
)

// UnknownKindError 遇到无法识别的节点种类名
type UnknownKindError struct {
	Kind string
}

func (e *UnknownKindError) Error() string {
	return i18n.T(i18n.ErrUnknownNodeKind, e.Kind)
}

// BadFieldError 节点的某个字段缺失或类型不对
type BadFieldError struct {
	Kind  string
	Field string
}

func (e *BadFieldError) Error() string {
	return i18n.T(i18n.ErrBadNodeField, e.Kind, e.Field)
}

// NodeToMap 将节点转换为带 kind 标签的 map，用于 JSON 序列化
func NodeToMap(node Node) map[string]interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *NumericLiteral:
		if n.IsFloat {
			return m("NumericLiteral", "isFloat", true, "value", n.Float)
		}
		return m("NumericLiteral", "isFloat", false, "value", n.Int)
	case *StringLiteral:
		return m("StringLiteral", "value", n.Value)
	case *BoolLiteral:
		return m("BoolLiteral", "value", n.Value)
	case *ArrayLiteral:
		return m("ArrayLiteral", "elements", nodeSlice(n.Elements))
	case *ObjectLiteral:
		pairs := make([]interface{}, len(n.Pairs))
		for i, pair := range n.Pairs {
			pairs[i] = map[string]interface{}{
				"key":   pair.Key,
				"value": NodeToMap(pair.Value),
			}
		}
		return m("ObjectLiteral", "pairs", pairs)
	case *Block:
		return m("Block", "statements", nodeSlice(n.Statements))
	case *Namespace:
		return m("Namespace", "name", n.Name, "statements", nodeSlice(n.Statements))
	case *Var:
		return m("Var", "name", n.Name)
	case *VariableIntroduction:
		result := m("VariableIntroduction", "name", n.Name)
		if n.Value != nil {
			result["value"] = NodeToMap(n.Value)
		}
		return result
	case *Assignment:
		return m("Assignment", "target", NodeToMap(n.Target), "value", NodeToMap(n.Value))
	case *While:
		return m("While", "condition", NodeToMap(n.Condition), "body", NodeToMap(n.Body))
	case *For:
		return m("For", "name", n.Name,
			"start", NodeToMap(n.Start),
			"end", NodeToMap(n.End),
			"body", NodeToMap(n.Body))
	case *ForIn:
		return m("ForIn", "name", n.Name,
			"collection", NodeToMap(n.Collection),
			"body", NodeToMap(n.Body))
	case *IfElse:
		result := m("IfElse", "condition", NodeToMap(n.Condition), "then", NodeToMap(n.Then))
		if n.Else != nil {
			result["else"] = NodeToMap(n.Else)
		}
		return result
	case *Return:
		result := m("Return")
		if n.Value != nil {
			result["value"] = NodeToMap(n.Value)
		}
		return result
	case *Throw:
		return m("Throw", "value", NodeToMap(n.Value))
	case *Break:
		return m("Break", "label", n.Label)
	case *Continue:
		return m("Continue", "label", n.Label)
	case *Label:
		return m("Label", "name", n.Name, "node", NodeToMap(n.Node))
	case *Function:
		return m("Function", "name", n.Name,
			"templateParams", stringSlice(n.TemplateParams),
			"params", stringSlice(n.Params),
			"returnType", n.ReturnType,
			"body", NodeToMap(n.Body))
	case *Struct:
		fields := make([]interface{}, len(n.Fields))
		for i, field := range n.Fields {
			fields[i] = map[string]interface{}{
				"name": field.Name,
				"type": field.Type,
			}
		}
		result := m("Struct", "name", n.Name,
			"parent", n.Parent,
			"templateParams", stringSlice(n.TemplateParams),
			"fields", fields)
		if n.Create != nil {
			result["create"] = NodeToMap(n.Create)
		}
		return result
	case *Accessor:
		return m("Accessor", "name", n.Name, "target", NodeToMap(n.Target))
	case *Indexer:
		return m("Indexer", "index", NodeToMap(n.Index), "target", NodeToMap(n.Target))
	case *App:
		return m("App", "callee", NodeToMap(n.Callee), "args", nodeSlice(n.Args))
	case *Unary:
		return m("Unary", "op", string(n.Op), "operand", NodeToMap(n.Operand))
	case *Binary:
		return m("Binary", "op", string(n.Op),
			"left", NodeToMap(n.Left),
			"right", NodeToMap(n.Right))
	case *Conditional:
		return m("Conditional", "condition", NodeToMap(n.Condition),
			"then", NodeToMap(n.Then),
			"else", NodeToMap(n.Else))
	case *Cast:
		return m("Cast", "type", n.Type, "value", NodeToMap(n.Value))
	case *TypeOf:
		return m("TypeOf", "value", NodeToMap(n.Value))
	case *InstanceOf:
		return m("InstanceOf", "value", NodeToMap(n.Value), "type", n.Type)
	case *Construct:
		return m("Construct", "type", n.Type,
			"args", nodeSlice(n.Args),
			"finalized", n.Finalized)
	case *Raw:
		return m("Raw", "text", n.Text)
	case *Comment:
		comments := make([]interface{}, len(n.Comments))
		for i, c := range n.Comments {
			comments[i] = map[string]interface{}{
				"block": c.Block,
				"text":  c.Text,
			}
		}
		return m("Comment", "comments", comments, "node", NodeToMap(n.Node))
	default:
		return map[string]interface{}{"kind": "Unknown"}
	}
}

// NodeFromMap 从带 kind 标签的 map 还原节点
func NodeFromMap(data map[string]interface{}) (Node, error) {
	kind, _ := data["kind"].(string)
	d := decoder{kind: kind, data: data}

	switch kind {
	case "NumericLiteral":
		isFloat, _ := data["isFloat"].(bool)
		if isFloat {
			value, ok := floatValue(data["value"])
			if !ok {
				return nil, &BadFieldError{Kind: kind, Field: "value"}
			}
			return &NumericLiteral{IsFloat: true, Float: value}, nil
		}
		value, ok := intValue(data["value"])
		if !ok {
			return nil, &BadFieldError{Kind: kind, Field: "value"}
		}
		return &NumericLiteral{Int: value}, nil
	case "StringLiteral":
		return &StringLiteral{Value: d.str("value")}, d.err
	case "BoolLiteral":
		value, _ := data["value"].(bool)
		return &BoolLiteral{Value: value}, nil
	case "ArrayLiteral":
		elements, err := d.nodes("elements")
		if err != nil {
			return nil, err
		}
		return &ArrayLiteral{Elements: elements}, nil
	case "ObjectLiteral":
		raw, _ := data["pairs"].([]interface{})
		var pairs []KeyValue
		for _, item := range raw {
			pm, ok := item.(map[string]interface{})
			if !ok {
				return nil, &BadFieldError{Kind: kind, Field: "pairs"}
			}
			key, _ := pm["key"].(string)
			vm, ok := pm["value"].(map[string]interface{})
			if !ok {
				return nil, &BadFieldError{Kind: kind, Field: "pairs"}
			}
			value, err := NodeFromMap(vm)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, KeyValue{Key: key, Value: value})
		}
		return &ObjectLiteral{Pairs: pairs}, nil
	case "Block":
		statements, err := d.nodes("statements")
		if err != nil {
			return nil, err
		}
		return &Block{Statements: statements}, nil
	case "Namespace":
		statements, err := d.nodes("statements")
		if err != nil {
			return nil, err
		}
		return &Namespace{Name: d.str("name"), Statements: statements}, d.err
	case "Var":
		return &Var{Name: d.str("name")}, d.err
	case "VariableIntroduction":
		value, err := d.optNode("value")
		if err != nil {
			return nil, err
		}
		return &VariableIntroduction{Name: d.str("name"), Value: value}, d.err
	case "Assignment":
		target, err := d.node("target")
		if err != nil {
			return nil, err
		}
		value, err := d.node("value")
		if err != nil {
			return nil, err
		}
		return &Assignment{Target: target, Value: value}, nil
	case "While":
		condition, err := d.node("condition")
		if err != nil {
			return nil, err
		}
		body, err := d.node("body")
		if err != nil {
			return nil, err
		}
		return &While{Condition: condition, Body: body}, nil
	case "For":
		start, err := d.node("start")
		if err != nil {
			return nil, err
		}
		end, err := d.node("end")
		if err != nil {
			return nil, err
		}
		body, err := d.node("body")
		if err != nil {
			return nil, err
		}
		return &For{Name: d.str("name"), Start: start, End: end, Body: body}, d.err
	case "ForIn":
		collection, err := d.node("collection")
		if err != nil {
			return nil, err
		}
		body, err := d.node("body")
		if err != nil {
			return nil, err
		}
		return &ForIn{Name: d.str("name"), Collection: collection, Body: body}, d.err
	case "IfElse":
		condition, err := d.node("condition")
		if err != nil {
			return nil, err
		}
		then, err := d.node("then")
		if err != nil {
			return nil, err
		}
		elseNode, err := d.optNode("else")
		if err != nil {
			return nil, err
		}
		return &IfElse{Condition: condition, Then: then, Else: elseNode}, nil
	case "Return":
		value, err := d.optNode("value")
		if err != nil {
			return nil, err
		}
		return &Return{Value: value}, nil
	case "Throw":
		value, err := d.node("value")
		if err != nil {
			return nil, err
		}
		return &Throw{Value: value}, nil
	case "Break":
		label, _ := data["label"].(string)
		return &Break{Label: label}, nil
	case "Continue":
		label, _ := data["label"].(string)
		return &Continue{Label: label}, nil
	case "Label":
		inner, err := d.node("node")
		if err != nil {
			return nil, err
		}
		return &Label{Name: d.str("name"), Node: inner}, d.err
	case "Function":
		fn, err := functionFromMap(data)
		if err != nil {
			return nil, err
		}
		return fn, nil
	case "Struct":
		raw, _ := data["fields"].([]interface{})
		var fields []StructField
		for _, item := range raw {
			fm, ok := item.(map[string]interface{})
			if !ok {
				return nil, &BadFieldError{Kind: kind, Field: "fields"}
			}
			name, _ := fm["name"].(string)
			typ, _ := fm["type"].(string)
			fields = append(fields, StructField{Name: name, Type: typ})
		}
		var create *Function
		if cm, ok := data["create"].(map[string]interface{}); ok {
			fn, err := functionFromMap(cm)
			if err != nil {
				return nil, err
			}
			create = fn
		}
		parent, _ := data["parent"].(string)
		return &Struct{
			Name:           d.str("name"),
			Parent:         parent,
			TemplateParams: strList(data["templateParams"]),
			Fields:         fields,
			Create:         create,
		}, d.err
	case "Accessor":
		target, err := d.node("target")
		if err != nil {
			return nil, err
		}
		return &Accessor{Name: d.str("name"), Target: target}, d.err
	case "Indexer":
		index, err := d.node("index")
		if err != nil {
			return nil, err
		}
		target, err := d.node("target")
		if err != nil {
			return nil, err
		}
		return &Indexer{Index: index, Target: target}, nil
	case "App":
		callee, err := d.node("callee")
		if err != nil {
			return nil, err
		}
		args, err := d.nodes("args")
		if err != nil {
			return nil, err
		}
		return &App{Callee: callee, Args: args}, nil
	case "Unary":
		operand, err := d.node("operand")
		if err != nil {
			return nil, err
		}
		return &Unary{Op: UnaryOp(d.str("op")), Operand: operand}, d.err
	case "Binary":
		left, err := d.node("left")
		if err != nil {
			return nil, err
		}
		right, err := d.node("right")
		if err != nil {
			return nil, err
		}
		return &Binary{Op: BinaryOp(d.str("op")), Left: left, Right: right}, d.err
	case "Conditional":
		condition, err := d.node("condition")
		if err != nil {
			return nil, err
		}
		then, err := d.node("then")
		if err != nil {
			return nil, err
		}
		elseNode, err := d.node("else")
		if err != nil {
			return nil, err
		}
		return &Conditional{Condition: condition, Then: then, Else: elseNode}, nil
	case "Cast":
		value, err := d.node("value")
		if err != nil {
			return nil, err
		}
		return &Cast{Type: d.str("type"), Value: value}, d.err
	case "TypeOf":
		value, err := d.node("value")
		if err != nil {
			return nil, err
		}
		return &TypeOf{Value: value}, nil
	case "InstanceOf":
		value, err := d.node("value")
		if err != nil {
			return nil, err
		}
		return &InstanceOf{Value: value, Type: d.str("type")}, d.err
	case "Construct":
		args, err := d.nodes("args")
		if err != nil {
			return nil, err
		}
		finalized, _ := data["finalized"].(bool)
		return &Construct{Type: d.str("type"), Args: args, Finalized: finalized}, d.err
	case "Raw":
		text, _ := data["text"].(string)
		return &Raw{Text: text}, nil
	case "Comment":
		raw, _ := data["comments"].([]interface{})
		var comments []CommentText
		for _, item := range raw {
			cm, ok := item.(map[string]interface{})
			if !ok {
				return nil, &BadFieldError{Kind: kind, Field: "comments"}
			}
			block, _ := cm["block"].(bool)
			text, _ := cm["text"].(string)
			comments = append(comments, CommentText{Block: block, Text: text})
		}
		inner, err := d.node("node")
		if err != nil {
			return nil, err
		}
		return &Comment{Comments: comments, Node: inner}, nil
	default:
		return nil, &UnknownKindError{Kind: kind}
	}
}

// functionFromMap 从 map 还原函数节点
func functionFromMap(data map[string]interface{}) (*Function, error) {
	bm, ok := data["body"].(map[string]interface{})
	if !ok {
		return nil, &BadFieldError{Kind: "Function", Field: "body"}
	}
	body, err := NodeFromMap(bm)
	if err != nil {
		return nil, err
	}
	name, _ := data["name"].(string)
	returnType, _ := data["returnType"].(string)
	return &Function{
		Name:           name,
		TemplateParams: strList(data["templateParams"]),
		Params:         strList(data["params"]),
		ReturnType:     returnType,
		Body:           body,
	}, nil
}

// decoder 解码辅助，记录第一个字段错误
type decoder struct {
	kind string
	data map[string]interface{}
	err  error
}

// str 取字符串字段
func (d *decoder) str(field string) string {
	s, ok := d.data[field].(string)
	if !ok && d.err == nil {
		d.err = &BadFieldError{Kind: d.kind, Field: field}
	}
	return s
}

// node 取必需的子节点字段
func (d *decoder) node(field string) (Node, error) {
	nm, ok := d.data[field].(map[string]interface{})
	if !ok {
		return nil, &BadFieldError{Kind: d.kind, Field: field}
	}
	return NodeFromMap(nm)
}

// optNode 取可选的子节点字段，缺失时返回 nil
func (d *decoder) optNode(field string) (Node, error) {
	value, ok := d.data[field]
	if !ok || value == nil {
		return nil, nil
	}
	nm, ok := value.(map[string]interface{})
	if !ok {
		return nil, &BadFieldError{Kind: d.kind, Field: field}
	}
	return NodeFromMap(nm)
}

// nodes 取子节点列表字段，缺失或为空按 nil 处理
func (d *decoder) nodes(field string) ([]Node, error) {
	raw, _ := d.data[field].([]interface{})
	if len(raw) == 0 {
		return nil, nil
	}
	result := make([]Node, 0, len(raw))
	for _, item := range raw {
		nm, ok := item.(map[string]interface{})
		if !ok {
			return nil, &BadFieldError{Kind: d.kind, Field: field}
		}
		node, err := NodeFromMap(nm)
		if err != nil {
			return nil, err
		}
		result = append(result, node)
	}
	return result, nil
}

// m 构建带 kind 标签的 map
func m(kind string, kvs ...interface{}) map[string]interface{} {
	result := map[string]interface{}{"kind": kind}
	for i := 0; i+1 < len(kvs); i += 2 {
		key := kvs[i].(string)
		result[key] = kvs[i+1]
	}
	return result
}

// nodeSlice 节点列表转 interface 列表
func nodeSlice(nodes []Node) []interface{} {
	result := make([]interface{}, len(nodes))
	for i, n := range nodes {
		result[i] = NodeToMap(n)
	}
	return result
}

// stringSlice 字符串列表转 interface 列表
func stringSlice(items []string) []interface{} {
	result := make([]interface{}, len(items))
	for i, s := range items {
		result[i] = s
	}
	return result
}

// intValue 从解码值取整数
// 三种来源: UseNumber 解码出的 json.Number、编码侧原生 int64、普通反序列化的 float64
// float64 只精确到 2^53，整数字面量超出时输入端要用带 UseNumber 的 Decoder
func intValue(value interface{}) (int64, bool) {
	switch n := value.(type) {
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case int64:
		return n, true
	case float64:
		return int64(n), true
	}
	return 0, false
}

// floatValue 从解码值取浮点数
func floatValue(value interface{}) (float64, bool) {
	switch n := value.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	}
	return 0, false
}

// strList 从解码值取字符串列表
func strList(value interface{}) []string {
	raw, _ := value.([]interface{})
	if len(raw) == 0 {
		return nil
	}
	result := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			result = append(result, s)
		}
	}
	return result
}
