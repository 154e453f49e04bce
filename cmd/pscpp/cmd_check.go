package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/pure11/pscpp/internal/i18n"
	"github.com/pure11/pscpp/internal/symbol"
)

// externsFile 前端导出的构造器环境文件
type externsFile struct {
	Constructors []externCtor `json:"constructors"`
}

// externCtor 环境文件中的一条构造器记录
type externCtor struct {
	Module   string                 `json:"module"`
	Name     string                 `json:"name"`
	TypeName string                 `json:"typeName"`
	Kind     string                 `json:"kind"` // "data" 或 "newtype"
	Type     map[string]interface{} `json:"type"`
}

// checkCmd 打印模块环境文件中的构造器元数据
func checkCmd(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Println(i18n.T(i18n.MsgCheckUsage))
		fmt.Println()
		fmt.Println(i18n.T(i18n.MsgCheckDescription))
		fmt.Println()
		fmt.Println("Arguments:")
		fmt.Println(i18n.T(i18n.MsgCheckArgInput))
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		printError(i18n.T(i18n.ErrInputRequired))
		fs.Usage()
		os.Exit(1)
	}

	input := fs.Arg(0)

	if err := checkInput(input); err != nil {
		printError("Error: " + err.Error())
		os.Exit(1)
	}
}

// checkInput 加载环境文件并打印每个构造器的元数据
func checkInput(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return &readFileError{path: path, err: err}
	}

	var externs externsFile
	if err := json.Unmarshal(source, &externs); err != nil {
		return &decodeError{path: path, err: err}
	}

	table := symbol.New()
	refs := make([]symbol.Qualified, 0, len(externs.Constructors))
	for _, ctor := range externs.Constructors {
		ty, err := typeFromMap(ctor.Type)
		if err != nil {
			return &decodeError{path: path, err: err}
		}
		kind := symbol.KindData
		if ctor.Kind == "newtype" {
			kind = symbol.KindNewtype
		}
		table.Add(&symbol.Constructor{
			Module:   ctor.Module,
			Name:     ctor.Name,
			TypeName: ctor.TypeName,
			Kind:     kind,
			Type:     ty,
		})
		refs = append(refs, symbol.Qualified{Module: ctor.Module, Name: ctor.Name})
	}

	sort.Slice(refs, func(i, j int) bool {
		return refs[i].String() < refs[j].String()
	})

	for _, ref := range refs {
		ctor, err := table.Lookup(ref)
		if err != nil {
			return err
		}
		arity, err := table.Arity(ref)
		if err != nil {
			return err
		}
		nullary, err := table.IsNullary(ref)
		if err != nil {
			return err
		}
		only, err := table.IsOnlyConstructor(ref)
		if err != nil {
			return err
		}
		printInfo(i18n.T(i18n.MsgCheckCtor,
			ref.String(), ctor.Kind.String(), ctor.TypeName, arity, nullary, only))
	}
	return nil
}

// typeFromMap 从带 tag 标签的 map 还原构造器函数类型
func typeFromMap(data map[string]interface{}) (symbol.Type, error) {
	tag, _ := data["tag"].(string)
	switch tag {
	case "ForAll":
		v, _ := data["var"].(string)
		bm, ok := data["body"].(map[string]interface{})
		if !ok {
			return nil, &badTypeError{tag: tag}
		}
		body, err := typeFromMap(bm)
		if err != nil {
			return nil, err
		}
		return &symbol.ForAll{Var: v, Body: body}, nil
	case "Fun":
		am, ok := data["arg"].(map[string]interface{})
		if !ok {
			return nil, &badTypeError{tag: tag}
		}
		arg, err := typeFromMap(am)
		if err != nil {
			return nil, err
		}
		rm, ok := data["ret"].(map[string]interface{})
		if !ok {
			return nil, &badTypeError{tag: tag}
		}
		ret, err := typeFromMap(rm)
		if err != nil {
			return nil, err
		}
		return &symbol.Fun{Arg: arg, Ret: ret}, nil
	case "Con":
		name, _ := data["name"].(string)
		return &symbol.Con{Name: name}, nil
	case "TypeVar":
		name, _ := data["name"].(string)
		return &symbol.TypeVar{Name: name}, nil
	case "TypeApp":
		fm, ok := data["fn"].(map[string]interface{})
		if !ok {
			return nil, &badTypeError{tag: tag}
		}
		fn, err := typeFromMap(fm)
		if err != nil {
			return nil, err
		}
		am, ok := data["arg"].(map[string]interface{})
		if !ok {
			return nil, &badTypeError{tag: tag}
		}
		arg, err := typeFromMap(am)
		if err != nil {
			return nil, err
		}
		return &symbol.TypeApp{Fn: fn, Arg: arg}, nil
	default:
		return nil, &badTypeError{tag: tag}
	}
}

type badTypeError struct {
	tag string
}

func (e *badTypeError) Error() string {
	return i18n.T(i18n.ErrBadTypeNode, e.tag)
}
