package introspect

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"reflect"
	"regexp"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var packageClause = regexp.MustCompile(`(?m)^\s*package\s+\w+`)

var scalarTypes = map[string]reflect.Type{
	"string":  reflect.TypeOf(""),
	"bool":    reflect.TypeOf(false),
	"int":     reflect.TypeOf(int(0)),
	"int8":    reflect.TypeOf(int8(0)),
	"int16":   reflect.TypeOf(int16(0)),
	"int32":   reflect.TypeOf(int32(0)),
	"int64":   reflect.TypeOf(int64(0)),
	"uint":    reflect.TypeOf(uint(0)),
	"uint8":   reflect.TypeOf(uint8(0)),
	"uint16":  reflect.TypeOf(uint16(0)),
	"uint32":  reflect.TypeOf(uint32(0)),
	"uint64":  reflect.TypeOf(uint64(0)),
	"float32": reflect.TypeOf(float32(0)),
	"float64": reflect.TypeOf(float64(0)),
	"byte":    reflect.TypeOf(byte(0)),
	"rune":    reflect.TypeOf(rune(0)),
}

var qualifiedTypes = map[string]reflect.Type{
	"time.Time":       reflect.TypeOf(time.Time{}),
	"gorm.DeletedAt":  reflect.TypeOf(gorm.DeletedAt{}),
	"sql.NullString":  reflect.TypeOf(sql.NullString{}),
	"sql.NullBool":    reflect.TypeOf(sql.NullBool{}),
	"sql.NullByte":    reflect.TypeOf(sql.NullByte{}),
	"sql.NullInt16":   reflect.TypeOf(sql.NullInt16{}),
	"sql.NullInt32":   reflect.TypeOf(sql.NullInt32{}),
	"sql.NullInt64":   reflect.TypeOf(sql.NullInt64{}),
	"sql.NullFloat64": reflect.TypeOf(sql.NullFloat64{}),
	"sql.NullTime":    reflect.TypeOf(sql.NullTime{}),
	"json.RawMessage": reflect.TypeOf(json.RawMessage{}),
	"datatypes.JSON":  reflect.TypeOf(datatypes.JSON{}),
	"datatypes.Date":  reflect.TypeOf(datatypes.Date{}),
	"uuid.UUID":       reflect.TypeOf(uuid.UUID{}),
}

var errUnsupportedType = errors.New("unsupported field type")

// Compile parses the rewritten source and materialises the struct named
// unit.ClassName as a reflect type GORM can parse. Embedded base entities are
// flattened into the struct. A missing package clause is tolerated.
func Compile(unit RewrittenUnit) (reflect.Type, error) {
	src := unit.Code
	if !packageClause.MatchString(src) {
		src = "package entity\n\n" + src
	}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, unit.ClassName+".go", src, parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("parse entity source: %w", err)
	}

	st := findStruct(file, unit.ClassName)
	if st == nil {
		return nil, fmt.Errorf("struct %s is not declared", unit.ClassName)
	}
	return buildStruct(unit.ClassName, st)
}

func findStruct(file *ast.File, name string) *ast.StructType {
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, spec := range gen.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok || ts.Name.Name != name {
				continue
			}
			if st, ok := ts.Type.(*ast.StructType); ok {
				return st
			}
		}
	}
	return nil
}

func buildStruct(className string, st *ast.StructType) (t reflect.Type, err error) {
	var (
		fields []reflect.StructField
		seen   = map[string]bool{}
		bases  int
	)
	add := func(f reflect.StructField) error {
		if seen[f.Name] {
			return fmt.Errorf("duplicate field %s", f.Name)
		}
		seen[f.Name] = true
		fields = append(fields, f)
		return nil
	}

	for _, field := range st.Fields.List {
		if len(field.Names) == 0 {
			base, ok := resolveBase(field.Type)
			if !ok {
				return nil, fmt.Errorf("%s embeds %s, which is not a known base entity", className, exprString(field.Type))
			}
			bases++
			for i := 0; i < base.NumField(); i++ {
				bf := base.Field(i)
				if !bf.IsExported() {
					continue
				}
				if err := add(reflect.StructField{Name: bf.Name, Type: bf.Type, Tag: bf.Tag}); err != nil {
					return nil, err
				}
			}
			continue
		}

		ft, err := resolveType(field.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Names[0].Name, err)
		}
		var tag string
		if field.Tag != nil {
			if tag, err = strconv.Unquote(field.Tag.Value); err != nil {
				return nil, fmt.Errorf("field %s: invalid tag %s", field.Names[0].Name, field.Tag.Value)
			}
		}
		for _, name := range field.Names {
			if !name.IsExported() {
				continue
			}
			if err := add(reflect.StructField{Name: name.Name, Type: ft, Tag: reflect.StructTag(tag)}); err != nil {
				return nil, err
			}
		}
	}

	if bases == 0 {
		return nil, fmt.Errorf("%s does not embed a base entity", className)
	}

	defer func() {
		if r := recover(); r != nil {
			t, err = nil, fmt.Errorf("build %s: %v", className, r)
		}
	}()
	return reflect.StructOf(fields), nil
}

func resolveBase(expr ast.Expr) (reflect.Type, bool) {
	switch e := expr.(type) {
	case *ast.StarExpr:
		return resolveBase(e.X)
	case *ast.Ident:
		return lookupBase("", e.Name)
	case *ast.SelectorExpr:
		if pkg, ok := e.X.(*ast.Ident); ok {
			return lookupBase(pkg.Name, e.Sel.Name)
		}
	}
	return nil, false
}

func resolveType(expr ast.Expr) (reflect.Type, error) {
	switch e := expr.(type) {
	case *ast.ParenExpr:
		return resolveType(e.X)
	case *ast.Ident:
		if t, ok := scalarTypes[e.Name]; ok {
			return t, nil
		}
	case *ast.SelectorExpr:
		if t, ok := qualifiedTypes[exprString(e)]; ok {
			return t, nil
		}
	case *ast.StarExpr:
		elem, err := resolveType(e.X)
		if err != nil {
			return nil, err
		}
		return reflect.PointerTo(elem), nil
	case *ast.ArrayType:
		if e.Len == nil {
			if elem, ok := e.Elt.(*ast.Ident); ok && (elem.Name == "byte" || elem.Name == "uint8") {
				return reflect.TypeOf([]byte(nil)), nil
			}
		}
	}
	return nil, fmt.Errorf("%w %s", errUnsupportedType, exprString(expr))
}

func exprString(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.SelectorExpr:
		return exprString(e.X) + "." + e.Sel.Name
	case *ast.StarExpr:
		return "*" + exprString(e.X)
	case *ast.ArrayType:
		if e.Len == nil {
			return "[]" + exprString(e.Elt)
		}
		return "[...]" + exprString(e.Elt)
	case *ast.MapType:
		return "map[" + exprString(e.Key) + "]" + exprString(e.Value)
	case *ast.ParenExpr:
		return "(" + exprString(e.X) + ")"
	default:
		return fmt.Sprintf("%T", expr)
	}
}
