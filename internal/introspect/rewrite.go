package introspect

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	classSuffix = "TEMP"
	tablePrefix = "func_"
)

var (
	// type <Name> struct
	classPattern = regexp.MustCompile(`\btype(\s+\w+\s+)struct\b`)
	// TableName() string { return "<table>"
	tablePattern = regexp.MustCompile(`TableName\(\)\s*string\s*\{\s*return\s+("(?:[^"\\\n]|\\.)*"|` + "`[^`]*`)")
)

// RewrittenUnit is an entity source renamed so that it cannot collide with the
// live schema, together with the identifiers it now declares.
type RewrittenUnit struct {
	Code      string
	ClassName string
	TableName string

	SourceClassName string
	SourceTableName string
}

// Rewrite locates the declared struct name and the table returned by its
// TableName method, then renames them to <Name>TEMP and func_<table>.
func Rewrite(source string) (RewrittenUnit, error) {
	classMatch := classPattern.FindStringSubmatch(source)
	if classMatch == nil {
		return RewrittenUnit{}, fmt.Errorf("%w: struct declaration not found", ErrMalformedEntitySource)
	}
	oldClassName := strings.Join(strings.Fields(classMatch[1]), "")

	tableLoc := tablePattern.FindStringSubmatchIndex(source)
	if tableLoc == nil {
		return RewrittenUnit{}, fmt.Errorf("%w: TableName method not found", ErrMalformedEntitySource)
	}
	exprStart, exprEnd := tableLoc[2], tableLoc[3]
	oldTableName, err := tableLiteral(source[exprStart:exprEnd])
	if err != nil {
		return RewrittenUnit{}, fmt.Errorf("%w: %w", ErrMalformedEntitySource, err)
	}
	if oldTableName == "" {
		return RewrittenUnit{}, fmt.Errorf("%w: empty table name", ErrMalformedEntitySource)
	}

	className := oldClassName + classSuffix
	tableName := tablePrefix + oldTableName

	code := source[:exprStart] + strconv.Quote(tableName) + source[exprEnd:]
	// Selectors such as gorm.Model name another package's type and are kept.
	classRef := regexp.MustCompile(`(^|[^.\w])` + regexp.QuoteMeta(oldClassName) + `\b`)
	code = classRef.ReplaceAllString(code, "${1}"+className)

	return RewrittenUnit{
		Code:            code,
		ClassName:       className,
		TableName:       tableName,
		SourceClassName: oldClassName,
		SourceTableName: oldTableName,
	}, nil
}

func tableLiteral(lit string) (string, error) {
	name, err := strconv.Unquote(lit)
	if err != nil {
		return "", fmt.Errorf("table name %s: %w", lit, err)
	}
	return strings.TrimSpace(name), nil
}
