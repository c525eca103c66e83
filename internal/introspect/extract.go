package introspect

import (
	"strings"

	"gorm.io/gorm/schema"
)

// ColumnDescriptor is the transport shape of one mapped column.
// @Description ColumnDescriptor describes one column the entity maps to.
type ColumnDescriptor struct {
	PropertyName string  `json:"propertyName"`
	Type         string  `json:"type"`
	Length       *int    `json:"length,omitempty"`
	Comment      *string `json:"comment,omitempty"`
	Nullable     bool    `json:"nullable"`
}

// Extract normalises the columns of s in declaration order.
func Extract(s *schema.Schema) []ColumnDescriptor {
	columns := make([]ColumnDescriptor, 0, len(s.DBNames))
	for _, dbName := range s.DBNames {
		field := s.FieldsByDBName[dbName]
		if field == nil {
			continue
		}
		columns = append(columns, describe(field))
	}
	return columns
}

func describe(field *schema.Field) ColumnDescriptor {
	col := ColumnDescriptor{
		PropertyName: field.Name,
		Type:         columnType(field),
		Nullable:     !field.NotNull && !field.PrimaryKey,
	}
	if _, ok := field.TagSettings["SIZE"]; ok && field.Size > 0 {
		size := field.Size
		col.Length = &size
	}
	if field.Comment != "" {
		comment := field.Comment
		col.Comment = &comment
	}
	return col
}

// columnType prefers an explicit type tag, then the Go type name, then the
// generic data type GORM settled on.
func columnType(field *schema.Field) string {
	if t, ok := field.TagSettings["TYPE"]; ok && t != "" {
		return t
	}
	if field.IndirectFieldType != nil {
		if name := field.IndirectFieldType.Name(); name != "" {
			return strings.ToLower(name)
		}
	}
	return string(field.DataType)
}
