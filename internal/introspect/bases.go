package introspect

import (
	"reflect"
	"time"

	"gorm.io/gorm"
)

// BaseEntity is the column-less base an entity embeds to mark itself as a
// persisted model.
type BaseEntity struct{}

// AuditEntity is the base for admin tables that carry an id and timestamps.
type AuditEntity struct {
	ID         uint      `gorm:"primaryKey;autoIncrement;comment:ID"`
	CreateTime time.Time `gorm:"autoCreateTime;index;comment:创建时间"`
	UpdateTime time.Time `gorm:"autoUpdateTime;index;comment:更新时间"`
}

// knownBases maps the embedded type expression to the base it stands for.
// Unqualified names also match any package qualifier, so base.BaseEntity
// resolves like BaseEntity.
var knownBases = map[string]reflect.Type{
	"BaseEntity":  reflect.TypeOf(BaseEntity{}),
	"AuditEntity": reflect.TypeOf(AuditEntity{}),
	"gorm.Model":  reflect.TypeOf(gorm.Model{}),
}

func lookupBase(qualifier, name string) (reflect.Type, bool) {
	if qualifier != "" {
		if t, ok := knownBases[qualifier+"."+name]; ok {
			return t, true
		}
		if qualifier == "gorm" {
			return nil, false
		}
	}
	t, ok := knownBases[name]
	return t, ok
}
