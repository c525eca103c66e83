package models

import (
	"time"

	"github.com/google/uuid"

	"scaffold-service/internal/introspect"
)

// ScaffoldRecord is the history entry written for every generated module.
// @Description ScaffoldRecord describes one successful module scaffold.
type ScaffoldRecord struct {
	ID            uuid.UUID `json:"id" gorm:"type:varchar(36);primaryKey"`
	Module        string    `json:"module" gorm:"type:varchar(255);not null;index"`
	FileName      string    `json:"file_name" gorm:"type:varchar(255);not null"`
	Path          string    `json:"path" gorm:"type:varchar(512);not null"`
	EntityClass   string    `json:"entity_class" gorm:"type:varchar(255)"`
	EntityTable   string    `json:"entity_table" gorm:"type:varchar(255)"`
	ConfigCreated bool      `json:"config_created" gorm:"default:false"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// ParseRequest defines the request payload for introspecting an entity.
type ParseRequest struct {
	Entity     string `json:"entity" binding:"required"`
	Controller string `json:"controller" binding:"required"`
	Module     string `json:"module" binding:"required,min=1,max=255"`
}

// ParseResult is returned by the parse operation.
// @Description ParseResult lists the columns the entity would have and the admin route of the module.
type ParseResult struct {
	Columns []introspect.ColumnDescriptor `json:"columns"`
	Path    string                        `json:"path"`
}

// CreateRequest defines the request payload for scaffolding a module.
type CreateRequest struct {
	Module     string `json:"module" binding:"required,min=1,max=255"`
	Entity     string `json:"entity" binding:"required"`
	Controller string `json:"controller" binding:"required"`
}

// CreateResult is returned by the create operation.
type CreateResult struct {
	FileName      string   `json:"file_name"`
	Path          string   `json:"path"`
	ConfigCreated bool     `json:"config_created"`
	Files         []string `json:"files"`
}

// PaginatedResponse wraps a page of list results.
type PaginatedResponse struct {
	Data   interface{} `json:"data"`
	Total  int64       `json:"total"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
}
