package introspect

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"scaffold-service/internal/config"
	"scaffold-service/internal/logger"
)

// DialectorFunc builds the GORM dialector for a database configuration.
type DialectorFunc func(cfg config.Database) (gorm.Dialector, error)

type registration struct {
	model reflect.Type
	table string
}

// EphemeralConnection is a short-lived database handle that only knows about
// the entities registered on it. Schemas are cached in the connection's own
// store and never reach the live connection.
type EphemeralConnection struct {
	db       *gorm.DB
	mu       sync.Mutex
	entities map[string]registration
	metadata map[string]*schema.Schema
	closed   bool
}

// OpenEphemeral opens and pings a fresh connection built from cfg. The
// connection starts with an empty entity set.
func OpenEphemeral(ctx context.Context, cfg config.Database, dialect DialectorFunc) (*EphemeralConnection, error) {
	dialector, err := dialect(cfg)
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 logger.Silent,
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
	if err != nil {
		if db != nil {
			if sqlDB, dbErr := db.DB(); dbErr == nil {
				sqlDB.Close()
			}
		}
		return nil, fmt.Errorf("open connection: %w", err)
	}

	conn := &EphemeralConnection{
		db:       db,
		entities: map[string]registration{},
		metadata: map[string]*schema.Schema{},
	}
	sqlDB, err := db.DB()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open connection: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return conn, nil
}

// Register adds a model under className. The table name is used in place of
// whatever the model would derive on its own.
func (c *EphemeralConnection) Register(className, table string, model reflect.Type) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return fmt.Errorf("register %s: connection closed", className)
	}
	if _, ok := c.entities[className]; ok {
		return fmt.Errorf("entity %s is already registered", className)
	}
	c.entities[className] = registration{model: model, table: table}
	return nil
}

// BuildMetadatas parses every registered entity into its GORM schema.
func (c *EphemeralConnection) BuildMetadatas(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return fmt.Errorf("build metadata: connection closed")
	}
	for name, reg := range c.entities {
		if _, ok := c.metadata[name]; ok {
			continue
		}
		tx := c.db.Session(&gorm.Session{NewDB: true, Context: ctx})
		if err := tx.Statement.ParseWithSpecialTableName(reflect.New(reg.model).Interface(), reg.table); err != nil {
			return fmt.Errorf("build metadata for %s: %w", name, err)
		}
		c.metadata[name] = tx.Statement.Schema
	}
	return nil
}

// Metadata returns the schema built for className.
func (c *EphemeralConnection) Metadata(className string) (*schema.Schema, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.metadata[className]
	if !ok {
		return nil, fmt.Errorf("no metadata for %s", className)
	}
	return s, nil
}

// Entities lists the registered class names.
func (c *EphemeralConnection) Entities() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	names := make([]string, 0, len(c.entities))
	for name := range c.entities {
		names = append(names, name)
	}
	return names
}

// Close releases the underlying pool. Calling it more than once is a no-op.
func (c *EphemeralConnection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
