package introspect

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"scaffold-service/internal/config"
)

// Introspector resolves the columns of submitted entity sources against a
// throwaway connection built from a snapshot of the database configuration.
type Introspector struct {
	cfg       config.Database
	dialector DialectorFunc
	log       *logrus.Entry
}

// NewIntrospector returns an Introspector bound to a copy of cfg.
func NewIntrospector(cfg config.Database, dialector DialectorFunc, log *logrus.Entry) *Introspector {
	return &Introspector{cfg: cfg, dialector: dialector, log: log}
}

// Introspect rewrites source and materialises it.
func (i *Introspector) Introspect(ctx context.Context, source string) ([]ColumnDescriptor, error) {
	unit, err := Rewrite(source)
	if err != nil {
		return nil, err
	}
	return i.Materialize(ctx, unit)
}

// Materialize compiles unit, registers it on a fresh ephemeral connection and
// returns the extracted columns. The connection is closed before returning on
// every path.
func (i *Introspector) Materialize(ctx context.Context, unit RewrittenUnit) ([]ColumnDescriptor, error) {
	log := i.log.WithFields(logrus.Fields{"class": unit.ClassName, "table": unit.TableName})

	conn, err := OpenEphemeral(ctx, i.cfg, i.dialector)
	if err != nil {
		log.WithError(err).Warn("Failed to open ephemeral connection")
		return nil, fmt.Errorf("%w: %w", ErrSchemaIntrospectionFailed, err)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			log.WithError(err).Warn("Failed to close ephemeral connection")
		}
	}()

	model, err := Compile(unit)
	if err != nil {
		log.WithError(err).Info("Entity source does not compile")
		return nil, fmt.Errorf("%w: %w", ErrSchemaIntrospectionFailed, err)
	}
	if err := conn.Register(unit.ClassName, unit.TableName, model); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchemaIntrospectionFailed, err)
	}
	if err := conn.BuildMetadatas(ctx); err != nil {
		log.WithError(err).Info("Failed to build entity metadata")
		return nil, fmt.Errorf("%w: %w", ErrSchemaIntrospectionFailed, err)
	}
	s, err := conn.Metadata(unit.ClassName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchemaIntrospectionFailed, err)
	}

	columns := Extract(s)
	log.WithFields(logrus.Fields{"columns": len(columns), "entities": conn.Entities()}).Debug("Entity introspected")
	return columns, nil
}
