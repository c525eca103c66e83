package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"scaffold-service/internal/introspect"
	"scaffold-service/internal/models"
	"scaffold-service/internal/scaffold"
)

// CodegenService backs the parse and create operations of the admin menu.
type CodegenService struct {
	introspector *introspect.Introspector
	scaffolder   *scaffold.Scaffolder
	db           *gorm.DB
	log          *logrus.Entry
}

// NewCodegenService wires the service. db is where scaffold history is
// recorded and may be nil to disable recording.
func NewCodegenService(introspector *introspect.Introspector, scaffolder *scaffold.Scaffolder, db *gorm.DB, log *logrus.Entry) *CodegenService {
	return &CodegenService{
		introspector: introspector,
		scaffolder:   scaffolder,
		db:           db,
		log:          log,
	}
}

// Parse resolves the columns of entitySource and the admin route the module
// would be served under. Nothing is written and the live schema is untouched.
func (s *CodegenService) Parse(ctx context.Context, entitySource, controllerSource, module string) (*models.ParseResult, error) {
	if err := scaffold.ValidateModule(module); err != nil {
		return nil, err
	}
	fileName, ok := scaffold.ResolveFileName(controllerSource)
	if !ok {
		return nil, scaffold.ErrUnresolvedFileName
	}

	unit, err := introspect.Rewrite(entitySource)
	if err != nil {
		return nil, err
	}
	columns, err := s.introspector.Materialize(ctx, unit)
	if err != nil {
		return nil, err
	}

	return &models.ParseResult{
		Columns: columns,
		Path:    scaffold.RoutePath(module, fileName),
	}, nil
}

// Create writes the module scaffold and records it.
func (s *CodegenService) Create(ctx context.Context, req models.CreateRequest) (*models.CreateResult, error) {
	result, err := s.scaffolder.Scaffold(req.Module, req.Entity, req.Controller)
	if err != nil {
		return nil, err
	}
	s.record(ctx, req, result)

	return &models.CreateResult{
		FileName:      result.FileName,
		Path:          result.Path,
		ConfigCreated: result.ConfigCreated,
		Files:         result.Files,
	}, nil
}

// record stores the scaffold history row. Failures are logged only since the
// files are already on disk.
func (s *CodegenService) record(ctx context.Context, req models.CreateRequest, result *scaffold.Result) {
	if s.db == nil {
		return
	}
	rec := models.ScaffoldRecord{
		ID:            uuid.New(),
		Module:        req.Module,
		FileName:      result.FileName,
		Path:          result.Path,
		ConfigCreated: result.ConfigCreated,
	}
	if unit, err := introspect.Rewrite(req.Entity); err == nil {
		rec.EntityClass = unit.SourceClassName
		rec.EntityTable = unit.SourceTableName
	}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		s.log.WithError(err).WithField("module", req.Module).Warn("Failed to record scaffold")
	}
}
