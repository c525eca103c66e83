package service

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"scaffold-service/internal/config"
	"scaffold-service/internal/introspect"
	"scaffold-service/internal/logger"
	"scaffold-service/internal/models"
	"scaffold-service/internal/scaffold"
)

const (
	demoEntity = `package entity

type Demo struct {
	BaseEntity
	Name  string ` + "`gorm:\"type:varchar(50);size:50;comment:名称\"`" + `
	Price float64 ` + "`gorm:\"not null\"`" + `
}

func (Demo) TableName() string { return "demo_table" }
`
	demoController = `package admin

import DemoController "../demo"

var _ = DemoController.Register
`
)

func newTestService(t *testing.T) (*CodegenService, *gorm.DB, string) {
	t.Helper()
	return newTestServiceWithOpenCount(t, new(atomic.Int32))
}

// newTestServiceWithOpenCount counts every ephemeral connection the service
// asks for in opened.
func newTestServiceWithOpenCount(t *testing.T, opened *atomic.Int32) (*CodegenService, *gorm.DB, string) {
	t.Helper()
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	entry := logrus.NewEntry(log)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Silent})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&models.ScaffoldRecord{}))

	dialect := func(cfg config.Database) (gorm.Dialector, error) {
		opened.Add(1)
		return sqlite.Open(cfg.DSN()), nil
	}
	introspector := introspect.NewIntrospector(config.Database{Dialect: config.DialectSQLite, Name: ":memory:"}, dialect, entry)
	dir := t.TempDir()
	return NewCodegenService(introspector, scaffold.NewScaffolder(dir, false, entry), db, entry), db, dir
}

func TestParse(t *testing.T) {
	svc, db, dir := newTestService(t)

	result, err := svc.Parse(context.Background(), demoEntity, demoController, "demo")
	require.NoError(t, err)

	assert.Equal(t, "/admin/demo/demo", result.Path)
	require.Len(t, result.Columns, 2)

	name, price := result.Columns[0], result.Columns[1]
	assert.Equal(t, "Name", name.PropertyName)
	assert.Equal(t, "varchar(50)", name.Type)
	require.NotNil(t, name.Length)
	assert.Equal(t, 50, *name.Length)
	assert.True(t, name.Nullable)

	assert.Equal(t, "Price", price.PropertyName)
	assert.Equal(t, "float64", price.Type)
	assert.Nil(t, price.Length)
	assert.Nil(t, price.Comment)
	assert.False(t, price.Nullable)

	_, statErr := os.Stat(filepath.Join(dir, "modules"))
	assert.True(t, os.IsNotExist(statErr))
	assert.False(t, db.Migrator().HasTable("func_demo_table"))
	assert.False(t, db.Migrator().HasTable("demo_table"))
}

func TestParse_Errors(t *testing.T) {
	var opened atomic.Int32
	svc, _, _ := newTestServiceWithOpenCount(t, &opened)
	ctx := context.Background()

	_, err := svc.Parse(ctx, demoEntity, "package admin", "demo")
	assert.ErrorIs(t, err, scaffold.ErrUnresolvedFileName)

	_, err = svc.Parse(ctx, "package entity", demoController, "demo")
	assert.ErrorIs(t, err, introspect.ErrMalformedEntitySource)

	_, err = svc.Parse(ctx, demoEntity, demoController, "de/mo")
	assert.ErrorIs(t, err, scaffold.ErrInvalidModuleName)
	assert.Zero(t, opened.Load(), "rejected input must not open an ephemeral connection")

	_, err = svc.Parse(ctx, "type Demo struct {\n\tName string\n}\nfunc (Demo) TableName() string { return \"demo\" }", demoController, "demo")
	assert.ErrorIs(t, err, introspect.ErrSchemaIntrospectionFailed)
	assert.Equal(t, int32(1), opened.Load())
}

func TestCreate(t *testing.T) {
	svc, db, dir := newTestService(t)
	req := models.CreateRequest{Module: "demo", Entity: demoEntity, Controller: demoController}

	result, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "demo", result.FileName)
	assert.Equal(t, "/admin/demo/demo", result.Path)
	assert.True(t, result.ConfigCreated)
	assert.Len(t, result.Files, 3)

	entity, err := os.ReadFile(filepath.Join(dir, "modules", "demo", "entity", "demo.go"))
	require.NoError(t, err)
	assert.Equal(t, demoEntity, string(entity))

	result, err = svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, result.ConfigCreated)

	var records []models.ScaffoldRecord
	require.NoError(t, db.Order("created_at").Find(&records).Error)
	require.Len(t, records, 2)
	assert.Equal(t, "demo", records[0].Module)
	assert.Equal(t, "Demo", records[0].EntityClass)
	assert.Equal(t, "demo_table", records[0].EntityTable)
	assert.True(t, records[0].ConfigCreated || records[1].ConfigCreated)
}

func TestCreate_UnresolvedFileName(t *testing.T) {
	svc, db, dir := newTestService(t)

	_, err := svc.Create(context.Background(), models.CreateRequest{Module: "demo", Entity: demoEntity, Controller: "package admin"})
	assert.ErrorIs(t, err, scaffold.ErrUnresolvedFileName)

	_, statErr := os.Stat(filepath.Join(dir, "modules"))
	assert.True(t, os.IsNotExist(statErr))
	var count int64
	require.NoError(t, db.Model(&models.ScaffoldRecord{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreate_WithoutHistory(t *testing.T) {
	log := logrus.NewEntry(logrus.New())
	svc := NewCodegenService(nil, scaffold.NewScaffolder(t.TempDir(), false, log), nil, log)

	result, err := svc.Create(context.Background(), models.CreateRequest{Module: "demo", Entity: demoEntity, Controller: demoController})
	require.NoError(t, err)
	assert.Equal(t, "demo", result.FileName)
}
