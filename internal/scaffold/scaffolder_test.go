package scaffold

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const demoController = `package admin

import DemoController "scaffold-service/modules/demo/controller/demo"

var _ = DemoController.New
`

func newTestScaffolder(t *testing.T, format bool) (*Scaffolder, string) {
	t.Helper()
	dir := t.TempDir()
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewScaffolder(dir, format, logrus.NewEntry(log)), dir
}

func TestResolveFileName(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		want   string
		wantOK bool
	}{
		{"relative import", `import XController "../xyz"`, "xyz", true},
		{"module path", demoController, "demo", true},
		{"dash in stem", "import  Ctl\t\"a/b/user-info\"", "user-info", true},
		{"no alias", `import "../xyz"`, "", false},
		{"grouped import", "import (\n\t\"fmt\"\n)", "", false},
		{"no import", "package admin", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveFileName(tt.src)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoutePath(t *testing.T) {
	assert.Equal(t, "/admin/demo/demo", RoutePath("demo", "demo"))
	assert.Equal(t, "/admin/shop/user-info", RoutePath("shop", "user-info"))
}

func TestValidateModule(t *testing.T) {
	assert.NoError(t, ValidateModule("demo"))
	assert.NoError(t, ValidateModule("user_center-2"))
	for _, bad := range []string{"", "../etc", "a/b", "1demo", "demo module"} {
		assert.ErrorIs(t, ValidateModule(bad), ErrInvalidModuleName, bad)
	}
}

func TestScaffold_Twice(t *testing.T) {
	s, dir := newTestScaffolder(t, false)
	moduleDir := filepath.Join(dir, "modules", "demo")
	configPath := filepath.Join(moduleDir, "config.go")
	entityPath := filepath.Join(moduleDir, "entity", "demo.go")
	controllerPath := filepath.Join(moduleDir, "controller", "admin", "demo.go")

	first, err := s.Scaffold("demo", "// entity v1\n", demoController)
	require.NoError(t, err)
	assert.True(t, first.ConfigCreated)
	assert.Equal(t, "demo", first.FileName)
	assert.Equal(t, "/admin/demo/demo", first.Path)
	assert.Equal(t, []string{configPath, entityPath, controllerPath}, first.Files)

	config, err := os.ReadFile(configPath)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(configPath, append(config, []byte("// edited\n")...), 0o644))

	second, err := s.Scaffold("demo", "// entity v2\n", demoController+"// v2\n")
	require.NoError(t, err)
	assert.False(t, second.ConfigCreated)
	assert.Equal(t, []string{entityPath, controllerPath}, second.Files)

	configAfter, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, string(config)+"// edited\n", string(configAfter))

	entity, err := os.ReadFile(entityPath)
	require.NoError(t, err)
	assert.Equal(t, "// entity v2\n", string(entity))
	controller, err := os.ReadFile(controllerPath)
	require.NoError(t, err)
	assert.Equal(t, demoController+"// v2\n", string(controller))

	matches, err := filepath.Glob(filepath.Join(moduleDir, "config*"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestScaffold_ConfigContent(t *testing.T) {
	s, dir := newTestScaffolder(t, true)

	_, err := s.Scaffold("user-center", "package entity\n", demoController)
	require.NoError(t, err)

	config, err := os.ReadFile(filepath.Join(dir, "modules", "user-center", "config.go"))
	require.NoError(t, err)
	content := string(config)
	assert.Contains(t, content, "package usercenter")
	assert.Contains(t, content, "type ModuleConfig struct")
	assert.Contains(t, content, "func Config() ModuleConfig")
	assert.Regexp(t, `Name:\s+"xxx"`, content)
	assert.Regexp(t, `Description:\s+"xxx"`, content)
	assert.Regexp(t, `\sMiddlewares:\s+\[\]string\{\}`, content)
	assert.Regexp(t, `GlobalMiddlewares:\s+\[\]string\{\}`, content)
	assert.Regexp(t, `Order:\s+0`, content)
}

func TestScaffold_FormatsSources(t *testing.T) {
	s, dir := newTestScaffolder(t, true)

	_, err := s.Scaffold("demo", "package entity\ntype Demo struct{\nName string}\n", demoController)
	require.NoError(t, err)

	entity, err := os.ReadFile(filepath.Join(dir, "modules", "demo", "entity", "demo.go"))
	require.NoError(t, err)
	assert.Equal(t, "package entity\n\ntype Demo struct {\n\tName string\n}\n", string(entity))
}

func TestScaffold_KeepsUnparsableSource(t *testing.T) {
	s, dir := newTestScaffolder(t, true)

	_, err := s.Scaffold("demo", "not go {", demoController)
	require.NoError(t, err)

	entity, err := os.ReadFile(filepath.Join(dir, "modules", "demo", "entity", "demo.go"))
	require.NoError(t, err)
	assert.Equal(t, "not go {", string(entity))
}

func TestScaffold_Errors(t *testing.T) {
	s, dir := newTestScaffolder(t, false)

	_, err := s.Scaffold("demo", "package entity\n", "package admin\n")
	assert.ErrorIs(t, err, ErrUnresolvedFileName)
	_, statErr := os.Stat(filepath.Join(dir, "modules"))
	assert.True(t, errors.Is(statErr, fs.ErrNotExist))

	_, err = s.Scaffold("../demo", "package entity\n", demoController)
	assert.ErrorIs(t, err, ErrInvalidModuleName)
}

func TestScaffold_FileSystemError(t *testing.T) {
	s, dir := newTestScaffolder(t, false)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "modules"), []byte("not a dir"), 0o644))

	_, err := s.Scaffold("demo", "package entity\n", demoController)
	require.Error(t, err)
	var pathErr *fs.PathError
	assert.ErrorAs(t, err, &pathErr)
}
