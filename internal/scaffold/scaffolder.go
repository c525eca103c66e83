package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"github.com/sirupsen/logrus"
	"golang.org/x/tools/imports"
)

var (
	// ErrUnresolvedFileName is returned when the controller source carries no
	// import the file name can be derived from.
	ErrUnresolvedFileName = errors.New("cannot resolve file name from controller import")

	// ErrInvalidModuleName is returned for module names that are not a single
	// path segment.
	ErrInvalidModuleName = errors.New("invalid module name")
)

var moduleName = regexp.MustCompile(`^[A-Za-z][\w-]*$`)

var formatOptions = &imports.Options{
	Comments:   true,
	TabIndent:  true,
	TabWidth:   8,
	FormatOnly: true,
}

// Result lists what a scaffold wrote.
type Result struct {
	FileName      string
	Path          string
	ConfigCreated bool
	Files         []string
}

// Scaffolder writes module sources below <baseDir>/modules.
type Scaffolder struct {
	baseDir string
	format  bool
	log     *logrus.Entry
}

// NewScaffolder creates a Scaffolder rooted at baseDir. When format is set the
// generated sources are gofmt'ed before they are written.
func NewScaffolder(baseDir string, format bool, log *logrus.Entry) *Scaffolder {
	return &Scaffolder{baseDir: baseDir, format: format, log: log}
}

// ValidateModule checks that module can be used as a directory and route segment.
func ValidateModule(module string) error {
	if !moduleName.MatchString(module) {
		return fmt.Errorf("%w: %q", ErrInvalidModuleName, module)
	}
	return nil
}

// ModuleDir is the directory of module.
func (s *Scaffolder) ModuleDir(module string) string {
	return filepath.Join(s.baseDir, "modules", module)
}

// Scaffold writes config.go when the module has none yet, then overwrites the
// entity and admin controller files. Files written before a failure are left
// in place.
func (s *Scaffolder) Scaffold(module, entitySource, controllerSource string) (*Result, error) {
	if err := ValidateModule(module); err != nil {
		return nil, err
	}
	fileName, ok := ResolveFileName(controllerSource)
	if !ok {
		return nil, ErrUnresolvedFileName
	}

	log := s.log.WithFields(logrus.Fields{"module": module, "file_name": fileName})
	dir := s.ModuleDir(module)
	result := &Result{FileName: fileName, Path: RoutePath(module, fileName)}

	created, err := s.createConfigFile(module)
	if err != nil {
		log.WithError(err).Error("Failed to create module config")
		return nil, err
	}
	if created {
		result.ConfigCreated = true
		result.Files = append(result.Files, filepath.Join(dir, "config.go"))
	}

	entityPath := filepath.Join(dir, "entity", fileName+".go")
	if err := s.createFile(entityPath, []byte(entitySource)); err != nil {
		log.WithError(err).Error("Failed to write entity")
		return nil, err
	}
	controllerPath := filepath.Join(dir, "controller", "admin", fileName+".go")
	if err := s.createFile(controllerPath, []byte(controllerSource)); err != nil {
		log.WithError(err).Error("Failed to write controller")
		return nil, err
	}
	result.Files = append(result.Files, entityPath, controllerPath)

	log.WithField("config_created", created).Info("Module scaffolded")
	return result, nil
}

func (s *Scaffolder) createConfigFile(module string) (bool, error) {
	configPath := filepath.Join(s.ModuleDir(module), "config.go")
	if _, err := os.Stat(configPath); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}

	data, err := genModuleConfig(module)
	if err != nil {
		return false, fmt.Errorf("render module config: %w", err)
	}
	if err := s.createFile(configPath, data); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Scaffolder) createFile(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if s.format {
		if formatted, err := imports.Process(path, content, formatOptions); err == nil {
			content = formatted
		} else {
			s.log.WithError(err).WithField("path", path).Debug("Writing source unformatted")
		}
	}
	return os.WriteFile(path, content, 0o644)
}
