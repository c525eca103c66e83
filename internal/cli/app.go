package cli

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"scaffold-service/internal/config"
	"scaffold-service/internal/database"
	"scaffold-service/internal/introspect"
	"scaffold-service/internal/logger"
	"scaffold-service/internal/scaffold"
	"scaffold-service/internal/service"
)

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

// quietLogging keeps one-shot commands readable: text logs on stderr at the
// configured level, no log files.
func quietLogging(cfg *config.Config) {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil || level > logrus.WarnLevel {
		level = logrus.WarnLevel
	}
	l.SetLevel(level)
	logger.Logger = l
}

func newCodegenService(cfg *config.Config, db *gorm.DB) *service.CodegenService {
	introspector := introspect.NewIntrospector(cfg.Database, database.Dialector, logger.WithComponent("introspect"))
	scaffolder := scaffold.NewScaffolder(cfg.Scaffold.BaseDir, cfg.Scaffold.Format, logger.WithComponent("scaffold"))
	return service.NewCodegenService(introspector, scaffolder, db, logger.WithComponent("codegen"))
}

func readSources(cmd *cobra.Command) (entity, controller string, err error) {
	entityPath, _ := cmd.Flags().GetString("entity")
	controllerPath, _ := cmd.Flags().GetString("controller")

	entityData, err := os.ReadFile(entityPath)
	if err != nil {
		return "", "", err
	}
	controllerData, err := os.ReadFile(controllerPath)
	if err != nil {
		return "", "", err
	}
	return string(entityData), string(controllerData), nil
}

func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().String("entity", "", "Path of the entity source file")
	cmd.Flags().String("controller", "", "Path of the admin controller source file")
	cmd.Flags().String("module", "", "Module name")
	_ = cmd.MarkFlagRequired("entity")
	_ = cmd.MarkFlagRequired("controller")
	_ = cmd.MarkFlagRequired("module")
}
