package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"scaffold-service/internal/database"
	"scaffold-service/internal/logger"
	"scaffold-service/internal/models"
)

// CreateCmd returns the command that scaffolds a module without the API.
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Scaffold a module from an entity and a controller",
		Long: `Write modules/<module>/config.go (only if absent), the entity and the admin
controller below the configured base directory.

Usage:
  scaffold-service create --entity demo.go --controller admin/demo.go --module demo
  scaffold-service create ... --record    # also store the scaffold history row`,
		RunE: runCreate,
	}
	addSourceFlags(cmd)
	cmd.Flags().Bool("record", false, "Record the scaffold in the configured database")
	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	quietLogging(cfg)

	entity, controller, err := readSources(cmd)
	if err != nil {
		return err
	}
	module, _ := cmd.Flags().GetString("module")
	record, _ := cmd.Flags().GetBool("record")

	var db *gorm.DB
	if record {
		if err := database.ConnectDatabase(cfg.Database, logger.Logger); err != nil {
			return err
		}
		defer database.Close()
		db = database.GetDB()
	}

	result, err := newCodegenService(cfg, db).Create(cmd.Context(), models.CreateRequest{
		Module:     module,
		Entity:     entity,
		Controller: controller,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, f := range result.Files {
		fmt.Fprintf(out, "%s %s\n", color.New(color.FgGreen).Sprint("WRITE "), f)
	}
	if !result.ConfigCreated {
		fmt.Fprintf(out, "%s %s\n", color.New(color.FgBlue).Sprint("EXISTS"), "config.go")
	}
	fmt.Fprintf(out, "Route: %s\n", color.New(color.FgCyan).Sprint(result.Path))
	return nil
}
