package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"scaffold-service/internal/models"
)

// ParseCmd returns the command that prints the columns of an entity.
func ParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Print the columns an entity maps to",
		Long: `Introspect an entity source against a throwaway connection built from the
configured database and print its columns and the module route.

Usage:
  scaffold-service parse --entity demo.go --controller admin/demo.go --module demo`,
		RunE: runParse,
	}
	addSourceFlags(cmd)
	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
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

	result, err := newCodegenService(cfg, nil).Parse(cmd.Context(), entity, controller, module)
	if err != nil {
		return err
	}
	printParseResult(cmd.OutOrStdout(), result)
	return nil
}

func printParseResult(out io.Writer, result *models.ParseResult) {
	fmt.Fprintf(out, "Path: %s\n\n", color.New(color.FgCyan).Sprint(result.Path))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PROPERTY\tTYPE\tLENGTH\tNULLABLE\tCOMMENT")
	for _, col := range result.Columns {
		length := "-"
		if col.Length != nil {
			length = strconv.Itoa(*col.Length)
		}
		comment := ""
		if col.Comment != nil {
			comment = *col.Comment
		}
		nullable := color.New(color.FgYellow).Sprint("yes")
		if !col.Nullable {
			nullable = color.New(color.FgGreen).Sprint("no")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", col.PropertyName, col.Type, length, nullable, comment)
	}
	w.Flush()
}
