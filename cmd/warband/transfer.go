package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	rostersvc "github.com/skirmishforge/warband-api/internal/orchestrators/roster"
)

var exportOutputPath string

var exportCmd = &cobra.Command{
	Use:   "export <roster-id>",
	Short: "Export a roster as a JSON document",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a previously exported roster",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutputPath, "output", "o", "", "write to a file instead of stdout")
}

func runExport(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer func() { _ = a.close() }()

	output, err := a.svc.ExportRoster(cmd.Context(), &rostersvc.ExportRosterInput{RosterID: args[0]})
	if err != nil {
		return err
	}

	if exportOutputPath == "" {
		fmt.Fprintln(cmd.OutOrStdout(), output.Data)
		return nil
	}

	if err := os.WriteFile(exportOutputPath, []byte(output.Data), 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportOutputPath, err)
	}
	fmt.Printf("Exported roster to %s\n", exportOutputPath)
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer func() { _ = a.close() }()

	data, err := os.ReadFile(args[0]) // #nosec G304 // User-supplied path is the point of the command
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	output, err := a.svc.ImportRoster(cmd.Context(), &rostersvc.ImportRosterInput{Data: string(data)})
	if err != nil {
		return err
	}

	fmt.Printf("Imported roster %s (%s)\n", output.Roster.ID, output.Roster.Name)
	return nil
}
