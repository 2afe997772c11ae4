package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	rostersvc "github.com/skirmishforge/warband-api/internal/orchestrators/roster"
)

var createWarbandID string

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new roster",
	Args:  cobra.ExactArgs(1),
	RunE:  runCreate,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all rosters",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var showCmd = &cobra.Command{
	Use:   "show <roster-id>",
	Short: "Show a roster with its derived values",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <roster-id>",
	Short: "Delete a roster",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	createCmd.Flags().StringVar(&createWarbandID, "warband", "", "warband type id (required)")
	_ = createCmd.MarkFlagRequired("warband")
}

func runCreate(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer func() { _ = a.close() }()

	output, err := a.svc.CreateRoster(cmd.Context(), &rostersvc.CreateRosterInput{
		Name:      args[0],
		WarbandID: createWarbandID,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Created roster %s (%s, %d gold)\n", output.Roster.ID, output.Roster.Name, output.Roster.Gold)
	return nil
}

func runList(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer func() { _ = a.close() }()

	output, err := a.svc.ListRosters(cmd.Context(), &rostersvc.ListRostersInput{})
	if err != nil {
		return err
	}

	if len(output.Rosters) == 0 {
		fmt.Println("No rosters found")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tWARBAND\tGOLD\tBATTLES")
	for _, r := range output.Rosters {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n", r.ID, r.Name, r.WarbandID, r.Gold, len(r.BattleLog))
	}
	return w.Flush()
}

func runShow(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer func() { _ = a.close() }()

	output, err := a.svc.GetSummary(cmd.Context(), &rostersvc.GetSummaryInput{RosterID: args[0]})
	if err != nil {
		return err
	}

	r := output.Roster
	fmt.Printf("%s (%s)\n", r.Name, r.WarbandID)
	fmt.Printf("  Gold: %d  Wyrdstone: %d\n", r.Gold, r.Wyrdstone)
	fmt.Printf("  Rating: %d  Total cost: %d  Members: %d\n", output.Rating, output.TotalCost, output.MemberCount)

	if len(r.Heroes) > 0 {
		fmt.Println("  Heroes:")
		for _, h := range r.Heroes {
			fmt.Printf("    %s  %s (%s)  exp %d\n", h.ID, h.Name, h.TypeName, h.Experience)
		}
	}
	if len(r.Henchmen) > 0 {
		fmt.Println("  Henchmen:")
		for _, h := range r.Henchmen {
			fmt.Printf("    %s  %s (%s) x%d  exp %d\n", h.ID, h.Name, h.TypeName, h.EffectiveGroupSize(), h.Experience)
		}
	}
	if len(r.BattleLog) > 0 {
		fmt.Println("  Battles:")
		for _, b := range r.BattleLog {
			line := fmt.Sprintf("    #%d %s", b.Number, b.Result)
			if b.Notes != "" {
				line += " - " + b.Notes
			}
			fmt.Println(line)
		}
	}
	if strings.TrimSpace(r.Notes) != "" {
		fmt.Printf("  Notes: %s\n", r.Notes)
	}
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer func() { _ = a.close() }()

	if _, err := a.svc.DeleteRoster(cmd.Context(), &rostersvc.DeleteRosterInput{RosterID: args[0]}); err != nil {
		return err
	}

	fmt.Printf("Deleted roster %s\n", args[0])
	return nil
}
