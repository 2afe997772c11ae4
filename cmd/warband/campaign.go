package main

import (
	"fmt"

	"github.com/spf13/cobra"

	rostersvc "github.com/skirmishforge/warband-api/internal/orchestrators/roster"
)

var (
	recruitHero bool
	battleNotes string
)

var recruitCmd = &cobra.Command{
	Use:   "recruit <roster-id> <type>",
	Short: "Recruit a warrior from the warband's templates",
	Args:  cobra.ExactArgs(2),
	RunE:  runRecruit,
}

var battleCmd = &cobra.Command{
	Use:   "battle <roster-id> <result>",
	Short: "Record a battle in the roster's log",
	Args:  cobra.ExactArgs(2),
	RunE:  runBattle,
}

func init() {
	recruitCmd.Flags().BoolVar(&recruitHero, "hero", false, "recruit from the hero templates")
	battleCmd.Flags().StringVar(&battleNotes, "notes", "", "free-form battle notes")
}

func runRecruit(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer func() { _ = a.close() }()

	output, err := a.svc.AddWarrior(cmd.Context(), &rostersvc.AddWarriorInput{
		RosterID:     args[0],
		TemplateType: args[1],
		IsHero:       recruitHero,
	})
	if err != nil {
		return err
	}

	w := output.Warrior
	fmt.Printf("Recruited %s (%s) as %s\n", w.TypeName, w.Type, w.ID)
	return nil
}

func runBattle(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer func() { _ = a.close() }()

	output, err := a.svc.AddBattle(cmd.Context(), &rostersvc.AddBattleInput{
		RosterID: args[0],
		Result:   args[1],
		Notes:    battleNotes,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Recorded battle #%d (%s)\n", output.Entry.Number, output.Entry.Result)
	return nil
}
