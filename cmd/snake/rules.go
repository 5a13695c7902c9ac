package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/greedy-snake/internal/platform/tui"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the rules and controls",
	Args:  cobra.NoArgs,
	Run:   runRules,
}

func runRules(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(tui.RulesText(cfg))
}
