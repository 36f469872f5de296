package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd(cfg *Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "warband",
		Short: "Warband combat simulator",
		Long:  `Warband assembles swordsmen, archers, crossbowmen, spearmen and knights and pits them against each other in a timed skirmish.`,
	}
	rootCmd.SilenceUsage = true

	rootCmd.AddCommand(newSkirmishCmd(cfg))
	return rootCmd
}
