package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wigorview",
	Short: "wigorview fetches and structures a personal class timetable from the Wigor service",
	Long: `Wigorview pulls the five days of a student's work week from the
Wigor timetable service and serves them structured: cleaned courses,
stable per-subject colors, and grid positions ready to draw`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
