/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mdelaunay/wigorview/timetable"
	"github.com/mdelaunay/wigorview/timetable/colors"
)

// subjectsCmd represents the subjects command
var subjectsCmd = &cobra.Command{
	Use:   "subjects",
	Short: "Lists the distinct subjects of a user's week with their colors",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, ok := loadConfig()
		if !ok {
			return
		}
		reportLogger := setupLogging(cfg)
		logger := log.WithFields(log.Fields{
			"job": "subjects",
		})

		username, err := cmd.Flags().GetString("user")
		if err != nil || username == "" {
			logger.Error("a --user is required")
			return
		}
		offset, err := cmd.Flags().GetInt("offset")
		if err != nil {
			logger.Error("invalid offset", err)
			return
		}

		fetcher := newFetcher(cfg, "subjects", reportLogger)
		week, err := fetcher.FetchWeek(context.Background(), username, offset)
		if err != nil {
			logger.Error("could not fetch the week: ", err)
			return
		}

		for _, subject := range timetable.UniqueSubjects(week) {
			fmt.Printf("%s\t%s\n", subject, colors.ForSubject(subject).Background)
		}
	},
}

func init() {
	rootCmd.AddCommand(subjectsCmd)

	subjectsCmd.Flags().String("user", "", "The firstname.lastname identifier or a configured shortcut")
	subjectsCmd.Flags().Int("offset", 0, "Weeks away from the current one")
}
