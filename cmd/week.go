/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mdelaunay/wigorview/timetable"
	"github.com/mdelaunay/wigorview/timetable/layout"
)

// weekCmd represents the week command
var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Fetches one work week of a user's timetable and prints it as JSON",
	Long: `Fetches the five weekdays of a work week from the timetable
service and prints the structured result to stdout. The week is picked
with --offset relative to the current week, or with --date naming any
day inside the wanted week`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, ok := loadConfig()
		if !ok {
			return
		}
		reportLogger := setupLogging(cfg)
		logger := log.WithFields(log.Fields{
			"job": "week",
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
		date, err := cmd.Flags().GetString("date")
		if err != nil {
			logger.Error("invalid date", err)
			return
		}
		withLayout, err := cmd.Flags().GetBool("layout")
		if err != nil {
			logger.Error("invalid layout flag", err)
			return
		}

		fetcher := newFetcher(cfg, "week", reportLogger)
		ctx := context.Background()

		var week timetable.Week
		if date != "" {
			reference, parseErr := time.Parse("2006-01-02", date)
			if parseErr != nil {
				logger.Error("date must be YYYY-MM-DD: ", parseErr)
				return
			}
			week, err = fetcher.FetchWeekAt(ctx, username, reference)
		} else {
			week, err = fetcher.FetchWeek(ctx, username, offset)
		}
		if err != nil {
			logger.Error("could not fetch the week: ", err)
			return
		}

		var output any = week
		if withLayout {
			grid := layout.Config{
				DayStartMinutes: cfg.Grid.DayStartMinutes,
				PixelsPerHour:   cfg.Grid.PixelsPerHour,
				MinBlockHeight:  cfg.Grid.MinBlockHeight,
				ColumnGap:       cfg.Grid.ColumnGap,
			}
			type dayLayout struct {
				Day     string                    `json:"day"`
				Date    string                    `json:"date"`
				Courses []layout.PositionedCourse `json:"courses"`
			}
			days := make([]dayLayout, 0, len(week))
			for _, day := range week {
				days = append(days, dayLayout{
					Day:     day.Day,
					Date:    day.Date,
					Courses: layout.AssignColumns(day.Courses, grid),
				})
			}
			output = days
		}

		payload, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			logger.Error("could not marshal the week: ", err)
			return
		}
		fmt.Println(string(payload))
	},
}

func init() {
	rootCmd.AddCommand(weekCmd)

	weekCmd.Flags().String("user", "", "The firstname.lastname identifier or a configured shortcut")
	weekCmd.Flags().Int("offset", 0, "Weeks away from the current one (negative for past weeks)")
	weekCmd.Flags().String("date", "", "Any date inside the wanted week (YYYY-MM-DD), overrides --offset")
	weekCmd.Flags().Bool("layout", false, "Include grid positions for every course")
}
