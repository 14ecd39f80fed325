package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Load the trip document and show what the viewer would render",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := newViewer().Open(cmd.Context())
		if err != nil {
			return fmt.Errorf("loading trip data: %w", err)
		}
		st := sess.Stats()
		page := sess.Page

		fmt.Printf("Trip Document\n")
		fmt.Printf("=============\n")
		fmt.Printf("Loaded from:     %s\n", st.Candidate)
		fmt.Printf("Dates:           %s\n", page.Summary.DateRange)
		fmt.Printf("Days:            %d\n", st.Days)
		fmt.Printf("Photos:          %d\n", st.Photos)
		fmt.Printf("Locations:       %d (%d with GPS)\n", st.Locations, st.LocatedPlaces)
		fmt.Printf("Days with GPS:   %d / %d\n", st.LocatedDays, st.Days)
		fmt.Printf("Days w/o text:   %d\n", st.DaysWithoutText)
		if page.Narrative.Authored {
			fmt.Printf("Narrative:       authored\n")
		} else {
			fmt.Printf("Narrative:       generated\n")
		}
		if !page.Map.HasMap() {
			fmt.Printf("Map:             %s\n", page.Map.Placeholder)
		} else {
			fmt.Printf("Map:             %d markers, %d route points\n", len(page.Map.Markers), len(page.Map.Route))
		}

		if len(page.Timeline) > 0 {
			fmt.Printf("\nPer-Day Breakdown\n")
			fmt.Printf("-----------------\n")
			for _, day := range page.Timeline {
				fmt.Printf("  Day %-3d  %-24s  %-10s  %s\n",
					day.DayNumber, day.Location, day.PhotoLabel, day.TimeRange)
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
