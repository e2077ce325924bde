package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msmelabs/cashintel/internal/cli"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Per-day stress calendar",
	RunE:  runCalendar,
}

func init() {
	rootCmd.AddCommand(calendarCmd)
}

func runCalendar(_ *cobra.Command, _ []string) error {
	a, _, err := loadAnalysis()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("STRESS CALENDAR"))
	fmt.Println()
	fmt.Printf("  Low-balance threshold: %s\n\n", cli.FormatMoneyFloat(a.Stress.Threshold))

	rows := make([][]string, 0, len(a.Calendar))
	stressed := 0
	for _, e := range a.Calendar {
		flag := ""
		if e.Stress {
			flag = "STRESS"
			stressed++
		}
		rows = append(rows, []string{
			cli.FormatDate(e.Date),
			cli.FormatMoney(e.Balance),
			flag,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Balance", "Flag"},
		Rows:    rows,
	}))

	fmt.Printf("  %d of %d rows below threshold\n\n", stressed, len(a.Calendar))
	return nil
}
