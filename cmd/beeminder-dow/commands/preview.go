package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"beeminder-dow/internal/app"
	"beeminder-dow/internal/domain"
	"beeminder-dow/internal/schedule"
)

const dateLayout = "2006-01-02"

// preview fetches the goal named by args[0] and prints its schedule preview.
func (inv *invocation) preview(cmd *cobra.Command, args []string) error {
	goal := args[0]
	if inv.cfg.Horizon <= 0 {
		return usageError{fmt.Errorf("--horizon must be positive, got %d", inv.cfg.Horizon)}
	}

	w, err := app.NewWire(inv.cfg, inv.logger)
	if err != nil {
		return err
	}
	p, err := w.Holidays.Preview(cmd.Context(), goal, inv.pattern)
	if err != nil {
		return err
	}
	printPreview(cmd.OutOrStdout(), p)
	return nil
}

func printPreview(out io.Writer, p domain.Preview) {
	fmt.Fprintf(out, "Goal: %s/%s (%s, %s)\n", p.Username, p.Goal.Slug, rate(p.Goal), deadline(p.Goal))
	fmt.Fprintf(out, "Pattern: %s\n", p.Pattern)
	fmt.Fprintf(out, "Start: %s\n", p.Start.Format(dateLayout))

	if len(p.Fragment.Runs) == 0 {
		fmt.Fprintln(out, "Nothing to schedule: the goal ends before the start date.")
		return
	}
	first := "on"
	if !p.Fragment.StartsOn {
		first = "off"
	}
	fmt.Fprintf(out, "Schedule: %v (first run %s, %d days)\n", p.Fragment.Runs, first, schedule.Len(p.Fragment))

	days := schedule.Holidays(p.Fragment)
	if len(days) == 0 {
		fmt.Fprintln(out, "Holidays: none")
		return
	}
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = d.Format("Mon " + dateLayout)
	}
	fmt.Fprintf(out, "Holidays: %s\n", strings.Join(names, ", "))
}

func rate(g domain.GoalSnapshot) string {
	if g.Rate == nil {
		return "no rate"
	}
	s := "rate " + strconv.FormatFloat(*g.Rate, 'g', -1, 64)
	if g.RateUnits != "" {
		s += "/" + g.RateUnits
	}
	return s
}

func deadline(g domain.GoalSnapshot) string {
	if g.EndDate.IsZero() {
		return "no end date"
	}
	return "ends " + g.EndDate.Format(dateLayout)
}
