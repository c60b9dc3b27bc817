package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newPlanCmd())
}

func newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan <scenario.toml>",
		Short: "Summarize what a scenario would reserve",
		Long: `The plan command executes a scenario against a throwaway container and
reports, per request group, how many areas and blocks would land, without the
full area layout.

Example:
  tilerctl plan camera-pipeline.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(args)
		},
	}
	return cmd
}

type planReport struct {
	Group  uint32 `json:"group"`
	Areas  int    `json:"areas"`
	Blocks int    `json:"blocks"`
	Slots  int    `json:"slots"`
}

func runPlan(args []string) error {
	s, err := loadScenario(args[0])
	if err != nil {
		return err
	}

	c := runScenario(s)

	var reports []planReport
	for _, gid := range s.groupIDs() {
		rep := planReport{Group: gid}
		for _, a := range c.ReservedAreas(scenarioProcess, gid) {
			rep.Areas++
			rep.Blocks += a.Blocks
			rep.Slots += a.W * a.H
		}
		reports = append(reports, rep)
	}

	if jsonOut {
		return printJSON(reports)
	}

	printInfo("\nPlan:\n")
	for _, rep := range reports {
		printInfo("  group %d: %d area(s), %d block(s), %d slot(s)\n",
			rep.Group, rep.Areas, rep.Blocks, rep.Slots)
	}
	st := c.Stats()
	printInfo("\n%d/%d slots would be used\n", st.SlotsUsed, st.SlotsTotal)
	return nil
}
