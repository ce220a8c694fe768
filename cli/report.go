package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/brequin/brequin/audit/audit"
	"github.com/brequin/brequin/audit/degree"
	"github.com/brequin/brequin/audit/requirement"
)

func init() {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Audit a schedule against a program",
		Run:   runReport,
	}

	cmd.Flags().StringP("schedule", "s", "", "Schedule JSON file (required)")
	cmd.Flags().StringP("program", "p", "cse", "Built-in program (see 'programs')")
	cmd.Flags().StringP("requirements", "r", "", "Requirements JSON file, used instead of --program")
	cmd.Flags().Float64("first-ceiling", 0, "Credit ceiling of the first term (default: $DEGREE_AUDIT_FIRST_TERM_CEILING or 17)")
	cmd.Flags().Float64("ceiling", 0, "Credit ceiling of later terms (default: $DEGREE_AUDIT_TERM_CEILING or 19)")
	cmd.MarkFlagRequired("schedule")

	RootCmd.AddCommand(cmd)
}

func runReport(cmd *cobra.Command, args []string) {
	schedulePath, _ := cmd.Flags().GetString("schedule")
	program, _ := cmd.Flags().GetString("program")
	requirementsPath, _ := cmd.Flags().GetString("requirements")

	cfg := loadConfig()
	ceilings := cfg.Ceilings()
	if cmd.Flags().Changed("first-ceiling") {
		ceilings.First, _ = cmd.Flags().GetFloat64("first-ceiling")
	}
	if cmd.Flags().Changed("ceiling") {
		ceilings.Default, _ = cmd.Flags().GetFloat64("ceiling")
	}

	groups, err := loadGroups(program, requirementsPath)
	if err != nil {
		exitErr("requirements", err)
	}

	c, err := loadCatalog(cmd.Context(), cfg)
	if err != nil {
		exitErr("catalog", err)
	}

	file, err := os.Open(schedulePath)
	if err != nil {
		exitErr("schedule", err)
	}
	defer file.Close()

	schedule, err := audit.ReadSchedule(file)
	if err != nil {
		exitErr("schedule", err)
	}

	report, err := audit.NewDriver(c, groups, ceilings).Audit(schedule)
	if err != nil {
		exitErr("resolve schedule", err)
	}

	if formatFlag == "json" {
		printJSON(report)
		return
	}
	if err := report.WriteText(os.Stdout); err != nil {
		exitErr("write report", err)
	}
}

func loadGroups(program, requirementsPath string) ([]requirement.Group, error) {
	if requirementsPath == "" {
		return degree.Program(program)
	}

	file, err := os.Open(requirementsPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	definitions, err := requirement.ReadDefinitions(file)
	if err != nil {
		return nil, err
	}
	return requirement.Build(definitions)
}
