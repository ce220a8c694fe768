package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brequin/brequin/audit/degree"
)

type programSummary struct {
	Name   string   `json:"name"`
	Groups []string `json:"groups"`
}

func init() {
	cmd := &cobra.Command{
		Use:   "programs",
		Short: "List built-in programs and their requirement groups",
		Run:   runPrograms,
	}

	RootCmd.AddCommand(cmd)
}

func runPrograms(cmd *cobra.Command, args []string) {
	var summaries []programSummary
	for _, name := range degree.ProgramNames() {
		groups, err := degree.Program(name)
		if err != nil {
			exitErr("program", err)
		}
		summary := programSummary{Name: name}
		for _, group := range groups {
			summary.Groups = append(summary.Groups, group.Name)
		}
		summaries = append(summaries, summary)
	}

	if formatFlag == "json" {
		printJSON(summaries)
		return
	}
	for _, summary := range summaries {
		fmt.Println(summary.Name)
		for _, group := range summary.Groups {
			fmt.Printf("\t%v\n", group)
		}
	}
}
