package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brequin/brequin/audit/course"
)

func init() {
	cmd := &cobra.Command{
		Use:   "courses",
		Short: "List catalog courses",
		Run:   runCourses,
	}

	cmd.Flags().String("dept", "", "Only list one department")

	RootCmd.AddCommand(cmd)
}

func runCourses(cmd *cobra.Command, args []string) {
	department, _ := cmd.Flags().GetString("dept")

	c, err := loadCatalog(cmd.Context(), loadConfig())
	if err != nil {
		exitErr("catalog", err)
	}

	var courses []course.Course
	if department != "" {
		courses = c.Department(department)
	} else {
		courses = c.Courses()
	}

	if formatFlag == "json" {
		printJSON(courses)
		return
	}
	for _, found := range courses {
		fmt.Println(found)
	}
}
