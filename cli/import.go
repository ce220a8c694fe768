package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brequin/brequin/audit/catalog"
	"github.com/brequin/brequin/audit/db"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import <catalog.json>",
		Short: "Load a JSON catalog into the configured store",
		Args:  cobra.ExactArgs(1),
		Run:   runImport,
	}

	RootCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) {
	file, err := os.Open(args[0])
	if err != nil {
		exitErr("open catalog", err)
	}
	defer file.Close()

	c, err := catalog.ReadJSON(file)
	if err != nil {
		exitErr("read catalog", err)
	}

	s, err := openStore(cmd.Context(), loadConfig())
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := s.InsertCourses(cmd.Context(), c.Courses()); err != nil {
		exitErr("store courses", err)
	}

	stored, err := db.LoadCatalog(cmd.Context(), s)
	if err != nil {
		exitErr("verify store", err)
	}
	fmt.Printf("imported %v courses (%v in store)\n", c.Len(), stored.Len())
}
