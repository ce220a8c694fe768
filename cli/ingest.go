package cli

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brequin/brequin/audit/catalog"
	"github.com/brequin/brequin/audit/course"
)

func init() {
	cmd := &cobra.Command{
		Use:   "ingest [html-dir]",
		Short: "Scrape department pages into a course catalog",
		Long:  "Reads every department page in a directory (file names start with the three-letter department code) and any --page URLs, and writes the courses as a JSON catalog, and into the configured store if there is one.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runIngest,
	}

	cmd.Flags().StringP("out", "o", "courses.json", "Catalog JSON output file (empty to skip)")
	cmd.Flags().StringP("tags", "t", "", "JSON array of distribution tags to recognize (default: built-in list)")
	cmd.Flags().StringArray("page", nil, "Remote department page as DEPT=URL (repeatable)")

	RootCmd.AddCommand(cmd)
}

func runIngest(cmd *cobra.Command, args []string) {
	outPath, _ := cmd.Flags().GetString("out")
	tagsPath, _ := cmd.Flags().GetString("tags")
	pages, _ := cmd.Flags().GetStringArray("page")

	if len(args) == 0 && len(pages) == 0 {
		exitErr("ingest", errors.New("nothing to ingest: give a directory or --page"))
	}

	tags := catalog.DefaultTags
	if tagsPath != "" {
		file, err := os.Open(tagsPath)
		if err != nil {
			exitErr("tags", err)
		}
		tags, err = catalog.ReadTags(file)
		file.Close()
		if err != nil {
			exitErr("tags", err)
		}
	}

	var courses []course.Course
	if len(args) == 1 {
		scraped, err := catalog.ScrapeDirectory(args[0], tags)
		if err != nil {
			exitErr("scrape", err)
		}
		courses = append(courses, scraped...)
	}

	for _, page := range pages {
		department, url, found := strings.Cut(page, "=")
		if !found {
			exitErr("page", fmt.Errorf("%q is not DEPT=URL", page))
		}
		scraped, err := catalog.ScrapeURL(cmd.Context(), http.DefaultClient, url, strings.ToUpper(department), tags)
		if err != nil {
			exitErr("scrape "+department, err)
		}
		courses = append(courses, scraped...)
	}

	c, err := catalog.New(courses)
	if err != nil {
		exitErr("catalog", err)
	}
	log.Printf("Scraped %v courses", c.Len())

	if outPath != "" {
		file, err := os.Create(outPath)
		if err != nil {
			exitErr("create catalog", err)
		}
		if err := catalog.WriteJSON(file, c); err != nil {
			exitErr("write catalog", err)
		}
		if err := file.Close(); err != nil {
			exitErr("write catalog", err)
		}
	}

	s, err := openStore(cmd.Context(), loadConfig())
	if errors.Is(err, errNoStore) {
		return
	}
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := s.InsertCourses(cmd.Context(), c.Courses()); err != nil {
		exitErr("store courses", err)
	}
	fmt.Printf("stored %v courses\n", c.Len())
}
