package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/brequin/brequin/audit/course"
	"golang.org/x/net/html"
)

// DefaultTags are the distribution tags recognized when scraping.
var DefaultTags = []string{
	"ARTS", "CER", "DIV", "ESI", "EXP+", "GLO", "HFA+", "HUM", "QPS", "SBS",
	"SBS+", "SNW", "SPK", "STAS", "STEM+", "TECH", "USA", "WRT", "WRTD",
}

var creditsPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)(?:\s*-\s*\d+(?:\.\d+)?)?\s+credit`)

// ReadTags decodes a JSON array of distribution tags.
func ReadTags(r io.Reader) ([]string, error) {
	var tags []string
	if err := json.NewDecoder(r).Decode(&tags); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}
	return tags, nil
}

// ScrapeDepartment reads the courses listed on one department page. Each
// course is a ".course" element in the first ".column_2_text" column: its
// id is the course number, its h3 the title, its last paragraph the
// credits, and its links the distribution tags.
func ScrapeDepartment(r io.Reader, department string, tags []string) ([]course.Course, error) {
	document, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	column := document.Find(".column_2_text").First()
	if column.Length() == 0 {
		return nil, errors.New("no course column in department page")
	}

	var courses []course.Course
	for _, root := range column.Find(".course").Nodes {
		c, err := ScrapeCourse(root, department, tags)
		if err != nil {
			log.Println(err)
			continue
		}
		courses = append(courses, c)
	}

	return courses, nil
}

func ScrapeCourse(root *html.Node, department string, tags []string) (course.Course, error) {
	courseDiv := goquery.NewDocumentFromNode(root)

	numberText, exists := courseDiv.Attr("id")
	if !exists {
		return course.Course{}, fmt.Errorf("Unable to determine %v course number", department)
	}
	number, err := strconv.Atoi(strings.TrimSpace(numberText))
	if err != nil {
		return course.Course{}, fmt.Errorf("Unable to convert %v course number %q", department, numberText)
	}
	id := course.ID(department, number)

	name := courseName(courseDiv.Find("h3").First().Text())

	paragraphs := courseDiv.Find("p")
	if paragraphs.Length() == 0 {
		return course.Course{}, fmt.Errorf("Unable to determine %v credits", id)
	}
	creditsText := paragraphs.Last().Text()
	submatches := creditsPattern.FindStringSubmatch(creditsText)
	if submatches == nil {
		return course.Course{}, fmt.Errorf("Unable to determine %v credits from %q", id, creditsText)
	}
	credits, err := strconv.ParseFloat(submatches[1], 64)
	if err != nil {
		return course.Course{}, err
	}

	var courseTags []string
	courseDiv.Find("a").Each(func(i int, link *goquery.Selection) {
		text := strings.TrimSpace(link.Text())
		if slices.Contains(tags, text) {
			courseTags = append(courseTags, text)
		}
	})

	return course.New(department, number, name, credits, courseTags...)
}

// courseName drops the "DEPT NNN: " prefix of a course heading.
func courseName(heading string) string {
	heading = strings.TrimSpace(heading)
	if _, name, found := strings.Cut(heading, ": "); found {
		return strings.TrimSpace(name)
	}
	const prefixLength = len("CSE 114: ")
	if len(heading) > prefixLength {
		return strings.TrimSpace(heading[prefixLength:])
	}
	return heading
}

// ScrapeDirectory scrapes every department page in dir concurrently. The
// department code is the first three letters of the file name. Pages that
// cannot be read are logged and skipped.
func ScrapeDirectory(dir string, tags []string) ([]course.Course, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var courses []course.Course
	var coursesMutex sync.Mutex

	var wg sync.WaitGroup
	for _, entry := range entries {
		if entry.IsDir() || len(entry.Name()) < 3 {
			continue
		}
		wg.Add(1)

		go func(name string) {
			defer wg.Done()

			department := strings.ToUpper(name[:3])
			file, err := os.Open(filepath.Join(dir, name))
			if err != nil {
				log.Println(err)
				return
			}
			defer file.Close()

			departmentCourses, err := ScrapeDepartment(file, department, tags)
			if err != nil {
				log.Printf("Unable to scrape %v: %v", name, err)
				return
			}

			coursesMutex.Lock()
			courses = append(courses, departmentCourses...)
			coursesMutex.Unlock()
		}(entry.Name())
	}
	wg.Wait()

	slices.SortFunc(courses, compareCourses)
	return courses, nil
}
