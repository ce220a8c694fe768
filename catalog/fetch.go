package catalog

import (
	"context"
	"fmt"
	"net/http"

	"github.com/brequin/brequin/audit/course"
)

// ScrapeURL fetches one department page and scrapes it.
func ScrapeURL(ctx context.Context, client *http.Client, url string, department string, tags []string) ([]course.Course, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	response, err := client.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Unable to fetch %v page: %v", department, response.Status)
	}

	return ScrapeDepartment(response.Body, department, tags)
}
