package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
)

func TestScrapeURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ams.html" {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, filepath.Join("testdata", "departments", "ams.html"))
	}))
	defer server.Close()

	courses, err := ScrapeURL(context.Background(), server.Client(), server.URL+"/ams.html", "AMS", DefaultTags)
	if err != nil {
		t.Fatalf("scrape: %v", err)
	}
	if len(courses) != 2 || courses[0].ID() != "AMS 151" || !courses[0].HasTag("QPS") {
		t.Errorf("unexpected courses %v", courses)
	}

	if _, err := ScrapeURL(context.Background(), server.Client(), server.URL+"/missing.html", "XYZ", DefaultTags); err == nil {
		t.Error("expected error for missing page")
	}
}
