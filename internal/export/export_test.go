package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go-gplus-import/internal/model"
)

func TestToJSONReport(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.json")
	stats := model.ImportStats{PostsTotal: 2, Imported: 1, Skipped: 1, UpdatedAt: time.Now()}
	posts := []model.PostRecord{{Slug: "s", Title: "t", Category: "Andere", HideTitle: true}}
	if err := ToJSONReport(stats, posts, out); err != nil {
		t.Fatalf("export: %v", err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var r model.Report
	if err := json.Unmarshal(b, &r); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if r.Stats.PostsTotal != 2 || len(r.Posts) != 1 || r.Posts[0].Slug != "s" {
		t.Fatalf("report %+v", r)
	}
}
