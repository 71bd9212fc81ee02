package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsApplied(t *testing.T) {
	f := filepath.Join(t.TempDir(), "c.yaml")
	// 最小配置：缺省键回落到德语导出包的默认值
	if err := os.WriteFile(f, []byte("SITE:\n  title: Mein Archiv\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	c, err := Load(f)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Takeout.Root != "Takeout" || c.Takeout.Stream != "Stream in Google+" || c.Takeout.Posts != "Beiträge" {
		t.Fatalf("takeout defaults: %+v", c.Takeout)
	}
	if c.Shared.Public != "Geteilt mit: Öffentlich" || c.Shared.Other != "Andere" {
		t.Fatalf("shared defaults: %+v", c.Shared)
	}
	if !c.Import.Com || !c.Import.Private || !c.Import.Event {
		t.Fatalf("import defaults: %+v", c.Import)
	}
	if c.Site.Title != "Mein Archiv" || c.Site.Lang != "de" {
		t.Fatalf("site: %+v", c.Site)
	}
	if c.Database.Type != "sqlite" || c.Database.DSN == "" {
		t.Fatalf("database defaults: %+v", c.Database)
	}
	if c.LogFormat == "" || c.LogLocale == "" || c.LogColor == "" {
		t.Fatalf("log defaults missing")
	}
}

func TestLoad_PolicyOverrides(t *testing.T) {
	f := filepath.Join(t.TempDir(), "c.yaml")
	yaml := `IMPORT:
  com: false
  com_filter: [Spammers, Werbung]
  private: false
  circle_filter: [Familie]
  event: false
`
	if err := os.WriteFile(f, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	c, err := Load(f)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Import.Com || c.Import.Private || c.Import.Event {
		t.Fatalf("overrides not applied: %+v", c.Import)
	}
	if len(c.Import.ComFilter) != 2 || c.Import.CircleFilter[0] != "Familie" {
		t.Fatalf("filters: %+v", c.Import)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expect error for missing file")
	}
	f := filepath.Join(t.TempDir(), "c.yaml")
	if err := os.WriteFile(f, []byte("DATABASE:\n  type: postgres\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(f); err == nil {
		t.Fatalf("expect error for unsupported database type")
	}
}
