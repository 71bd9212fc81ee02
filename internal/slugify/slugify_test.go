package slugify

import "testing"

func TestForPost_DateTokenAndTitle(t *testing.T) {
	got := ForPost("2019-01-05 12:34:56+0100", "Great day")
	if got != "2019-01-05-great-day" {
		t.Fatalf("got %q", got)
	}
}

func TestForPost_Deterministic(t *testing.T) {
	a := ForPost("2019-01-05 x", "Schöner Tag")
	b := ForPost("2019-01-05 x", "Schöner Tag")
	if a == "" || a != b {
		t.Fatalf("not deterministic: %q vs %q", a, b)
	}
}

func TestSlugify_DiacriticFolding(t *testing.T) {
	if got := Slugify("Schöner Tag im Café"); got != "schoner-tag-im-cafe" {
		t.Fatalf("got %q", got)
	}
}

func TestSlugify_CollapsesRuns(t *testing.T) {
	if got := Slugify("a  --  b__c"); got != "a-b-c" {
		t.Fatalf("got %q", got)
	}
	if got := Slugify("--leading and trailing--"); got != "leading-and-trailing" {
		t.Fatalf("got %q", got)
	}
}

func TestSlugify_EmptyResult(t *testing.T) {
	if got := Slugify("***"); got != "" {
		t.Fatalf("expected empty slug, got %q", got)
	}
	if got := ForPost("", ""); got != "" {
		t.Fatalf("expected empty slug, got %q", got)
	}
}
