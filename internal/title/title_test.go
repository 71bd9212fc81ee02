package title

import "testing"

func TestPrettify_CutAnchor(t *testing.T) {
	got := Prettify(`Great day! <a href="x">see more</a>`)
	if got != "Great day!" {
		t.Fatalf("got %q", got)
	}
}

func TestPrettify_Cuts(t *testing.T) {
	cases := map[string]string{
		"erste Zeile<br>zweite Zeile":   "erste Zeile",
		"Unterwegs...":                  "Unterwegs",
		"Hallo, Welt":                   "Hallo",
		"Wirklich? Ja":                  "Wirklich",
		"Titel (mit Klammer)":           "Titel",
		"Satz. Und noch einer.":         "Satz",
		`<b>fett</b> und <i>kursiv`:     "fett und kursiv",
		"&quot;Zitat&#39;":              `"Zitat'`,
		"mention span class=\"x\" rest": "mention",
	}
	for in, want := range cases {
		if got := Prettify(in); got != want {
			t.Fatalf("Prettify(%q)=%q want %q", in, got, want)
		}
	}
}

func TestPrettify_AnchorCutBeforeBracketStrip(t *testing.T) {
	// 锚点截断必须先于 "<" 清除，否则只会剥掉标签而留下链接文本
	got := Prettify(`Schau <a href="x">hier</a>`)
	if got != "Schau" {
		t.Fatalf("got %q", got)
	}
}

func TestPrettify_IdempotentOnCleanText(t *testing.T) {
	clean := "Ein sauberer Titel ohne Marker"
	once := Prettify(clean)
	if once != clean {
		t.Fatalf("clean text changed: %q", once)
	}
	if twice := Prettify(once); twice != once {
		t.Fatalf("not idempotent: %q vs %q", twice, once)
	}
}
