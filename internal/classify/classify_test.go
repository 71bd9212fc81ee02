package classify

import (
	"testing"

	"go-gplus-import/internal/config"
	"go-gplus-import/internal/model"
)

func newPost(label string) *model.ExportedPost {
	return &model.ExportedPost{VisibilityLabel: label, Permalink: "https://plus.google.com/posts/x"}
}

func withLink(p *model.ExportedPost, href, text string) *model.ExportedPost {
	p.HasVisLink = true
	p.VisibilityHref = href
	p.VisibilityText = text
	return p
}

func TestClassify_PublicPrefixCutsAtComma(t *testing.T) {
	cfg := config.Default()
	cfg.Shared.Public = "Shared with: Public"
	c := New(cfg)
	_, cat := c.Classify(newPost("Shared with: Public, extra"))
	if cat.Skip || cat.Label != "Shared with: Public" {
		t.Fatalf("got %+v", cat)
	}
}

func TestClassify_CirclesAndExtCirclesPrefixes(t *testing.T) {
	c := New(config.Default())
	for _, label := range []string{
		"Geteilt mit: Meine Kreise",
		"Geteilt mit: Meine erweiterten Kreise, und mehr",
	} {
		_, cat := c.Classify(newPost(label))
		if cat.Skip {
			t.Fatalf("unexpected skip for %q: %+v", label, cat)
		}
	}
}

func TestClassify_CommunityDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.Import.Com = false
	c := New(cfg)
	p := withLink(newPost("Shared to the community "), "https://plus.google.com/communities/123", "Gophers")
	_, cat := c.Classify(p)
	if !cat.Skip || cat.SkipReason != SkipCommunityDisabled {
		t.Fatalf("got %+v", cat)
	}
}

func TestClassify_CommunityFilteredAndAllowed(t *testing.T) {
	cfg := config.Default()
	cfg.Import.ComFilter = []string{"Spammers"}
	c := New(cfg)

	p := withLink(newPost("Shared to the community "), "https://plus.google.com/communities/1", "Spammers")
	_, cat := c.Classify(p)
	if !cat.Skip || cat.SkipReason != SkipCommunityFiltered {
		t.Fatalf("filtered: got %+v", cat)
	}

	p = withLink(newPost("Shared to the community "), "https://plus.google.com/communities/2", "Gophers")
	_, cat = c.Classify(p)
	if cat.Skip || cat.Label != `Shared to the community "Gophers"` {
		t.Fatalf("allowed: got %+v", cat)
	}
}

func TestClassify_CollectionAlwaysPublic(t *testing.T) {
	cfg := config.Default()
	cfg.Import.Com = false
	cfg.Import.Private = false
	c := New(cfg)
	p := withLink(newPost("Shared to the collection "), "https://plus.google.com/collection/abc", "Fotos")
	_, cat := c.Classify(p)
	if cat.Skip || cat.Label != `Shared to the collection "Fotos"` {
		t.Fatalf("got %+v", cat)
	}
}

func TestClassify_EventDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.Import.Event = false
	c := New(cfg)
	p := withLink(newPost("Shared to the event "), "https://plus.google.com/events/xyz", "Treffen")
	_, cat := c.Classify(p)
	if !cat.Skip || cat.SkipReason != SkipEventDisabled {
		t.Fatalf("got %+v", cat)
	}
}

func TestClassify_CircleTarget(t *testing.T) {
	cfg := config.Default()
	cfg.Import.CircleFilter = []string{"Familie"}
	c := New(cfg)

	p := withLink(newPost("Geteilt mit folgenden Personen"), "https://plus.google.com/circles/7", "Freunde")
	_, cat := c.Classify(p)
	if cat.Skip || cat.Label != `Shared to circle "Freunde"` {
		t.Fatalf("circle: got %+v", cat)
	}

	p = withLink(newPost("Geteilt mit folgenden Personen"), "https://plus.google.com/circles/8", "Familie")
	_, cat = c.Classify(p)
	if !cat.Skip || cat.SkipReason != SkipCircleFiltered {
		t.Fatalf("filtered circle: got %+v", cat)
	}
}

func TestClassify_PrivateFallback(t *testing.T) {
	c := New(config.Default())
	_, cat := c.Classify(newPost("Geteilt mit bestimmten Personen"))
	if cat.Skip || cat.Label != "Andere" {
		t.Fatalf("fallback: got %+v", cat)
	}

	cfg := config.Default()
	cfg.Import.Private = false
	c = New(cfg)
	_, cat = c.Classify(newPost("Geteilt mit bestimmten Personen"))
	if !cat.Skip || cat.SkipReason != SkipPrivateDisabled {
		t.Fatalf("disabled: got %+v", cat)
	}
}

func TestResolve_DeletedEntityClearsPermalink(t *testing.T) {
	p := withLink(newPost("Shared to the community "), "https://plus.google.com/communities/123", "")
	target := Resolve(p)
	if target.Name != "Deleted community" {
		t.Fatalf("name=%q", target.Name)
	}
	if p.Permalink != "" {
		t.Fatalf("permalink not cleared: %q", p.Permalink)
	}
}

func TestKindFromHref(t *testing.T) {
	cases := map[string]model.EntityKind{
		"https://plus.google.com/communities/1": model.EntityCommunity,
		"https://plus.google.com/collection/a":  model.EntityCollection,
		"https://plus.google.com/events/b":      model.EntityEvent,
		"https://plus.google.com/circles/c":     model.EntityCircle,
		"https://plus.google.com/+Someone":      model.EntityProfile,
	}
	for href, want := range cases {
		if got := KindFromHref(href); got != want {
			t.Fatalf("KindFromHref(%q)=%q want %q", href, got, want)
		}
	}
}

func TestClassify_PrecedenceOverEntityLink(t *testing.T) {
	// 公开前缀优先于实体链接：即便可见性里有圈子链接也不走圈子分支
	p := withLink(newPost("Geteilt mit: Öffentlich, Freunde"), "https://plus.google.com/circles/7", "Freunde")
	c := New(config.Default())
	_, cat := c.Classify(p)
	if cat.Skip || cat.Label != "Geteilt mit: Öffentlich" {
		t.Fatalf("got %+v", cat)
	}
}
