package section

import (
	"reflect"
	"strings"
	"testing"

	"github.com/waiooaung/portfolio/internal/content"
)

func TestTags(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Node.js, Express.js, MongoDB, AWS S3", []string{"Node.js", "Express.js", "MongoDB", "AWS S3"}},
		{"Go,", []string{"Go"}},
		{" , ,Go ,, Redis ", []string{"Go", "Redis"}},
		{"PHP (Laravel 10), REST APIs", []string{"PHP (Laravel 10)", "REST APIs"}},
		{"", []string{}},
	}
	for _, tt := range tests {
		got := Tags(tt.in)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Tags(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRenderProjectCallToAction(t *testing.T) {
	tests := []struct {
		link    string
		hasLink bool
	}{
		{content.NoLink, false},
		{"", false},
		{"https://www.royalx.net", true},
		{"/relative/path", true},
		{"   ", true},
	}
	for _, tt := range tests {
		card := RenderProject(content.ProjectEntry{Name: "p", Technologies: "Go", Link: tt.link})
		if card.HasLink != tt.hasLink {
			t.Errorf("link %q: HasLink = %v, want %v", tt.link, card.HasLink, tt.hasLink)
		}
		if !tt.hasLink && card.Link != "" {
			t.Errorf("link %q: expected no outbound link, got %q", tt.link, card.Link)
		}
	}
}

func TestRenderProjectIsDeterministic(t *testing.T) {
	p := content.Default().Projects[0]
	if !reflect.DeepEqual(RenderProject(p), RenderProject(p)) {
		t.Error("rendering the same project twice gave different views")
	}
}

func TestIconFor(t *testing.T) {
	want := map[content.SkillCategory]Icon{
		content.CategoryLanguages:  IconCode,
		content.CategoryFrameworks: IconCPU,
		content.CategoryDatabases:  IconDatabase,
		content.CategoryCloud:      IconCloud,
		content.CategoryAPIs:       IconServer,
	}
	for _, c := range content.Categories {
		if got := IconFor(c); got != want[c] {
			t.Errorf("IconFor(%q) = %q, want %q", c, got, want[c])
		}
	}
	if got := IconFor("Soft Skills"); got != IconGeneric {
		t.Errorf("unknown category: got %q, want %q", got, IconGeneric)
	}
}

func TestDialToken(t *testing.T) {
	tests := map[string]string{
		"(+971) 528241776":  "+971528241776",
		"+1 (555) 010 2000": "+15550102000",
		"":                  "",
	}
	for in, want := range tests {
		if got := DialToken(in); got != want {
			t.Errorf("DialToken(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRenderContact(t *testing.T) {
	v := RenderContact(content.Default().Contact)
	if len(v.Cards) != 3 {
		t.Fatalf("expected 3 contact cards, got %d", len(v.Cards))
	}
	phone := v.Cards[1]
	if phone.Text != "(+971) 528241776" {
		t.Errorf("phone text should keep formatting, got %q", phone.Text)
	}
	if phone.Href != "tel:+971528241776" {
		t.Errorf("phone href: got %q", phone.Href)
	}
	if v.Cards[0].Href != "mailto:waiooaung.sea@gmail.com" {
		t.Errorf("email href: got %q", v.Cards[0].Href)
	}
	if v.Cards[2].Href != "" {
		t.Errorf("location should not link, got %q", v.Cards[2].Href)
	}
	if len(v.Profiles) != 2 || !v.Profiles[0].External || v.Profiles[0].Icon != IconLinkedIn {
		t.Errorf("unexpected profiles: %+v", v.Profiles)
	}
}

func TestInitials(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Wai Oo Aung", "WO"},
		{"Émile Zola", "ÉZ"},
		{"ωmega δelta γamma", "ΩΔ"},
		{"Cher", "C"},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := Initials(tt.name); got != tt.want {
			t.Errorf("Initials(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestRenderContactEmpty(t *testing.T) {
	v := RenderContact(content.ContactInfo{})
	if len(v.Cards) != 0 || len(v.Profiles) != 0 {
		t.Errorf("expected empty contact view, got %+v", v)
	}
}

func TestRenderHero(t *testing.T) {
	m := content.Default()
	h := RenderHero(m.Identity, m.Contact)
	if h.Initials != "WO" {
		t.Errorf("initials: got %q", h.Initials)
	}
	if len(h.Actions) != 2 || h.Actions[0].Href != "#projects" || h.Actions[1].Href != "#contact" {
		t.Errorf("unexpected hero actions: %+v", h.Actions)
	}
	if len(h.Socials) != 3 || h.Socials[2].Href != "mailto:"+m.Contact.Email {
		t.Errorf("unexpected hero socials: %+v", h.Socials)
	}
	if !strings.Contains(string(h.Summary), "Senior Web Developer") {
		t.Errorf("summary not rendered: %q", h.Summary)
	}
}

func TestRenderExperienceKeepsPeriod(t *testing.T) {
	e := content.ExperienceEntry{Title: "Dev", Period: "sometime-ish", Bullets: []string{"b", "a"}}
	v := RenderExperience(e)
	if v.Period != "sometime-ish" {
		t.Errorf("period changed: %q", v.Period)
	}
	if !reflect.DeepEqual(v.Bullets, []string{"b", "a"}) {
		t.Errorf("bullet order changed: %q", v.Bullets)
	}
}

func TestMarkdownEscapesHTML(t *testing.T) {
	out := string(Markdown("hello <script>alert(1)</script>"))
	if strings.Contains(out, "<script>") {
		t.Errorf("raw HTML leaked: %q", out)
	}
	if Markdown("") != "" {
		t.Error("empty text should render nothing")
	}
}
