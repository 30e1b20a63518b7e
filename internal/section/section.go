// Package section maps single content entities to the view models the page
// templates render. Every function here is pure: same entity in, same view
// out, no state kept between calls.
package section

import (
	"html/template"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/waiooaung/portfolio/internal/content"
)

// Icon names a glyph from the page's icon sprite.
type Icon string

const (
	IconCode     Icon = "code"
	IconCPU      Icon = "cpu"
	IconDatabase Icon = "database"
	IconCloud    Icon = "cloud"
	IconServer   Icon = "server"
	IconGeneric  Icon = "zap"
	IconMail     Icon = "mail"
	IconPhone    Icon = "phone"
	IconMapPin   Icon = "map-pin"
	IconLinkedIn Icon = "linkedin"
	IconGitHub   Icon = "github"
	IconLink     Icon = "link"
)

var categoryIcons = map[content.SkillCategory]Icon{
	content.CategoryLanguages:  IconCode,
	content.CategoryFrameworks: IconCPU,
	content.CategoryDatabases:  IconDatabase,
	content.CategoryCloud:      IconCloud,
	content.CategoryAPIs:       IconServer,
}

// IconFor returns the fixed icon of a skill category. Categories outside the
// known set get IconGeneric.
func IconFor(c content.SkillCategory) Icon {
	if icon, ok := categoryIcons[c]; ok {
		return icon
	}
	return IconGeneric
}

// Action is a call to action rendered as a link.
type Action struct {
	Label    string
	Href     string
	Icon     Icon
	External bool
}

type Hero struct {
	Name     string
	Title    string
	Summary  template.HTML
	Avatar   string
	Initials string
	Actions  []Action
	Socials  []Action
}

// RenderHero builds the hero view. The social row carries the profile links
// followed by the mail link, as the contact section does.
func RenderHero(id content.Identity, c content.ContactInfo) Hero {
	h := Hero{
		Name:     id.Name,
		Title:    id.Title,
		Summary:  Markdown(id.Summary),
		Avatar:   id.Avatar,
		Initials: Initials(id.Name),
		Actions: []Action{
			{Label: "View Projects", Href: "#" + string(content.SectionProjects)},
			{Label: "Get In Touch", Href: "#" + string(content.SectionContact)},
		},
	}
	h.Socials = append(h.Socials, profileActions(c.Links)...)
	if c.Email != "" {
		h.Socials = append(h.Socials, Action{Label: "Email", Href: "mailto:" + c.Email, Icon: IconMail})
	}
	return h
}

// Initials returns up to two upper-case initials of name.
func Initials(name string) string {
	var b strings.Builder
	n := 0
	for _, word := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteString(strings.ToUpper(string(r)))
		if n++; n == 2 {
			break
		}
	}
	return b.String()
}

type SkillCard struct {
	Category string
	Icon     Icon
	Items    []string
}

func RenderSkill(g content.SkillGroup) SkillCard {
	return SkillCard{
		Category: string(g.Category),
		Icon:     IconFor(g.Category),
		Items:    g.Items,
	}
}

type ExperienceItem struct {
	Title    string
	Company  string
	Location string
	Period   string
	Bullets  []string
}

// RenderExperience copies the entry through. Period is never parsed.
func RenderExperience(e content.ExperienceEntry) ExperienceItem {
	return ExperienceItem{
		Title:    e.Title,
		Company:  e.Company,
		Location: e.Location,
		Period:   e.Period,
		Bullets:  e.Bullets,
	}
}

type ProjectCard struct {
	Name        string
	Tags        []string
	Description template.HTML
	Link        string
	HasLink     bool
}

func RenderProject(p content.ProjectEntry) ProjectCard {
	card := ProjectCard{
		Name:        p.Name,
		Tags:        Tags(p.Technologies),
		Description: Markdown(p.Description),
	}
	if HasOutboundLink(p.Link) {
		card.Link = p.Link
		card.HasLink = true
	}
	return card
}

// Tags splits a comma separated technologies string into trimmed tokens.
// Empty tokens are dropped.
func Tags(technologies string) []string {
	tags := []string{}
	for _, tok := range strings.Split(technologies, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			tags = append(tags, tok)
		}
	}
	return tags
}

// HasOutboundLink reports whether a project link should produce a call to
// action. The NoLink placeholder and the empty string do not.
func HasOutboundLink(link string) bool {
	return link != content.NoLink && link != ""
}

// ContactCard is one reachable channel. Href is empty when the channel is
// display-only (location).
type ContactCard struct {
	Icon     Icon
	Text     string
	Href     string
	External bool
}

type Contact struct {
	Cards    []ContactCard
	Profiles []Action
}

// RenderContact builds the contact section. Absent fields are left out.
func RenderContact(c content.ContactInfo) Contact {
	var v Contact
	if c.Email != "" {
		v.Cards = append(v.Cards, ContactCard{Icon: IconMail, Text: c.Email, Href: "mailto:" + c.Email})
	}
	if c.Phone != "" {
		v.Cards = append(v.Cards, ContactCard{Icon: IconPhone, Text: c.Phone, Href: "tel:" + DialToken(c.Phone)})
	}
	if c.Location != "" {
		v.Cards = append(v.Cards, ContactCard{Icon: IconMapPin, Text: c.Location})
	}
	v.Profiles = profileActions(c.Links)
	return v
}

// DialToken strips whitespace and parentheses from a formatted phone number.
func DialToken(phone string) string {
	return strings.Map(func(r rune) rune {
		if r == '(' || r == ')' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, phone)
}

func profileActions(links []content.ProfileLink) []Action {
	var out []Action
	for _, l := range links {
		out = append(out, Action{
			Label:    l.Platform,
			Href:     l.URL,
			Icon:     profileIcon(l.Platform),
			External: true,
		})
	}
	return out
}

func profileIcon(platform string) Icon {
	switch platform {
	case content.PlatformLinkedIn:
		return IconLinkedIn
	case content.PlatformGitHub:
		return IconGitHub
	default:
		return IconLink
	}
}
