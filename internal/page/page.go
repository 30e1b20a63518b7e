// Package page composes the full single-page view from a content model.
package page

import (
	"strings"
	"time"

	"github.com/waiooaung/portfolio/internal/content"
	"github.com/waiooaung/portfolio/internal/nav"
	"github.com/waiooaung/portfolio/internal/scroll"
	"github.com/waiooaung/portfolio/internal/section"
)

// Order is the fixed order of the page sections.
var Order = []content.SectionID{
	content.SectionHero,
	content.SectionSkills,
	content.SectionExperience,
	content.SectionProjects,
	content.SectionContact,
}

var headings = map[content.SectionID]struct{ title, intro string }{
	content.SectionSkills: {
		"Technical Expertise",
		"A versatile full stack profile spanning multiple languages, modern frameworks, and DevOps tools, enabling end-to-end development of robust applications.",
	},
	content.SectionExperience: {"Professional Journey", ""},
	content.SectionProjects: {
		"Featured Projects",
		"Showcasing diverse expertise across trading platforms, e-commerce, and responsive web applications.",
	},
	content.SectionContact: {
		"Let's Connect",
		"I am actively seeking new opportunities and challenges. Feel free to reach out to discuss potential projects or roles.",
	},
}

// Section is one anchored page region. Exactly one of the payload fields is
// meaningful, selected by ID.
type Section struct {
	ID    content.SectionID
	Title string
	Intro string

	Hero       section.Hero
	Skills     []section.SkillCard
	Experience []section.ExperienceItem
	Projects   []section.ProjectCard
	Contact    section.Contact
}

func (s Section) Anchor() string { return string(s.ID) }

type Footer struct {
	Year int
	Name string
}

// Shell carries the settings of the interactive page shell.
type Shell struct {
	ScrollThreshold float64
	ScrollBehavior  scroll.Behavior
	// LiveURL is the websocket path of the live session; empty when the page
	// has no live channel (static export).
	LiveURL         string
}

type Page struct {
	Title       string
	Description string
	Brand       string
	BrandHref   string
	Nav         []nav.Link
	CompactNav  []nav.Link
	Sections    []Section
	Footer      Footer
	Shell       Shell
}

// Section returns the section with the given id.
func (p Page) Section(id content.SectionID) (Section, bool) {
	for _, s := range p.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// Composer turns a content model into a Page.
type Composer struct {
	// Now supplies the footer year; time.Now when nil.
	Now   func() time.Time
	Shell Shell
}

// Compose builds every section in Order. Entries keep their model order and
// missing lists produce empty sections.
func (c Composer) Compose(m content.Model) Page {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	shell := c.Shell
	if shell.ScrollBehavior == "" {
		shell.ScrollBehavior = scroll.DefaultBehavior
	}

	menu := nav.New(m.Nav)
	p := Page{
		Title:       pageTitle(m.Identity),
		Description: strings.Join(strings.Fields(m.Identity.Summary), " "),
		Brand:       m.Identity.Name,
		BrandHref:   "#" + string(content.SectionHero),
		Nav:         menu.Links(nav.Wide),
		CompactNav:  menu.Links(nav.Compact),
		Footer:      Footer{Year: now().Year(), Name: m.Identity.Name},
		Shell:       shell,
	}
	for _, id := range Order {
		p.Sections = append(p.Sections, compose(id, m))
	}
	return p
}

func compose(id content.SectionID, m content.Model) Section {
	s := Section{ID: id, Title: headings[id].title, Intro: headings[id].intro}
	switch id {
	case content.SectionHero:
		s.Hero = section.RenderHero(m.Identity, m.Contact)
	case content.SectionSkills:
		s.Skills = make([]section.SkillCard, 0, len(m.Skills))
		for _, g := range m.Skills {
			s.Skills = append(s.Skills, section.RenderSkill(g))
		}
	case content.SectionExperience:
		s.Experience = make([]section.ExperienceItem, 0, len(m.Experience))
		for _, e := range m.Experience {
			s.Experience = append(s.Experience, section.RenderExperience(e))
		}
	case content.SectionProjects:
		s.Projects = make([]section.ProjectCard, 0, len(m.Projects))
		for _, p := range m.Projects {
			s.Projects = append(s.Projects, section.RenderProject(p))
		}
	case content.SectionContact:
		s.Contact = section.RenderContact(m.Contact)
	}
	return s
}

func pageTitle(id content.Identity) string {
	switch {
	case id.Name == "":
		return "Portfolio"
	case id.Title == "":
		return id.Name
	default:
		return id.Name + " | " + id.Title
	}
}
