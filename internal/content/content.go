// Package content holds the portfolio's content model: identity, contact
// details, skill groups, work history, projects and the navigation links.
// The model is built once at startup and only read afterwards.
package content

// SectionID is the in-page anchor of a top-level page region.
type SectionID string

const (
	SectionHero       SectionID = "hero"
	SectionSkills     SectionID = "skills"
	SectionExperience SectionID = "experience"
	SectionProjects   SectionID = "projects"
	SectionContact    SectionID = "contact"
)

// NoLink is the placeholder a ProjectEntry carries when it has no public URL.
const NoLink = "#"

// Identity describes who the page is about.
type Identity struct {
	Name    string
	Title   string
	Summary string
	Avatar  string
}

// ProfileLink is an external profile such as LinkedIn or GitHub.
type ProfileLink struct {
	Platform string
	URL      string
}

type ContactInfo struct {
	Phone    string
	Email    string
	Location string
	Links    []ProfileLink
}

// SkillCategory is the closed set of skill group kinds. Each kind has a
// fixed icon (see section.IconFor).
type SkillCategory string

const (
	CategoryLanguages  SkillCategory = "Languages"
	CategoryFrameworks SkillCategory = "Frameworks"
	CategoryDatabases  SkillCategory = "Databases"
	CategoryCloud      SkillCategory = "Cloud & DevSecOps"
	CategoryAPIs       SkillCategory = "APIs & Servers"
)

// Categories lists every known SkillCategory in display order.
var Categories = []SkillCategory{
	CategoryLanguages,
	CategoryFrameworks,
	CategoryDatabases,
	CategoryCloud,
	CategoryAPIs,
}

type SkillGroup struct {
	Category SkillCategory
	Items    []string
}

// ExperienceEntry is one job on the timeline. Period is free text and is
// shown exactly as written.
type ExperienceEntry struct {
	Title    string
	Company  string
	Location string
	Period   string
	Bullets  []string
}

// ProjectEntry is one project card. Technologies is a comma separated list
// and Link is either an absolute URL or NoLink.
type ProjectEntry struct {
	Name         string
	Technologies string
	Link         string
	Description  string
}

// NavLink is one entry of the header menu.
type NavLink struct {
	ID    SectionID
	Label string
}

// Href returns the in-page destination of the link.
func (l NavLink) Href() string {
	return "#" + string(l.ID)
}

// Model is the complete, read-only content snapshot.
type Model struct {
	Identity   Identity
	Contact    ContactInfo
	Skills     []SkillGroup
	Experience []ExperienceEntry
	Projects   []ProjectEntry
	Nav        []NavLink
}

// Profile returns the first profile link for platform, if any.
func (c ContactInfo) Profile(platform string) (ProfileLink, bool) {
	for _, l := range c.Links {
		if l.Platform == platform {
			return l, true
		}
	}
	return ProfileLink{}, false
}
