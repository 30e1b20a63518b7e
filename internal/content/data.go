package content

const (
	PlatformLinkedIn = "LinkedIn"
	PlatformGitHub   = "GitHub"
)

var (
	Summary = `Senior Web Developer with 6+ years of experience developing robust web applications.
	Adept in NodeJs, NestJS, PHP, Python, and JavaScript, I translate client requirements into
	technical solutions. Proven track record in database management, cloud server integration,
	and performance optimization.`

	TradingAPIDescription = `Architected a high-performance trading platform featuring comprehensive
	Spot and Contract Trading, advanced User KYC, and a robust User Wallet system.`

	ECommerceDescription = `Developed a feature-rich platform including integrated reporting, advanced
	filtering, notification services, and a fully responsive user interface.`

	RoyalExpressDescription = `A fully responsive site with geolocation API integration, dynamic price
	calculations, and robust mailing services.`

	TravelAPIDescription = `Focused on advanced reporting, filtering, and a notification system for a
	travel mobile application backend.`
)

// DefaultNav is the header menu, in menu order.
func DefaultNav() []NavLink {
	return []NavLink{
		{ID: SectionHero, Label: "Home"},
		{ID: SectionSkills, Label: "Skills"},
		{ID: SectionExperience, Label: "Experience"},
		{ID: SectionProjects, Label: "Projects"},
		{ID: SectionContact, Label: "Contact"},
	}
}

// Default returns the built-in snapshot. Every call builds a fresh value so
// callers can never share mutable slices.
func Default() Model {
	return Model{
		Identity: Identity{
			Name:    "Wai Oo Aung",
			Title:   "Senior Full Stack Developer",
			Summary: Summary,
			Avatar:  "https://avatars.githubusercontent.com/u/61152025?v=4",
		},
		Contact: ContactInfo{
			Phone:    "(+971) 528241776",
			Email:    "waiooaung.sea@gmail.com",
			Location: "Sharjah, UAE",
			Links: []ProfileLink{
				{Platform: PlatformLinkedIn, URL: "https://www.linkedin.com/in/wai-oo-aung-31b409185"},
				{Platform: PlatformGitHub, URL: "https://github.com/waiooaung"},
			},
		},
		Skills: []SkillGroup{
			{Category: CategoryLanguages, Items: []string{"PHP", "JavaScript", "Python", "TypeScript"}},
			{Category: CategoryFrameworks, Items: []string{"Laravel", "Node.js (NestJS, Express.js)", "React.js", "Next.js", "Django"}},
			{Category: CategoryDatabases, Items: []string{"MySQL", "PostgreSQL", "MongoDB", "Redis"}},
			{Category: CategoryCloud, Items: []string{"AWS (EC2, S3)", "Digital Ocean", "Docker", "Kubernetes", "Git/GitHub/GitLab"}},
			{Category: CategoryAPIs, Items: []string{"RESTful APIs", "GraphQL", "Nginx", "Apache"}},
		},
		Experience: []ExperienceEntry{
			{
				Title:    "Full Stack Developer",
				Company:  "Go Smart AI Solution",
				Location: "Dubai",
				Period:   "Feb 2025 - Present",
				Bullets: []string{
					"Designed and built a currency exchange platform supporting flat and crypto currency exchange.",
					"Utilized NestJs, NextJs, and REST APIs to deliver high-quality software solutions.",
					"Managed cloud server integration and optimized database queries for enhanced performance.",
				},
			},
			{
				Title:    "Team Lead",
				Company:  "APP.COM.MM Company Limited",
				Location: "Myanmar",
				Period:   "May 2023 - Jun 2024",
				Bullets: []string{
					"Led a team to deliver high-quality e-commerce and POS systems (Achievement: Promoted to Team Lead within a year).",
					"Designed and built a robust e-commerce platform, POS system, and customized software with advanced features.",
					"Utilized PHP (Laravel), NodeJs, JavaScript (jQuery), and REST APIs.",
				},
			},
			{
				Title:    "Senior Web Developer",
				Company:  "ALJ Myanmar Company Limited",
				Location: "Myanmar",
				Period:   "Sep 2022 - May 2023",
				Bullets: []string{
					"Designed and built a robust e-commerce platform with advanced features like reporting, filtering, and API integrations.",
					"Utilized PHP (Laravel) and JavaScript (jQuery).",
					"Managed cloud server integration and optimized database queries.",
				},
			},
		},
		Projects: []ProjectEntry{
			{
				Name:         "API for Trading Application",
				Technologies: "Node.js, Express.js, MongoDB, AWS S3",
				Link:         "https://kucoinbtv.com",
				Description:  TradingAPIDescription,
			},
			{
				Name:         "Multi-Vendor E-commerce Platform",
				Technologies: "PHP (Laravel 10), HTML, CSS (Bootstrap), JavaScript",
				Link:         NoLink,
				Description:  ECommerceDescription,
			},
			{
				Name:         "Royal Express Company Website",
				Technologies: "PHP (Laravel), HTML, CSS (Bootstrap), JavaScript, jQuery",
				Link:         "https://www.royalx.net",
				Description:  RoyalExpressDescription,
			},
			{
				Name:         "Go-Go Travel Mobile App API",
				Technologies: "PHP (Laravel 10), REST APIs",
				Link:         NoLink,
				Description:  TravelAPIDescription,
			},
		},
		Nav: DefaultNav(),
	}
}
