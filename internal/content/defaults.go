package content

// Defaults supplies the document served when nothing has been stored yet.
// It is a separate collaborator so tests can substitute an empty default and
// exercise store behavior independent of the content shape.
type Defaults interface {
	Document() Document
}

// StaticDefaults is the compiled-in default document shown on a fresh
// deployment. It is a presentation fallback only and is never persisted.
type StaticDefaults struct{}

func (StaticDefaults) Document() Document {
	return Document{
		"avatar": {
			"avatarImage": "/images/avatar.png",
			"socialLinks": []any{},
			"buttonText":  "Hire Me",
			"buttonLink":  "#",
		},
		"welcome": {
			"greeting":    "Hello",
			"title":       "Welcome",
			"description": "",
		},
		"stats": {
			"years":    "0",
			"projects": "0",
			"clients":  "0",
		},
		"about": {
			"label":       "About",
			"title":       "",
			"description": "",
		},
		"career": {
			"label": "Career",
			"title": "",
			"items": []any{},
		},
		"services": {
			"label": "Services",
			"title": "",
			"items": []any{},
		},
		"skills": {
			"label": "Skills",
			"title": "",
			"items": []any{},
		},
		"contact": {
			"label": "Contact",
			"title": "",
		},
		"footer": {
			"text": "© 2025. All rights reserved.",
		},
	}
}
