package content

// Section is one named, independently editable slice of the document.
// Section records are schema-less on purpose: the dashboard owns the shape.
type Section map[string]any

// Document maps section name to its record.
type Document map[string]Section

// SectionNames is the fixed set of sections rendered on the public page.
// Updates may target any name, but a freshly seeded document carries exactly
// these keys.
var SectionNames = []string{
	"avatar",
	"welcome",
	"stats",
	"about",
	"career",
	"services",
	"skills",
	"contact",
	"footer",
}
