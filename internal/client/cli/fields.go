package cli

import "github.com/dalesbridge/chronicle/internal/client/content"

// pageFields maps a slug to the editable fields of that page. Pages not
// listed here get the generic layout, so newly created pages are editable
// without a client release.
var pageFields = map[string][]content.Field{
	"home": {
		{Name: "heroTitle", DefaultText: "Welcome to the Dale", HeadingLevel: 1},
		{Name: "heroSubtitle", DefaultText: "A thousand years of village history"},
		{Name: "intro", DefaultText: "Introduce the parish here."},
		{Name: "featuresHeading", DefaultText: "Explore the archive", HeadingLevel: 2},
	},
	"history": {
		{Name: "title", DefaultText: "History of the parish", HeadingLevel: 1},
		{Name: "overview", DefaultText: "An overview of the parish history."},
		{Name: "earlyYears", DefaultText: "The early years."},
		{Name: "modernEra", DefaultText: "The modern era."},
	},
	"about": {
		{Name: "title", DefaultText: "About this site", HeadingLevel: 1},
		{Name: "body", DefaultText: "Who runs the site and why."},
		{Name: "credits", DefaultText: "Acknowledgements."},
	},
}

func fieldsFor(slug string) []content.Field {
	if f, ok := pageFields[slug]; ok {
		return f
	}
	return []content.Field{
		{Name: "title", DefaultText: "Untitled", HeadingLevel: 1},
		{Name: "body", DefaultText: "No content yet."},
	}
}
