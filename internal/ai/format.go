package ai

import (
	"regexp"
	"strings"
)

var (
	// sectionHeading matches the section markers the model is instructed to emit.
	sectionHeading = regexp.MustCompile(`(?m)^(Day [0-9]+:|Overview:|Essential Tips:|Budget Considerations:|Safety Tips:|Local Customs:)`)

	// dayHeading matches a formatted day header for inserting horizontal rules.
	dayHeading = regexp.MustCompile(`(\n## Day [0-9]+:)`)
)

// FormatItinerary turns the raw model output into well-structured markdown:
// known section markers become second-level headings and days are separated
// by horizontal rules.
func FormatItinerary(raw string) string {
	locs := sectionHeading.FindAllStringIndex(raw, -1)

	// Split into sections at each heading, keeping any preamble before the first.
	var sections []string
	prev := 0
	for _, loc := range locs {
		if loc[0] > prev {
			sections = append(sections, raw[prev:loc[0]])
		}
		prev = loc[0]
	}
	sections = append(sections, raw[prev:])

	var formatted []string
	for _, section := range sections {
		section = strings.TrimSpace(section)
		if section == "" {
			continue
		}
		if sectionHeading.MatchString(section) {
			section = "## " + section
		}
		formatted = append(formatted, section)
	}

	text := strings.Join(formatted, "\n\n")
	return dayHeading.ReplaceAllString(text, "\n---$1")
}
