package ai

import (
	"strings"
	"testing"
)

func TestFormatItinerarySections(t *testing.T) {
	raw := `Overview:
A quick trip through Lisbon.

Essential Tips:
- Trams get crowded early.

Day 1:
- Morning (09:00 - 12:00): Alfama walk.

Day 2:
- Morning (09:00 - 12:00): Belem pastries.

Budget Considerations:
- Estimated daily cost USD 120.00.`

	got := FormatItinerary(raw)

	for _, heading := range []string{"## Overview:", "## Essential Tips:", "## Day 1:", "## Day 2:", "## Budget Considerations:"} {
		if !strings.Contains(got, heading) {
			t.Errorf("missing heading %q in:\n%s", heading, got)
		}
	}

	// Days are separated by horizontal rules.
	if strings.Count(got, "\n---\n## Day") != 2 {
		t.Errorf("expected a rule before each day section:\n%s", got)
	}

	// Body lines survive formatting.
	if !strings.Contains(got, "Alfama walk.") {
		t.Errorf("body text lost:\n%s", got)
	}
}

func TestFormatItineraryKeepsPreamble(t *testing.T) {
	raw := "Here is your itinerary.\n\nDay 1:\n- Morning: museum."
	got := FormatItinerary(raw)

	if !strings.HasPrefix(got, "Here is your itinerary.") {
		t.Errorf("preamble lost:\n%s", got)
	}
	if !strings.Contains(got, "## Day 1:") {
		t.Errorf("day heading not formatted:\n%s", got)
	}
}

func TestFormatItineraryNoSections(t *testing.T) {
	raw := "  just a blob of text  "
	if got := FormatItinerary(raw); got != "just a blob of text" {
		t.Errorf("got %q", got)
	}
}

func TestBuildUserPrompt(t *testing.T) {
	p := Prompt{Destination: "Kyoto", Days: 4, Preferences: "temples, food", Language: "en"}
	got := buildUserPrompt(p)
	for _, want := range []string{"4-day", "Kyoto", "temples, food"} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q: %s", want, got)
		}
	}
}

func TestBuildSystemPromptLanguage(t *testing.T) {
	got := buildSystemPrompt("fr")
	if !strings.Contains(got, "Provide the response in fr language.") {
		t.Errorf("language instruction missing: %s", got)
	}
}
