package scrape

import (
	"strings"
	"testing"
)

func TestExtractLinks(t *testing.T) {
	html := `<html><body>
		<a href="https://www.energy.gov/led">LED Lighting</a>
		<a href="/relative/path">Relative ignored</a>
		<a href="https://www.epa.gov/compost">   Composting at Home  </a>
		<a href="https://example.com/empty"></a>
		<a href="mailto:hi@example.com">Mail ignored</a>
		<a href="http://example.com/plain">Plain HTTP kept</a>
	</body></html>`

	links, err := ExtractLinks(strings.NewReader(html))
	if err != nil {
		t.Fatal(err)
	}
	if len(links) != 3 {
		t.Fatalf("links=%+v", links)
	}
	if links[0].Title != "LED Lighting" || links[0].URL != "https://www.energy.gov/led" {
		t.Fatalf("first=%+v", links[0])
	}
	if links[1].Title != "Composting at Home" {
		t.Fatalf("whitespace not trimmed: %+v", links[1])
	}
	if links[2].URL != "http://example.com/plain" {
		t.Fatalf("third=%+v", links[2])
	}
}

func TestExtractLinksCap(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("<html><body>")
	for i := 0; i < 20; i++ {
		sb.WriteString(`<a href="https://example.com/a">a</a>`)
	}
	sb.WriteString("</body></html>")

	links, err := ExtractLinks(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatal(err)
	}
	if len(links) != maxLinks {
		t.Fatalf("len=%d want %d", len(links), maxLinks)
	}
}
