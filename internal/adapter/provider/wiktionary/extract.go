package wiktionary

import (
	"fmt"
	"io"
	"strings"

	"github.com/heartmarshall/legenre/internal/domain"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/unicode/norm"
)

// formLineClass marks the Wiktionary "ligne de forme" line that carries the
// headword, pronunciation and gender of each section.
const formLineClass = "ligne-de-forme"

// Markers are the lower-case terms whose presence signals a gender.
type Markers struct {
	Masculine string
	Feminine  string
}

// DefaultMarkers are the French Wiktionary gender labels.
var DefaultMarkers = Markers{Masculine: "masculin", Feminine: "féminin"}

// ExtractGenders parses an HTML page and infers genders from the text of
// every <p> element and every element of class "ligne-de-forme".
// Evidence accumulates across units: a unit naming both markers adds both.
func ExtractGenders(r io.Reader, m Markers) (domain.GenderSet, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return domain.GenderSet{}, fmt.Errorf("parse html: %w", err)
	}

	masc := norm.NFC.String(strings.ToLower(m.Masculine))
	fem := norm.NFC.String(strings.ToLower(m.Feminine))

	var genders domain.GenderSet
	for _, unit := range scanUnits(doc) {
		genders.Union(classifyUnit(unit, masc, fem))
	}
	return genders, nil
}

// classifyUnit applies the marker rule to a single text unit.
func classifyUnit(text, masc, fem string) domain.GenderSet {
	lower := norm.NFC.String(strings.ToLower(text))
	hasMasc := masc != "" && strings.Contains(lower, masc)
	hasFem := fem != "" && strings.Contains(lower, fem)

	var s domain.GenderSet
	if hasMasc {
		s.Add(domain.GenderMasculine)
	}
	if hasFem {
		s.Add(domain.GenderFeminine)
	}
	return s
}

// scanUnits collects the readable text of every candidate element in
// document order. Nested candidates each produce their own unit.
func scanUnits(root *html.Node) []string {
	var units []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.Script, atom.Style, atom.Noscript:
				return
			}
			if n.DataAtom == atom.P || hasClass(n, formLineClass) {
				if text := textContent(n); strings.TrimSpace(text) != "" {
					units = append(units, text)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return units
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
			return
		case html.ElementNode:
			switch n.DataAtom {
			case atom.Script, atom.Style, atom.Noscript:
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == "class" {
			for _, c := range strings.Fields(a.Val) {
				if c == class {
					return true
				}
			}
		}
	}
	return false
}
