package view

import (
	"unicode/utf8"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	LoadingText       = "Looking..."
	NoDefinitionsText = "No definitions found. Please try another word"
)

// Link is a navigable word.
type Link struct {
	Word string
	Href string
}

// DefinitionBlock is one rendered definition.
// Antonyms and SeeAlso are empty when the definition has none, in which
// case the surface omits the section.
type DefinitionBlock struct {
	PartOfSpeech string
	Text         string
	Example      string
	Antonyms     []Link
	SeeAlso      []Link
}

// Page is everything a surface needs to draw the word view.
type Page struct {
	Loading bool

	// ShowEntry is set once a load resolved with a non-empty word.
	ShowEntry    bool
	Word         string
	Headword     string
	Phonetic     string
	CanPronounce bool
	Related      []Link
	Definitions  []DefinitionBlock

	// NoDefinitions is set when a resolved entry carries no meanings.
	NoDefinitions bool
}

// Links returns every link on the page in display order: related words
// first, then each definition's antonyms and see-also words.
func (p Page) Links() []Link {
	out := append([]Link(nil), p.Related...)
	for _, d := range p.Definitions {
		out = append(out, d.Antonyms...)
		out = append(out, d.SeeAlso...)
	}
	return out
}

// BuildPage derives the page from a snapshot.
func BuildPage(s Snapshot, canPronounce bool) Page {
	if s.State == StateLoading {
		return Page{Loading: true}
	}

	e := s.Entry
	p := Page{
		Word:          e.Word,
		NoDefinitions: !e.HasDefinitions() && s.Outcome != OutcomeNone,
	}
	if e.Word == "" {
		return p
	}

	upper := cases.Upper(language.English)

	p.ShowEntry = true
	p.Headword = TitleCase(e.Word)
	p.Phonetic = e.FirstPhoneticText()
	p.CanPronounce = canPronounce
	p.Related = toLinks(e.Synonyms())

	for _, m := range e.Meanings {
		pos := upper.String(m.PartOfSpeech)
		for _, d := range m.Definitions {
			p.Definitions = append(p.Definitions, DefinitionBlock{
				PartOfSpeech: pos,
				Text:         d.Definition,
				Example:      d.Example,
				Antonyms:     toLinks(d.Antonyms),
				SeeAlso:      toLinks(d.Synonyms),
			})
		}
	}
	return p
}

// TitleCase upper-cases the first letter of s and lower-cases the rest.
func TitleCase(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return cases.Upper(language.English).String(string(r)) +
		cases.Lower(language.English).String(s[size:])
}

func toLinks(words []string) []Link {
	if len(words) == 0 {
		return nil
	}
	return lo.Map(words, func(w string, _ int) Link {
		return Link{Word: w, Href: WordHref(w)}
	})
}
