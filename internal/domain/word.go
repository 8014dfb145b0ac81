package domain

// WordEntry is the normalized lookup result served by the proxy and consumed
// by the view. Phonetics, Meanings and SourceURLs are never nil so that an
// entry without definitions always encodes as empty JSON arrays.
type WordEntry struct {
	Word       string     `json:"word"`
	Phonetics  []Phonetic `json:"phonetics"`
	Meanings   []Meaning  `json:"meanings"`
	SourceURLs []string   `json:"sourceUrls"`
}

// Phonetic is a transcription and/or an audio recording of the headword.
type Phonetic struct {
	Text  string `json:"text,omitempty"`
	Audio string `json:"audio,omitempty"`
}

// Meaning groups definitions sharing a part of speech.
type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []Definition `json:"definitions"`
	Synonyms     []string     `json:"synonyms"`
	Antonyms     []string     `json:"antonyms"`
}

// Definition is a single gloss with its cross-references.
type Definition struct {
	Definition string   `json:"definition"`
	Example    string   `json:"example,omitempty"`
	Synonyms   []string `json:"synonyms"`
	Antonyms   []string `json:"antonyms"`
}

// NewEmptyEntry returns the entry used for "no definitions found".
func NewEmptyEntry(word string) WordEntry {
	return WordEntry{
		Word:       word,
		Phonetics:  []Phonetic{},
		Meanings:   []Meaning{},
		SourceURLs: []string{},
	}
}

// Normalized returns a copy of e with every nil slice replaced by an empty one.
func (e WordEntry) Normalized() WordEntry {
	out := WordEntry{
		Word:       e.Word,
		Phonetics:  nonNil(e.Phonetics),
		Meanings:   make([]Meaning, 0, len(e.Meanings)),
		SourceURLs: nonNil(e.SourceURLs),
	}
	for _, m := range e.Meanings {
		nm := Meaning{
			PartOfSpeech: m.PartOfSpeech,
			Definitions:  make([]Definition, 0, len(m.Definitions)),
			Synonyms:     nonNil(m.Synonyms),
			Antonyms:     nonNil(m.Antonyms),
		}
		for _, d := range m.Definitions {
			d.Synonyms = nonNil(d.Synonyms)
			d.Antonyms = nonNil(d.Antonyms)
			nm.Definitions = append(nm.Definitions, d)
		}
		out.Meanings = append(out.Meanings, nm)
	}
	return out
}

// HasDefinitions reports whether the entry carries at least one meaning.
func (e WordEntry) HasDefinitions() bool {
	return len(e.Meanings) > 0
}

// FirstPhoneticText returns the first phonetic's transcription, or "".
func (e WordEntry) FirstPhoneticText() string {
	if len(e.Phonetics) == 0 {
		return ""
	}
	return e.Phonetics[0].Text
}

// Synonyms flattens every synonym across all meanings, meaning-level first,
// then definition-level. Duplicates (compared by WordKey) are dropped
// while the first occurrence keeps its position.
func (e WordEntry) Synonyms() []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(words []string) {
		for _, w := range words {
			key := WordKey(w)
			if key == "" {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, w)
		}
	}
	for _, m := range e.Meanings {
		add(m.Synonyms)
		for _, d := range m.Definitions {
			add(d.Synonyms)
		}
	}
	return out
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
