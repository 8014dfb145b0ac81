package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmptyEntry_EncodesEmptyArrays(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(NewEmptyEntry("qzxy"))
	require.NoError(t, err)

	assert.JSONEq(t, `{"word":"qzxy","phonetics":[],"meanings":[],"sourceUrls":[]}`, string(b))
}

func TestWordEntry_Normalized_FillsNilSlices(t *testing.T) {
	t.Parallel()

	e := WordEntry{
		Word: "run",
		Meanings: []Meaning{{
			PartOfSpeech: "verb",
			Definitions:  []Definition{{Definition: "To move fast."}},
		}},
	}

	n := e.Normalized()

	require.NotNil(t, n.Phonetics)
	require.NotNil(t, n.SourceURLs)
	require.Len(t, n.Meanings, 1)
	assert.NotNil(t, n.Meanings[0].Synonyms)
	assert.NotNil(t, n.Meanings[0].Antonyms)
	require.Len(t, n.Meanings[0].Definitions, 1)
	assert.NotNil(t, n.Meanings[0].Definitions[0].Synonyms)
	assert.NotNil(t, n.Meanings[0].Definitions[0].Antonyms)

	// The original is untouched.
	assert.Nil(t, e.Meanings[0].Definitions[0].Synonyms)
}

func TestWordEntry_Synonyms(t *testing.T) {
	t.Parallel()

	e := WordEntry{
		Word: "run",
		Meanings: []Meaning{
			{
				PartOfSpeech: "noun",
				Synonyms:     []string{"sprint"},
				Definitions: []Definition{
					{Definition: "An act of running.", Synonyms: []string{"jog", "Sprint"}},
					{Definition: "A trip.", Synonyms: []string{}},
				},
			},
			{
				PartOfSpeech: "verb",
				Definitions: []Definition{
					{Definition: "To move fast.", Synonyms: []string{"dash", "jog"}},
				},
			},
		},
	}

	assert.Equal(t, []string{"sprint", "jog", "dash"}, e.Synonyms())
}

func TestWordEntry_Synonyms_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, NewEmptyEntry("x").Synonyms())
}

func TestWordEntry_FirstPhoneticText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", NewEmptyEntry("x").FirstPhoneticText())

	e := WordEntry{Phonetics: []Phonetic{{Text: "/rʌn/"}, {Text: "/rän/"}}}
	assert.Equal(t, "/rʌn/", e.FirstPhoneticText())
}

func TestWordEntry_HasDefinitions(t *testing.T) {
	t.Parallel()

	assert.False(t, NewEmptyEntry("x").HasDefinitions())
	assert.True(t, WordEntry{Meanings: []Meaning{{PartOfSpeech: "noun"}}}.HasDefinitions())
}
