package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/heartmarshall/torque-dictionary/internal/view"
)

// renderPage writes p as plain text. Links are numbered in view.Page.Links
// order so that ":N" can follow them.
func renderPage(w io.Writer, p view.Page) {
	if p.Loading {
		fmt.Fprintln(w, view.LoadingText)
		return
	}

	n := 0
	links := func(ls []view.Link) string {
		parts := make([]string, 0, len(ls))
		for _, l := range ls {
			n++
			parts = append(parts, fmt.Sprintf("[%d] %s", n, l.Word))
		}
		return strings.Join(parts, "  ")
	}

	if p.ShowEntry {
		head := p.Headword
		if p.Phonetic != "" {
			head += "  " + p.Phonetic
		}
		if p.CanPronounce {
			head += "  (:say)"
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, head)
		fmt.Fprintln(w, strings.Repeat("=", len([]rune(p.Headword))))

		if len(p.Related) > 0 {
			fmt.Fprintf(w, "Related: %s\n", links(p.Related))
		}

		for _, d := range p.Definitions {
			fmt.Fprintln(w)
			fmt.Fprintln(w, d.PartOfSpeech)
			fmt.Fprintf(w, "  %s\n", d.Text)
			if d.Example != "" {
				fmt.Fprintf(w, "  %q\n", d.Example)
			}
			if len(d.Antonyms) > 0 {
				fmt.Fprintf(w, "  Antonyms: %s\n", links(d.Antonyms))
			}
			if len(d.SeeAlso) > 0 {
				fmt.Fprintf(w, "  See Also: %s\n", links(d.SeeAlso))
			}
		}
	}

	if p.NoDefinitions {
		fmt.Fprintln(w, view.NoDefinitionsText)
	}
	fmt.Fprintln(w)
}
