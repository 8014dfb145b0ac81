// Package wordlist supplies the words served by the random-word endpoint.
package wordlist

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
)

//go:embed words.txt
var builtin string

// ErrEmpty is returned when a list contains no usable words.
var ErrEmpty = errors.New("wordlist: no words")

// Source picks words uniformly at random from a fixed list.
// It is safe for concurrent use.
type Source struct {
	words []string
	intN  func(n int) int
}

// Builtin returns a Source over the embedded word list.
func Builtin() *Source {
	words, err := parse(strings.NewReader(builtin))
	if err != nil {
		panic(fmt.Sprintf("wordlist: embedded list: %v", err))
	}
	return New(words)
}

// New returns a Source over words. The slice is not copied.
func New(words []string) *Source {
	return &Source{words: words, intN: rand.IntN}
}

// Load reads a word list from path. Files ending in ".csv" are read as
// frequency lists (header row, word in the first column); anything else is
// one word per line with "#" comments. An empty path selects the built-in
// list.
func Load(path string) (*Source, error) {
	if path == "" {
		return Builtin(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordlist: open %s: %w", path, err)
	}
	defer f.Close()

	parseFn := parse
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		parseFn = parseCSV
	}

	words, err := parseFn(f)
	if err != nil {
		return nil, fmt.Errorf("wordlist: %s: %w", path, err)
	}
	return New(words), nil
}

// Len returns the number of words in the list.
func (s *Source) Len() int { return len(s.words) }

// RandomWord returns one word from the list.
func (s *Source) RandomWord() string {
	return s.words[s.intN(len(s.words))]
}

func parse(r io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, ErrEmpty
	}
	return words, nil
}
