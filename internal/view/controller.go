// Package view holds the word page controller: it follows the query state,
// loads entries through a Fetcher and derives what a surface should render.
package view

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/heartmarshall/torque-dictionary/internal/domain"
)

// State is the controller lifecycle state.
type State int

const (
	StateReady State = iota
	StateLoading
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateLoading:
		return "loading"
	default:
		return "unknown"
	}
}

// Outcome records how the latest load resolved. Rendering treats
// OutcomeNotFound and OutcomeFailed the same way.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeFound
	OutcomeNotFound
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeFound:
		return "found"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Fetcher loads entries for the controller. A word without definitions is
// returned as an entry with no meanings, not as an error.
type Fetcher interface {
	FetchWord(ctx context.Context, word string) (domain.WordEntry, error)
	FetchRandom(ctx context.Context) (domain.WordEntry, error)
}

// Snapshot is a consistent copy of the controller state.
// Target is the word of the latest load; "" means a random word.
type Snapshot struct {
	State   State
	Outcome Outcome
	Entry   domain.WordEntry
	Target  string
	Input   string
}

// Option configures a Controller.
type Option func(*Controller)

// WithSpeaker enables pronunciation.
func WithSpeaker(s Speaker) Option {
	return func(c *Controller) { c.speaker = s }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

type observer struct {
	id int
	fn func(Snapshot)
}

// Controller drives the READY/LOADING lifecycle for one page.
// All methods are safe for concurrent use. Every load takes a new
// generation; a resolution from an older generation is dropped and its
// context is cancelled as soon as a newer load starts.
type Controller struct {
	nav     Navigator
	fetcher Fetcher
	speaker Speaker
	log     *slog.Logger

	mu        sync.Mutex
	state     State
	outcome   Outcome
	entry     domain.WordEntry
	input     string
	target    string
	started   bool
	gen       uint64
	cancel    context.CancelFunc
	observers []observer
	nextObsID int
}

// NewController creates a Controller in the READY state with an empty entry.
func NewController(nav Navigator, fetcher Fetcher, opts ...Option) *Controller {
	c := &Controller{
		nav:     nav,
		fetcher: fetcher,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		state:   StateReady,
		entry:   domain.NewEmptyEntry(""),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With("component", "view")
	return c
}

// Subscribe registers fn to receive a snapshot after every state change.
// Observers run on the goroutine that caused the change, outside the lock.
// The returned func removes the observer.
func (c *Controller) Subscribe(fn func(Snapshot)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextObsID
	c.nextObsID++
	c.observers = append(c.observers, observer{id: id, fn: fn})

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, o := range c.observers {
			if o.id == id {
				c.observers = append(c.observers[:i:i], c.observers[i+1:]...)
				return
			}
		}
	}
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// CanPronounce reports whether a Speaker was provided.
func (c *Controller) CanPronounce() bool {
	return c.speaker != nil
}

// Sync loads the navigator's word when it differs from the latest target,
// or on the first call. An empty word loads a random one. Sync blocks until
// its own load resolves or is superseded.
func (c *Controller) Sync(ctx context.Context) {
	c.mu.Lock()
	target := c.nav.Word()
	if c.started && target == c.target {
		c.mu.Unlock()
		return
	}

	if c.cancel != nil {
		c.cancel()
	}
	c.gen++
	gen := c.gen
	fetchCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.started = true
	c.target = target
	c.state = StateLoading
	snap, obs := c.snapshotLocked(), c.observersLocked()
	c.mu.Unlock()

	notify(obs, snap)

	var (
		entry domain.WordEntry
		err   error
	)
	if target == "" {
		entry, err = c.fetcher.FetchRandom(fetchCtx)
	} else {
		entry, err = c.fetcher.FetchWord(fetchCtx, target)
	}

	c.resolve(gen, target, entry, err)
}

func (c *Controller) resolve(gen uint64, target string, entry domain.WordEntry, err error) {
	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		c.log.Debug("stale load discarded",
			slog.String("target", target),
			slog.Uint64("generation", gen),
		)
		return
	}

	c.cancel()
	c.cancel = nil

	switch {
	case err != nil:
		c.log.Warn("load failed",
			slog.String("target", target),
			slog.String("error", err.Error()),
		)
		c.entry = domain.NewEmptyEntry(target)
		c.outcome = OutcomeFailed
	case !entry.HasDefinitions():
		c.entry = entry.Normalized()
		c.outcome = OutcomeNotFound
	default:
		c.entry = entry.Normalized()
		c.outcome = OutcomeFound
	}
	c.state = StateReady
	snap, obs := c.snapshotLocked(), c.observersLocked()
	c.mu.Unlock()

	notify(obs, snap)
}

// SetInput stores the search field contents.
func (c *Controller) SetInput(s string) {
	c.mu.Lock()
	c.input = s
	snap, obs := c.snapshotLocked(), c.observersLocked()
	c.mu.Unlock()

	notify(obs, snap)
}

// Submit searches for the current input. A blank input is a no-op and
// returns false; otherwise the navigator's word becomes the trimmed term,
// the input is cleared and the new word is loaded.
func (c *Controller) Submit(ctx context.Context) bool {
	c.mu.Lock()
	term, ok := NormalizeSearch(c.input)
	if !ok {
		c.mu.Unlock()
		return false
	}
	c.nav.SetWord(term)
	c.input = ""
	c.mu.Unlock()

	c.Sync(ctx)
	return true
}

// Navigate follows a synonym or antonym link. The input is left untouched.
func (c *Controller) Navigate(ctx context.Context, word string) bool {
	term, ok := NormalizeSearch(word)
	if !ok {
		return false
	}

	c.mu.Lock()
	c.nav.SetWord(term)
	c.mu.Unlock()

	c.Sync(ctx)
	return true
}

// Pronounce speaks the loaded headword without waiting for playback.
// It does nothing when no word is loaded.
func (c *Controller) Pronounce() error {
	if c.speaker == nil {
		return ErrNoSpeaker
	}

	c.mu.Lock()
	word := c.entry.Word
	c.mu.Unlock()

	if word == "" {
		return nil
	}
	return c.speaker.Speak(NewUtterance(word))
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{
		State:   c.state,
		Outcome: c.outcome,
		Entry:   c.entry,
		Target:  c.target,
		Input:   c.input,
	}
}

func (c *Controller) observersLocked() []observer {
	if len(c.observers) == 0 {
		return nil
	}
	return append([]observer(nil), c.observers...)
}

func notify(obs []observer, snap Snapshot) {
	for _, o := range obs {
		o.fn(snap)
	}
}
