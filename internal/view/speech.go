package view

import "errors"

// ErrNoSpeaker is returned by Pronounce when no speech capability is present.
var ErrNoSpeaker = errors.New("view: speech synthesis unavailable")

// Utterance describes a single speech request.
type Utterance struct {
	Text   string
	Lang   string
	Rate   float64
	Volume float64
}

// NewUtterance returns the utterance used to pronounce a headword:
// English, half speed, full volume.
func NewUtterance(text string) Utterance {
	return Utterance{Text: text, Lang: "en", Rate: 0.5, Volume: 1}
}

// Speaker is an optional speech-synthesis capability.
// Speak must start playback and return without waiting for it to finish.
type Speaker interface {
	Speak(u Utterance) error
}
