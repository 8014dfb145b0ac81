package main

import (
	"fmt"
	"os/exec"
	"strconv"

	"github.com/heartmarshall/torque-dictionary/internal/view"
)

// speechCommand maps an utterance onto a system text-to-speech tool.
type speechCommand struct {
	name string
	args func(u view.Utterance) []string
}

// speechCommands are tried in order.
var speechCommands = []speechCommand{
	{
		// espeak: speed in words per minute (default 175), amplitude 0..200.
		name: "espeak",
		args: func(u view.Utterance) []string {
			return []string{
				"-v", u.Lang,
				"-s", strconv.Itoa(int(175 * u.Rate)),
				"-a", strconv.Itoa(int(100 * u.Volume)),
				"--", u.Text,
			}
		},
	},
	{
		name: "say",
		args: func(u view.Utterance) []string {
			return []string{"-r", strconv.Itoa(int(175 * u.Rate)), "--", u.Text}
		},
	},
	{
		// spd-say: rate and volume in -100..100, 0 is the default.
		name: "spd-say",
		args: func(u view.Utterance) []string {
			return []string{
				"-l", u.Lang,
				"-r", strconv.Itoa(int((u.Rate - 1) * 100)),
				"-i", strconv.Itoa(int((u.Volume - 1) * 100)),
				"--", u.Text,
			}
		},
	},
}

// commandSpeaker starts a speech process and does not wait for it.
type commandSpeaker struct {
	path string
	cmd  speechCommand
}

func (s commandSpeaker) Speak(u view.Utterance) error {
	c := exec.Command(s.path, s.cmd.args(u)...)
	if err := c.Start(); err != nil {
		return fmt.Errorf("start %s: %w", s.cmd.name, err)
	}
	go c.Wait() //nolint:errcheck
	return nil
}

func findSpeaker() (view.Speaker, bool) {
	return findSpeakerWith(exec.LookPath)
}

func findSpeakerWith(lookPath func(string) (string, error)) (view.Speaker, bool) {
	for _, sc := range speechCommands {
		if path, err := lookPath(sc.name); err == nil {
			return commandSpeaker{path: path, cmd: sc}, true
		}
	}
	return nil, false
}
