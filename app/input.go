package app

import (
	"github.com/lixenwraith/stopwatch/audio"
	"github.com/lixenwraith/stopwatch/terminal"
)

// Command is a stopwatch action bound to a key
type Command int

const (
	CommandNone Command = iota
	CommandQuit
	CommandToggle
	CommandReset
)

func (c Command) String() string {
	switch c {
	case CommandQuit:
		return "quit"
	case CommandToggle:
		return "toggle"
	case CommandReset:
		return "reset"
	default:
		return "none"
	}
}

// CommandFor maps a key event to its command.
// Only unmodified key presses are bound; releases, repeats and Ctrl/Alt chords map to none
func CommandFor(ev terminal.Event) Command {
	if ev.Type != terminal.EventKey || ev.Kind != terminal.KeyPress {
		return CommandNone
	}
	if ev.Modifiers&(terminal.ModCtrl|terminal.ModAlt) != 0 {
		return CommandNone
	}

	switch ev.Key {
	case terminal.KeyEscape:
		return CommandQuit
	case terminal.KeySpace:
		return CommandToggle
	case terminal.KeyRune:
		switch ev.Rune {
		case 'q':
			return CommandQuit
		case ' ':
			return CommandToggle
		case 'r':
			return CommandReset
		}
	}
	return CommandNone
}

// HandleEvent applies the command bound to ev
func (a *App) HandleEvent(ev terminal.Event) {
	if ev.Type != terminal.EventKey {
		// The reader retries transient read errors itself
		a.logger.Debug("ignoring input event", "type", ev.Type, "error", ev.Err)
		return
	}

	cmd := CommandFor(ev)
	if cmd == CommandNone {
		a.logger.Debug("ignoring key", "key", terminal.KeyName(ev), "kind", ev.Kind)
		return
	}
	a.logger.Debug("command", "key", terminal.KeyName(ev), "command", cmd)

	switch cmd {
	case CommandQuit:
		a.shouldQuit = true
	case CommandToggle:
		a.watch.Toggle()
		if a.watch.IsPaused() {
			a.playCue(audio.CuePause)
		} else {
			a.playCue(audio.CueResume)
		}
	case CommandReset:
		a.watch.Reset()
		a.playCue(audio.CueReset)
	}
}

func (a *App) playCue(cue audio.Cue) {
	if a.cues != nil {
		a.cues.Play(cue)
	}
}
