package terminal

// keyToName maps Key constants to canonical lowercase names
var keyToName = map[Key]string{
	KeyEscape:    "escape",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBacktab:   "backtab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeySpace:     "space",

	KeyUp:       "up",
	KeyDown:     "down",
	KeyLeft:     "left",
	KeyRight:    "right",
	KeyHome:     "home",
	KeyEnd:      "end",
	KeyPageUp:   "page_up",
	KeyPageDown: "page_down",
	KeyInsert:   "insert",

	KeyF1:  "f1",
	KeyF2:  "f2",
	KeyF3:  "f3",
	KeyF4:  "f4",
	KeyF5:  "f5",
	KeyF6:  "f6",
	KeyF7:  "f7",
	KeyF8:  "f8",
	KeyF9:  "f9",
	KeyF10: "f10",
	KeyF11: "f11",
	KeyF12: "f12",

	KeyCtrlA: "ctrl+a",
	KeyCtrlB: "ctrl+b",
	KeyCtrlC: "ctrl+c",
	KeyCtrlD: "ctrl+d",
	KeyCtrlE: "ctrl+e",
	KeyCtrlF: "ctrl+f",
	KeyCtrlG: "ctrl+g",
	KeyCtrlK: "ctrl+k",
	KeyCtrlL: "ctrl+l",
	KeyCtrlN: "ctrl+n",
	KeyCtrlO: "ctrl+o",
	KeyCtrlP: "ctrl+p",
	KeyCtrlQ: "ctrl+q",
	KeyCtrlR: "ctrl+r",
	KeyCtrlS: "ctrl+s",
	KeyCtrlT: "ctrl+t",
	KeyCtrlU: "ctrl+u",
	KeyCtrlV: "ctrl+v",
	KeyCtrlW: "ctrl+w",
	KeyCtrlX: "ctrl+x",
	KeyCtrlY: "ctrl+y",
	KeyCtrlZ: "ctrl+z",

	KeyCtrlSpace:        "ctrl+space",
	KeyCtrlBackslash:    "ctrl+backslash",
	KeyCtrlBracketRight: "ctrl+]",
	KeyCtrlCaret:        "ctrl+^",
	KeyCtrlUnderscore:   "ctrl+_",
}

// KeyName returns a readable name for a key event, used in logs
func KeyName(ev Event) string {
	if ev.Key == KeyRune {
		if ev.Rune == ' ' {
			return "space"
		}
		return string(ev.Rune)
	}
	if name, ok := keyToName[ev.Key]; ok {
		return name
	}
	return "none"
}
