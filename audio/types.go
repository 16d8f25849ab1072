package audio

// Cue identifies an audible response to a timer command
type Cue int

const (
	CueResume Cue = iota // Rising blip
	CuePause             // Falling blip
	CueReset             // Two-note chime
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueResume:
		return "resume"
	case CuePause:
		return "pause"
	case CueReset:
		return "reset"
	default:
		return "unknown"
	}
}
