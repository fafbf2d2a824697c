package types

// ------------------------
// Buttons and input state
// ------------------------

// Button names a physical control. Names are stable and used in persisted
// activation bindings.
type Button string

const (
	BtnL      Button = "l"
	BtnLeft   Button = "left"
	BtnDown   Button = "down"
	BtnRight  Button = "right"
	BtnModX   Button = "mod_x"
	BtnModY   Button = "mod_y"
	BtnSelect Button = "select"
	BtnStart  Button = "start"
	BtnHome   Button = "home"
	BtnCLeft  Button = "c_left"
	BtnCUp    Button = "c_up"
	BtnCDown  Button = "c_down"
	BtnCRight Button = "c_right"
	BtnA      Button = "a"
	BtnB      Button = "b"
	BtnX      Button = "x"
	BtnY      Button = "y"
	BtnZ      Button = "z"
	BtnR      Button = "r"
	BtnUp     Button = "up"
	BtnLS     Button = "ls"
	BtnMS     Button = "ms"
	BtnLT1    Button = "lt1"
	BtnLT2    Button = "lt2"
	BtnRT1    Button = "rt1"
	BtnRT2    Button = "rt2"
	BtnRT3    Button = "rt3"
	BtnRT4    Button = "rt4"
	BtnRT5    Button = "rt5"

	// Extension controller
	BtnNunchukC Button = "nunchuk_c"
	BtnNunchukZ Button = "nunchuk_z"
)

// InputState is the sampled control state. Digital buttons are held in a set;
// analog axes are centred at 128.
type InputState struct {
	pressed map[Button]bool

	// Analog (0..255, 128 = neutral)
	LeftX, LeftY   uint8
	RightX, RightY uint8
	LTrigger       uint8
	RTrigger       uint8

	// Extension connected (e.g. Nunchuk).
	NunchukConnected bool
}

// NewInputState returns a neutral state.
func NewInputState() *InputState {
	return &InputState{
		pressed: make(map[Button]bool),
		LeftX:   128,
		LeftY:   128,
		RightX:  128,
		RightY:  128,
	}
}

func (s *InputState) Set(b Button, down bool) {
	if s.pressed == nil {
		s.pressed = make(map[Button]bool)
	}
	if down {
		s.pressed[b] = true
	} else {
		delete(s.pressed, b)
	}
}

func (s *InputState) Pressed(b Button) bool { return s.pressed[b] }

// RT1 reports the boot-time rt1 modifier.
func (s *InputState) RT1() bool { return s.pressed[BtnRT1] }

// AllPressed reports whether every button in bs is held. Empty bs => false.
func (s *InputState) AllPressed(bs []Button) bool {
	if len(bs) == 0 {
		return false
	}
	for _, b := range bs {
		if !s.pressed[b] {
			return false
		}
	}
	return true
}

// Held returns the number of held buttons.
func (s *InputState) Held() int { return len(s.pressed) }
