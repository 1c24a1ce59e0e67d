//go:build windows

package keystroke

import (
	"unicode/utf16"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/arthur-debert/here/pkg/errors"
	"github.com/arthur-debert/here/pkg/logging"
	"github.com/arthur-debert/here/pkg/types"
)

const (
	inputKeyboard    = 1
	keyEventFKeyUp   = 0x0002
	keyEventFUnicode = 0x0004
	virtualKeyReturn = 0x0D
)

var (
	user32        = windows.NewLazySystemDLL("user32.dll")
	procSendInput = user32.NewProc("SendInput")
)

type keybdInput struct {
	vk        uint16
	scan      uint16
	flags     uint32
	time      uint32
	extraInfo uintptr
}

// keyboardInput mirrors INPUT; the trailing pad grows the union to the
// size of MOUSEINPUT.
type keyboardInput struct {
	typ uint32
	ki  keybdInput
	_   [8]byte
}

// Terminal sends synthetic key events to the focused window
type Terminal struct{}

// New returns a typist for the focused window
func New() types.Typist {
	return &Terminal{}
}

// Type sends text as unicode key presses
func (t *Terminal) Type(text string) error {
	units := utf16.Encode([]rune(text))
	inputs := make([]keyboardInput, 0, 2*len(units))
	for _, u := range units {
		inputs = append(inputs,
			keyboardInput{typ: inputKeyboard, ki: keybdInput{scan: u, flags: keyEventFUnicode}},
			keyboardInput{typ: inputKeyboard, ki: keybdInput{scan: u, flags: keyEventFUnicode | keyEventFKeyUp}},
		)
	}
	return send(inputs)
}

// Submit presses and releases Enter
func (t *Terminal) Submit() error {
	return send([]keyboardInput{
		{typ: inputKeyboard, ki: keybdInput{vk: virtualKeyReturn}},
		{typ: inputKeyboard, ki: keybdInput{vk: virtualKeyReturn, flags: keyEventFKeyUp}},
	})
}

func send(inputs []keyboardInput) error {
	if len(inputs) == 0 {
		return nil
	}
	log := logging.GetLogger("keystroke")
	log.Debug().Int("events", len(inputs)).Msg("Sending input events")

	sent, _, err := procSendInput.Call(
		uintptr(len(inputs)),
		uintptr(unsafe.Pointer(&inputs[0])),
		unsafe.Sizeof(inputs[0]),
	)
	if int(sent) != len(inputs) {
		return errors.Newf(errors.ErrKeystroke, "SendInput was blocked: %v", err)
	}
	return nil
}
