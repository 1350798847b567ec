package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"smartcloth/internal/engine"
	"smartcloth/internal/models"
)

// ErrInvalidButton is returned for a button that does not exist on the device.
var ErrInvalidButton = errors.New("invalid button")

// Button identifies one key of the device. Group keys use their group id;
// main keys and the barcode key live above the group range.
type Button int32

const (
	ButtonNone Button = 0

	GroupButtons = 20

	ButtonRaw     Button = 101
	ButtonCooked  Button = 102
	ButtonAdd     Button = 103
	ButtonDelete  Button = 104
	ButtonSave    Button = 105
	ButtonBarcode Button = 110
)

// Button kinds accepted by ParseButton.
const (
	KindGroup   = "group"
	KindMain    = "main"
	KindBarcode = "barcode"
)

var mainButtons = []Button{ButtonRaw, ButtonCooked, ButtonAdd, ButtonDelete, ButtonSave}

var mainEvents = map[Button]engine.Event{
	ButtonRaw:     engine.EvRaw,
	ButtonCooked:  engine.EvCooked,
	ButtonAdd:     engine.EvAddPlate,
	ButtonDelete:  engine.EvDeletePlate,
	ButtonSave:    engine.EvSave,
	ButtonBarcode: engine.EvBarcode,
}

// ParseButton maps an API description of a key to a Button. Group ids run
// 1..20 and main ids 1..5 (raw, cooked, add, delete, save).
func ParseButton(kind string, id int) (Button, error) {
	switch strings.ToLower(kind) {
	case KindGroup:
		if id < 1 || id > GroupButtons {
			return ButtonNone, fmt.Errorf("%w: group %d", ErrInvalidButton, id)
		}
		return Button(id), nil
	case KindMain:
		if id < 1 || id > len(mainButtons) {
			return ButtonNone, fmt.Errorf("%w: main %d", ErrInvalidButton, id)
		}
		return mainButtons[id-1], nil
	case KindBarcode:
		return ButtonBarcode, nil
	}
	return ButtonNone, fmt.Errorf("%w: kind %q", ErrInvalidButton, kind)
}

// IsGroup reports whether b is one of the food-group keys.
func (b Button) IsGroup() bool { return b >= 1 && b <= GroupButtons }

// Signal translates a press into the engine input it stands for.
func (b Button) Signal() (engine.Signal, bool) {
	if b.IsGroup() {
		ev := engine.EvGroupB
		if models.IsTypeA(int(b)) {
			ev = engine.EvGroupA
		}
		return engine.Signal{Event: ev, Group: int(b)}, true
	}
	ev, ok := mainEvents[b]
	if !ok {
		return engine.Signal{}, false
	}
	return engine.Signal{Event: ev}, true
}

func (b Button) String() string {
	switch {
	case b.IsGroup():
		return fmt.Sprintf("group-%d", int(b))
	case b == ButtonBarcode:
		return KindBarcode
	}
	if i := lo.IndexOf(mainButtons, b); i >= 0 {
		return fmt.Sprintf("main-%d", i+1)
	}
	return fmt.Sprintf("button(%d)", int(b))
}

// Buttons lists every key of the device.
func Buttons() []Button {
	groups := lo.Map(lo.RangeFrom(1, GroupButtons), func(id, _ int) Button { return Button(id) })
	return append(append(groups, mainButtons...), ButtonBarcode)
}
