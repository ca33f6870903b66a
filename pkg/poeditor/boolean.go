package poeditor

import (
	"bytes"
	"fmt"
	"strconv"
)

// Bool is POEditor's boolean: the integer 0 or 1 on the wire.
type Bool int

const (
	False Bool = 0
	True  Bool = 1
)

// BoolOf converts a native bool.
func BoolOf(b bool) Bool {
	if b {
		return True
	}
	return False
}

// BoolPtr returns a pointer for optional request fields, so that an
// explicit 0 is still sent.
func BoolPtr(b bool) *Bool {
	v := BoolOf(b)
	return &v
}

// Value converts back to a native bool.
func (b Bool) Value() bool {
	return b != False
}

// String returns the wire form, "0" or "1".
func (b Bool) String() string {
	if b.Value() {
		return "1"
	}
	return "0"
}

func (b Bool) MarshalJSON() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalJSON accepts 0/1 (as numbers or strings) and native JSON booleans.
func (b *Bool) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	switch string(data) {
	case "0", "false", "", "null":
		*b = False
		return nil
	case "1", "true":
		*b = True
		return nil
	}
	n, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("invalid POEditor boolean %s", data)
	}
	*b = BoolOf(n != 0)
	return nil
}
