package domain

import (
	"bytes"
	"strconv"
)

// BoolFlag is a boolean the backend serialises inconsistently: list
// endpoints emit 0/1 integers or numeric strings, the detail endpoint
// emits real booleans. It always marshals back as 0/1, which is what
// the update endpoint expects.
type BoolFlag bool

func (f BoolFlag) Bool() bool { return bool(f) }

func (f BoolFlag) MarshalJSON() ([]byte, error) {
	if f {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

func (f *BoolFlag) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(data, `"`))
	switch s {
	case "true":
		*f = true
		return nil
	case "false", "null", "":
		*f = false
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*f = n == 1
	return nil
}
