package cpe

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// MarshalText implements [encoding.TextMarshaler], emitting n as a CPE 2.3
// formatted string.
func (n Name) MarshalText() ([]byte, error) {
	if len(n.Elements) == 0 {
		return []byte{}, nil
	}
	s, err := n.AsFS()
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler]. An empty payload
// leaves n unset rather than erroring, matching how a NULL column round-trips
// through [Name.Scan].
func (n *Name) UnmarshalText(b []byte) (err error) {
	if len(b) == 0 {
		return nil
	}
	*n, err = Parse(string(b))
	return err
}

// Scan implements [database/sql.Scanner], accepting any bound CPE text form
// (1.1, 2.2 URI, 2.3 formatted string, or WFN).
func (n *Name) Scan(src interface{}) (err error) {
	var s string
	switch v := src.(type) {
	case []byte:
		s = strings.ToValidUTF8(string(v), "�")
	case string:
		s = v
	case nil:
		return nil
	default:
		return fmt.Errorf("cpe: unable to Scan from type %T", src)
	}
	if s == "" {
		return nil
	}
	*n, err = Parse(s)
	return err
}

// Value implements [database/sql/driver.Valuer], storing n as a CPE 2.3
// formatted string.
func (n Name) Value() (driver.Value, error) {
	if len(n.Elements) == 0 {
		return "", nil
	}
	s, err := n.AsFS()
	if err != nil {
		return nil, err
	}
	return s, nil
}
