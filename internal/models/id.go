package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrInvalidID = errors.New("identifier must be a JSON number or string")

// ID identifies a customer or a transaction. The data source may send either
// JSON numbers or strings; numbers are stored in canonical decimal form so
// that 1, 1.0 and "1" all compare equal.
type ID string

// NewIntID builds an ID from an integer
func NewIntID(n int64) ID {
	return ID(decimal.NewFromInt(n).String())
}

// String returns the identifier text
func (id ID) String() string {
	return string(id)
}

// IsZero reports whether the identifier is empty
func (id ID) IsZero() bool {
	return id == ""
}

// UnmarshalJSON accepts numbers and strings
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidID, err)
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidID, string(data))
	}

	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidID, err)
	}
	*id = ID(d.String())
	return nil
}

// ParseID canonicalises an identifier received as text (path or query
// parameter). Text that is a valid JSON number is normalised the same way
// JSON numbers are; anything else, such as "007", is kept verbatim.
func ParseID(s string) ID {
	if !isJSONNumber(s) {
		return ID(s)
	}
	if d, err := decimal.NewFromString(s); err == nil {
		return ID(d.String())
	}
	return ID(s)
}

func isJSONNumber(s string) bool {
	if s == "" || (s[0] != '-' && (s[0] < '0' || s[0] > '9')) {
		return false
	}
	return json.Valid([]byte(s))
}
