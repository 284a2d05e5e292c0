package cricbuzz

import (
	"bytes"
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"
)

// The mobile API is loose about scalars: the same field arrives as 12, "12" or "".
// These types accept every spelling seen in practice.

// ID is a player, team, match or innings identifier.
type ID int64

func (id *ID) UnmarshalJSON(data []byte) error {
	v, err := parseFlexInt(data)
	if err != nil {
		return crerr.Wrap(err, "decode id")
	}
	*id = ID(v)
	return nil
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Count is a run, ball or wicket tally.
type Count int

func (c *Count) UnmarshalJSON(data []byte) error {
	v, err := parseFlexInt(data)
	if err != nil {
		return crerr.Wrap(err, "decode count")
	}
	*c = Count(v)
	return nil
}

// Overs keeps the upstream "overs.balls" notation (e.g. "19.4"), which is not a decimal.
type Overs string

func (o *Overs) UnmarshalJSON(data []byte) error {
	text := unquote(data)
	if text == "null" {
		text = ""
	}
	*o = Overs(text)
	return nil
}

// Flag is a boolean sent as true, "true", "1" or "Y".
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	text := strings.ToLower(unquote(data))
	switch text {
	case "", "null", "0", "false", "f", "n", "no", "off":
		*f = false
	case "1", "true", "t", "y", "yes", "on":
		*f = true
	default:
		return crerr.Newf("decode flag: unexpected value %q", text)
	}
	return nil
}

func parseFlexInt(data []byte) (int64, error) {
	// Batting figures mark a not-out innings as "45*".
	text := strings.TrimSuffix(unquote(data), "*")
	if text == "" || text == "null" || text == "-" {
		return 0, nil
	}
	if v, err := strconv.ParseInt(text, 10, 64); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, crerr.Newf("not a number: %q", text)
	}
	return int64(f), nil
}

func unquote(data []byte) string {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) >= 2 && trimmed[0] == '"' && trimmed[len(trimmed)-1] == '"' {
		if s, err := strconv.Unquote(string(trimmed)); err == nil {
			return strings.TrimSpace(s)
		}
		trimmed = trimmed[1 : len(trimmed)-1]
	}
	return strings.TrimSpace(string(trimmed))
}
