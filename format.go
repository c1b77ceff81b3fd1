package notation

import (
	"strconv"
	"strings"
)

// Format is a notation for writing expressions.
type Format int8

const (
	// Infix writes binary operators between their operands, e.g. 1&0.
	Infix Format = iota
	// Prefix writes operators before their operands, e.g. &10.
	Prefix
	// Postfix writes operators after their operands, e.g. 10&.
	Postfix
)

func (f Format) String() string {
	switch f {
	case Infix:
		return "infix"
	case Prefix:
		return "prefix"
	case Postfix:
		return "postfix"
	default:
		return "Format(" + strconv.Itoa(int(f)) + ")"
	}
}

// ParseFormat gets the format named by s, which is one of infix, prefix, or
// postfix, ignoring case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "infix":
		return Infix, nil
	case "prefix":
		return Prefix, nil
	case "postfix":
		return Postfix, nil
	default:
		return 0, &FormatError{Name: s}
	}
}

// FormatError is an error indicating an unknown format name.
type FormatError struct {
	// Name is the name that was not understood.
	Name string
}

func (err *FormatError) Error() string {
	return "unknown format " + strconv.Quote(err.Name) + " (want infix, prefix, or postfix)"
}
