package dive

import (
	"fmt"
	"regexp"
	"strconv"
)

// Direction is the kind of a submarine command.
type Direction int

const (
	Forward Direction = iota
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

var directions = map[string]Direction{
	"forward": Forward,
	"up":      Up,
	"down":    Down,
}

// Command moves the submarine by Magnitude in Direction.
type Command struct {
	Direction Direction
	Magnitude uint32
}

func (c Command) String() string {
	return fmt.Sprintf("%s %d", c.Direction, c.Magnitude)
}

// FormatError reports a line that is not a valid command.
type FormatError struct {
	Line   string
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s '%s'", e.Reason, e.Line)
}

func (e *FormatError) Unwrap() error { return e.Err }

var commandPattern = regexp.MustCompile(`^(?P<direction>forward|up|down) (?P<magnitude>\d+)$`)

// ParseCommand parses a line of the form "<forward|up|down> <digits>".
func ParseCommand(line string) (Command, error) {
	match := commandPattern.FindStringSubmatch(line)
	if match == nil {
		return Command{}, &FormatError{Line: line, Reason: "line does not follow correct format:"}
	}

	magnitude, err := strconv.ParseUint(match[commandPattern.SubexpIndex("magnitude")], 10, 32)
	if err != nil {
		return Command{}, &FormatError{Line: line, Reason: "could not parse number from line", Err: err}
	}

	return Command{
		Direction: directions[match[commandPattern.SubexpIndex("direction")]],
		Magnitude: uint32(magnitude),
	}, nil
}
