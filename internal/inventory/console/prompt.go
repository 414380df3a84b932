package console

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
)

// maxLineBytes bounds a single input line. Longer lines are discarded and re-prompted.
const maxLineBytes = 64 * 1024

// clearField entered at a text prompt empties the field.
const clearField = "-"

var errLineTooLong = errors.New("input line too long")

// readLine returns the next input line without its line ending, or io.EOF.
// A line over maxLineBytes is consumed in full and reported as errLineTooLong.
func (s *Session) readLine() (string, error) {
	var line []byte
	tooLong := false
	for {
		chunk, err := s.in.ReadSlice('\n')
		if !tooLong {
			if len(line)+len(chunk) > maxLineBytes {
				tooLong = true
				line = nil
			} else {
				line = append(line, chunk...)
			}
		}
		switch {
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case err == nil, errors.Is(err, io.EOF) && (len(line) > 0 || tooLong):
			if tooLong {
				return "", errLineTooLong
			}
			return strings.TrimRight(string(line), "\r\n"), nil
		default:
			return "", err
		}
	}
}

func (s *Session) prompt(label string) (string, error) {
	for {
		s.printf("%s", label)
		line, err := s.readLine()
		if errors.Is(err, errLineTooLong) {
			s.logger.Warn("Discarded oversized input line", "limit", maxLineBytes)
			s.printf("Input is longer than %d bytes, please try again.\n", maxLineBytes)
			continue
		}
		return line, err
	}
}

// promptFloat asks until the operator enters a number.
// If keepEmpty is set, an empty line returns current.
func (s *Session) promptFloat(label string, current float64, keepEmpty bool) (float64, error) {
	for {
		line, err := s.prompt(label)
		if err != nil {
			return 0, err
		}
		line = strings.TrimSpace(line)
		if line == "" && keepEmpty {
			return current, nil
		}
		v, err := strconv.ParseFloat(line, 64)
		if err == nil {
			return v, nil
		}
		s.println("Please enter a number.")
	}
}

// promptInt asks until the operator enters a whole number.
// If keepEmpty is set, an empty line returns current.
func (s *Session) promptInt(label string, current int, keepEmpty bool) (int, error) {
	for {
		line, err := s.prompt(label)
		if err != nil {
			return 0, err
		}
		line = strings.TrimSpace(line)
		if line == "" && keepEmpty {
			return current, nil
		}
		v, err := strconv.Atoi(line)
		if err == nil {
			return v, nil
		}
		s.println("Please enter a whole number.")
	}
}

// promptText returns current when the operator enters an empty line
// and an empty string when they enter clearField.
func (s *Session) promptText(label, current string) (string, error) {
	line, err := s.prompt(label)
	if err != nil {
		return "", err
	}
	switch line {
	case "":
		return current, nil
	case clearField:
		return "", nil
	default:
		return line, nil
	}
}
