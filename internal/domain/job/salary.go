package job

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidSalary = errors.New("invalid salary")

// ParseSalary converts salary text input to an integer. Empty input means no
// value. Thousands separators and a leading currency sign are tolerated.
func ParseSalary(text string) (*int, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil, nil
	}
	s = strings.TrimLeft(s, "$€£")
	s = strings.NewReplacer(",", "", "_", "", " ", "").Replace(s)

	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSalary, text)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: %q is negative", ErrInvalidSalary, text)
	}
	return &n, nil
}
