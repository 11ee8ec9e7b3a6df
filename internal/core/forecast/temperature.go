package forecast

import (
	stderrors "errors"
	"math"
	"regexp"
	"strconv"
)

var integerPattern = regexp.MustCompile(`-?[0-9]+`)

// ParseTemperature returns the first signed integer in a display string, or 0 when there is none.
// "18°C" yields 18, "-5°" yields -5 and "N/A" yields 0. Out-of-range digit runs clamp to the int limits.
func ParseTemperature(display string) int {
	match := integerPattern.FindString(display)
	if match == "" {
		return 0
	}

	value, err := strconv.ParseInt(match, 10, 64)
	if err != nil && !stderrors.Is(err, strconv.ErrRange) {
		return 0
	}

	switch {
	case value > math.MaxInt:
		return math.MaxInt
	case value < math.MinInt:
		return math.MinInt
	}
	return int(value)
}
