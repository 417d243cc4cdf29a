package order

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"sales/internal/pkg/errs"
)

const (
	// NumberPrefix starts every order number.
	NumberPrefix = "ORD"

	// MaxDailySequence is the largest sequence a single day can allocate.
	MaxDailySequence = 9999

	sequenceDigits = 4
)

var numberPattern = regexp.MustCompile(`^ORD\d{10}$`)

// DayPrefix returns the day-scoped number prefix ORDyyMMdd for t in UTC.
func DayPrefix(t time.Time) string {
	return NumberPrefix + t.UTC().Format("060102")
}

// FormatNumber appends the zero-padded sequence to a day prefix.
func FormatNumber(dayPrefix string, sequence int) (string, error) {
	if sequence < 1 || sequence > MaxDailySequence {
		return "", errs.NewValueIsOutOfRangeError("sequence", sequence, 1, MaxDailySequence)
	}
	return fmt.Sprintf("%s%0*d", dayPrefix, sequenceDigits, sequence), nil
}

// ParseSequence extracts the trailing four-digit sequence of an order number.
func ParseSequence(number string) (int, error) {
	if !IsValidNumber(number) {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"orderNumber",
			fmt.Errorf("%q does not match %s", number, numberPattern),
		)
	}
	return strconv.Atoi(number[len(number)-sequenceDigits:])
}

// IsValidNumber reports whether number has the ORD + 10 digits shape.
func IsValidNumber(number string) bool {
	return numberPattern.MatchString(number)
}

// HasDayPrefix reports whether number was allocated under dayPrefix.
func HasDayPrefix(number, dayPrefix string) bool {
	return strings.HasPrefix(number, dayPrefix)
}
