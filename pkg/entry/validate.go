package entry

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"tableflip.dev/daybook/pkg/timeutil"
)

// MaxContentLength bounds entry content, counted in runes.
const MaxContentLength = 5000

var (
	ErrContentRequired = errors.New("entry: content is required")
	ErrContentTooLong  = fmt.Errorf("entry: content exceeds %d characters", MaxContentLength)
)

// ValidateContent checks the content rules applied before any save:
// required, non-blank, at most MaxContentLength characters.
func ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrContentRequired
	}
	if utf8.RuneCountInString(content) > MaxContentLength {
		return ErrContentTooLong
	}
	return nil
}

// ValidateDate checks that date is a canonical YYYY-MM-DD string.
func ValidateDate(date string) error {
	if !timeutil.ValidDate(date) {
		return fmt.Errorf("entry: invalid date %q, want YYYY-MM-DD", date)
	}
	return nil
}

// Validate runs all entry-level checks.
func (e *Entry) Validate() error {
	if err := ValidateDate(e.Date); err != nil {
		return err
	}
	return ValidateContent(e.Content)
}
