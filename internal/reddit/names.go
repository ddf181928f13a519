package reddit

import (
	"fmt"
	"strings"
)

// NameValidator validates user-entered subreddit names before they are put
// into a request URL or the favorites list.
type NameValidator struct {
	// MinLength is the minimum allowed name length
	MinLength int
	// MaxLength is the maximum allowed name length
	MaxLength int
	// StripPrefix determines whether "r/" and "/r/" prefixes are accepted
	// and removed during normalization
	StripPrefix bool
}

// NewNameValidator creates a validator enforcing Reddit's naming rules
func NewNameValidator() *NameValidator {
	return &NameValidator{
		MinLength:   3,
		MaxLength:   21,
		StripPrefix: true,
	}
}

// NewPermissiveNameValidator creates a validator that accepts short names,
// useful for testing against fixture servers
func NewPermissiveNameValidator() *NameValidator {
	return &NameValidator{
		MinLength:   1,
		MaxLength:   64,
		StripPrefix: true,
	}
}

// ValidateAndNormalize validates a subreddit name and returns the normalized
// form: prefix stripped, surrounding whitespace removed.
func (v *NameValidator) ValidateAndNormalize(input string) (string, error) {
	name := strings.TrimSpace(input)

	if v.StripPrefix {
		name = strings.TrimPrefix(name, "/")
		name = strings.TrimPrefix(name, "r/")
	}

	if name == "" {
		return "", fmt.Errorf("subreddit name cannot be empty")
	}
	if len(name) < v.MinLength {
		return "", fmt.Errorf("subreddit name too short (min %d characters)", v.MinLength)
	}
	if len(name) > v.MaxLength {
		return "", fmt.Errorf("subreddit name too long (max %d characters)", v.MaxLength)
	}

	for _, r := range name {
		if !isNameRune(r) {
			return "", fmt.Errorf("subreddit name contains invalid character %q", r)
		}
	}

	return name, nil
}

func isNameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '_':
		return true
	}
	return false
}
