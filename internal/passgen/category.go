package passgen

import (
	"strings"
)

// Category selects one fixed character class.
type Category int

const (
	Uppercase Category = iota
	Lowercase
	Digit
	Symbol
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	digitChars     = "0123456789"
	symbolChars    = "!@#$%^&*()-_=+[]{}|;:,.<>?/~`"
)

// AllCategories returns every category in alphabet concatenation order.
func AllCategories() []Category {
	return []Category{Uppercase, Lowercase, Digit, Symbol}
}

// Chars returns the category's alphabet, or "" for an unknown category.
func (c Category) Chars() string {
	switch c {
	case Uppercase:
		return uppercaseChars
	case Lowercase:
		return lowercaseChars
	case Digit:
		return digitChars
	case Symbol:
		return symbolChars
	}
	return ""
}

func (c Category) String() string {
	switch c {
	case Uppercase:
		return "uppercase"
	case Lowercase:
		return "lowercase"
	case Digit:
		return "digit"
	case Symbol:
		return "symbol"
	}
	return "unknown"
}

func (c Category) valid() bool {
	return c >= Uppercase && c <= Symbol
}

// ParseCategory maps a user-facing name such as "upper" or "numbers" to a Category.
func ParseCategory(name string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "upper", "uppercase":
		return Uppercase, nil
	case "lower", "lowercase":
		return Lowercase, nil
	case "digit", "digits", "number", "numbers":
		return Digit, nil
	case "symbol", "symbols":
		return Symbol, nil
	}
	return 0, invalidf("unknown character category %q", name)
}

// CategoryNames joins category names with commas in canonical order.
func CategoryNames(categories []Category) string {
	seen := make(map[Category]bool, len(categories))
	for _, c := range categories {
		seen[c] = true
	}
	names := make([]string, 0, len(seen))
	for _, c := range AllCategories() {
		if seen[c] {
			names = append(names, c.String())
		}
	}
	return strings.Join(names, ",")
}
