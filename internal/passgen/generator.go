// Package passgen builds character alphabets, draws cryptographically secure
// random passwords from them and scores the result by entropy.
//
// The package holds no cross-call state and performs no I/O other than
// reading from its randomness source.
package passgen

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strings"
	"unicode/utf8"
)

const (
	MinLength   = 6
	MaxLength   = 128
	MinQuantity = 1
	MaxQuantity = 10

	// SimilarChars are the visually ambiguous characters dropped by excludeSimilar.
	SimilarChars = "il1Lo0O"
)

// Request describes one generation batch.
type Request struct {
	Length         int
	Quantity       int
	Categories     []Category
	ExcludeSimilar bool
}

// Password is a single generated password with the batch's strength score.
type Password struct {
	Text         string
	AlphabetSize int
	EntropyBits  float64
	Strength     Strength
}

// Validate checks the numeric ranges and that the request yields a non-empty alphabet.
func (r Request) Validate() error {
	if err := r.validateRanges(); err != nil {
		return err
	}
	_, err := BuildAlphabet(r.Categories, r.ExcludeSimilar)
	return err
}

func (r Request) validateRanges() error {
	if r.Length < MinLength || r.Length > MaxLength {
		return invalidf("password length must be between %d and %d", MinLength, MaxLength)
	}
	if r.Quantity < MinQuantity || r.Quantity > MaxQuantity {
		return invalidf("number of passwords must be between %d and %d", MinQuantity, MaxQuantity)
	}
	return nil
}

// BuildAlphabet concatenates the alphabets of the enabled categories in
// canonical order and optionally removes SimilarChars.
func BuildAlphabet(categories []Category, excludeSimilar bool) (string, error) {
	enabled := make(map[Category]bool, len(categories))
	for _, c := range categories {
		if !c.valid() {
			return "", invalidf("unknown character category %d", int(c))
		}
		enabled[c] = true
	}
	if len(enabled) == 0 {
		return "", ErrNoCategories
	}

	var sb strings.Builder
	for _, c := range AllCategories() {
		if enabled[c] {
			sb.WriteString(c.Chars())
		}
	}

	alphabet := sb.String()
	if excludeSimilar {
		alphabet = strings.Map(func(r rune) rune {
			if strings.ContainsRune(SimilarChars, r) {
				return -1
			}
			return r
		}, alphabet)
	}

	if alphabet == "" {
		return "", ErrEmptyAlphabet
	}
	return alphabet, nil
}

// Generator samples passwords from a randomness source.
// It is safe for concurrent use if its source is.
type Generator struct {
	rand io.Reader
}

// NewGenerator returns a Generator reading from src, or from crypto/rand when src is nil.
func NewGenerator(src io.Reader) *Generator {
	if src == nil {
		src = rand.Reader
	}
	return &Generator{rand: src}
}

var defaultGenerator = NewGenerator(nil)

// SamplePassword draws length characters uniformly, with replacement, from alphabet
// using crypto/rand.
func SamplePassword(length int, alphabet string) (string, error) {
	return defaultGenerator.SamplePassword(length, alphabet)
}

// GenerateBatch produces req.Quantity passwords using crypto/rand.
func GenerateBatch(req Request) ([]Password, error) {
	return defaultGenerator.GenerateBatch(req)
}

// SamplePassword draws length characters uniformly, with replacement, from alphabet.
func (g *Generator) SamplePassword(length int, alphabet string) (string, error) {
	if alphabet == "" {
		return "", ErrEmptyAlphabet
	}
	if length < 1 {
		return "", invalidf("password length must be at least 1")
	}

	chars := []rune(alphabet)
	size := big.NewInt(int64(len(chars)))
	result := make([]rune, length)
	for i := range result {
		n, err := rand.Int(g.rand, size)
		if err != nil {
			return "", fmt.Errorf("reading random source: %w", err)
		}
		result[i] = chars[n.Int64()]
	}

	return string(result), nil
}

// GenerateBatch validates req, derives its alphabet once and samples
// req.Quantity independent passwords. Either every password is returned or
// none is.
func (g *Generator) GenerateBatch(req Request) ([]Password, error) {
	if err := req.validateRanges(); err != nil {
		return nil, err
	}

	alphabet, err := BuildAlphabet(req.Categories, req.ExcludeSimilar)
	if err != nil {
		return nil, err
	}

	size := utf8.RuneCountInString(alphabet)
	bits := ComputeEntropyBits(size, req.Length)
	strength := ClassifyStrength(bits)

	batch := make([]Password, 0, req.Quantity)
	for i := 0; i < req.Quantity; i++ {
		text, err := g.SamplePassword(req.Length, alphabet)
		if err != nil {
			return nil, err
		}
		batch = append(batch, Password{
			Text:         text,
			AlphabetSize: size,
			EntropyBits:  bits,
			Strength:     strength,
		})
	}

	return batch, nil
}
