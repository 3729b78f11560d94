package passgen

import "math"

// Strength is a coarse label for an entropy figure.
type Strength string

const (
	VeryWeak   Strength = "Very Weak"
	Weak       Strength = "Weak"
	Moderate   Strength = "Moderate"
	Strong     Strength = "Strong"
	VeryStrong Strength = "Very Strong"
)

// ComputeEntropyBits returns log2(alphabetSize) * length rounded to one
// decimal place. Each character is treated as an independent uniform draw.
func ComputeEntropyBits(alphabetSize, length int) float64 {
	if alphabetSize <= 0 || length <= 0 {
		return 0.0
	}
	bits := math.Log2(float64(alphabetSize)) * float64(length)
	return math.Round(bits*10) / 10
}

// ClassifyStrength maps entropy bits onto the strength ladder.
func ClassifyStrength(bits float64) Strength {
	switch {
	case bits < 28:
		return VeryWeak
	case bits < 36:
		return Weak
	case bits < 60:
		return Moderate
	case bits < 128:
		return Strong
	default:
		return VeryStrong
	}
}
