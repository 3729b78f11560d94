package model

// GenerateRequest represents a password generation request.
// Pointer fields distinguish a missing value (nil -> default) from an explicit one,
// so an explicit zero length or quantity is rejected rather than defaulted.
type GenerateRequest struct {
	Length         *int  `json:"length"`
	Quantity       *int  `json:"quantity"`
	Uppercase      *bool `json:"uppercase"`
	Lowercase      *bool `json:"lowercase"`
	Numbers        *bool `json:"numbers"`
	Symbols        *bool `json:"symbols"`
	ExcludeSimilar bool  `json:"exclude_similar"`
	Hash           bool  `json:"hash"`
}

// GeneratedPassword is one password in a generation response.
type GeneratedPassword struct {
	Password    string  `json:"password"`
	EntropyBits float64 `json:"entropy_bits"`
	Strength    string  `json:"strength"`
	Hash        string  `json:"hash,omitempty"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Length       int                 `json:"length"`
	AlphabetSize int                 `json:"alphabet_size"`
	EntropyBits  float64             `json:"entropy_bits"`
	Strength     string              `json:"strength"`
	Passwords    []GeneratedPassword `json:"passwords"`
}

// AlphabetRequest selects character categories without generating anything.
type AlphabetRequest struct {
	Uppercase      *bool `json:"uppercase"`
	Lowercase      *bool `json:"lowercase"`
	Numbers        *bool `json:"numbers"`
	Symbols        *bool `json:"symbols"`
	ExcludeSimilar bool  `json:"exclude_similar"`
}

// AlphabetResponse describes the derived character set.
type AlphabetResponse struct {
	Alphabet    string  `json:"alphabet"`
	Size        int     `json:"size"`
	BitsPerChar float64 `json:"bits_per_char"`
}
