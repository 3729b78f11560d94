package service

import (
	"context"
	"errors"
	"log/slog"
	"math"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/passgen"
)

const (
	DefaultLength   = 16
	DefaultQuantity = 3
	AnonymousClient = "anonymous"
)

var ErrAuditDisabled = errors.New("generation audit is not enabled")

// AuditStore persists generation metadata.
type AuditStore interface {
	Insert(ctx context.Context, rec *model.AuditRecord) error
	ListRecent(ctx context.Context, limit int) ([]model.AuditRecord, error)
}

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	audit AuditStore
	hash  crypto.HashParams
}

// NewGeneratorService creates a new GeneratorService. audit may be nil.
func NewGeneratorService(audit AuditStore, hash crypto.HashParams) *GeneratorService {
	return &GeneratorService{audit: audit, hash: hash}
}

// Generate produces a batch of passwords for client based on the given request.
func (s *GeneratorService) Generate(ctx context.Context, client string, req model.GenerateRequest) (model.GenerateResponse, error) {
	preq := passgen.Request{
		Length:         intOrDefault(req.Length, DefaultLength),
		Quantity:       intOrDefault(req.Quantity, DefaultQuantity),
		Categories:     categoriesFrom(req.Uppercase, req.Lowercase, req.Numbers, req.Symbols),
		ExcludeSimilar: req.ExcludeSimilar,
	}

	batch, err := passgen.GenerateBatch(preq)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	resp := model.GenerateResponse{
		Length:       preq.Length,
		AlphabetSize: batch[0].AlphabetSize,
		EntropyBits:  batch[0].EntropyBits,
		Strength:     string(batch[0].Strength),
		Passwords:    make([]model.GeneratedPassword, len(batch)),
	}

	for i, p := range batch {
		out := model.GeneratedPassword{
			Password:    p.Text,
			EntropyBits: p.EntropyBits,
			Strength:    string(p.Strength),
		}
		if req.Hash {
			hash, err := crypto.HashPassword(p.Text, s.hash)
			if err != nil {
				return model.GenerateResponse{}, err
			}
			out.Hash = hash
		}
		resp.Passwords[i] = out
	}

	s.record(ctx, client, preq, resp)

	return resp, nil
}

// Alphabet reports the character set a request would draw from.
func (s *GeneratorService) Alphabet(req model.AlphabetRequest) (model.AlphabetResponse, error) {
	categories := categoriesFrom(req.Uppercase, req.Lowercase, req.Numbers, req.Symbols)

	alphabet, err := passgen.BuildAlphabet(categories, req.ExcludeSimilar)
	if err != nil {
		return model.AlphabetResponse{}, err
	}

	return model.AlphabetResponse{
		Alphabet:    alphabet,
		Size:        len(alphabet),
		BitsPerChar: math.Round(math.Log2(float64(len(alphabet)))*100) / 100,
	}, nil
}

// RecentAudit lists the newest audit records.
func (s *GeneratorService) RecentAudit(ctx context.Context, limit int) ([]model.AuditRecord, error) {
	if s.audit == nil {
		return nil, ErrAuditDisabled
	}
	return s.audit.ListRecent(ctx, limit)
}

// record writes audit metadata. Failures are logged and never fail the batch.
func (s *GeneratorService) record(ctx context.Context, client string, req passgen.Request, resp model.GenerateResponse) {
	if s.audit == nil {
		return
	}
	if client == "" {
		client = AnonymousClient
	}

	rec := &model.AuditRecord{
		Client:         client,
		Length:         req.Length,
		Quantity:       req.Quantity,
		Categories:     passgen.CategoryNames(req.Categories),
		ExcludeSimilar: req.ExcludeSimilar,
		AlphabetSize:   resp.AlphabetSize,
		EntropyBits:    resp.EntropyBits,
		Strength:       resp.Strength,
	}
	if err := s.audit.Insert(ctx, rec); err != nil {
		slog.Warn("audit insert failed", "client", client, "error", err)
	}
}

// categoriesFrom converts request toggles to categories; nil means enabled.
func categoriesFrom(upper, lower, numbers, symbols *bool) []passgen.Category {
	var out []passgen.Category
	if boolOrDefault(upper, true) {
		out = append(out, passgen.Uppercase)
	}
	if boolOrDefault(lower, true) {
		out = append(out, passgen.Lowercase)
	}
	if boolOrDefault(numbers, true) {
		out = append(out, passgen.Digit)
	}
	if boolOrDefault(symbols, true) {
		out = append(out, passgen.Symbol)
	}
	return out
}

func intOrDefault(p *int, fallback int) int {
	if p == nil {
		return fallback
	}
	return *p
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
