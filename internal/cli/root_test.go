package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/passgen"
)

type clipboardStub struct {
	copied []string
	err    error
}

func (c *clipboardStub) write(text string) error {
	if c.err != nil {
		return c.err
	}
	c.copied = append(c.copied, text)
	return nil
}

func execute(t *testing.T, clip *clipboardStub, args ...string) (string, string, error) {
	t.Helper()
	if clip == nil {
		clip = &clipboardStub{}
	}

	cmd := NewRootCommand(Options{CopyToClipboard: clip.write, Version: "test"})
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestGenerateDefaults(t *testing.T) {
	out, _, err := execute(t, nil)
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}

	rows := lines(out)
	if len(rows) != defaultQuantity {
		t.Fatalf("got %d rows, want %d:\n%s", len(rows), defaultQuantity, out)
	}
	for _, row := range rows {
		if !strings.Contains(row, "Entropy: 104.1 bits | Strong") {
			t.Errorf("row %q missing entropy and label", row)
		}
	}
}

func TestGeneratePlain(t *testing.T) {
	out, _, err := execute(t, nil, "--plain", "-l", "24", "-c", "5", "--symbols=false", "--upper=false")
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}

	alphabet, _ := passgen.BuildAlphabet([]passgen.Category{passgen.Lowercase, passgen.Digit}, false)
	rows := lines(out)
	if len(rows) != 5 {
		t.Fatalf("got %d rows, want 5", len(rows))
	}
	for _, row := range rows {
		if len(row) != 24 {
			t.Errorf("password %q has length %d, want 24", row, len(row))
		}
		for _, ch := range row {
			if !strings.ContainsRune(alphabet, ch) {
				t.Errorf("password %q contains %q outside the alphabet", row, ch)
			}
		}
	}
}

func TestGenerateFromEnvironment(t *testing.T) {
	t.Setenv("PASSGEN_LENGTH", "8")
	t.Setenv("PASSGEN_COUNT", "2")
	t.Setenv("PASSGEN_EXCLUDE_SIMILAR", "true")
	t.Setenv("PASSGEN_UPPER", "false")
	t.Setenv("PASSGEN_SYMBOLS", "false")

	out, _, err := execute(t, nil, "--plain")
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}

	rows := lines(out)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	for _, row := range rows {
		if len(row) != 8 {
			t.Errorf("password %q has length %d, want 8", row, len(row))
		}
		if strings.ContainsAny(row, passgen.SimilarChars) {
			t.Errorf("password %q contains a similar character", row)
		}
	}

	// Flags win over the environment.
	out, _, err = execute(t, nil, "--plain", "--count", "4")
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	if n := len(lines(out)); n != 4 {
		t.Errorf("got %d rows, want 4", n)
	}
}

func TestGenerateInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "length five", args: []string{"-l", "5"}},
		{name: "length 129", args: []string{"-l", "129"}},
		{name: "count zero", args: []string{"-c", "0"}},
		{name: "no categories", args: []string{"--upper=false", "--lower=false", "--digits=false", "--symbols=false"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, nil, tt.args...)
			if !errors.Is(err, passgen.ErrInvalidConfiguration) {
				t.Errorf("Execute() error = %v, want ErrInvalidConfiguration", err)
			}
			if out != "" {
				t.Errorf("Execute() printed output on failure: %q", out)
			}
		})
	}
}

func TestGenerateCopy(t *testing.T) {
	clip := &clipboardStub{}
	out, stderr, err := execute(t, clip, "--plain", "-c", "3", "--copy", "2")
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}

	rows := lines(out)
	if len(clip.copied) != 1 || clip.copied[0] != rows[1] {
		t.Errorf("copied %v, want second password %q", clip.copied, rows[1])
	}
	if !strings.Contains(stderr, "Copied password 2 to clipboard.") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestGenerateCopyErrors(t *testing.T) {
	if _, _, err := execute(t, nil, "-c", "2", "--copy", "3"); err == nil {
		t.Error("expected error for --copy beyond the batch")
	}

	clip := &clipboardStub{err: errors.New("no clipboard utilities available")}
	if _, _, err := execute(t, clip, "--copy", "1"); err == nil || !strings.Contains(err.Error(), "copying to clipboard") {
		t.Errorf("Execute() error = %v, want clipboard failure", err)
	}
}

func TestAlphabetCommand(t *testing.T) {
	out, _, err := execute(t, nil, "alphabet", "--upper=false", "--digits=false", "--symbols=false", "--exclude-similar")
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}

	rows := lines(out)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2:\n%s", len(rows), out)
	}
	if rows[0] != "abcdefghjkmnpqrstuvwxyz" {
		t.Errorf("alphabet = %q", rows[0])
	}
	if rows[1] != "23 characters, 4.52 bits per character" {
		t.Errorf("summary = %q", rows[1])
	}
}

func TestTokenCommand(t *testing.T) {
	t.Setenv("AUTH_SECRET", "cli-secret")

	out, _, err := execute(t, nil, "token", "--client", "deploy-bot", "--ttl", "1h")
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}

	claims, err := crypto.ValidateToken(strings.TrimSpace(out), "cli-secret")
	if err != nil {
		t.Fatalf("ValidateToken() unexpected error: %v", err)
	}
	if claims.Client() != "deploy-bot" {
		t.Errorf("client = %q, want deploy-bot", claims.Client())
	}
	if ttl := time.Until(claims.ExpiresAt.Time); ttl > time.Hour || ttl < 50*time.Minute {
		t.Errorf("token expires in %v, want about 1h", ttl)
	}
}

func TestTokenCommandErrors(t *testing.T) {
	t.Setenv("AUTH_SECRET", "")
	if _, _, err := execute(t, nil, "token", "--client", "ci"); err == nil {
		t.Error("expected error without AUTH_SECRET")
	}

	t.Setenv("AUTH_SECRET", "cli-secret")
	if _, _, err := execute(t, nil, "token"); !errors.Is(err, crypto.ErrClientRequired) {
		t.Errorf("Execute() error = %v, want ErrClientRequired", err)
	}
}
