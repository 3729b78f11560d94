// Package cli is the command-line shell around passgen. It owns all form
// state (flags and PASSGEN_* environment variables) and hands an immutable
// passgen.Request to the core per invocation.
package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vaultpass/passgen-go/internal/passgen"
)

const (
	defaultLength   = 16
	defaultQuantity = 3
	envPrefix       = "PASSGEN"
)

// Options replaces process-level collaborators in tests.
type Options struct {
	// CopyToClipboard defaults to atotto/clipboard.
	CopyToClipboard func(text string) error
	Version         string
}

// NewRootCommand builds the passgen command tree.
func NewRootCommand(opts Options) *cobra.Command {
	if opts.CopyToClipboard == nil {
		opts.CopyToClipboard = clipboard.WriteAll
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "passgen",
		Short:         "Generate random passwords and score their entropy",
		Version:       opts.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, v, opts)
		},
	}

	pf := root.PersistentFlags()
	pf.Bool("upper", true, "include uppercase letters (A-Z)")
	pf.Bool("lower", true, "include lowercase letters (a-z)")
	pf.Bool("digits", true, "include digits (0-9)")
	pf.Bool("symbols", true, "include symbols (!@#$...)")
	pf.Bool("exclude-similar", false, "exclude similar characters (i, l, 1, L, o, 0, O)")

	f := root.Flags()
	f.IntP("length", "l", defaultLength, fmt.Sprintf("password length (%d-%d)", passgen.MinLength, passgen.MaxLength))
	f.IntP("count", "c", defaultQuantity, fmt.Sprintf("number of passwords (%d-%d)", passgen.MinQuantity, passgen.MaxQuantity))
	f.Int("copy", 0, "copy the N-th generated password to the clipboard")
	f.Bool("plain", false, "print passwords only, one per line")

	root.AddCommand(newAlphabetCommand(v), newTokenCommand(v))
	return root
}

// categories reads the category toggles bound in v.
func categories(v *viper.Viper) []passgen.Category {
	var out []passgen.Category
	if v.GetBool("upper") {
		out = append(out, passgen.Uppercase)
	}
	if v.GetBool("lower") {
		out = append(out, passgen.Lowercase)
	}
	if v.GetBool("digits") {
		out = append(out, passgen.Digit)
	}
	if v.GetBool("symbols") {
		out = append(out, passgen.Symbol)
	}
	return out
}

func runGenerate(cmd *cobra.Command, v *viper.Viper, opts Options) error {
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	req := passgen.Request{
		Length:         v.GetInt("length"),
		Quantity:       v.GetInt("count"),
		Categories:     categories(v),
		ExcludeSimilar: v.GetBool("exclude-similar"),
	}

	batch, err := passgen.GenerateBatch(req)
	if err != nil {
		return err
	}

	copyIndex := v.GetInt("copy")
	if copyIndex < 0 || copyIndex > len(batch) {
		return fmt.Errorf("--copy must be between 1 and %d", len(batch))
	}

	out := cmd.OutOrStdout()
	if v.GetBool("plain") {
		for _, p := range batch {
			fmt.Fprintln(out, p.Text)
		}
	} else {
		newRenderer(out).batch(batch)
	}

	if copyIndex > 0 {
		if err := opts.CopyToClipboard(batch[copyIndex-1].Text); err != nil {
			return fmt.Errorf("copying to clipboard: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Copied password %d to clipboard.\n", copyIndex)
	}

	return nil
}

func newAlphabetCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "alphabet",
		Short: "Print the character set the category flags select",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}

			alphabet, err := passgen.BuildAlphabet(categories(v), v.GetBool("exclude-similar"))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, alphabet)
			fmt.Fprintf(out, "%d characters, %.2f bits per character\n",
				len(alphabet), math.Log2(float64(len(alphabet))))
			return nil
		},
	}
}
