package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/vaultpass/passgen-go/internal/passgen"
)

type renderer struct {
	w        io.Writer
	password lipgloss.Style
	info     lipgloss.Style
	labels   map[passgen.Strength]lipgloss.Style
}

// newRenderer styles output for w; colors are dropped when w is not a terminal.
func newRenderer(w io.Writer) *renderer {
	r := lipgloss.NewRenderer(w)
	label := func(color string) lipgloss.Style {
		return r.NewStyle().Bold(true).Foreground(lipgloss.Color(color))
	}

	return &renderer{
		w:        w,
		password: r.NewStyle().Foreground(lipgloss.Color("#e0e0e0")),
		info:     r.NewStyle().Italic(true).Foreground(lipgloss.Color("#94a3b8")),
		labels: map[passgen.Strength]lipgloss.Style{
			passgen.VeryWeak:   label("#ef4444"),
			passgen.Weak:       label("#f97316"),
			passgen.Moderate:   label("#eab308"),
			passgen.Strong:     label("#22c55e"),
			passgen.VeryStrong: label("#2563eb"),
		},
	}
}

func (r *renderer) batch(batch []passgen.Password) {
	for i, p := range batch {
		fmt.Fprintf(r.w, "%2d. %s  %s %s\n",
			i+1,
			r.password.Render(p.Text),
			r.info.Render(fmt.Sprintf("Entropy: %.1f bits |", p.EntropyBits)),
			r.labels[p.Strength].Render(string(p.Strength)),
		)
	}
}
