package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/citasmovil/citasmovil/internal/theme"
)

// renderer writes tables and messages, colored by the active palette.
type renderer struct {
	out     io.Writer
	palette theme.Palette
	color   bool
}

func newRenderer(m *theme.Manager) *renderer {
	return &renderer{
		out:     os.Stdout,
		palette: m.Palette(systemPrefersDark()),
		color:   isTerminal(os.Stdout),
	}
}

// systemPrefersDark approximates the OS appearance hint on a terminal.
func systemPrefersDark() bool {
	return strings.Contains(strings.ToLower(os.Getenv("COLORFGBG")), ";0")
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

func (r *renderer) table(headers []string, rows [][]string) {
	w := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
}

func (r *renderer) successf(format string, args ...interface{}) {
	r.colorf(r.palette.Success, format, args...)
}

func (r *renderer) errorf(format string, args ...interface{}) {
	r.colorf(r.palette.Error, format, args...)
}

func (r *renderer) infof(format string, args ...interface{}) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

func (r *renderer) colorf(hex, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if !r.color {
		fmt.Fprintln(r.out, msg)
		return
	}
	red, green, blue := hexToRGB(hex)
	fmt.Fprintf(r.out, "\x1b[38;2;%d;%d;%dm%s\x1b[0m\n", red, green, blue, msg)
}

func hexToRGB(hex string) (r, g, b int) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 255, 255, 255
	}
	fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	return r, g, b
}
