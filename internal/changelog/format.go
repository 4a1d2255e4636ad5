package changelog

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// SectionStyle defines the color and icon used for a section in terminal
// output.
type SectionStyle struct {
	Color *color.Color
	Icon  string
}

// sectionStyles maps lowercased section names to their terminal styling.
// Sections outside this set render with default styling.
var sectionStyles = map[string]SectionStyle{
	"added":      {Color: color.New(color.FgGreen), Icon: "✓"},
	"changed":    {Color: color.New(color.FgBlue), Icon: "~"},
	"deprecated": {Color: color.New(color.FgRed), Icon: "⚠"},
	"removed":    {Color: color.New(color.FgRed), Icon: "✗"},
	"fixed":      {Color: color.New(color.FgYellow), Icon: "⚡"},
	"security":   {Color: color.New(color.FgMagenta), Icon: "🔒"},
	"breaking":   {Color: color.New(color.FgRed, color.Bold), Icon: "⚠"},
}

var defaultSectionStyle = SectionStyle{Color: color.New(color.FgWhite), Icon: "•"}

// FormatOptions controls terminal output formatting.
type FormatOptions struct {
	Plain    bool // Disable colors and icons
	MaxWidth int  // Maximum line width (0 = auto-detect)
}

// FormatTerminal writes releases to the writer with terminal styling:
// a bold version header with the formatted date, then color-coded section
// headers with their items, wrapped to the terminal width.
func FormatTerminal(releases Releases, w io.Writer, opts FormatOptions) error {
	width := resolveWidth(opts.MaxWidth)

	for i := range releases {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if err := FormatRelease(&releases[i], w, opts, width); err != nil {
			return fmt.Errorf("formatting release %s: %w", releases[i].Version, err)
		}
	}

	return nil
}

// FormatRelease writes a single release's sections to the writer.
func FormatRelease(r *Release, w io.Writer, opts FormatOptions, width int) error {
	if width <= 0 {
		width = resolveWidth(opts.MaxWidth)
	}

	if err := writeReleaseHeader(r, w, opts); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, s := range r.Sections {
		if len(s.Items) == 0 {
			continue
		}
		if err := writeSection(s, w, opts, width); err != nil {
			return err
		}
	}

	return nil
}

// writeReleaseHeader writes the version header line.
func writeReleaseHeader(r *Release, w io.Writer, opts FormatOptions) error {
	header := fmt.Sprintf("v%s (%s)", r.Version, DisplayDate(r.Date))

	if opts.Plain {
		_, err := fmt.Fprintf(w, "## %s\n", header)
		return err
	}

	bold := color.New(color.Bold).SprintFunc()
	_, err := fmt.Fprintf(w, "## %s\n", bold(header))
	return err
}

// writeSection writes a section header followed by its items.
func writeSection(s Section, w io.Writer, opts FormatOptions, width int) error {
	style, ok := sectionStyles[strings.ToLower(s.Name)]
	if !ok {
		style = defaultSectionStyle
	}

	if opts.Plain {
		if _, err := fmt.Fprintf(w, "\n### %s\n", s.Name); err != nil {
			return err
		}
	} else {
		colored := style.Color.SprintFunc()
		if _, err := fmt.Fprintf(w, "\n%s %s\n", colored(style.Icon), colored(s.Name)); err != nil {
			return err
		}
	}

	for _, item := range s.Items {
		if err := writeItem(item, style, w, opts, width); err != nil {
			return err
		}
	}

	return nil
}

// writeItem writes a single item with optional wrapping and coloring.
func writeItem(text string, style SectionStyle, w io.Writer, opts FormatOptions, width int) error {
	prefix := "  - "

	if opts.Plain {
		_, err := fmt.Fprintf(w, "%s%s\n", prefix, text)
		return err
	}

	wrapped := wrapText(text, width-len(prefix), "    ")
	colored := style.Color.SprintFunc()
	_, err := fmt.Fprintf(w, "%s%s\n", prefix, colored(wrapped))
	return err
}

// resolveWidth determines the terminal width to use.
func resolveWidth(maxWidth int) int {
	if maxWidth > 0 {
		return maxWidth
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

// wrapText wraps text to fit within maxWidth, using indent for continuation
// lines.
func wrapText(text string, maxWidth int, indent string) string {
	if maxWidth <= 0 || len(text) <= maxWidth {
		return text
	}

	var lines []string
	remaining := text

	for len(remaining) > maxWidth {
		breakPoint := maxWidth
		for i := maxWidth - 1; i > 0; i-- {
			if remaining[i] == ' ' {
				breakPoint = i
				break
			}
		}

		lines = append(lines, remaining[:breakPoint])
		remaining = strings.TrimLeft(remaining[breakPoint:], " ")
	}

	if len(remaining) > 0 {
		lines = append(lines, remaining)
	}

	return strings.Join(lines, "\n"+indent)
}
