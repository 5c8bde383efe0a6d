package render

import "github.com/sidra/lingua/internal/config"

// OptionsFromConfig builds renderer options from the user's markdown
// configuration at the given width.
func OptionsFromConfig(md config.MarkdownConfig, width int) Options {
	opts := Options{
		Width:            width,
		Style:            md.Style,
		EnableEmoji:      md.EnableEmoji,
		PreserveNewLines: md.PreserveNewLines,
	}
	if opts.Style == "" {
		opts.Style = DefaultOptions().Style
	}
	if opts.Width <= 0 {
		opts.Width = DefaultOptions().Width
	}
	return opts
}
