package render

import (
	"strings"
	"testing"

	"github.com/sidra/lingua/internal/config"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if opts.Width != 80 {
		t.Errorf("expected width 80, got %d", opts.Width)
	}
	if opts.Style != "dark" {
		t.Errorf("expected style 'dark', got %q", opts.Style)
	}
	if !opts.EnableEmoji {
		t.Error("expected emoji enabled by default")
	}
}

func TestOptionsBuilders(t *testing.T) {
	opts := DefaultOptions().WithWidth(40).WithStyle("light")

	if opts.Width != 40 {
		t.Errorf("expected width 40, got %d", opts.Width)
	}
	if opts.Style != "light" {
		t.Errorf("expected style 'light', got %q", opts.Style)
	}
}

func TestMarkdown(t *testing.T) {
	out, err := Markdown("# Heading\n\nSome **bold** text.", DefaultOptions())
	if err != nil {
		t.Fatalf("Markdown() returned error: %v", err)
	}
	if !strings.Contains(out, "Heading") {
		t.Errorf("expected heading text in output, got %q", out)
	}
	if !strings.Contains(out, "bold") {
		t.Errorf("expected body text in output, got %q", out)
	}
}

func TestMarkdownWithWidth(t *testing.T) {
	out, err := MarkdownWithWidth("plain text", 40)
	if err != nil {
		t.Fatalf("MarkdownWithWidth() returned error: %v", err)
	}
	if out == "" {
		t.Error("expected non-empty output")
	}
}

func TestRendererReuse(t *testing.T) {
	ClearCache()

	opts := DefaultOptions()
	for i := 0; i < 3; i++ {
		if _, err := Markdown("hello", opts); err != nil {
			t.Fatalf("render %d failed: %v", i, err)
		}
	}
}

func TestOptionsFromConfig(t *testing.T) {
	md := config.MarkdownConfig{Style: "light", EnableEmoji: false, PreserveNewLines: true}
	opts := OptionsFromConfig(md, 60)

	if opts.Style != "light" || opts.Width != 60 {
		t.Errorf("unexpected options: %+v", opts)
	}
	if opts.EnableEmoji {
		t.Error("expected emoji disabled")
	}
}

func TestOptionsFromConfigDefaults(t *testing.T) {
	opts := OptionsFromConfig(config.MarkdownConfig{}, 0)

	if opts.Style != "dark" {
		t.Errorf("expected fallback style 'dark', got %q", opts.Style)
	}
	if opts.Width != 80 {
		t.Errorf("expected fallback width 80, got %d", opts.Width)
	}
}
