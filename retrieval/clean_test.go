package retrieval

import (
	"strings"
	"testing"
)

func TestCleanBasic(t *testing.T) {
	t.Run("collapses runs of spaces and tabs", func(t *testing.T) {
		got := CleanBasic("51   degrees\t\tFahrenheit")
		if got != "51 degrees Fahrenheit" {
			t.Errorf("expected '51 degrees Fahrenheit', got %q", got)
		}
	})

	t.Run("tab-separated words stay separated", func(t *testing.T) {
		got := CleanBasic("51 degrees\tFahrenheit")
		if got != "51 degrees Fahrenheit" {
			t.Errorf("expected '51 degrees Fahrenheit', got %q", got)
		}
	})

	t.Run("strips control characters", func(t *testing.T) {
		got := CleanBasic("fifty\x00one \x08degrees")
		if strings.ContainsRune(got, '\x00') || strings.ContainsRune(got, '\x08') {
			t.Errorf("control characters survived: %q", got)
		}
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		if got := CleanBasic("  value  "); got != "value" {
			t.Errorf("expected 'value', got %q", got)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if got := CleanBasic(""); got != "" {
			t.Errorf("expected empty string, got %q", got)
		}
	})
}

func TestHTMLToText(t *testing.T) {
	html := `<h2>Weather</h2><p>It was  51 degrees.</p><ul><li>cold</li><li>dry</li></ul>`

	got, err := HTMLToText(html)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "## Weather\nIt was  51 degrees.\n- cold\n- dry"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestCleanFact(t *testing.T) {
	t.Run("plain text passes through normalization", func(t *testing.T) {
		if got := CleanFact("51   degrees"); got != "51 degrees" {
			t.Errorf("expected '51 degrees', got %q", got)
		}
	})

	t.Run("html facts are flattened", func(t *testing.T) {
		got := CleanFact("<p>51 degrees Fahrenheit</p>")
		if got != "51 degrees Fahrenheit" {
			t.Errorf("expected '51 degrees Fahrenheit', got %q", got)
		}
	})
}
