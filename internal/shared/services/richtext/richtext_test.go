package richtext

import (
	"strings"
	"testing"
)

func TestService_Sanitize(t *testing.T) {
	svc := NewService()

	tests := []struct {
		name        string
		input       string
		wantContain string
		wantAbsent  string
	}{
		{"script stripped", `<p>hello</p><script>alert(1)</script>`, "<p>hello</p>", "<script>"},
		{"onclick stripped", `<a href="https://example.com" onclick="steal()">link</a>`, "link", "onclick"},
		{"formatting kept", `<strong>bold</strong> and <em>italic</em>`, "<strong>bold</strong>", ""},
		{"code class kept", `<code class="language-go">x := 1</code>`, `class="language-go"`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Sanitize(tt.input)
			if !strings.Contains(got, tt.wantContain) {
				t.Errorf("Sanitize(%q) = %q, want it to contain %q", tt.input, got, tt.wantContain)
			}
			if tt.wantAbsent != "" && strings.Contains(got, tt.wantAbsent) {
				t.Errorf("Sanitize(%q) = %q, must not contain %q", tt.input, got, tt.wantAbsent)
			}
		})
	}
}

func TestService_RenderMarkdown(t *testing.T) {
	svc := NewService()

	got, err := svc.RenderMarkdown("# Title\n\nsome **bold** text")
	if err != nil {
		t.Fatalf("RenderMarkdown() error = %v", err)
	}
	if !strings.Contains(got, "<h1") {
		t.Errorf("RenderMarkdown() = %q, want a rendered heading", got)
	}
	if !strings.Contains(got, "<strong>bold</strong>") {
		t.Errorf("RenderMarkdown() = %q, want rendered bold text", got)
	}
}

func TestService_RenderMarkdown_SanitizesEmbeddedHTML(t *testing.T) {
	svc := NewService()

	got, err := svc.RenderMarkdown("hello <script>alert(1)</script>")
	if err != nil {
		t.Fatalf("RenderMarkdown() error = %v", err)
	}
	if strings.Contains(got, "<script>") {
		t.Errorf("RenderMarkdown() = %q, script must be stripped", got)
	}
}
