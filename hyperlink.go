package helptext

import (
	"os"
	"strconv"
	"strings"
)

const (
	osc8Start = "\x1b]8;;"
	osc8End   = "\x1b]8;;\x1b\\"
	stTerm    = "\x1b\\"
)

// DetectHyperlinkSupport returns true if the current environment likely
// supports OSC 8 hyperlinks.
func DetectHyperlinkSupport() bool {
	if os.Getenv("OSC8") == "0" {
		return false
	}
	if os.Getenv("DOMTERM") != "" {
		return true
	}
	if os.Getenv("WT_SESSION") != "" {
		return true
	}
	termProgram := os.Getenv("TERM_PROGRAM")
	if termProgram == "iTerm.app" || termProgram == "WezTerm" || termProgram == "vscode" {
		return true
	}
	if strings.Contains(strings.ToLower(os.Getenv("TERM")), "kitty") {
		return true
	}
	if vte := os.Getenv("VTE_VERSION"); vte != "" {
		if n, err := strconv.Atoi(vte); err == nil && n >= 5000 {
			return true
		}
	}
	return false
}

// Link adds text pointing at url. With hyperlinks enabled and color output
// on, the text becomes an OSC 8 hyperlink; otherwise the URL follows the
// text in parentheses.
func (b *Builder) Link(text, url string) *Builder {
	if url == "" {
		return b.Text(b.styles.Link.Apply(text))
	}
	if text == "" {
		text = url
	}
	if b.cfg.hyperlinks && b.cfg.engine.Enabled() {
		return b.Text(osc8Start + url + stTerm + b.styles.Link.Apply(text) + osc8End)
	}
	if text == url {
		return b.Text(b.styles.Link.Apply(text))
	}
	return b.Text(b.styles.Link.Apply(text), " (", url, ")")
}
