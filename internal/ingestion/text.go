package ingestion

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	innerSpaceRe  = regexp.MustCompile(`[ \t]+`)
	blankLinesRe  = regexp.MustCompile(`\n\n\n+`)
	bulletGlyphRe = regexp.MustCompile(`^[•·▪◦●■‣∙]\s*`)
)

// foldRune maps typographic variants that document exporters emit onto the
// ASCII forms the matcher's patterns expect. The en-dash is kept as is.
func foldRune(r rune) rune {
	switch r {
	case '‐', '‑', '‒', '—', '―', '−':
		return '-'
	case '‘', '’', '‛':
		return '\''
	case '“', '”', '‟':
		return '"'
	}
	return r
}

// NormalizeUnicode applies NFKC, drops format characters such as zero-width
// spaces and soft hyphens, and folds dash and quote variants.
func NormalizeUnicode(s string) string {
	// transformers carry state, so each call builds its own chain
	t := transform.Chain(norm.NFKC, runes.Remove(runes.In(unicode.Cf)), runes.Map(foldRune))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// CleanText normalizes extracted document text while keeping its line structure.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = NormalizeUnicode(content)

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}

	result := blankLinesRe.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine trims a line, collapses inner spaces and rewrites bullet glyphs as "- ".
func cleanLine(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "#") {
		return trimmed
	}

	indent := len(line) - len(strings.TrimLeft(line, " \t"))
	content := innerSpaceRe.ReplaceAllString(trimmed, " ")
	if isBulletLine(content) {
		content = bulletGlyphRe.ReplaceAllString(content, "- ")
	}
	if indent > 0 {
		return strings.Repeat(" ", indent) + content
	}
	return content
}

// isBulletLine checks if a line is a bullet list item
func isBulletLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") ||
		bulletGlyphRe.MatchString(trimmed)
}
