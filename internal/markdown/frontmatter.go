package markdown

import (
	"bytes"
	"errors"

	"gopkg.in/yaml.v3"
)

// ErrMissingClosingDelimiter indicates the document opened a YAML
// frontmatter block that never closes.
var ErrMissingClosingDelimiter = errors.New("yaml frontmatter start delimiter found but closing delimiter is missing")

// SplitFrontmatter separates `---` delimited YAML frontmatter from the body.
// Both LF and CRLF line endings are accepted. When the document has no
// frontmatter, fm is nil and body is the full input.
func SplitFrontmatter(content []byte) (fm, body []byte, err error) {
	nl := newline(content)
	open := []byte("---" + nl)
	if !bytes.HasPrefix(content, open) {
		return nil, content, nil
	}

	start := len(open)
	if bytes.HasPrefix(content[start:], open) {
		return []byte{}, content[start+len(open):], nil
	}

	closing := []byte(nl + "---")
	idx := bytes.Index(content[start:], closing)
	if idx < 0 {
		return nil, nil, ErrMissingClosingDelimiter
	}
	end := start + idx + len(nl)
	rest := content[start+idx+len(closing):]
	switch {
	case bytes.HasPrefix(rest, []byte(nl)):
		rest = rest[len(nl):]
	case len(rest) == 0:
	default:
		// "---" followed by more text on the same line is not a delimiter.
		return nil, nil, ErrMissingClosingDelimiter
	}
	return content[start:end], rest, nil
}

// ParseFrontmatter decodes raw frontmatter into a map. Empty input yields
// an empty map.
func ParseFrontmatter(fm []byte) (map[string]any, error) {
	fields := map[string]any{}
	if len(bytes.TrimSpace(fm)) == 0 {
		return fields, nil
	}
	if err := yaml.Unmarshal(fm, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, nil
}

func newline(content []byte) string {
	if i := bytes.IndexByte(content, '\n'); i > 0 && content[i-1] == '\r' {
		return "\r\n"
	}
	return "\n"
}
