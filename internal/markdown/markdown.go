// Package markdown analyzes Markdown pages without rendering them: it splits
// frontmatter, extracts links and finds the page title.
package markdown

import (
	"bytes"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"golang.org/x/net/html"
)

// Document is a parsed Markdown page.
type Document struct {
	Frontmatter    map[string]any
	RawFrontmatter []byte
	Body           []byte
	Title          string
	Links          []Link
}

// Parse splits frontmatter from content and analyzes the body.
// The title comes from the frontmatter `title` field, falling back to the
// first level-one heading.
func Parse(content []byte) (*Document, error) {
	fm, body, err := SplitFrontmatter(content)
	if err != nil {
		return nil, err
	}
	fields, err := ParseFrontmatter(fm)
	if err != nil {
		return nil, err
	}

	root, ctx := parse(body)
	doc := &Document{
		Frontmatter:    fields,
		RawFrontmatter: fm,
		Body:           body,
		Links:          collectLinks(root, ctx, body),
	}
	if t, ok := fields["title"].(string); ok && strings.TrimSpace(t) != "" {
		doc.Title = strings.TrimSpace(t)
	} else {
		doc.Title = firstHeading(root, body)
	}
	return doc, nil
}

// ExtractLinks parses a Markdown body (frontmatter removed) and returns
// its links: inline and reference links, images, autolinks, reference
// definitions and href/src attributes of raw HTML.
func ExtractLinks(body []byte) []Link {
	root, ctx := parse(body)
	return collectLinks(root, ctx, body)
}

// Title returns the text of the first level-one heading of body.
func Title(body []byte) string {
	root, _ := parse(body)
	return firstHeading(root, body)
}

func parse(body []byte) (gmast.Node, parser.Context) {
	ctx := parser.NewContext()
	root := goldmark.New().Parser().Parse(text.NewReader(body), parser.WithContext(ctx))
	return root, ctx
}

func collectLinks(root gmast.Node, ctx parser.Context, body []byte) []Link {
	links := make([]Link, 0)
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *gmast.AutoLink:
			links = append(links, Link{Kind: LinkKindAuto, Destination: string(node.URL(body))})
		case *gmast.Image:
			links = append(links, Link{Kind: LinkKindImage, Destination: string(node.Destination)})
		case *gmast.Link:
			links = append(links, Link{Kind: LinkKindInline, Destination: string(node.Destination)})
		case *gmast.HTMLBlock:
			var raw bytes.Buffer
			lines := node.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				raw.Write(seg.Value(body))
			}
			if node.HasClosure() {
				raw.Write(node.ClosureLine.Value(body))
			}
			links = append(links, htmlLinks(raw.Bytes())...)
		case *gmast.RawHTML:
			var raw bytes.Buffer
			for i := 0; i < node.Segments.Len(); i++ {
				seg := node.Segments.At(i)
				raw.Write(seg.Value(body))
			}
			links = append(links, htmlLinks(raw.Bytes())...)
		}
		return gmast.WalkContinue, nil
	})

	// Reference definitions live in the parser context, not the AST.
	refs := ctx.References()
	sort.Slice(refs, func(i, j int) bool {
		return string(refs[i].Label()) < string(refs[j].Label())
	})
	for _, ref := range refs {
		links = append(links, Link{Kind: LinkKindReferenceDefinition, Destination: string(ref.Destination())})
	}
	return links
}

// htmlLinks returns a[href] and img[src] values of a raw HTML fragment.
func htmlLinks(raw []byte) []Link {
	doc, err := html.Parse(bytes.NewReader(raw))
	if err != nil {
		return nil
	}
	var out []Link
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			key := ""
			switch n.Data {
			case "a":
				key = "href"
			case "img":
				key = "src"
			}
			if v := attr(n, key); key != "" && v != "" {
				out = append(out, Link{Kind: LinkKindHTML, Destination: v})
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return out
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func firstHeading(root gmast.Node, body []byte) string {
	var title string
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		if h, ok := n.(*gmast.Heading); ok && h.Level == 1 {
			title = strings.TrimSpace(nodeText(h, body))
			return gmast.WalkStop, nil
		}
		return gmast.WalkContinue, nil
	})
	return title
}

func nodeText(n gmast.Node, body []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *gmast.Text:
			b.Write(t.Segment.Value(body))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *gmast.String:
			b.Write(t.Value)
		default:
			b.WriteString(nodeText(c, body))
		}
	}
	return b.String()
}
