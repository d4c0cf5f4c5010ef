// Package vault reads and mutates a directory of markdown notes. It is
// the only package that touches the filesystem for note content; the
// navigator core consumes the ItemRefs produced here and never sees a
// path that is not vault-relative.
package vault

import (
	"bytes"
	"sort"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"

	"notenav/internal/nav"
)

// maxPreviewLines bounds how many content lines a note contributes to
// its list row. The display config may show fewer; it never shows more.
const maxPreviewLines = 3

// frontmatter is the YAML block an annotated note may carry.
type frontmatter struct {
	Title   string    `yaml:"title"`
	Tags    []string  `yaml:"tags"`
	Created time.Time `yaml:"created"`
	Pinned  bool      `yaml:"pinned"`
}

var mdParser = goldmark.New().Parser()

// ParseNote builds the navigator's view of one note. Title resolution
// order: frontmatter title, first H1, filename stem. Tags merge the
// frontmatter list with inline #tags found in body text. The parse
// never fails on malformed content — a broken note still gets a row.
func ParseNote(id nav.ItemID, src []byte, modified time.Time) nav.ItemRef {
	ref := nav.ItemRef{
		ID:       id,
		Folder:   folderOf(id),
		Created:  modified,
		Modified: modified,
	}

	fm, body := splitFrontmatter(src)
	var meta frontmatter
	if len(fm) > 0 {
		// Bad YAML degrades to no metadata, never to a scan failure.
		_ = yaml.Unmarshal(fm, &meta)
	}
	if !meta.Created.IsZero() {
		ref.Created = meta.Created
	}

	tags := make(map[string]struct{}, len(meta.Tags))
	for _, t := range meta.Tags {
		if t = normalizeTag(t); t != "" {
			tags[t] = struct{}{}
		}
	}

	doc := mdParser.Parse(text.NewReader(body))
	var title string
	var preview []string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			if node.Level == 1 && title == "" {
				title = strings.TrimSpace(nodeText(node, body))
				return ast.WalkSkipChildren, nil
			}
		case *ast.Paragraph:
			line := strings.TrimSpace(nodeText(node, body))
			collectInlineTags(line, tags)
			if line != "" && len(preview) < maxPreviewLines {
				preview = append(preview, firstLine(line))
			}
			if containsImage(node) {
				ref.HasImage = true
			}
			return ast.WalkSkipChildren, nil
		case *ast.Image:
			ref.HasImage = true
		}
		return ast.WalkContinue, nil
	})

	switch {
	case meta.Title != "":
		ref.Title = meta.Title
	case title != "":
		ref.Title = title
	default:
		ref.Title = titleFromID(id)
	}

	ref.Tags = make([]string, 0, len(tags))
	for t := range tags {
		ref.Tags = append(ref.Tags, t)
	}
	sort.Strings(ref.Tags)
	ref.Preview = preview
	return ref
}

// splitFrontmatter peels a leading "---" delimited YAML block off the
// source. Returns (nil, src) when no block is present.
func splitFrontmatter(src []byte) (fm, body []byte) {
	const delim = "---"
	trimmed := bytes.TrimPrefix(src, []byte("\xef\xbb\xbf"))
	if !bytes.HasPrefix(trimmed, []byte(delim+"\n")) && !bytes.HasPrefix(trimmed, []byte(delim+"\r\n")) {
		return nil, src
	}
	rest := trimmed[len(delim):]
	if i := bytes.Index(rest, []byte("\n"+delim)); i >= 0 {
		fm = rest[:i]
		body = rest[i+len(delim)+1:]
		if j := bytes.IndexByte(body, '\n'); j >= 0 {
			body = body[j+1:]
		} else {
			body = nil
		}
		return fm, body
	}
	return nil, src
}

// nodeText concatenates the raw text segments under n.
func nodeText(n ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if t, ok := c.(*ast.Text); ok {
				b.Write(t.Segment.Value(src))
				if t.SoftLineBreak() || t.HardLineBreak() {
					b.WriteByte('\n')
				}
			}
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

// containsImage reports whether any descendant of n is an image node.
func containsImage(n ast.Node) bool {
	found := false
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if _, ok := c.(*ast.Image); ok {
				found = true
				return ast.WalkStop, nil
			}
		}
		return ast.WalkContinue, nil
	})
	return found
}

// collectInlineTags scans a text line for #tag tokens. A tag token is a
// '#' at a word boundary followed by letters, digits, '/', '-' or '_'.
func collectInlineTags(line string, into map[string]struct{}) {
	for i := 0; i < len(line); i++ {
		if line[i] != '#' {
			continue
		}
		if i > 0 && !isSpace(line[i-1]) {
			continue
		}
		j := i + 1
		for j < len(line) && isTagChar(line[j]) {
			j++
		}
		if j > i+1 {
			into[line[i+1:j]] = struct{}{}
		}
		i = j
	}
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' }

func isTagChar(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	case b == '/', b == '-', b == '_':
		return true
	}
	return false
}

func normalizeTag(t string) string {
	return strings.TrimPrefix(strings.TrimSpace(t), "#")
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// folderOf returns the vault-relative parent folder of a note id.
func folderOf(id nav.ItemID) string {
	s := string(id)
	if i := strings.LastIndexByte(s, '/'); i >= 0 {
		return s[:i]
	}
	return ""
}

// titleFromID derives a display title from the filename stem.
func titleFromID(id nav.ItemID) string {
	s := string(id)
	if i := strings.LastIndexByte(s, '/'); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(s, ".md")
	return strings.ReplaceAll(s, "-", " ")
}
