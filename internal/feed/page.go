package feed

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Element ids the About page markup is expected to carry.
const (
	HistoryID   = "history"
	InputID     = "text-input"
	ReferenceID = "reference"
	FormID      = "showOnLogin"
	IntroID     = "comment-intro"
)

// ErrElementNotFound is returned when a page has no element with the requested id.
var ErrElementNotFound = errors.New("element not found")

// Page is a parsed HTML document whose elements are addressed by id.
type Page struct {
	doc *goquery.Document
}

// ParsePage parses an HTML document.
func ParsePage(r io.Reader) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}
	return &Page{doc: doc}, nil
}

// Element returns the element with the given id.
func (p *Page) Element(id string) (*Element, error) {
	sel := p.doc.Find("#" + id).First()
	if sel.Length() == 0 {
		return nil, fmt.Errorf("#%s: %w", id, ErrElementNotFound)
	}
	return &Element{sel: sel}, nil
}

// Render writes the whole document as HTML.
func (p *Page) Render(w io.Writer) error {
	for _, n := range p.doc.Nodes {
		if err := html.Render(w, n); err != nil {
			return fmt.Errorf("rendering page: %w", err)
		}
	}
	return nil
}

// HTML returns the whole document as a string.
func (p *Page) HTML() (string, error) {
	var sb strings.Builder
	if err := p.Render(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Element is a single node of a Page. It satisfies Target and TextTarget.
type Element struct {
	sel *goquery.Selection
}

// HTML returns the element and its children as HTML.
func (e *Element) HTML() (string, error) {
	return goquery.OuterHtml(e.sel)
}

// Append adds nodes as the last children of the element.
func (e *Element) Append(nodes ...*html.Node) {
	e.sel.AppendNodes(nodes...)
}

// Clear removes every child and reports how many child elements were removed.
func (e *Element) Clear() int {
	n := e.sel.Children().Length()
	e.sel.Empty()
	return n
}

// Len is the number of child elements.
func (e *Element) Len() int {
	return e.sel.Children().Length()
}

// Entries returns the visible text of each child element, in document order.
func (e *Element) Entries() []string {
	return e.sel.Children().Map(func(_ int, s *goquery.Selection) string {
		return s.Text()
	})
}

// Text returns the combined text content of the element.
func (e *Element) Text() string {
	return e.sel.Text()
}

// SetText replaces the element's children with a single text node.
// The text is stored verbatim and escaped only when rendered.
func (e *Element) SetText(text string) {
	e.sel.Empty()
	e.sel.AppendNodes(&html.Node{Type: html.TextNode, Data: text})
}

// Attr returns the value of an attribute, or "" if absent.
func (e *Element) Attr(name string) string {
	return e.sel.AttrOr(name, "")
}

// SetAttr sets an attribute.
func (e *Element) SetAttr(name, value string) {
	e.sel.SetAttr(name, value)
}

// Value returns the value of a form control.
func (e *Element) Value() string {
	if goquery.NodeName(e.sel) == "textarea" {
		return e.sel.Text()
	}
	return e.Attr("value")
}

// Display returns the element's inline CSS display value, or "" if unset.
func (e *Element) Display() string {
	for _, decl := range strings.Split(e.Attr("style"), ";") {
		prop, val, ok := strings.Cut(decl, ":")
		if ok && strings.TrimSpace(prop) == "display" {
			return strings.TrimSpace(val)
		}
	}
	return ""
}

// SetDisplay sets the inline CSS display value, keeping other declarations.
func (e *Element) SetDisplay(value string) {
	var decls []string
	for _, decl := range strings.Split(e.Attr("style"), ";") {
		prop, _, _ := strings.Cut(decl, ":")
		if strings.TrimSpace(decl) == "" || strings.TrimSpace(prop) == "display" {
			continue
		}
		decls = append(decls, strings.TrimSpace(decl))
	}
	decls = append(decls, "display: "+value)
	e.SetAttr("style", strings.Join(decls, "; "))
}
