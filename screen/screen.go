// Package screen queries rendered HTML the way a user perceives it: by
// role and accessible name.
package screen

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	ErrNotFound      = errors.New("no element found")
	ErrMultipleFound = errors.New("multiple elements found")
	ErrUnknownRole   = errors.New("unknown role")
)

var roleSelectors = map[string]string{
	"link":    "a[href]",
	"button":  "button, input[type=submit]",
	"heading": "h1, h2, h3, h4, h5, h6",
	"textbox": "input[type=text], input[type=email], input:not([type]), textarea",
}

type Screen struct {
	document *goquery.Document
}

// Element is a matched node.
type Element struct {
	Role  string
	Name  string
	attrs map[string]string
}

// Attr returns the attribute value and whether it was present.
func (e *Element) Attr(name string) (string, bool) {
	value, ok := e.attrs[name]
	return value, ok
}

func Parse(r io.Reader) (*Screen, error) {
	document, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &Screen{document: document}, nil
}

func ParseString(html string) (*Screen, error) {
	return Parse(strings.NewReader(html))
}

// FindAllByRole returns every element with the role, failing if there is
// none.
func (s *Screen) FindAllByRole(role string) ([]*Element, error) {
	elements, err := s.all(role, nil)
	if err != nil {
		return nil, err
	}
	if len(elements) == 0 {
		return nil, fmt.Errorf("%w: role %q", ErrNotFound, role)
	}
	return elements, nil
}

// QueryByRole returns the single element whose name matches, or nil.
func (s *Screen) QueryByRole(role string, name *regexp.Regexp) (*Element, error) {
	elements, err := s.all(role, name)
	if err != nil {
		return nil, err
	}
	switch len(elements) {
	case 0:
		return nil, nil
	case 1:
		return elements[0], nil
	default:
		return nil, fmt.Errorf("%w: role %q name %s", ErrMultipleFound, role, name)
	}
}

// GetByRole is QueryByRole, but absence is an error too.
func (s *Screen) GetByRole(role string, name *regexp.Regexp) (*Element, error) {
	element, err := s.QueryByRole(role, name)
	if err != nil {
		return nil, err
	}
	if element == nil {
		return nil, fmt.Errorf("%w: role %q name %s", ErrNotFound, role, name)
	}
	return element, nil
}

// Name builds a case insensitive matcher for an accessible name.
func Name(pattern string) *regexp.Regexp {
	return regexp.MustCompile("(?i)" + pattern)
}

func (s *Screen) all(role string, name *regexp.Regexp) ([]*Element, error) {
	selector, ok := roleSelectors[role]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}

	var elements []*Element
	s.document.Find(selector).Each(func(_ int, selection *goquery.Selection) {
		element := newElement(role, selection)
		if name == nil || name.MatchString(element.Name) {
			elements = append(elements, element)
		}
	})
	return elements, nil
}

func newElement(role string, selection *goquery.Selection) *Element {
	attrs := make(map[string]string)
	if node := selection.Get(0); node != nil {
		for _, attr := range node.Attr {
			attrs[attr.Key] = attr.Val
		}
	}

	name := strings.Join(strings.Fields(selection.Text()), " ")
	if name == "" {
		if label, ok := attrs["aria-label"]; ok {
			name = label
		} else if value, ok := attrs["value"]; ok {
			name = value
		}
	}

	return &Element{
		Role:  role,
		Name:  name,
		attrs: attrs,
	}
}
