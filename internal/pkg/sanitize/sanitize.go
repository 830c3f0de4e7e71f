// Package sanitize cleans editor-supplied markup before it is stored.
package sanitize

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

var (
	richTextOnce   sync.Once
	richTextPolicy *bluemonday.Policy

	plainTextOnce   sync.Once
	plainTextPolicy *bluemonday.Policy
)

// RichText keeps basic formatting (paragraphs, lists, links, emphasis) and
// drops scripts, styles and event handlers.
func RichText(raw string) string {
	richTextOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.RequireNoFollowOnLinks(true)
		policy.AddTargetBlankToFullyQualifiedLinks(true)
		richTextPolicy = policy
	})
	return strings.TrimSpace(richTextPolicy.Sanitize(raw))
}

// PlainText strips every tag. Entities escaped by the policy are decoded again
// since the result is stored as text and escaped when rendered.
func PlainText(raw string) string {
	plainTextOnce.Do(func() {
		plainTextPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(html.UnescapeString(plainTextPolicy.Sanitize(raw)))
}

// CheckSVG scans an uploaded vector image and reports the first construct
// that could run script when the file is opened directly in a browser.
func CheckSVG(raw []byte) error {
	z := html.NewTokenizer(bytes.NewReader(raw))
	for {
		switch z.Next() {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return nil
			}
			return fmt.Errorf("malformed svg: %w", z.Err())
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			if _, blocked := svgBlockedElements[tok.Data]; blocked {
				return fmt.Errorf("svg element <%s> is not allowed", tok.Data)
			}
			for _, attr := range tok.Attr {
				if strings.HasPrefix(attr.Key, "on") {
					return fmt.Errorf("svg event attribute %q is not allowed", attr.Key)
				}
				if (attr.Key == "href" || attr.Key == "xlink:href") && !strings.HasPrefix(strings.TrimSpace(attr.Val), "#") {
					return fmt.Errorf("svg external reference %q is not allowed", attr.Val)
				}
			}
		}
	}
}

var svgBlockedElements = map[string]struct{}{
	"script":        {},
	"foreignobject": {},
	"iframe":        {},
	"embed":         {},
	"object":        {},
}
