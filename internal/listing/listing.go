/*
Copyright The ifwget Authors.
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package listing parses directory-index pages of the kind served by
// Apache and nginx for a release tree: rows of anchors whose text is a
// label and whose href is a relative path.
package listing // import "github.com/ifwget/ifwget/internal/listing"

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

// Entry is one anchor from a directory-index page.
type Entry struct {
	// Text is the anchor's visible label, whitespace-trimmed.
	Text string
	// Href is the anchor's target path, usually relative.
	Href string
}

// Parse extracts all anchors from an index page in document order.
//
// The tokenizer in x/net/html is tolerant of the malformed markup real
// index pages serve, so Parse only fails on reader errors.
func Parse(r io.Reader) ([]Entry, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse directory listing")
	}

	var entries []Entry
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			entries = append(entries, Entry{
				Text: strings.TrimSpace(nodeText(n)),
				Href: attr(n, "href"),
			})
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return entries, nil
}

// nodeText concatenates the text nodes beneath n.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
			continue
		}
		sb.WriteString(nodeText(c))
	}
	return sb.String()
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
