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

// Package metalink parses the RFC 5854 metalink documents the download
// host serves next to each artifact. Only the mirror list is of
// interest: url elements carrying a numeric priority attribute.
package metalink // import "github.com/ifwget/ifwget/internal/metalink"

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Mirror is one download location from a metalink document. Lower
// priority means preferred.
type Mirror struct {
	Priority int
	URL      string
}

// Parse extracts the mirrors of a metalink document in document order.
//
// Matching is on the local element name, so metalink v3 and v4
// namespaces (and documents with no namespace at all) are all accepted.
// Entries with a missing or non-numeric priority, or an empty body, are
// dropped rather than failing the parse; real documents contain the
// occasional malformed mirror entry.
func Parse(r io.Reader) ([]Mirror, error) {
	dec := xml.NewDecoder(r)

	var mirrors []Mirror
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "unable to parse metalink document")
		}

		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "url" {
			continue
		}

		var body struct {
			Value string `xml:",chardata"`
		}
		if err := dec.DecodeElement(&body, &se); err != nil {
			return nil, errors.Wrap(err, "unable to parse metalink url element")
		}

		priority, ok := priorityAttr(se)
		u := strings.TrimSpace(body.Value)
		if !ok || u == "" {
			continue
		}

		mirrors = append(mirrors, Mirror{Priority: priority, URL: u})
	}

	return mirrors, nil
}

func priorityAttr(se xml.StartElement) (int, bool) {
	for _, a := range se.Attr {
		if a.Name.Local != "priority" {
			continue
		}
		p, err := strconv.Atoi(strings.TrimSpace(a.Value))
		if err != nil {
			return 0, false
		}
		return p, true
	}
	return 0, false
}
