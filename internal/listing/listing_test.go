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

package listing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const apacheIndex = `<html>
<head><title>Index of /official_releases/qt-installer-framework</title></head>
<body>
<h1>Index of /official_releases/qt-installer-framework</h1>
<table>
<tr><th><a href="?C=N;O=D">Name</a></th><th>Last modified</th><th>Size</th></tr>
<tr><td><a href="/official_releases/">Parent Directory</a></td><td>&nbsp;</td><td>-</td></tr>
<tr><td><a href="4.5.0/">4.5.0/</a></td><td>2022-11-15 10:04</td><td>-</td></tr>
<tr><td><a href="4.6.1/"> 4.6.1/ </a></td><td>2023-07-14 09:31</td><td>-</td></tr>
</table>
</body></html>`

func TestParse(t *testing.T) {
	entries, err := Parse(strings.NewReader(apacheIndex))
	require.NoError(t, err)
	require.Len(t, entries, 4)

	assert.Equal(t, Entry{Text: "Name", Href: "?C=N;O=D"}, entries[0])
	assert.Equal(t, Entry{Text: "Parent Directory", Href: "/official_releases/"}, entries[1])
	assert.Equal(t, Entry{Text: "4.5.0/", Href: "4.5.0/"}, entries[2])
	// Anchor text is trimmed.
	assert.Equal(t, Entry{Text: "4.6.1/", Href: "4.6.1/"}, entries[3])
}

func TestParseNestedMarkup(t *testing.T) {
	// Some index skins wrap the label in extra elements.
	doc := `<ul><li><a href="foo.run"><tt>installer</tt>.run</a></li></ul>`
	entries, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "installer.run", entries[0].Text)
	assert.Equal(t, "foo.run", entries[0].Href)
}

func TestParseMissingHref(t *testing.T) {
	entries, err := Parse(strings.NewReader(`<a name="top">anchor without target</a>`))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].Href)
}

func TestParseTolerant(t *testing.T) {
	// Unclosed tags and bare anchors must not fail the parse.
	doc := `<table><tr><td><a href="4.7.0/">4.7.0/<td>2023-10-02`
	entries, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "4.7.0/", entries[0].Text)
}

func TestParseEmptyDocument(t *testing.T) {
	entries, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, entries)
}
