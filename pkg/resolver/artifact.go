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

package resolver

import (
	"net/url"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/pkg/errors"

	"github.com/ifwget/ifwget/internal/listing"
)

// extensions maps platform tokens to the installer file extension
// published for them. "darwin" and "macos" are accepted for the same
// platform.
var extensions = map[string]string{
	"windows": "exe",
	"darwin":  "dmg",
	"macos":   "dmg",
	"linux":   "run",
}

// Per-architecture installers only exist from these releases onward;
// before them the listing carries a single installer per platform.
// These are historical facts about the release tree, not a rule.
var (
	linuxArchGate   = semver.MustParse("4.7.0")
	windowsArchGate = semver.MustParse("4.8.1")
)

// ExtensionForPlatform returns the installer extension for a platform
// token, or ErrUnsupportedPlatform for anything outside the known set.
func ExtensionForPlatform(platform string) (string, error) {
	if ext, ok := extensions[strings.ToLower(platform)]; ok {
		return ext, nil
	}
	return "", ErrUnsupportedPlatform{Platform: platform}
}

// LocateArtifact fetches the release listing for a version and returns
// the absolute URL of the installer matching the extension and, where
// the release publishes per-architecture installers, the arch token.
//
// When several links qualify the last one in document order wins. That
// mirrors how the listing is actually laid out and is deliberate; do
// not flip it to first-wins.
func (r *Resolver) LocateArtifact(version, ext, arch string) (string, error) {
	v, err := semver.NewVersion(version)
	if err != nil {
		return "", errors.Wrapf(err, "invalid resolved version %q", version)
	}

	releaseURL := r.baseURL + version + "/"
	body, err := r.fetch(releaseURL)
	if err != nil {
		return "", err
	}
	entries, err := listing.Parse(body)
	if err != nil {
		return "", err
	}

	var match string
	for _, e := range entries {
		if !strings.HasSuffix(e.Href, "."+ext) {
			continue
		}
		if archGated(v, ext) && !strings.Contains(e.Href, arch) {
			continue
		}
		match = e.Href
	}
	if match == "" {
		return "", ErrArtifactNotFound{Version: version, Extension: ext}
	}

	return resolveRef(releaseURL, match)
}

// archGated reports whether installers for this version and extension
// are published per architecture. macOS ships a universal dmg and is
// never gated.
func archGated(v *semver.Version, ext string) bool {
	switch ext {
	case "run":
		return !v.LessThan(linuxArchGate)
	case "exe":
		return !v.LessThan(windowsArchGate)
	}
	return false
}

// resolveRef resolves a listing href against the release listing URL.
func resolveRef(base, href string) (string, error) {
	b, err := url.Parse(base)
	if err != nil {
		return "", errors.Wrapf(err, "invalid release listing URL %q", base)
	}
	h, err := url.Parse(href)
	if err != nil {
		return "", errors.Wrapf(err, "invalid installer link %q", href)
	}
	return b.ResolveReference(h).String(), nil
}
