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

// Package resolver turns a semantic-version constraint for the
// installer framework into a concrete download URL, and picks fallback
// mirrors when the primary host fails.
//
// Resolution runs in three stages: the root listing page is scanned for
// published versions and the constraint is matched against them, the
// release listing for the matched version is scanned for the installer
// link of the requested platform and architecture, and on download
// failure the artifact's metalink document supplies alternate mirrors
// ranked by priority. The caller owns the retry loop; every call here
// performs at most one fetch and keeps no state between calls.
package resolver // import "github.com/ifwget/ifwget/pkg/resolver"

import (
	"bytes"
	"log/slog"
	"strings"

	"github.com/ifwget/ifwget/pkg/getter"
)

// DefaultBaseURL is the root listing page of the official release tree.
const DefaultBaseURL = "https://download.qt.io/official_releases/qt-installer-framework/"

// Resolver resolves version constraints against a release tree.
//
// The zero value is not usable; construct with New.
type Resolver struct {
	baseURL   string
	getter    getter.Getter
	blacklist []string
}

// Option configures a Resolver during construction.
type Option func(*Resolver)

// WithBaseURL overrides the root listing URL. A trailing slash is added
// if missing.
func WithBaseURL(u string) Option {
	return func(r *Resolver) {
		r.baseURL = strings.TrimSuffix(u, "/") + "/"
	}
}

// WithGetter overrides the HTTP backend, mainly for tests.
func WithGetter(g getter.Getter) Option {
	return func(r *Resolver) {
		r.getter = g
	}
}

// WithBlacklist replaces the default mirror host blacklist.
func WithBlacklist(hosts []string) Option {
	return func(r *Resolver) {
		r.blacklist = hosts
	}
}

// New constructs a Resolver for the official release tree, fetching
// over plain HTTP(S) unless a getter is supplied.
func New(options ...Option) (*Resolver, error) {
	r := &Resolver{
		baseURL:   DefaultBaseURL,
		blacklist: defaultBlacklist,
	}
	for _, opt := range options {
		opt(r)
	}
	if r.getter == nil {
		g, err := getter.NewHTTPGetter(getter.WithURL(r.baseURL))
		if err != nil {
			return nil, err
		}
		r.getter = g
	}
	return r, nil
}

// Resolve runs the full pipeline: constraint to version, version to
// installer URL for the given platform and architecture.
func (r *Resolver) Resolve(constraint, platform, arch string) (string, error) {
	ext, err := ExtensionForPlatform(platform)
	if err != nil {
		return "", err
	}
	v, err := r.ResolveVersion(constraint)
	if err != nil {
		return "", err
	}
	return r.LocateArtifact(v, ext, arch)
}

// fetch retrieves one document, folding transport and status failures
// into ErrFetch so callers see the URL that failed.
func (r *Resolver) fetch(u string) (*bytes.Buffer, error) {
	slog.Debug("fetching", "url", u)
	buf, err := r.getter.Get(u, getter.WithURL(u))
	if err != nil {
		return nil, ErrFetch{URL: u, Err: err}
	}
	return buf, nil
}
