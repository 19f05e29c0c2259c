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
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/pkg/errors"

	"github.com/ifwget/ifwget/internal/listing"
)

// ResolveVersion fetches the root listing page and returns the
// canonical string of the highest published version satisfying the
// constraint.
//
// Listing entries that do not coerce to a version ("Parent Directory",
// changelogs and the like) are skipped silently. An empty constraint
// never matches.
func (r *Resolver) ResolveVersion(constraint string) (string, error) {
	if strings.TrimSpace(constraint) == "" {
		return "", ErrNoMatchingVersion{Constraint: constraint}
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return "", errors.Wrapf(err, "invalid version constraint %q", constraint)
	}

	body, err := r.fetch(r.baseURL)
	if err != nil {
		return "", err
	}
	entries, err := listing.Parse(body)
	if err != nil {
		return "", err
	}

	versions := coerceVersions(entries)

	var best *semver.Version
	for _, v := range versions {
		if !c.Check(v) {
			continue
		}
		if best == nil || v.GreaterThan(best) {
			best = v
		}
	}
	if best == nil {
		return "", ErrNoMatchingVersion{Constraint: constraint, Discovered: versionStrings(versions)}
	}
	return best.String(), nil
}

// coerceVersions best-effort parses listing labels into versions.
// Directory labels carry a trailing slash, which is stripped first.
func coerceVersions(entries []listing.Entry) []*semver.Version {
	var versions []*semver.Version
	for _, e := range entries {
		label := strings.TrimSuffix(strings.TrimSpace(e.Text), "/")
		if label == "" {
			continue
		}
		v, err := semver.NewVersion(label)
		if err != nil {
			// Not a version row.
			continue
		}
		versions = append(versions, v)
	}
	return versions
}

func versionStrings(versions []*semver.Version) []string {
	out := make([]string, 0, len(versions))
	for _, v := range versions {
		out = append(out, v.String())
	}
	return out
}
