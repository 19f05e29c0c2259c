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

	"github.com/ifwget/ifwget/internal/metalink"
)

// metalinkSuffix appended to an artifact URL yields its metalink
// document on the download host.
const metalinkSuffix = ".meta4"

// defaultBlacklist holds mirror hosts known to serve stale or truncated
// artifacts. Matched case-insensitively as substrings of the mirror
// host.
var defaultBlacklist = []string{
	"mirrors.ustc.edu.cn",
	"mirrors.tuna.tsinghua.edu.cn",
	"mirrors.geekpie.club",
}

// NextMirror fetches the metalink document for an artifact and returns
// the best mirror not yet attempted.
//
// alreadyTried is the caller's accumulated list of mirror URLs that
// failed during this download attempt; after the returned mirror fails
// too, append it and call again. The metalink document is re-fetched on
// every call, so each call stands alone.
//
// Among the surviving mirrors the numerically lowest priority wins,
// and on equal priority the one appearing first in the document.
func (r *Resolver) NextMirror(artifactURL string, alreadyTried []string) (string, error) {
	metaURL := artifactURL + metalinkSuffix

	body, err := r.fetch(metaURL)
	if err != nil {
		return "", err
	}
	mirrors, err := metalink.Parse(body)
	if err != nil {
		return "", err
	}

	var best *metalink.Mirror
	for i := range mirrors {
		m := mirrors[i]
		if hostBlacklisted(m.URL, r.blacklist) || urlTried(m.URL, alreadyTried) {
			continue
		}
		if best == nil || m.Priority < best.Priority {
			best = &mirrors[i]
		}
	}
	if best == nil {
		return "", ErrNoMirrors{MetalinkURL: metaURL}
	}
	return best.URL, nil
}

// hostBlacklisted reports whether the mirror's host contains any
// blacklist entry. Mirror URLs that do not parse are matched on the
// whole string rather than dropped outright.
func hostBlacklisted(mirror string, blacklist []string) bool {
	host := mirror
	if u, err := url.Parse(mirror); err == nil && u.Host != "" {
		host = u.Host
	}
	host = strings.ToLower(host)
	for _, b := range blacklist {
		if strings.Contains(host, strings.ToLower(b)) {
			return true
		}
	}
	return false
}

// urlTried reports whether the mirror matches any already-attempted
// URL, case-insensitively in either direction so that a recorded
// mirror URL excludes the same host on a later call.
func urlTried(mirror string, tried []string) bool {
	m := strings.ToLower(mirror)
	for _, t := range tried {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if strings.Contains(m, t) || strings.Contains(t, m) {
			return true
		}
	}
	return false
}
