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
	"fmt"
	"strings"
)

// ErrFetch indicates that one of the resolution fetches failed, either
// on the network or with a non-success status. The value of URL is the
// location that could not be fetched.
type ErrFetch struct {
	URL string
	Err error
}

// Error implements the error interface.
func (e ErrFetch) Error() string {
	return fmt.Sprintf("could not fetch %s: %s", e.URL, e.Err)
}

// Unwrap returns the underlying transport error.
func (e ErrFetch) Unwrap() error { return e.Err }

// ErrUnsupportedPlatform indicates a platform token outside the known
// windows/darwin/linux set.
type ErrUnsupportedPlatform struct {
	Platform string
}

// Error implements the error interface.
func (e ErrUnsupportedPlatform) Error() string {
	return fmt.Sprintf("unsupported platform %q", e.Platform)
}

// ErrNoMatchingVersion indicates that no published version satisfied
// the constraint. Discovered holds every version found on the listing
// page for diagnostics.
type ErrNoMatchingVersion struct {
	Constraint string
	Discovered []string
}

// Error implements the error interface.
func (e ErrNoMatchingVersion) Error() string {
	if len(e.Discovered) == 0 {
		return fmt.Sprintf("no version matching %q (no versions discovered)", e.Constraint)
	}
	return fmt.Sprintf("no version matching %q among [%s]", e.Constraint, strings.Join(e.Discovered, ", "))
}

// ErrArtifactNotFound indicates that the release listing for a version
// contained no installer link for the requested extension/arch.
type ErrArtifactNotFound struct {
	Version   string
	Extension string
}

// Error implements the error interface.
func (e ErrArtifactNotFound) Error() string {
	return fmt.Sprintf("no %s installer found for version %s", e.Extension, e.Version)
}

// ErrNoMirrors indicates that every mirror in the metalink document was
// blacklisted, already tried, or malformed.
type ErrNoMirrors struct {
	MetalinkURL string
}

// Error implements the error interface.
func (e ErrNoMirrors) Error() string {
	return fmt.Sprintf("no usable mirrors in %s", e.MetalinkURL)
}
