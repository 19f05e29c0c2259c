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
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listingHandler(labels ...string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		rows := make([][2]string, 0, len(labels))
		for _, l := range labels {
			rows = append(rows, [2]string{l, l})
		}
		fmt.Fprint(w, indexPage(rows...))
	})
}

func TestResolveVersion(t *testing.T) {
	r, _ := newTestResolver(t, listingHandler("4.5.0/", "4.6.1/", "notaversion/"))

	tests := []struct {
		constraint string
		want       string
	}{
		{"^4.5.0", "4.6.1"},
		{"4.5.0", "4.5.0"},
		{">=4.5 <4.6", "4.5.0"},
		{"4.x", "4.6.1"},
	}
	for _, tt := range tests {
		t.Run(tt.constraint, func(t *testing.T) {
			got, err := r.ResolveVersion(tt.constraint)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveVersionCanonicalizes(t *testing.T) {
	// A "4.6" directory label still resolves to a full semver string.
	r, _ := newTestResolver(t, listingHandler("4.6/"))

	got, err := r.ResolveVersion("4.6.0")
	require.NoError(t, err)
	assert.Equal(t, "4.6.0", got)
}

func TestResolveVersionNoMatch(t *testing.T) {
	r, _ := newTestResolver(t, listingHandler("4.5.0/", "4.6.1/", "notaversion/"))

	_, err := r.ResolveVersion("5.x")
	var noMatch ErrNoMatchingVersion
	require.ErrorAs(t, err, &noMatch)
	assert.Equal(t, "5.x", noMatch.Constraint)
	// The discovered list is carried for diagnostics.
	assert.Equal(t, []string{"4.5.0", "4.6.1"}, noMatch.Discovered)
}

func TestResolveVersionNoValidVersions(t *testing.T) {
	r, _ := newTestResolver(t, listingHandler("notaversion/", "changelog.txt"))

	_, err := r.ResolveVersion("4.x")
	var noMatch ErrNoMatchingVersion
	require.ErrorAs(t, err, &noMatch)
	assert.Empty(t, noMatch.Discovered)
}

func TestResolveVersionEmptyConstraint(t *testing.T) {
	r, _ := newTestResolver(t, http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected fetch of %s for an empty constraint", r.URL)
	}))

	_, err := r.ResolveVersion("  ")
	var noMatch ErrNoMatchingVersion
	require.ErrorAs(t, err, &noMatch)
}

func TestResolveVersionInvalidConstraint(t *testing.T) {
	r, _ := newTestResolver(t, listingHandler("4.5.0/"))

	_, err := r.ResolveVersion("not a constraint")
	require.Error(t, err)
	var noMatch ErrNoMatchingVersion
	assert.False(t, errors.As(err, &noMatch), "an unparsable constraint is not a no-match condition")
}

func TestResolveVersionFetchError(t *testing.T) {
	r, srv := newTestResolver(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	_, err := r.ResolveVersion("4.x")
	var fetchErr ErrFetch
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, srv.URL+"/", fetchErr.URL)
}
