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

package main

import (
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ifwget/ifwget/internal/logging"
	"github.com/ifwget/ifwget/pkg/getter"
	"github.com/ifwget/ifwget/pkg/resolver"
)

var globalUsage = `Resolve installer framework downloads.

ifwget turns a semantic version constraint into a concrete installer
download URL for a platform and architecture, and picks fallback
mirrors when the primary download host fails. It never downloads the
installer itself; wire the printed URL into your build tooling.

Common actions:

- ifwget resolve:  resolve a version constraint to an installer URL
- ifwget mirrors:  pick the next untried mirror for an installer URL
`

var debug bool

// resolverOptions are the flags shared by every command that fetches
// from the release tree.
type resolverOptions struct {
	baseURL string
	timeout time.Duration
}

func (o *resolverOptions) addFlags(f *pflag.FlagSet) {
	f.StringVar(&o.baseURL, "base-url", resolver.DefaultBaseURL, "root listing URL of the release tree")
	f.DurationVar(&o.timeout, "timeout", 30*time.Second, "timeout per fetch (0 for none)")
}

func (o *resolverOptions) newResolver() (*resolver.Resolver, error) {
	g, err := getter.NewHTTPGetter(getter.WithTimeout(o.timeout))
	if err != nil {
		return nil, err
	}
	return resolver.New(
		resolver.WithBaseURL(o.baseURL),
		resolver.WithGetter(g),
	)
}

func newRootCmd(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "ifwget",
		Short:        "resolve installer framework download URLs",
		Long:         globalUsage,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			slog.SetDefault(logging.NewLogger(func() bool { return debug }))
		},
	}
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose output")

	cmd.AddCommand(
		newResolveCmd(out),
		newMirrorsCmd(out),
		newVersionCmd(out),
	)
	return cmd
}
