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
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

const mirrorsDesc = `
Pick the next download mirror for an installer URL.

The installer URL's metalink document is fetched and the usable mirror
with the best priority is printed. Hosts on the built-in blacklist are
never returned. Pass --tried for every mirror that already failed in
this download attempt to get the next candidate; repeat until the
command reports that no mirrors remain.
`

type mirrorsOptions struct {
	resolverOptions
	tried []string
}

func newMirrorsCmd(out io.Writer) *cobra.Command {
	o := &mirrorsOptions{}

	cmd := &cobra.Command{
		Use:   "mirrors INSTALLER_URL",
		Short: "pick the next untried mirror for an installer URL",
		Long:  mirrorsDesc,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return o.run(out, args[0])
		},
	}
	f := cmd.Flags()
	o.addFlags(f)
	f.StringArrayVar(&o.tried, "tried", nil, "mirror URL that already failed (repeatable)")

	return cmd
}

func (o *mirrorsOptions) run(out io.Writer, artifactURL string) error {
	r, err := o.newResolver()
	if err != nil {
		return err
	}
	u, err := r.NextMirror(artifactURL, o.tried)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, u)
	return nil
}
