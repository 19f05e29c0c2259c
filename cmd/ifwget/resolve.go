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
	"runtime"

	"github.com/spf13/cobra"
)

const resolveDesc = `
Resolve a version constraint to a concrete installer download URL.

The constraint uses semantic version range syntax, for example "4.x",
"^4.5.0" or ">=4.6 <5.0". An exact version like "4.6.1" is also a valid
constraint. The highest published version satisfying the constraint is
selected, then the installer for the requested platform and
architecture is located in that release's listing.

The platform defaults to the host platform and must be one of windows,
darwin (or macos) and linux.
`

type resolveOptions struct {
	resolverOptions
	platform string
	arch     string
}

func newResolveCmd(out io.Writer) *cobra.Command {
	o := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve CONSTRAINT",
		Short: "resolve a version constraint to an installer URL",
		Long:  resolveDesc,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return o.run(out, args[0])
		},
	}
	f := cmd.Flags()
	o.addFlags(f)
	f.StringVar(&o.platform, "platform", runtime.GOOS, "target platform (windows, darwin, linux)")
	f.StringVar(&o.arch, "arch", runtime.GOARCH, "target architecture token, e.g. x64 or arm64")

	return cmd
}

func (o *resolveOptions) run(out io.Writer, constraint string) error {
	r, err := o.newResolver()
	if err != nil {
		return err
	}
	u, err := r.Resolve(constraint, o.platform, o.arch)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, u)
	return nil
}
