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

	"github.com/ifwget/ifwget/internal/version"
)

type versionOptions struct {
	short bool
}

func newVersionCmd(out io.Writer) *cobra.Command {
	o := &versionOptions{}

	cmd := &cobra.Command{
		Use:   "version",
		Short: "print the ifwget version information",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return o.run(out)
		},
	}
	cmd.Flags().BoolVar(&o.short, "short", false, "print the version number only")

	return cmd
}

func (o *versionOptions) run(out io.Writer) error {
	if o.short {
		fmt.Fprintln(out, version.GetVersion())
		return nil
	}
	fmt.Fprintf(out, "%#v\n", version.Get())
	return nil
}
