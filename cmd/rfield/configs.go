/*
   Copyright 2025 The DIRPX Authors.

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
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"dirpx.dev/rfield/dump"
)

type MainConfig struct {
	Config  string `cli:"name=config aliases=c desc='TOML configuration file'"`
	Color   bool   `cli:"name=color desc='colorize output (default: when writing to a terminal)'"`
	Verbose int    `cli:"name=v aliases=verbose desc='log verbosity: 0 errors only, 1 warnings, 2 and up more detail'"`

	Main *cli.Command
}

// dumpOpts decides on color: an explicit -color wins, otherwise color is
// used when w is a terminal.
func (cfg *MainConfig) dumpOpts(w io.Writer) []dump.Option {
	if cfg.Color {
		return []dump.Option{dump.WithColor(true)}
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return []dump.Option{dump.WithColor(false)}
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	return []dump.Option{dump.WithColor(isatty.IsTerminal(f.Fd()))}
}

type ClassesConfig struct {
	*MainConfig
	Command *cli.Command
}

type DescribeConfig struct {
	*MainConfig
	Command *cli.Command
}

type SampleConfig struct {
	*MainConfig
	Depth  int    `cli:"name=depth desc='maximum nesting depth to print'"`
	Indent string `cli:"name=indent desc='indentation per level (default two spaces)'"`

	Command *cli.Command
}
