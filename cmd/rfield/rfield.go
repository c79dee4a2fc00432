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
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/tliron/commonlog"

	"dirpx.dev/rfield"
	"dirpx.dev/rfield/config"
	"dirpx.dev/rfield/dump"
	"dirpx.dev/rfield/internal/zoo"
)

var log = commonlog.GetLogger("rfield.cmd")

func rfieldMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	commonlog.Configure(cfg.Verbose, nil)
	if cfg.Config != "" {
		c, err := config.Load(cfg.Config)
		if err != nil {
			return err
		}
		rfield.SetConfig(c)
		log.Debugf("loaded %s: strict=%t max_unwrap=%d", cfg.Config, c.Strict, c.MaxUnwrap)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func classes(cfg *ClassesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: classes takes no arguments", cli.ErrUsage)
	}
	return dump.Directory(cc.Out, rfield.Classes(), cfg.dumpOpts(cc.Out)...)
}

func describe(cfg *DescribeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: describe requires at least one class name", cli.ErrUsage)
	}
	for _, name := range args {
		c, ok := rfield.Lookup(name)
		if !ok {
			return fmt.Errorf("unknown class %q", name)
		}
		if err := dump.Schema(cc.Out, c, cfg.dumpOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return nil
}

func sample(cfg *SampleConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: sample requires one class name", cli.ErrUsage)
	}
	obj, ok := zoo.Sample(args[0])
	if !ok {
		return fmt.Errorf("no sample for class %q", args[0])
	}
	opts := cfg.dumpOpts(cc.Out)
	if cfg.Depth > 0 {
		opts = append(opts, dump.WithMaxDepth(cfg.Depth))
	}
	if cfg.Indent != "" {
		opts = append(opts, dump.WithIndent(cfg.Indent))
	}
	return dump.Instance(cc.Out, obj, opts...)
}
