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
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "rfield").
		WithSynopsis("rfield [opts] command [opts]").
		WithDescription("rfield inspects the classes registered with the rfield runtime.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return rfieldMain(cfg, cc, args)
		}).
		WithSubs(
			ClassesCommand(cfg),
			DescribeCommand(cfg),
			SampleCommand(cfg))
}

func ClassesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ClassesConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Command, "classes").
		WithAliases("ls").
		WithSynopsis("classes").
		WithDescription("list registered classes with their parent and field count").
		WithRun(func(cc *cli.Context, args []string) error {
			return classes(cfg, cc, args)
		})
}

func DescribeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DescribeConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Command, "describe").
		WithAliases("d").
		WithSynopsis("describe <class> [classes]").
		WithDescription("print the field table of each class").
		WithRun(func(cc *cli.Context, args []string) error {
			return describe(cfg, cc, args)
		})
}

func SampleCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SampleConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "sample").
		WithAliases("s").
		WithSynopsis("sample [opts] <class>").
		WithDescription("print a populated sample instance of a built-in class").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return sample(cfg, cc, args)
		})
}
