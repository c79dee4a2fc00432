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
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"
	"github.com/scott-cotton/cli"

	"dirpx.dev/rfield/internal/zoo"
)

type buffer struct {
	bytes.Buffer
}

func (*buffer) Close() error { return nil }

// run executes the rfield command tree with args and returns what it wrote
// to standard output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, errOut := &buffer{}, &buffer{}
	cc := &cli.Context{Out: out, Err: errOut, Go: context.Background()}
	err := MainCommand().Run(cc, args)
	return out.String(), err
}

func TestMainCommand(t *testing.T) {
	cmd := MainCommand()
	if cmd == nil {
		t.Fatal("MainCommand returned nil")
	}
	for _, name := range []string{"classes", "ls", "describe", "d", "sample", "s"} {
		if cmd.FindSub(nil, name) == nil {
			t.Errorf("subcommand %q not found", name)
		}
	}
}

func TestCommands(t *testing.T) {
	var c zoo.Collar
	cases := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "classes",
			args: []string{"classes"},
			want: "zoo.Animal 0 fields\n" +
				"zoo.Cat    : zoo.Animal 3 fields\n" +
				"zoo.Collar 2 fields\n" +
				"zoo.Dog    : zoo.Animal 2 fields\n" +
				"zoo.Kennel 5 fields\n" +
				"zoo.Owner  4 fields\n" +
				"zoo.Puppy  : zoo.Dog 3 fields\n" +
				"zoo.Rock   6 fields\n",
		},
		{
			name: "describe",
			args: []string{"describe", "zoo.Collar"},
			want: "zoo.Collar\n" +
				fmt.Sprintf("  %-4s %-5s +%d\n", "tag", "text", unsafe.Offsetof(c.Tag)) +
				fmt.Sprintf("  %-4s %-5s +%d\n", "size", "uint8", unsafe.Offsetof(c.Size)),
		},
		{
			name: "describe several",
			args: []string{"d", "zoo.Animal", "zoo.Puppy"},
			want: "zoo.Animal\n" +
				"zoo.Puppy : zoo.Dog : zoo.Animal\n" +
				"  name    text    +0 from zoo.Dog\n" +
				fmt.Sprintf("  age     uint32  +%d from zoo.Dog\n", unsafe.Offsetof(zoo.Dog{}.Age)) +
				fmt.Sprintf("  trained boolean +%d\n", unsafe.Offsetof(zoo.Puppy{}.Trained)),
		},
		{
			name: "sample",
			args: []string{"sample", "zoo.Collar"},
			want: "zoo.Collar {\n" +
				"  tag: \"REX-01\"\n" +
				"  size: 4\n" +
				"}\n",
		},
		{
			name: "sample depth",
			args: []string{"sample", "-depth", "1", "zoo.Owner"},
			want: "zoo.Owner {\n" +
				"  name: \"Ada\"\n" +
				"  pet: &zoo.Dog {...}\n" +
				"  best: &zoo.Dog {...}\n" +
				"  collar: zoo.Collar {...}\n" +
				"}\n",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := run(t, tc.args...)
			if err != nil {
				t.Fatalf("run %v: %v", tc.args, err)
			}
			if strings.Contains(got, "%") {
				t.Fatalf("output contains a format verb: %q", got)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCommands_Color(t *testing.T) {
	got, err := run(t, "-color", "sample", "zoo.Dog")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(got, "\x1b[") || !strings.Contains(got, "Rex") {
		t.Fatalf("colored output = %q", got)
	}
}

func TestCommands_Errors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		is   error
		msg  string
	}{
		{"no command", nil, cli.ErrNoCommandProvided, ""},
		{"unknown command", []string{"frobnicate"}, cli.ErrNoSuchCommand, "frobnicate"},
		{"unknown class", []string{"describe", "zoo.Unicorn"}, nil, `unknown class "zoo.Unicorn"`},
		{"no sample", []string{"sample", "zoo.Unicorn"}, nil, `no sample for class "zoo.Unicorn"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(t, tc.args...)
			if err == nil {
				t.Fatalf("run %v succeeded with %q", tc.args, out)
			}
			if tc.is != nil && !errors.Is(err, tc.is) {
				t.Fatalf("error %v, want %v", err, tc.is)
			}
			if tc.msg != "" && !strings.Contains(err.Error(), tc.msg) {
				t.Fatalf("error %q does not mention %q", err, tc.msg)
			}
		})
	}
}
