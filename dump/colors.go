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

package dump

import (
	"fmt"

	"github.com/fatih/color"
)

// Role is the part of the output a color applies to.
type Role int

const (
	ClassRole Role = iota
	FieldRole
	KindRole
	TextRole
	NumberRole
	NilRole
	PunctRole
)

// Colors maps output roles to formatting functions.
type Colors struct {
	Default func(string, ...any) string
	Map     map[Role]func(string, ...any) string
}

// NewColors returns the default palette. Colors are forced on; whether to
// use them at all is decided by WithColor.
func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Role]func(string, ...any) string{},
	}
	set := func(r Role, c *color.Color) {
		c.EnableColor()
		colors.Map[r] = c.SprintfFunc()
	}
	set(ClassRole, color.New(color.FgHiBlue, color.Bold))
	set(FieldRole, color.RGB(128, 216, 236))
	set(KindRole, color.RGB(196, 168, 128))
	set(TextRole, color.RGB(8, 196, 16))
	set(NumberRole, color.RGB(198, 198, 46))
	set(NilRole, color.RGB(96, 96, 96))
	set(PunctRole, color.New(color.Faint))
	return colors
}

// NoColors returns a palette that leaves text untouched.
func NoColors() *Colors {
	return &Colors{Default: colorDefault}
}

func colorDefault(f string, a ...any) string { return fmt.Sprintf(f, a...) }

// Color formats s for role r. s is never interpreted as a format string.
func (c *Colors) Color(r Role, s string) string {
	if c == nil {
		return s
	}
	f := c.Map[r]
	if f == nil {
		f = c.Default
	}
	if f == nil {
		return s
	}
	return f("%s", s)
}
