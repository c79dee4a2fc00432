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
	"io"
	"strconv"
	"strings"

	"dirpx.dev/rfield/apis"
	"dirpx.dev/rfield/class"
	uref "dirpx.dev/rfield/utils/reflect"
)

// DefaultMaxDepth bounds how deep Instance descends into nested objects.
const DefaultMaxDepth = 16

// Option configures a printer.
type Option func(*printer)

// WithColor enables or disables colored output.
func WithColor(on bool) Option {
	return func(p *printer) {
		if on {
			p.colors = NewColors()
		} else {
			p.colors = NoColors()
		}
	}
}

// WithColors uses a custom palette.
func WithColors(c *Colors) Option {
	return func(p *printer) {
		if c != nil {
			p.colors = c
		}
	}
}

// WithIndent sets the per-level indentation (two spaces by default).
func WithIndent(indent string) Option {
	return func(p *printer) {
		p.indent = indent
	}
}

// WithMaxDepth limits nesting; deeper objects print as {...}.
// A non-positive depth resets to DefaultMaxDepth.
func WithMaxDepth(depth int) Option {
	return func(p *printer) {
		if depth <= 0 {
			depth = DefaultMaxDepth
		}
		p.maxDepth = depth
	}
}

type printer struct {
	w        io.Writer
	colors   *Colors
	indent   string
	maxDepth int
	// visiting holds the objects currently being printed, to cut cycles
	// through references.
	visiting map[apis.Object]bool
	err      error
}

func newPrinter(w io.Writer, opts []Option) *printer {
	p := &printer{
		w:        w,
		colors:   NoColors(),
		indent:   "  ",
		maxDepth: DefaultMaxDepth,
		visiting: map[apis.Object]bool{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// write emits the concatenation of parts; the first error sticks.
func (p *printer) write(parts ...string) {
	if p.err != nil {
		return
	}
	for _, s := range parts {
		if _, err := io.WriteString(p.w, s); err != nil {
			p.err = err
			return
		}
	}
}

func (p *printer) c(r Role, s string) string { return p.colors.Color(r, s) }

func (p *printer) pad(depth int) string { return strings.Repeat(p.indent, depth) }

// TypeString renders a descriptor as a type expression, e.g. uint32,
// object<zoo.Collar>, object_ref<zoo.Animal> or array<array<int16>>.
func TypeString(v apis.Value) string {
	if v == nil {
		return apis.KindNone.String()
	}
	switch k := v.Kind(); k {
	case apis.KindObject, apis.KindObjectRef:
		if c := v.Class(); c != nil {
			return k.String() + "<" + c.Name() + ">"
		}
		return k.String()
	case apis.KindArray:
		return k.String() + "<" + TypeString(v.Elem()) + ">"
	default:
		return k.String()
	}
}

// Schema prints the class header with its parent chain, followed by one
// line per field: name, type, byte offset and, for inherited fields, the
// declaring class.
func Schema(w io.Writer, c apis.Class, opts ...Option) error {
	if uref.IsNil(c) {
		return fmt.Errorf("dump: nil class")
	}
	p := newPrinter(w, opts)

	p.write(p.c(ClassRole, c.Name()))
	for a := c.Parent(); a != nil; a = a.Parent() {
		p.write(p.c(PunctRole, " : "), p.c(ClassRole, a.Name()))
	}
	p.write("\n")

	fields := c.Fields()
	nameW, typeW := 0, 0
	for f := range fields.All() {
		nameW = max(nameW, len(f.Name()))
		typeW = max(typeW, len(TypeString(f.Value())))
	}
	for f := range fields.All() {
		ts := TypeString(f.Value())
		p.write(p.pad(1),
			p.c(FieldRole, f.Name()), strings.Repeat(" ", nameW-len(f.Name())+1),
			p.c(KindRole, ts), strings.Repeat(" ", typeW-len(ts)+1),
			p.c(NumberRole, "+"+strconv.FormatUint(uint64(f.Offset()), 10)))
		if origin := class.Origin(f); origin != c {
			p.write(p.c(PunctRole, " from "), p.c(ClassRole, origin.Name()))
		}
		p.write("\n")
	}
	return p.err
}

// Directory prints one line per class: name, parent and field count.
func Directory(w io.Writer, classes []apis.Class, opts ...Option) error {
	p := newPrinter(w, opts)
	nameW := 0
	for _, c := range classes {
		nameW = max(nameW, len(c.Name()))
	}
	for _, c := range classes {
		p.write(p.c(ClassRole, c.Name()), strings.Repeat(" ", nameW-len(c.Name())+1))
		if parent := c.Parent(); parent != nil {
			p.write(p.c(PunctRole, ": "), p.c(ClassRole, parent.Name()), " ")
		}
		p.write(p.c(NumberRole, strconv.Itoa(c.Fields().Len())), " fields\n")
	}
	return p.err
}

// Instance prints the field values of obj recursively. Nested objects are
// indented, arrays list one element per line and references print as
// &Class { ... }, or &Class <cycle> when they point back at an object
// already being printed.
func Instance(w io.Writer, obj apis.Object, opts ...Option) error {
	if uref.IsNil(obj) {
		return fmt.Errorf("dump: nil object")
	}
	p := newPrinter(w, opts)
	p.object(obj, 0, "")
	return p.err
}

func (p *printer) object(o apis.Object, depth int, prefix string) {
	c := o.ClassType()
	if uref.IsNil(c) {
		p.write(p.c(NilRole, fmt.Sprintf("<%T without class>", o)), "\n")
		return
	}
	p.write(p.c(ClassRole, prefix+c.Name()))
	fields := c.Fields()
	switch {
	case fields.Len() == 0:
		p.write(p.c(PunctRole, " {}"), "\n")
		return
	case depth >= p.maxDepth:
		p.write(p.c(PunctRole, " {...}"), "\n")
		return
	}

	p.visiting[o] = true
	defer delete(p.visiting, o)

	p.write(p.c(PunctRole, " {"), "\n")
	for f := range fields.All() {
		p.write(p.pad(depth+1), p.c(FieldRole, f.Name()), p.c(PunctRole, ": "))
		loc, ok := f.Locate(o)
		if !ok {
			p.write(p.c(NilRole, "<unreachable>"), "\n")
			continue
		}
		p.value(f.Value(), loc, depth+1)
	}
	p.write(p.pad(depth), p.c(PunctRole, "}"), "\n")
}

// value prints the value at loc, starting mid-line and ending with a
// newline.
func (p *printer) value(desc apis.Value, loc any, depth int) {
	switch desc.Kind() {
	case apis.KindNone:
		p.write(p.c(NilRole, "<none>"), "\n")
	case apis.KindBool, apis.KindInt8, apis.KindUint8, apis.KindInt16, apis.KindUint16,
		apis.KindInt32, apis.KindUint32, apis.KindInt64, apis.KindUint64, apis.KindText:
		v, ok := desc.Get(loc)
		if !ok {
			p.write(p.c(NilRole, "<invalid>"), "\n")
			return
		}
		p.write(p.scalar(desc.Kind(), v), "\n")
	case apis.KindObject:
		v, ok := desc.Get(loc)
		o, isObj := v.(apis.Object)
		if !ok || !isObj {
			p.write(p.c(NilRole, "<invalid>"), "\n")
			return
		}
		p.object(o, depth, "")
	case apis.KindObjectRef:
		v, ok := desc.Get(loc)
		if !ok {
			p.write(p.c(NilRole, "<invalid>"), "\n")
			return
		}
		o, isObj := v.(apis.Object)
		if !isObj || uref.IsNil(o) {
			p.write(p.c(NilRole, "nil"), "\n")
			return
		}
		if p.visiting[o] {
			p.write(p.c(ClassRole, "&"+o.ClassType().Name()), p.c(NilRole, " <cycle>"), "\n")
			return
		}
		p.object(o, depth, "&")
	case apis.KindArray, apis.KindBoolArray:
		seq, ok := desc.(apis.Sequence)
		if !ok {
			p.write(p.c(NilRole, "<invalid>"), "\n")
			return
		}
		p.sequence(seq, loc, depth)
	}
}

func (p *printer) sequence(seq apis.Sequence, loc any, depth int) {
	n, ok := seq.Len(loc)
	switch {
	case !ok:
		p.write(p.c(NilRole, "<invalid>"), "\n")
		return
	case n == 0:
		p.write(p.c(PunctRole, "[]"), "\n")
		return
	}
	p.write(p.c(PunctRole, "["), "\n")
	for i := 0; i < n; i++ {
		p.write(p.pad(depth + 1))
		if el, ok := seq.Locate(loc, i); ok {
			p.value(seq.Elem(), el, depth+1)
			continue
		}
		v, ok := seq.Index(loc, i)
		if !ok {
			p.write(p.c(NilRole, "<invalid>"), "\n")
			continue
		}
		p.write(p.scalar(seq.Elem().Kind(), v), "\n")
	}
	p.write(p.pad(depth), p.c(PunctRole, "]"), "\n")
}

func (p *printer) scalar(k apis.Kind, v any) string {
	if k == apis.KindText {
		s, ok := v.(string)
		if !ok {
			s = fmt.Sprint(v)
		}
		return p.c(TextRole, strconv.Quote(s))
	}
	return p.c(NumberRole, fmt.Sprint(v))
}
