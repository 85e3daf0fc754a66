// This file is part of Einherjar - https://github.com/narke/Einherjar
//
// Copyright 2016 The Einherjar Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package render_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/narke/Einherjar/block"
	"github.com/narke/Einherjar/render"
	"github.com/pkg/errors"
)

var srcs = []block.Source{
	{Number: 0, Calls: []block.Call{
		{Func: block.Text, Param: "hello"},
		{Func: block.Define, Param: "sq"},
		{Func: block.CompileWord, Param: "dup"},
		{Func: block.ExecuteShort, Hex: true, Param: "ff"},
	}},
	{Number: 1},
}

func TestClass(t *testing.T) {
	data := []struct {
		c   block.Call
		exp string
	}{
		{block.Call{Func: block.Define}, "define"},
		{block.Call{Func: block.Execute}, "execute"},
		{block.Call{Func: block.ExecuteLong}, "execute"},
		{block.Call{Func: block.ExecuteShort, Hex: true}, "executehex"},
		{block.Call{Func: block.CompileWord}, "compile"},
		{block.Call{Func: block.CompileLong, Hex: true}, "compilehex"},
		{block.Call{Func: block.CompileShort}, "compile"},
		{block.Call{Func: block.CommentedNumber, Hex: true}, "commented_number"},
		{block.Call{Func: block.Extension}, "extension"},
		{block.Call{Func: block.DisplayMacro}, "display_macro"},
	}
	for _, d := range data {
		if got := render.Class(d.c); got != d.exp {
			t.Errorf("Class(%v) = %q, expected %q", d.c, got, d.exp)
		}
	}
	st := render.DefaultStyle()
	for _, c := range render.Classes {
		if st.HTML[c] == "" || st.ANSI[c] == "" {
			t.Errorf("no default color for class %q", c)
		}
	}
}

func TestStyle_Merge(t *testing.T) {
	st := render.DefaultStyle().Merge(render.Style{
		HTML:       map[string]string{"define": "#ff8080"},
		Stylesheet: "cf.css",
	})
	if st.HTML["define"] != "#ff8080" || st.HTML["compile"] != "#00ff00" || st.Stylesheet != "cf.css" {
		t.Errorf("bad merge: %+v", st)
	}
	if render.DefaultStyle().HTML["define"] != "red" {
		t.Error("Merge modified its receiver")
	}
}

func TestHTML(t *testing.T) {
	var b bytes.Buffer
	if err := render.HTML(&b, srcs, render.DefaultStyle()); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	for _, frag := range []string{
		"code.define { color:red; }\n",
		"code.executehex { color:#c0c000; }\n",
		"code.textallcaps { color:white; text-transform:uppercase; }\n",
		"<body>\n{block 0}\n<div class=code>\n" +
			"<code class=text> hello</code><br><code class=define>sq</code>" +
			"<code class=compile> dup</code><code class=executehex> ff</code>\n" +
			"</div>\n<hr>\n{block 1}\n<div class=code>\n</div>\n<hr>\n</body>\n</html>\n",
	} {
		if !strings.Contains(out, frag) {
			t.Errorf("missing %q in output:\n%s", frag, out)
		}
	}
	if strings.Contains(out, "<link") {
		t.Error("unexpected stylesheet link")
	}

	b.Reset()
	err := render.HTML(&b, []block.Source{{Calls: []block.Call{{Func: block.Text, Param: "<&>"}}}},
		render.Style{Stylesheet: "a&b.css"})
	if err != nil {
		t.Fatal(err)
	}
	out = b.String()
	if !strings.Contains(out, `href="a&amp;b.css"`) || !strings.Contains(out, "> &lt;&amp;&gt;</code>") {
		t.Errorf("not escaped:\n%s", out)
	}
}

func TestANSI(t *testing.T) {
	var b bytes.Buffer
	st := render.Style{ANSI: map[string]string{"define": "31", "executehex": "33"}}
	if err := render.ANSI(&b, srcs, st); err != nil {
		t.Fatal(err)
	}
	exp := "{block 0}\n" +
		"text(hello) \n\x1b[31mdefine(sq)\x1b[0m compileword(dup) \x1b[33mhex_executeshort(ff)\x1b[0m\n" +
		"{block 1}\n"
	if diff := cmp.Diff(exp, b.String()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDump(t *testing.T) {
	img := make(block.Image, 2)
	img[0][0] = 0xc894a189
	img[0][9] = 1
	var b bytes.Buffer
	if err := render.Dump(&b, img); err != nil {
		t.Fatal(err)
	}
	exp := "{block 0}\n" +
		"00: c894a189 00000000 00000000 00000000 00000000 00000000 00000000 00000000\n" +
		"08: 00000000 00000001\n" +
		"{block 1}\n"
	if diff := cmp.Diff(exp, b.String()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

type failWriter struct{}

var errFail = errors.New("disk full")

func (failWriter) Write(p []byte) (int, error) { return 0, errFail }

func TestWriteErrors(t *testing.T) {
	img := make(block.Image, 1)
	for _, f := range []func(io.Writer) error{
		func(w io.Writer) error { return render.HTML(w, srcs, render.DefaultStyle()) },
		func(w io.Writer) error { return render.ANSI(w, srcs, render.DefaultStyle()) },
		func(w io.Writer) error { return render.Dump(w, img) },
	} {
		if err := f(failWriter{}); !errors.Is(err, errFail) {
			t.Errorf("got error %v, expected %v", err, errFail)
		}
	}
}
