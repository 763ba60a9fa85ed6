// This file is part of bf - https://github.com/db47h/bf
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
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

package brainfuck_test

import (
	"bytes"
	"testing"

	"github.com/db47h/bf/compiler"
	"github.com/db47h/bf/lang/brainfuck"
	"github.com/db47h/bf/vm"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, src string, input interface{}, opts ...brainfuck.Option) (*brainfuck.Program, string) {
	t.Helper()
	p, err := brainfuck.Compile(src, opts...)
	require.NoError(t, err)
	out, err := p.Run(input, nil)
	require.NoError(t, err)
	return p, out
}

func TestProgram_Run(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		input interface{}
		opts  []brainfuck.Option
		out   string
	}{
		{"increment", ",+.", "A", nil, "B"},
		{"multiply", "++++++++[>++++++++<-]>.", nil, nil, "@"},
		{"comments", "this + is a + comment.", nil, nil, "\x02"},
		{"bytes", ",.,.", []byte("hi"), nil, "hi"},
		{"runes", ",.,.", "é€", nil, "é€"},
		{"exhausted", ",.,.,.", "a", nil, "a\x00\x00"},
		{"escape hex", ",.", `\x41`, []brainfuck.Option{brainfuck.AllowSpecialChars(true)}, "A"},
		{"escape unicode", ",.", `\u00e9`, []brainfuck.Option{brainfuck.AllowSpecialChars(true)}, "é"},
		{"escape octal", ",.", `\o101`, []brainfuck.Option{brainfuck.AllowSpecialChars(true)}, "A"},
		{"escape binary", ",.", `\b1000001`, []brainfuck.Option{brainfuck.AllowSpecialChars(true)}, "A"},
		{"escape decimal", ",.,.", `\65B`, []brainfuck.Option{brainfuck.AllowSpecialChars(true)}, "AB"},
		{"lone backslash", ",.,.", `\`, []brainfuck.Option{brainfuck.AllowSpecialChars(true)}, "\\\x00"},
		{"invalid escape", ",.,.", `\z`, []brainfuck.Option{brainfuck.AllowSpecialChars(true)}, "\\z"},
		{"escapes disabled", ",.,.,.,.", `\x41`, nil, `\x41`},
		{"wrap 8", "-.", nil, nil, "ÿ"},
		{"wrap 16", "-.", nil, []brainfuck.Option{brainfuck.Bits(16)}, "\uffff"},
		{"wrap 32", "-.", nil, []brainfuck.Option{brainfuck.Bits(32)}, "\ufffd"},
		{"overflow 8", "-+.", nil, nil, "\x00"},
		{"bad bits", "-.", nil, []brainfuck.Option{brainfuck.Bits(12)}, "ÿ"},
		{"no optimize", "++++++++[>++++++++<-]>.", nil, []brainfuck.Option{brainfuck.Optimize(false)}, "@"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, out := run(t, test.src, test.input, test.opts...)
			assert.Equal(t, test.out, out)
		})
	}
}

func TestProgram_Run_memory(t *testing.T) {
	p, _ := run(t, ">>>>>+", nil, brainfuck.MemorySize(5))
	assert.Equal(t, 0, p.Pointer())
	assert.Equal(t, vm.Cell(1), p.Memory().Get(0))

	p, _ = run(t, "<+", nil, brainfuck.MemorySize(5))
	assert.Equal(t, 4, p.Pointer())
	assert.Equal(t, []vm.Cell{0, 0, 0, 0, 1}, p.Memory().Cells())

	for _, src := range []string{"+++[-]", "+++[+]", "---[-]"} {
		p, _ = run(t, ">"+src, nil)
		assert.Equal(t, 1, p.Pointer(), src)
		assert.Empty(t, p.Memory().Used(), src)
	}
}

func TestProgram_Run_maxInstructions(t *testing.T) {
	p, _ := run(t, "+++++", nil, brainfuck.MaxInstructions(3), brainfuck.Optimize(false))
	assert.Equal(t, vm.Cell(3), p.Memory().Get(0))
	assert.Equal(t, int64(3), p.InstructionCount())

	// infinite loop
	p, out := run(t, "+[.]", nil, brainfuck.MaxInstructions(100))
	assert.Equal(t, int64(100), p.InstructionCount())
	assert.Len(t, out, 49)
}

func TestProgram_Run_state(t *testing.T) {
	p, err := brainfuck.Compile("+>")
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err = p.Run(nil, nil)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, p.Pointer())
	assert.Equal(t, []vm.Cell{1, 1, 1}, p.Memory().Used())
}

func TestProgram_Run_input(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		out   string
	}{
		{"nil", nil, "\x00\x00"},
		{"unsupported", 42, "\x00\x00"},
		{"func int", func() int { return 'B' }, "BB"},
		{"func rune", func() rune { return 'é' }, "éé"},
		{"func cell", func() vm.Cell { return 'C' }, "CC"},
		{"InputFunc", vm.TextInput("xy", false), "xy"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, out := run(t, ",.,.", test.input, brainfuck.AllowSpecialChars(true))
			assert.Equal(t, test.out, out)
		})
	}
}

func TestProgram_Run_output(t *testing.T) {
	p, err := brainfuck.Compile("+.+.-.", brainfuck.Bits(32))
	require.NoError(t, err)
	var (
		values []vm.Cell
		runes  []rune
	)
	out, err := p.Run(nil, func(v vm.Cell, r rune) {
		values = append(values, v)
		runes = append(runes, r)
	})
	require.NoError(t, err)
	assert.Equal(t, "\x01\x02\x01", out)
	assert.Equal(t, []vm.Cell{1, 2, 1}, values)
	assert.Equal(t, []rune{1, 2, 1}, runes)
}

func TestCompile_errors(t *testing.T) {
	for _, src := range []string{"[", "]", "[[]", "+[]]"} {
		p, err := brainfuck.Compile(src)
		require.Error(t, err, src)
		assert.Nil(t, p)
		_, ok := errors.Cause(err).(compiler.ErrCompile)
		assert.True(t, ok, "%s: unexpected error type %T", src, errors.Cause(err))
	}

	_, err := brainfuck.Compile("+", brainfuck.MemorySize(0))
	assert.Error(t, err)
}

func TestProgram_String(t *testing.T) {
	p, err := brainfuck.Compile("+++[-].")
	require.NoError(t, err)
	assert.Equal(t, "     0\tadd 3\n     1\tzero\n     2\tout\n", p.String())
	assert.Len(t, p.Code(), 3)
}

func TestDefaults(t *testing.T) {
	saved := brainfuck.Defaults()
	defer brainfuck.SetDefaults(func(c *brainfuck.Config) { *c = saved })

	d := brainfuck.Defaults()
	assert.Equal(t, 30000, d.MemorySize)
	assert.Equal(t, 8, d.Bits)
	assert.Equal(t, 0, d.MaxInstructions)
	assert.False(t, d.AllowSpecialChars)
	assert.True(t, d.Optimize)

	// Defaults returns a copy
	d.MemorySize = 1
	assert.Equal(t, 30000, brainfuck.Defaults().MemorySize)

	p1, err := brainfuck.Compile("-")
	require.NoError(t, err)

	brainfuck.SetDefaults(brainfuck.MemorySize(5), brainfuck.Bits(16))
	d = brainfuck.Defaults()
	assert.Equal(t, 5, d.MemorySize)
	assert.Equal(t, 16, d.Bits)
	assert.True(t, d.Optimize)

	p2, err := brainfuck.Compile("-")
	require.NoError(t, err)
	assert.Equal(t, 5, p2.Memory().Len())
	assert.Equal(t, 16, p2.Config().Bits)

	// per program options override defaults
	p3, err := brainfuck.Compile("-", brainfuck.Bits(32))
	require.NoError(t, err)
	assert.Equal(t, 32, p3.Memory().Bits())
	assert.Equal(t, 5, p3.Memory().Len())

	// programs compiled earlier are unaffected
	assert.Equal(t, 30000, p1.Memory().Len())
	_, err = p1.Run(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, vm.Cell(255), p1.Memory().Get(0))
}

func TestCompile_logger(t *testing.T) {
	var b bytes.Buffer
	_, err := brainfuck.Compile("++[-]", brainfuck.Logger(zerolog.New(&b).Level(zerolog.DebugLevel)))
	require.NoError(t, err)
	assert.Contains(t, b.String(), `"message":"compiled"`)
	assert.Contains(t, b.String(), `"instructions":2`)
}

func TestDump(t *testing.T) {
	tests := []struct {
		src string
		exp string
	}{
		{"", "\x1C0\x1D"},
		{"+>++>", "\x1C2\x1D1 2"},
		{">>+<", "\x1C1\x1D0 0 1"},
	}
	for _, test := range tests {
		p, _ := run(t, test.src, nil)
		var b bytes.Buffer
		require.NoError(t, brainfuck.Dump(p, &b))
		assert.Equal(t, test.exp, b.String(), test.src)
	}
}
