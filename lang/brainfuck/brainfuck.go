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

// Package brainfuck compiles and runs Brainfuck programs.
//
// It glues together packages github.com/db47h/bf/compiler and
// github.com/db47h/bf/vm behind a small API:
//
//	p, err := brainfuck.Compile(",+.")
//	if err != nil {
//		// unbalanced loops
//	}
//	out, err := p.Run("A", nil) // out == "B"
//
// Each Program owns its memory and data pointer. They are allocated by Compile
// and are never reset: successive calls to Run on the same Program see the
// state left by the previous call.
package brainfuck

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/db47h/bf/compiler"
	"github.com/db47h/bf/vm"
	"github.com/pkg/errors"
)

// sourceName names the program source in compile errors.
const sourceName = "source"

// OutputFunc receives every value written by a program, along with its
// character representation.
type OutputFunc func(v vm.Cell, r rune)

// Program is a compiled Brainfuck program.
type Program struct {
	cfg  Config
	code vm.Code
	text string
	i    *vm.Instance
}

// Compile compiles Brainfuck source code. The configuration is a copy of the
// current defaults (see Defaults) with opts applied.
//
// The only compile error is an unbalanced loop, in which case the cause of the
// returned error (see errors.Cause) is a compiler.ErrCompile.
func Compile(src string, opts ...Option) (*Program, error) {
	cfg := newConfig(opts)
	log := cfg.Logger

	text := compiler.Sanitize(src)
	sanitized := len(text)
	if cfg.Optimize {
		text = compiler.Optimize(text)
	}
	ins := compiler.Tokenize(text)
	code, err := compiler.Compile(sourceName, ins)
	if err != nil {
		log.Debug().Err(err).Msg("compile failed")
		return nil, errors.Wrap(err, "compile failed")
	}
	i, err := vm.New(code, cfg.vmOptions()...)
	if err != nil {
		return nil, errors.Wrap(err, "vm setup failed")
	}

	var b bytes.Buffer
	if err = compiler.DisassembleAll(code, 0, &b); err != nil {
		return nil, err
	}

	log.Debug().
		Int("source", len(src)).
		Int("sanitized", sanitized).
		Int("optimized", len(text)).
		Int("instructions", len(code)).
		Int("memorySize", cfg.MemorySize).
		Int("bits", cfg.Bits).
		Int("maxInstructions", cfg.MaxInstructions).
		Msg("compiled")

	return &Program{
		cfg:  cfg,
		code: code,
		text: b.String(),
		i:    i,
	}, nil
}

// inputFunc converts the input argument of Run to a vm.InputFunc.
func (p *Program) inputFunc(input interface{}) vm.InputFunc {
	switch in := input.(type) {
	case string:
		return vm.TextInput(in, p.cfg.AllowSpecialChars)
	case []byte:
		return vm.TextInput(string(in), p.cfg.AllowSpecialChars)
	case vm.InputFunc:
		return in
	case func() vm.Cell:
		return in
	case func() rune:
		return func() vm.Cell { return vm.Cell(in()) }
	case func() int:
		return func() vm.Cell { return vm.Cell(in()) }
	}
	return vm.ZeroInput
}

// Run runs the program and returns everything it wrote.
//
// The input argument can be:
//
//	- a string or []byte: the text is consumed one rune at a time, then reads
//	  as 0. If AllowSpecialChars is set, backslash escapes are decoded.
//	- a vm.InputFunc, func() vm.Cell, func() rune or func() int: the function
//	  is called for every input instruction, escapes are not decoded.
//	- anything else, including nil: every input instruction reads 0.
//
// If output is not nil, it is called for every written value.
//
// Reaching the instruction limit is not an error: Run returns whatever was
// written until then.
func (p *Program) Run(input interface{}, output OutputFunc) (string, error) {
	var b strings.Builder
	out := func(v vm.Cell) {
		r := rune(v)
		if v > utf8.MaxRune || !utf8.ValidRune(r) {
			r = utf8.RuneError
		}
		b.WriteRune(r)
		if output != nil {
			output(v, r)
		}
	}
	err := p.i.Run(p.inputFunc(input), out)
	return b.String(), err
}

// String returns a disassembly of the compiled code.
func (p *Program) String() string {
	return p.text
}

// Config returns the configuration the program was compiled with.
func (p *Program) Config() Config {
	return p.cfg
}

// Code returns the compiled VM code.
func (p *Program) Code() vm.Code {
	return p.code
}

// Memory returns the program memory.
func (p *Program) Memory() *vm.Memory {
	return p.i.Mem
}

// Pointer returns the current value of the data pointer.
func (p *Program) Pointer() int {
	return p.i.Ptr
}

// InstructionCount returns the number of instructions executed by the last
// call to Run.
func (p *Program) InstructionCount() int64 {
	return p.i.InstructionCount()
}
