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

package compiler

import (
	"strconv"

	"github.com/db47h/bf/vm"
)

// Instruction is a Brainfuck symbol with a repeat count. Sym is one of the
// eight Brainfuck symbols or ZeroSymbol.
type Instruction struct {
	Sym   byte
	Count int
}

func (i Instruction) String() string {
	if i.Count == 1 {
		return string(i.Sym)
	}
	return strconv.Itoa(i.Count) + string(i.Sym)
}

// Tokenize splits optimized text into Instructions. Each instruction is an
// optional decimal count followed by a symbol; a missing or zero count means 1.
// Trailing digits with no symbol are ignored.
func Tokenize(text string) []Instruction {
	var (
		ins   []Instruction
		start = 0
	)
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c >= '0' && c <= '9' {
			continue
		}
		n, err := strconv.Atoi(text[start:i])
		if err != nil || n <= 0 {
			n = 1
		}
		ins = append(ins, Instruction{c, n})
		start = i + 1
	}
	return ins
}

type loop struct {
	pc  int // address of the jz instruction
	pos int // index of the [ in the instruction stream
}

type generator struct {
	name string
	code vm.Code
	open []loop // unmatched jz instructions
	errs ErrCompile
}

func (g *generator) write(op vm.Opcode, arg int) {
	g.code = append(g.code, vm.Instr{Op: op, Arg: arg})
}

func (g *generator) error(pos int, sym byte, msg string) {
	if len(g.errs) < maxErrors {
		g.errs = append(g.errs, &Error{Name: g.name, Pos: pos, Sym: sym, Msg: msg})
	}
}

// Compile generates VM code for the given instructions.
//
// The name parameter is used only in error messages to name the source of the
// error. If the source is a file, name should be the file name.
//
// The returned error, if not nil, is an ErrCompile value that will contain up
// to 10 entries.
func Compile(name string, ins []Instruction) (vm.Code, error) {
	g := &generator{name: name, code: make(vm.Code, 0, len(ins))}
	for pos, in := range ins {
		pc := len(g.code)
		switch in.Sym {
		case ',':
			g.write(vm.OpIn, 0)
		case '.':
			g.write(vm.OpOut, 0)
		case '[':
			g.open = append(g.open, loop{pc, pos})
			g.write(vm.OpJz, 0) // patched by the matching ]
		case ']':
			if len(g.open) == 0 {
				g.error(pos, in.Sym, "unmatched ']'")
				continue
			}
			o := g.open[len(g.open)-1].pc
			g.open = g.open[:len(g.open)-1]
			g.code[o].Arg = pc + 1
			g.write(vm.OpJnz, o+1)
		case '>':
			g.write(vm.OpRight, in.Count)
		case '<':
			g.write(vm.OpLeft, in.Count)
		case '+':
			g.write(vm.OpAdd, in.Count)
		case '-':
			g.write(vm.OpSub, in.Count)
		case ZeroSymbol:
			g.write(vm.OpZero, 0)
		default:
			g.error(pos, in.Sym, "unknown instruction "+strconv.QuoteRune(rune(in.Sym)))
		}
	}
	for _, l := range g.open {
		g.error(l.pos, '[', "unmatched '['")
	}
	if len(g.errs) > 0 {
		return nil, g.errs
	}
	return g.code, nil
}

// CompileString runs the whole pipeline on Brainfuck source code: Sanitize,
// then Optimize if optimize is true, Tokenize and Compile.
func CompileString(name, src string, optimize bool) (vm.Code, error) {
	text := Sanitize(src)
	if optimize {
		text = Optimize(text)
	}
	return Compile(name, Tokenize(text))
}
