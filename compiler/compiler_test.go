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

package compiler_test

import (
	"strings"
	"testing"

	"github.com/db47h/bf/compiler"
	"github.com/db47h/bf/vm"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"", ""},
		{"hello world", ""},
		{"+ -\n[>.<,]", "+-[>.<,]"},
		{"a+b-c[d]e<f>g.h,i", "+-[]<>.,"},
		{"é+€-💩", "+-"},
		{"5+z", "+"},
	}
	for _, test := range tests {
		s := compiler.Sanitize(test.in)
		if s != test.out {
			t.Errorf("Sanitize(%q): expected %q, got %q", test.in, test.out, s)
		}
		if s2 := compiler.Sanitize(s); s2 != s {
			t.Errorf("Sanitize(%q) is not idempotent: %q != %q", test.in, s2, s)
		}
		if strings.Trim(s, compiler.Symbols) != "" {
			t.Errorf("Sanitize(%q): unexpected characters in %q", test.in, s)
		}
	}
}

func TestOptimize(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"+", "+"},
		{"-", "-"},
		{"+++--", "+"},
		{"+++++", "5+"},
		{"-+--", "2-"},
		{"+-", ""},
		{"---+++", ""},
		{">>><<", ">"},
		{">>>>>", "5>"},
		{"<<<<>", "3<"},
		{"><", ""},
		{"+>+", "+>+"},
		{"+>-<+", "+>-<+"},
		{">+-<", ""},
		{"++>>--<<", "2+2>2-2<"},
		{"[-]", "z"},
		{"[+]", "z"},
		{"[+-+]", "z"},
		{"[--]", "[2-]"},
		{"[->+<]", "[->+<]"},
		{"+[[-]]", "+[z]"},
		{"[-][+]", "zz"},
		{"[+-]", "[]"},
		{"[><-]", "z"},
		{",.[]", ",.[]"},
	}
	for _, test := range tests {
		if o := compiler.Optimize(test.in); o != test.out {
			t.Errorf("Optimize(%q): expected %q, got %q", test.in, test.out, o)
		}
	}
}

func TestTokenize(t *testing.T) {
	ins := compiler.Tokenize("5+>12<z[-],.0+3")
	exp := []compiler.Instruction{
		{'+', 5}, {'>', 1}, {'<', 12}, {'z', 1}, {'[', 1}, {'-', 1}, {']', 1}, {',', 1}, {'.', 1}, {'+', 1},
	}
	if len(ins) != len(exp) {
		t.Fatalf("Expected %v, got %v", exp, ins)
	}
	for k := range exp {
		if ins[k] != exp[k] {
			t.Fatalf("Expected %v, got %v", exp, ins)
		}
	}
}

func TestCompile(t *testing.T) {
	code, err := compiler.CompileString("test", "+[->[-]<]>.", true)
	if err != nil {
		t.Fatal(err)
	}
	exp := vm.Code{
		{Op: vm.OpAdd, Arg: 1},
		{Op: vm.OpJz, Arg: 7},
		{Op: vm.OpSub, Arg: 1},
		{Op: vm.OpRight, Arg: 1},
		{Op: vm.OpZero},
		{Op: vm.OpLeft, Arg: 1},
		{Op: vm.OpJnz, Arg: 2},
		{Op: vm.OpRight, Arg: 1},
		{Op: vm.OpOut},
	}
	if len(code) != len(exp) {
		t.Fatalf("Expected %v, got %v", exp, code)
	}
	for k := range exp {
		if code[k] != exp[k] {
			t.Fatalf("@%d: expected %v, got %v", k, exp[k], code[k])
		}
	}
}

func TestCompile_noOptimize(t *testing.T) {
	code, err := compiler.CompileString("test", "++[-]", false)
	if err != nil {
		t.Fatal(err)
	}
	if len(code) != 5 {
		t.Fatalf("Expected 5 instructions, got %d", len(code))
	}
	for _, ins := range code {
		if ins.Op.HasArg() && ins.Op != vm.OpJz && ins.Op != vm.OpJnz && ins.Arg != 1 {
			t.Fatalf("Unexpected count in %v", ins)
		}
	}
}

// check errors. We're not checking the messages, rather that they point at
// the correct place.
func TestCompile_errors(t *testing.T) {
	tests := []struct {
		code string
		pos  []int
		syms string
	}{
		{"[", []int{0}, "["},
		{"]", []int{0}, "]"},
		{"+]+[", []int{1, 3}, "]["},
		{"[[]", []int{0}, "["},
		{"[]]", []int{2}, "]"},
		{"[[[", []int{0, 1, 2}, "[[["},
		{"+++>>[-]]", []int{3}, "]"},
		{"][][", []int{0, 3}, "]["},
	}
	for _, test := range tests {
		_, err := compiler.CompileString("test_errors", test.code, true)
		if err == nil {
			t.Errorf("%s: expected error", test.code)
			continue
		}
		errs, ok := err.(compiler.ErrCompile)
		if !ok {
			t.Errorf("%s: expected ErrCompile, got %T", test.code, err)
			continue
		}
		if len(errs) != len(test.pos) {
			t.Errorf("%s: expected %d errors, got %d: %v", test.code, len(test.pos), len(errs), err)
			continue
		}
		for k, e := range errs {
			if e.Pos != test.pos[k] || e.Sym != test.syms[k] {
				t.Errorf("%s: error %q points to %d (%c), expected %d (%c)", test.code, e.Msg, e.Pos, e.Sym, test.pos[k], test.syms[k])
			}
		}
	}

	// error list is capped
	_, err := compiler.CompileString("test_errors", strings.Repeat("]", 20), true)
	if errs := err.(compiler.ErrCompile); len(errs) != 10 {
		t.Errorf("Expected 10 errors, got %d", len(errs))
	}

	_, err = compiler.Compile("test_errors", []compiler.Instruction{{'+', 1}, {'?', 1}})
	if err == nil || !strings.HasPrefix(err.Error(), "test_errors:1: ") {
		t.Errorf("Unexpected error for unknown instruction: %v", err)
	}
}
