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
	"fmt"
	"io"
	"strconv"

	"github.com/db47h/bf/internal/bfi"
	"github.com/db47h/bf/vm"
)

// Disassemble writes a disassembly of the instruction at position pc in code
// to the specified io.Writer and returns the position of the next instruction
// and any write error.
func Disassemble(code vm.Code, pc int, w io.Writer) (next int, err error) {
	ew, _ := w.(*bfi.ErrWriter)
	if ew == nil {
		ew = bfi.NewErrWriter(w)
	}
	ins := code[pc]
	io.WriteString(ew, ins.Op.String())
	if ins.Op.HasArg() {
		ew.Write([]byte{' '})
		io.WriteString(ew, strconv.Itoa(ins.Arg))
	}
	return pc + 1, ew.Err
}

// DisassembleAll writes a disassembly of all instructions in code to the
// specified io.Writer, one per line. The base argument specifies the real
// address of the first instruction (code[0]). It will return any write error.
func DisassembleAll(code vm.Code, base int, w io.Writer) error {
	ew := bfi.NewErrWriter(w)
	for pc := 0; pc < len(code); {
		fmt.Fprintf(ew, "% 6d\t", base+pc)
		pc, _ = Disassemble(code, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
