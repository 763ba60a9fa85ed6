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

package vm

import "strconv"

// Opcode identifies a VM instruction.
type Opcode uint8

// VM opcodes. Instructions marked with (n) use the Arg field of Instr as a
// repeat count, OpJz and OpJnz use it as a jump target.
const (
	OpIn    Opcode = iota // read a value into the current cell
	OpOut                 // write the current cell
	OpJz                  // jump to Arg if the current cell is zero
	OpJnz                 // jump to Arg if the current cell is not zero
	OpRight               // (n) move the pointer right
	OpLeft                // (n) move the pointer left
	OpAdd                 // (n) add to the current cell
	OpSub                 // (n) subtract from the current cell
	OpZero                // clear the current cell
)

var opcodes = [...]string{
	"in",
	"out",
	"jz",
	"jnz",
	"right",
	"left",
	"add",
	"sub",
	"zero",
}

func (op Opcode) String() string {
	if int(op) < len(opcodes) {
		return opcodes[op]
	}
	return "op(" + strconv.Itoa(int(op)) + ")"
}

// HasArg returns true if the opcode makes use of the Arg field.
func (op Opcode) HasArg() bool {
	switch op {
	case OpIn, OpOut, OpZero:
		return false
	}
	return true
}

// Instr is a single VM instruction.
type Instr struct {
	Op  Opcode
	Arg int
}

// Code is a compiled program.
type Code []Instr
