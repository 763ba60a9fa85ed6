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

import "github.com/pkg/errors"

// Run executes the code from the first instruction until the program counter
// runs past the last instruction or the instruction limit is reached. Neither
// case is an error.
//
// in is called for each input instruction; a nil in reads zeros. out receives
// every output value; a nil out discards them.
//
// The memory and data pointer are left as the program left them, so that a
// subsequent call to Run resumes with the same state. If an error occurs, the
// PC will point to the instruction that triggered the error.
func (i *Instance) Run(in InputFunc, out OutputFunc) (err error) {
	defer func() {
		if e := recover(); e != nil {
			switch e := e.(type) {
			case error:
				err = errors.Wrapf(e, "recovered error @pc=%d/%d, ptr %d/%d", i.PC, len(i.code), i.Ptr, i.Mem.Len())
			default:
				panic(e)
			}
		}
	}()
	if in == nil {
		in = ZeroInput
	}
	if out == nil {
		out = discard
	}
	var (
		code   = i.code
		mem    = i.Mem
		size   = mem.Len()
		budget = i.maxIns
		limit  = budget > 0
	)
	i.PC = 0
	i.insCount = 0
	for i.PC < len(code) {
		if limit {
			if budget == 0 {
				return nil
			}
			budget--
		}
		ins := code[i.PC]
		switch ins.Op {
		case OpIn:
			mem.Set(i.Ptr, in())
			i.PC++
		case OpOut:
			out(mem.Get(i.Ptr))
			i.PC++
		case OpJz:
			if mem.Get(i.Ptr) == 0 {
				i.PC = ins.Arg
			} else {
				i.PC++
			}
		case OpJnz:
			if mem.Get(i.Ptr) != 0 {
				i.PC = ins.Arg
			} else {
				i.PC++
			}
		case OpRight:
			i.Ptr = wrap(i.Ptr+ins.Arg, size)
			i.PC++
		case OpLeft:
			i.Ptr = wrap(i.Ptr-ins.Arg, size)
			i.PC++
		case OpAdd:
			mem.Add(i.Ptr, ins.Arg)
			i.PC++
		case OpSub:
			mem.Sub(i.Ptr, ins.Arg)
			i.PC++
		case OpZero:
			mem.Set(i.Ptr, 0)
			i.PC++
		default:
			return errors.Errorf("invalid opcode %v @pc=%d", ins.Op, i.PC)
		}
		i.insCount++
	}
	return nil
}
