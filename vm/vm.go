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

// Instance represents a Brainfuck VM instance.
type Instance struct {
	PC       int     // Program Counter
	Ptr      int     // Data pointer
	Mem      *Memory // Data memory
	code     Code
	memSize  int
	bits     int
	maxIns   int
	insCount int64
}

// Option interface
type Option func(*Instance) error

// MemorySize sets the number of memory cells. The default is 30000 cells.
func MemorySize(size int) Option {
	return func(i *Instance) error {
		if size <= 0 {
			return errors.Errorf("invalid memory size %d", size)
		}
		i.memSize = size
		return nil
	}
}

// CellBits sets the cell width in bits. Supported values are 8, 16 and 32.
// Any other value is replaced by 8.
func CellBits(bits int) Option {
	return func(i *Instance) error {
		i.bits = ValidCellBits(bits)
		return nil
	}
}

// MaxInstructions limits the number of instructions executed by each call to
// Run. Once n instructions have been executed, Run returns silently. A value of
// 0 disables the limit.
func MaxInstructions(n int) Option {
	return func(i *Instance) error {
		if n < 0 {
			return errors.Errorf("invalid instruction limit %d", n)
		}
		i.maxIns = n
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new VM instance for the given code. The memory is allocated
// here, once, according to the MemorySize and CellBits options.
func New(code Code, opts ...Option) (*Instance, error) {
	i := &Instance{
		code:    code,
		memSize: DefaultMemorySize,
		bits:    DefaultCellBits,
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	i.Mem = NewMemory(i.memSize, i.bits)
	return i, nil
}

// Code returns the code run by the instance.
func (i *Instance) Code() Code {
	return i.code
}

// MaxInstructions returns the configured instruction limit, 0 if unlimited.
func (i *Instance) MaxInstructions() int {
	return i.maxIns
}

// InstructionCount returns the number of instructions executed by the last
// call to Run.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}
