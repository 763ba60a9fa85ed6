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

package brainfuck

import (
	"io"

	"github.com/db47h/bf/internal/bfi"
	"github.com/db47h/bf/vm"
)

// Dump dumps the program's data pointer and memory to the specified io.Writer.
// Trailing zero cells are omitted.
//
// The output is the pointer value prefixed with '\x1C', followed by the memory
// cells separated by spaces and prefixed with '\x1D'.
func Dump(p *Program, w io.Writer) error {
	ew := bfi.NewErrWriter(w)
	ew.Write([]byte{'\x1C'})
	ew.WriteCells([]vm.Cell{vm.Cell(p.Pointer())})
	ew.Write([]byte{'\x1D'})
	return ew.WriteCells(p.Memory().Used())
}
