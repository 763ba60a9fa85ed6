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

// Cell is the raw type stored in a memory location.
type Cell uint32

// DefaultMemorySize is the number of cells allocated when no MemorySize
// option is given.
const DefaultMemorySize = 30000

// DefaultCellBits is the default cell width in bits.
const DefaultCellBits = 8

// ValidCellBits returns bits if it is a supported cell width (8, 16 or 32) and
// DefaultCellBits otherwise.
func ValidCellBits(bits int) int {
	switch bits {
	case 8, 16, 32:
		return bits
	}
	return DefaultCellBits
}

// Memory is the VM data memory. All values written through Set, Add and Sub
// are truncated to the configured cell width.
type Memory struct {
	cells []Cell
	bits  int
	mask  Cell
}

// NewMemory returns a zeroed memory of size cells of the given width. An
// unsupported width silently falls back to 8 bits.
func NewMemory(size, bits int) *Memory {
	bits = ValidCellBits(bits)
	return &Memory{
		cells: make([]Cell, size),
		bits:  bits,
		mask:  Cell(uint64(1)<<uint(bits) - 1),
	}
}

// Len returns the number of cells.
func (m *Memory) Len() int { return len(m.cells) }

// Bits returns the cell width in bits.
func (m *Memory) Bits() int { return m.bits }

// Get returns the value of cell i.
func (m *Memory) Get(i int) Cell { return m.cells[i] }

// Set stores v in cell i.
func (m *Memory) Set(i int, v Cell) { m.cells[i] = v & m.mask }

// Add adds n to cell i, modulo 2^bits.
func (m *Memory) Add(i int, n int) { m.cells[i] = (m.cells[i] + Cell(n)) & m.mask }

// Sub subtracts n from cell i, modulo 2^bits.
func (m *Memory) Sub(i int, n int) { m.cells[i] = (m.cells[i] - Cell(n)) & m.mask }

// Cells returns the underlying cell slice. Values written directly to the
// slice are not masked.
func (m *Memory) Cells() []Cell { return m.cells }

// Used returns the cells up to and including the last non-zero one.
func (m *Memory) Used() []Cell {
	end := len(m.cells)
	for end > 0 && m.cells[end-1] == 0 {
		end--
	}
	return m.cells[:end]
}

// wrap brings p back into [0, size).
func wrap(p, size int) int {
	if p >= size || p < 0 {
		p %= size
		if p < 0 {
			p += size
		}
	}
	return p
}
