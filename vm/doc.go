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

// Package vm implements a virtual machine for Brainfuck programs.
//
// The VM runs vm.Code, a flat list of instructions produced by package
// github.com/db47h/bf/compiler. Loops are compiled to conditional jumps whose
// targets are resolved at compile time, so the run loop never has to scan for
// matching brackets.
//
// An Instance owns a fixed size memory of Cells and a data pointer. Both
// survive successive calls to Run: a program run twice on the same Instance
// starts the second time with the memory and pointer left by the first run.
// Only the program counter and the instruction budget are reset. Use a new
// Instance when isolated runs are needed.
//
// Cells are stored as uint32 and masked to the configured width (8, 16 or 32
// bits). Arithmetic on a cell wraps modulo 2^bits and pointer moves wrap
// around the memory bounds, whatever the displacement.
//
// Input and output go through plain function values (InputFunc and
// OutputFunc). TextInput builds an InputFunc that reads from a string and can
// optionally decode backslash escapes (see DecodeEscape) to inject arbitrary
// values.
//
// An Instance is not safe for concurrent use.
package vm
