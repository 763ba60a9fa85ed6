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

// Package compiler translates Brainfuck source code into VM code for package
// github.com/db47h/bf/vm.
//
// Compilation goes through four stages, each available on its own:
//
//	Sanitize	drop every character that is not one of ,.[]<>+-
//	Optimize	collapse runs of +- and <> and fuse the [-] / [+] idiom
//	Tokenize	split the optimized text into counted Instructions
//	Compile		generate vm.Code and resolve loop jump targets
//
// The optimizer works on text. A run of cell or pointer instructions is
// replaced by its net effect, written as an optional decimal count followed by
// the instruction symbol:
//
//	+++--		+
//	+++++		5+
//	-+--		2-
//	>><<		(nothing)
//	<<<<>		3<
//
// Once runs are collapsed, a loop made of a single + or - is replaced by the z
// symbol, which clears the current cell in one instruction:
//
//	[-]		z
//	[+-+]		z
//	[2-]		[2-]	( not fused )
//
// Instructions map to VM opcodes as follows:
//
//	symbol	opcode	arg	description
//	------	------	---	------------------------------------------------
//	,	in		read a value into the current cell
//	.	out		write the current cell
//	[	jz	✓	jump past the matching ] if the current cell is 0
//	]	jnz	✓	jump after the matching [ if the current cell is not 0
//	>	right	✓	move the pointer right by arg cells
//	<	left	✓	move the pointer left by arg cells
//	+	add	✓	add arg to the current cell
//	-	sub	✓	subtract arg from the current cell
//	z	zero		clear the current cell
//
// The only compile error is an unbalanced loop. Compile reports every
// unmatched bracket it finds (up to 10) in an ErrCompile.
package compiler
