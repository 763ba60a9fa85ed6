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

// The bf command line tool compiles and runs Brainfuck programs with the
// package github.com/db47h/bf/lang/brainfuck.
//
// Usage:
//
//	bf run [file] [flags]
//	bf dis [file] [flags]
//	bf version
//
// The program source is read from file, or given with -c:
//
//	bf run -c '++++++++[>++++++++<-]>+.'
//
// run flags:
//
//	-c, --code string
//		  program source
//	--dump format
//		  dump pointer and memory upon exit, format is json or raw (default json)
//	-i, --input string
//		  program input (default: read from stdin)
//	--noraw
//		  disable raw terminal IO
//
// Global flags:
//
//	--allow-special-chars
//		  decode \x, \u, \o, \b and decimal escapes in text input
//	--bits int
//		  cell size in bits (8, 16 or 32) (default 8)
//	--config file
//		  config file (default $HOME/.bf.yaml)
//	--debug
//		  enable debug diagnostics
//	--max-instructions n
//		  stop after executing n instructions (0 for no limit)
//	--memory-size int
//		  number of memory cells (default 30000)
//	--no-color
//		  disable colored output
//	--no-optimize
//		  disable the optimizer
//
// -input: if not set, the program reads stdin. When stdin is a terminal, it is
// switched to raw mode (unless -noraw is given) so that the program gets every
// key as it is typed; CTRL-D ends input. Otherwise stdin is read in full
// before the program starts, and escape sequences are decoded just like with
// -input.
//
// -debug: will print a full stacktrace on error, along with compile and run
// statistics.
//
// -dump: after the program exits, prints the program state. The json format
// holds the data pointer, the cell width, the number of executed instructions
// and the memory up to the last non-zero cell. The raw format is the one of
// brainfuck.Dump: the data pointer and the memory only.
//
// Every global flag can also be set in the config file, using the flag name
// as key, or with an environment variable: BF_ followed by the flag name in
// upper case, dashes replaced by underscores (e.g. BF_MEMORY_SIZE).
package main
