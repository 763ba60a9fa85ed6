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

import "strings"

// Symbols is the Brainfuck instruction alphabet.
const Symbols = ",.[]<>+-"

// Sanitize returns src stripped of every character that is not a Brainfuck
// instruction. Order is preserved.
func Sanitize(src string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x80 && strings.IndexByte(Symbols, byte(r)) >= 0 {
			return r
		}
		return -1
	}, src)
}
