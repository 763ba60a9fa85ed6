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
	"regexp"
	"strconv"
)

var (
	valueRun   = regexp.MustCompile(`[+-]+`)
	pointerRun = regexp.MustCompile(`[<>]+`)
	zeroLoop   = regexp.MustCompile(`\[[+-]\]`)
)

// ZeroSymbol is the symbol used in optimized text for the clear cell
// instruction.
const ZeroSymbol = 'z'

// Optimize rewrites sanitized source into its optimized textual form. Runs of
// + and - are replaced by their net effect, then runs of < and >, then every
// [-] or [+] loop is replaced by ZeroSymbol.
//
// Optimize expects sanitized input: digits or z symbols already present in
// src would be read as counts or clear instructions by Tokenize.
func Optimize(src string) string {
	src = valueRun.ReplaceAllStringFunc(src, func(m string) string {
		return collapse(m, '-', '+')
	})
	src = pointerRun.ReplaceAllStringFunc(src, func(m string) string {
		return collapse(m, '<', '>')
	})
	return zeroLoop.ReplaceAllLiteralString(src, string(ZeroSymbol))
}

// collapse returns the net effect of a run of less and more symbols.
func collapse(run string, less, more byte) string {
	n := 0
	for i := 0; i < len(run); i++ {
		if run[i] == more {
			n++
		} else {
			n--
		}
	}
	return instruction(n, less, more)
}

func instruction(n int, less, more byte) string {
	switch {
	case n == 1:
		return string(more)
	case n > 1:
		return strconv.Itoa(n) + string(more)
	case n == -1:
		return string(less)
	case n < -1:
		return strconv.Itoa(-n) + string(less)
	}
	return ""
}
