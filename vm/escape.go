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

import "regexp"

// escape grammars, in order of precedence. The first non-empty submatch holds
// the digits.
var escapes = [...]struct {
	match *regexp.Regexp
	base  Cell
}{
	{regexp.MustCompile(`^(?:x([0-9a-fA-F]+)|u([0-9a-fA-F]{4}))`), 16}, // \x7e, \x7E, \u007e
	{regexp.MustCompile(`^o([0-7]+)`), 8},                              // \o176
	{regexp.MustCompile(`^b([01]+)`), 2},                               // \b1111110
	{regexp.MustCompile(`^([0-9]+)`), 10},                              // \126
}

// DecodeEscape decodes the numeric escape sequence at the start of s, s being
// the text that immediately follows a backslash. The supported forms are:
//
//	xHH...	hexadecimal, any number of digits
//	uHHHH	hexadecimal, exactly 4 digits
//	oOO...	octal
//	bBB...	binary
//	DD...	decimal
//
// Digit runs are greedy. It returns the decoded value, the number of bytes of s
// that make up the sequence and true, or false if s does not start with a valid
// sequence. Values that do not fit in a Cell wrap around modulo 2^32.
func DecodeEscape(s string) (v Cell, n int, ok bool) {
	for _, e := range escapes {
		m := e.match.FindStringSubmatchIndex(s)
		if m == nil {
			continue
		}
		for g := 2; g < len(m); g += 2 {
			if m[g] < 0 {
				continue
			}
			return parseDigits(s[m[g]:m[g+1]], e.base), m[1], true
		}
	}
	return 0, 0, false
}

// parseDigits parses digits, already validated by the grammar, in the given
// base.
func parseDigits(digits string, base Cell) (v Cell) {
	for i := 0; i < len(digits); i++ {
		var d Cell
		switch c := digits[i]; {
		case c >= '0' && c <= '9':
			d = Cell(c - '0')
		case c >= 'a' && c <= 'f':
			d = Cell(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			d = Cell(c - 'A' + 10)
		}
		v = v*base + d
	}
	return v
}
