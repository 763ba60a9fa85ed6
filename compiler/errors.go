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
	"bytes"
	"strconv"
)

const maxErrors = 10

// Error is a single compile error. Pos is the index of the offending
// instruction in the instruction stream given to Compile.
type Error struct {
	Name string
	Pos  int
	Sym  byte
	Msg  string
}

func (e *Error) Error() string {
	return e.Name + ":" + strconv.Itoa(e.Pos) + ": " + e.Msg
}

// ErrCompile is the error type returned by Compile. It lists the errors found,
// in order of appearance.
type ErrCompile []*Error

func (e ErrCompile) Error() string {
	var b bytes.Buffer
	for i, err := range e {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(err.Error())
	}
	return b.String()
}
