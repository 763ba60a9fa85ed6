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

package compiler_test

import (
	"fmt"
	"os"

	"github.com/db47h/bf/compiler"
)

func ExampleOptimize() {
	fmt.Println(compiler.Optimize("+++--"))
	fmt.Println(compiler.Optimize("+++++>>>><"))
	fmt.Println(compiler.Optimize("[-]>[+]"))
	fmt.Println(compiler.Optimize("[--]"))

	// Output:
	// +
	// 5+3>
	// z>z
	// [2-]
}

func ExampleDisassembleAll() {
	code, err := compiler.CompileString("example", "++[->+<]>.", true)
	if err != nil {
		panic(err)
	}
	compiler.DisassembleAll(code, 0, os.Stdout)

	// Output:
	//      0	add 2
	//      1	jz 7
	//      2	sub 1
	//      3	right 1
	//      4	add 1
	//      5	left 1
	//      6	jnz 2
	//      7	right 1
	//      8	out
}

func ExampleErrCompile() {
	_, err := compiler.CompileString("example", "+[[]", true)
	fmt.Println(err)
	_, err = compiler.CompileString("example", "]]", true)
	fmt.Println(err)

	// Output:
	// example:1: unmatched '['
	// example:0: unmatched ']'
	// example:1: unmatched ']'
}
