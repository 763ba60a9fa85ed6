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

package main

import (
	"encoding/json"

	"github.com/db47h/bf/lang/brainfuck"
	"github.com/db47h/bf/vm"
	"github.com/fatih/color"
	"github.com/hokaccha/go-prettyjson"
	"github.com/pkg/errors"
)

type vmState struct {
	Pointer      int       `json:"pointer"`
	Bits         int       `json:"bits"`
	Instructions int64     `json:"instructions"`
	Memory       []vm.Cell `json:"memory"`
}

// dump writes the program state to stdout, either as JSON or in the raw format
// of brainfuck.Dump. The memory is trimmed after the last non-zero cell.
func (a *app) dump(p *brainfuck.Program, format string) error {
	switch format {
	case "raw":
		if err := brainfuck.Dump(p, a.stdout); err != nil {
			return errors.Wrap(err, "dump failed")
		}
		_, err := a.stdout.Write([]byte{'\n'})
		return err
	case "json":
		st := vmState{
			Pointer:      p.Pointer(),
			Bits:         p.Memory().Bits(),
			Instructions: p.InstructionCount(),
			Memory:       p.Memory().Used(),
		}
		if st.Memory == nil {
			st.Memory = []vm.Cell{}
		}
		var (
			b   []byte
			err error
		)
		if color.NoColor {
			b, err = json.MarshalIndent(st, "", "  ")
		} else {
			b, err = prettyjson.Marshal(st)
		}
		if err != nil {
			return errors.Wrap(err, "dump failed")
		}
		_, err = a.stdout.Write(append(b, '\n'))
		return err
	}
	return errors.Errorf("unknown dump format: %s", format)
}
