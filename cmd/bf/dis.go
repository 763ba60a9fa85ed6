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
	"io"

	"github.com/db47h/bf/lang/brainfuck"
	"github.com/spf13/cobra"
)

func (a *app) disCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dis [file]",
		Short: "Disassemble a compiled Brainfuck program",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := source(cmd, args)
			if err != nil {
				return err
			}
			p, err := brainfuck.Compile(src, a.options()...)
			if err != nil {
				return err
			}
			_, err = io.WriteString(a.stdout, p.String())
			return err
		},
	}
	cmd.Flags().StringP("code", "c", "", "program source")
	return cmd
}
