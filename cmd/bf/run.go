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
	"bufio"
	"io"
	"os"
	"time"

	"github.com/db47h/bf/lang/brainfuck"
	"github.com/db47h/bf/vm"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func (a *app) runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Compile and run a Brainfuck program",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.run,
	}
	f := cmd.Flags()
	f.StringP("code", "c", "", "program source")
	f.StringP("input", "i", "", "program input (default: read from stdin)")
	f.Bool("noraw", false, "disable raw terminal IO")
	f.String("dump", "", "dump pointer and memory upon exit, `format` is json or raw")
	f.Lookup("dump").NoOptDefVal = "json"
	return cmd
}

// input returns the input source for the program. Text from --input or from
// a redirected stdin is passed as a string so that escapes can be decoded.
// An interactive stdin is read one rune at a time.
func (a *app) input(cmd *cobra.Command) (in interface{}, tearDown func(), err error) {
	if cmd.Flags().Changed("input") {
		s, _ := cmd.Flags().GetString("input")
		return s, nil, nil
	}
	if f, ok := a.stdin.(*os.File); ok && isTerminal(f) {
		noRaw, _ := cmd.Flags().GetBool("noraw")
		if !noRaw {
			tearDown, err = setRawIO(f)
			if err != nil {
				a.log.Debug().Err(err).Msg("raw IO not available")
				tearDown = nil
			}
		}
		return interactiveInput(f), tearDown, nil
	}
	b, err := io.ReadAll(a.stdin)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to read input")
	}
	return b, nil, nil
}

// interactiveInput reads from a terminal. CTRL-D reads as 0 and ends input.
func interactiveInput(r io.Reader) vm.InputFunc {
	read := vm.ReaderInput(bufio.NewReader(r))
	eof := false
	return func() vm.Cell {
		if eof {
			return 0
		}
		c := read()
		if c == 4 {
			eof = true
			return 0
		}
		return c
	}
}

func (a *app) run(cmd *cobra.Command, args []string) (err error) {
	src, err := source(cmd, args)
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("dump")
	switch format {
	case "", "json", "raw":
	default:
		return errors.Errorf("unknown dump format: %s", format)
	}
	p, err := brainfuck.Compile(src, a.options()...)
	if err != nil {
		return err
	}
	in, tearDown, err := a.input(cmd)
	if err != nil {
		return err
	}
	if tearDown != nil {
		defer tearDown()
	}

	stdout := bufio.NewWriter(a.stdout)
	defer func() {
		if e := stdout.Flush(); err == nil && e != nil {
			err = errors.Wrap(e, "write failed")
		}
	}()
	var werr error
	write := vm.WriterOutput(stdout, &werr)

	start := time.Now()
	_, err = p.Run(in, func(v vm.Cell, _ rune) { write(v) })
	a.log.Debug().
		Int64("instructions", p.InstructionCount()).
		Dur("elapsed", time.Since(start)).
		Int("pointer", p.Pointer()).
		Msg("run complete")
	if err != nil {
		return err
	}
	if werr != nil {
		return errors.Wrap(werr, "write failed")
	}

	if format != "" {
		if err = stdout.Flush(); err != nil {
			return errors.Wrap(err, "write failed")
		}
		return a.dump(p, format)
	}
	return nil
}
