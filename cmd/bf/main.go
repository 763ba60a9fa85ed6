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
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/db47h/bf/lang/brainfuck"
	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

// app holds the state shared by all commands.
type app struct {
	v      *viper.Viper
	log    zerolog.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{
		v:      viper.New(),
		log:    zerolog.Nop(),
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
}

// initConfig loads the config file, if any, and sets up logging.
func (a *app) initConfig() error {
	v := a.v
	v.SetEnvPrefix("bf")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile := v.GetString("config"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigName(".bf")
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return errors.Wrap(err, "failed to read config file")
		}
	}

	if v.GetBool("no-color") {
		color.NoColor = true
	}
	if v.GetBool("debug") {
		a.log = zerolog.New(zerolog.ConsoleWriter{Out: a.stderr, NoColor: color.NoColor}).
			With().Timestamp().Logger().
			Level(zerolog.DebugLevel)
		if f := v.ConfigFileUsed(); f != "" {
			a.log.Debug().Str("file", f).Msg("config loaded")
		}
	}
	return nil
}

// options returns the compile options set from flags, environment and config
// file.
func (a *app) options() []brainfuck.Option {
	v := a.v
	return []brainfuck.Option{
		brainfuck.MemorySize(v.GetInt("memory-size")),
		brainfuck.Bits(v.GetInt("bits")),
		brainfuck.MaxInstructions(v.GetInt("max-instructions")),
		brainfuck.AllowSpecialChars(v.GetBool("allow-special-chars")),
		brainfuck.Optimize(!v.GetBool("no-optimize")),
		brainfuck.Logger(a.log),
	}
}

func (a *app) rootCmd() *cobra.Command {
	def := brainfuck.Defaults()
	cmd := &cobra.Command{
		Use:           "bf",
		Short:         "Optimizing Brainfuck compiler and virtual machine",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig()
		},
	}
	cmd.SetIn(a.stdin)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	f := cmd.PersistentFlags()
	f.String("config", "", "config `file` (default $HOME/.bf.yaml)")
	f.Int("memory-size", def.MemorySize, "number of memory cells")
	f.Int("bits", def.Bits, "cell size in bits (8, 16 or 32)")
	f.Int("max-instructions", def.MaxInstructions, "stop after executing `n` instructions (0 for no limit)")
	f.Bool("allow-special-chars", def.AllowSpecialChars, "decode \\x, \\u, \\o, \\b and decimal escapes in text input")
	f.Bool("no-optimize", !def.Optimize, "disable the optimizer")
	f.Bool("debug", false, "enable debug diagnostics")
	f.Bool("no-color", false, "disable colored output")
	if err := a.v.BindPFlags(f); err != nil {
		panic(err)
	}

	cmd.AddCommand(a.runCmd(), a.disCmd(), a.versionCmd())
	return cmd
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "bf %s\n", version)
		},
	}
}

// source returns the program source from the --code flag or the file named by
// the first argument.
func source(cmd *cobra.Command, args []string) (string, error) {
	codeSet := cmd.Flags().Changed("code")
	switch {
	case codeSet && len(args) > 0:
		return "", errors.New("multiple program sources specified")
	case codeSet:
		return cmd.Flags().GetString("code")
	case len(args) > 0:
		b, err := os.ReadFile(args[0])
		if err != nil {
			return "", errors.Wrap(err, "failed to read program")
		}
		return string(b), nil
	}
	return "", errors.New("no program provided")
}

// atExit prints err, if any, and returns the process exit status.
func (a *app) atExit(err error) int {
	if err == nil {
		return 0
	}
	red := color.New(color.FgRed).SprintFunc()
	if a.v.GetBool("debug") {
		fmt.Fprintf(a.stderr, "%s\n", red(fmt.Sprintf("%+v", err)))
	} else {
		fmt.Fprintf(a.stderr, "%s\n", red(err.Error()))
	}
	return 1
}

func (a *app) execute(args []string) int {
	cmd := a.rootCmd()
	cmd.SetArgs(args)
	return a.atExit(cmd.Execute())
}

func main() {
	a := newApp(os.Stdin, os.Stdout, os.Stderr)
	os.Exit(a.execute(os.Args[1:]))
}
