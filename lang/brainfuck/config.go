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

package brainfuck

import (
	"sync"

	"github.com/db47h/bf/vm"
	"github.com/rs/zerolog"
)

// Config holds the compile time settings of a Program. Once a Program is
// compiled, changing the Config it was built from has no effect on it.
type Config struct {
	MemorySize        int  // number of memory cells, must be > 0
	Bits              int  // cell width: 8, 16 or 32
	MaxInstructions   int  // instruction budget per Run call, 0 for unlimited
	AllowSpecialChars bool // decode backslash escapes in text input
	Optimize          bool // run the optimizer passes

	Logger zerolog.Logger // receives compile diagnostics at debug level
}

// Option is a configuration function for Compile and SetDefaults.
type Option func(*Config)

// MemorySize sets the number of memory cells. The default is 30000.
func MemorySize(n int) Option {
	return func(c *Config) { c.MemorySize = n }
}

// Bits sets the cell width in bits. Valid values are 8, 16 and 32; any other
// value is replaced by 8. The default is 8.
func Bits(bits int) Option {
	return func(c *Config) { c.Bits = vm.ValidCellBits(bits) }
}

// MaxInstructions sets the number of instructions a single Run call may
// execute before being stopped. The default, 0, means no limit.
func MaxInstructions(n int) Option {
	return func(c *Config) { c.MaxInstructions = n }
}

// AllowSpecialChars enables the decoding of numeric escape sequences in text
// input. See vm.DecodeEscape for the supported forms. The default is false.
func AllowSpecialChars(allow bool) Option {
	return func(c *Config) { c.AllowSpecialChars = allow }
}

// Optimize enables or disables the optimizer. When disabled, every source
// symbol compiles to exactly one VM instruction. The default is true.
func Optimize(optimize bool) Option {
	return func(c *Config) { c.Optimize = optimize }
}

// Logger sets the logger used for compile diagnostics. The default discards
// everything.
func Logger(l zerolog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// process wide defaults, see Defaults and SetDefaults.
var (
	defaultsMu sync.Mutex
	defaults   = Config{
		MemorySize: vm.DefaultMemorySize,
		Bits:       vm.DefaultCellBits,
		Optimize:   true,
		Logger:     zerolog.Nop(),
	}
)

// Defaults returns a copy of the current default configuration.
func Defaults() Config {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	return defaults
}

// SetDefaults applies the given options to the default configuration used by
// Compile. Fields not touched by opts keep their current value. Programs
// compiled before the call are not affected.
func SetDefaults(opts ...Option) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	for _, opt := range opts {
		opt(&defaults)
	}
}

func newConfig(opts []Option) Config {
	c := Defaults()
	for _, opt := range opts {
		opt(&c)
	}
	c.Bits = vm.ValidCellBits(c.Bits)
	return c
}

func (c *Config) vmOptions() []vm.Option {
	return []vm.Option{
		vm.MemorySize(c.MemorySize),
		vm.CellBits(c.Bits),
		vm.MaxInstructions(c.MaxInstructions),
	}
}
