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

import (
	"io"
	"unicode/utf8"
)

// InputFunc is the function prototype for input sources. It is called once per
// input instruction and returns the value to store in the current cell.
type InputFunc func() Cell

// OutputFunc is the function prototype for output sinks. It is called once per
// output instruction with the value of the current cell.
type OutputFunc func(v Cell)

// ZeroInput is an InputFunc that always returns 0.
func ZeroInput() Cell { return 0 }

func discard(Cell) {}

// TextInput returns an InputFunc that consumes s one rune at a time and
// returns 0 once s is exhausted.
//
// If escapes is true, a backslash followed by a numeric escape sequence (see
// DecodeEscape) is consumed as a whole and yields the escaped value. A
// backslash that does not start a valid sequence reads as itself.
func TextInput(s string, escapes bool) InputFunc {
	return func() Cell {
		if len(s) == 0 {
			return 0
		}
		r, size := utf8.DecodeRuneInString(s)
		s = s[size:]
		if escapes && r == '\\' {
			if v, n, ok := DecodeEscape(s); ok {
				s = s[n:]
				return v
			}
		}
		return Cell(r)
	}
}

// runeReaderWrapper wraps a basic reader into a io.RuneReader
type runeReaderWrapper struct {
	io.Reader
}

func (r *runeReaderWrapper) ReadRune() (ret rune, size int, err error) {
	var (
		b = [utf8.UTFMax]byte{}
		i = 0
	)
	for i < utf8.UTFMax && err == nil && !utf8.FullRune(b[:i]) {
		var n int
		n, err = r.Reader.Read(b[i : i+1])
		i += n
	}
	if i == 0 {
		return 0, 0, err
	}
	ret, size = rune(b[0]), 1
	if ret >= utf8.RuneSelf {
		ret, size = utf8.DecodeRune(b[:i])
	}
	return ret, size, err
}

func newRuneReader(r io.Reader) io.RuneReader {
	switch rr := r.(type) {
	case nil:
		return nil
	case io.RuneReader:
		return rr
	default:
		return &runeReaderWrapper{r}
	}
}

// ReaderInput returns an InputFunc that reads runes from r. Read errors,
// including io.EOF, read as 0. No escape decoding is done.
//
// Unless r implements io.RuneReader, runes are read one byte at a time, which
// makes ReaderInput suitable for interactive use.
func ReaderInput(r io.Reader) InputFunc {
	rr := newRuneReader(r)
	if rr == nil {
		return ZeroInput
	}
	return func() Cell {
		c, size, _ := rr.ReadRune()
		if size == 0 {
			return 0
		}
		return Cell(c)
	}
}

type flusher interface {
	Flush() error
}

// WriterOutput returns an OutputFunc that writes each value as a UTF-8 encoded
// rune to w. Values that are not valid code points are written as
// utf8.RuneError. If w has a Flush method, it is called after each newline.
//
// Write errors are stored in *err, if err is not nil. Once an error occurs,
// subsequent values are dropped.
func WriterOutput(w io.Writer, err *error) OutputFunc {
	var (
		b [utf8.UTFMax]byte
		e error
	)
	return func(v Cell) {
		if e != nil {
			return
		}
		r := rune(v)
		if v > utf8.MaxRune || !utf8.ValidRune(r) {
			r = utf8.RuneError
		}
		l := utf8.EncodeRune(b[:], r)
		_, e = w.Write(b[:l])
		if e == nil && r == '\n' {
			if f, ok := w.(flusher); ok {
				e = f.Flush()
			}
		}
		if e != nil && err != nil {
			*err = e
		}
	}
}
