// Copyright 2017 The C99 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lexer is a small, hand-driven re-tokenizer standing in for
// the compiler's real lexical tokenizer collaborator (spec.md 6): it
// recognizes the universe of preprocessing tokens needed by this
// engine (identifiers, numbers as PREP_NUMBER, strings, newline,
// single-byte punctuators and '##') over a byte buffer. Other
// multi-character punctuators such as "->" come out as one token per
// byte. Positions are
// tracked with github.com/cznic/golex/lex.Char the same way
// internal/c99's trigraphs/lexer ReadChar methods do, even though this
// scanner is hand-written rather than golex-generated: running golex
// requires the code-generation tool, not just the library.
package lexer

import (
	"fmt"
	"go/token"

	"github.com/cznic/golex/lex"

	"github.com/cznic/ppmacro/internal/intern"
	tok "github.com/cznic/ppmacro/internal/token"
)

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentCont(b byte) bool { return isIdentStart(b) || (b >= '0' && b <= '9') }

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// char wraps b at position i the way internal/c99's ReadChar does,
// purely to thread a position through the scan loop for diagnostics.
func char(i int, b byte) lex.Char { return lex.NewChar(token.Pos(i+1), rune(b)) }

// Tokenize scans exactly one preprocessing token from the start of
// buf and returns it together with the number of bytes consumed. It
// implements the "tokenize(ptr) -> (Token, end_ptr)" collaborator
// interface of spec.md 6.
func Tokenize(buf []byte) (tok.Token, int, error) {
	if len(buf) == 0 {
		return tok.Token{Kind: tok.END}, 0, nil
	}

	c0 := char(0, buf[0])
	b := buf[0]

	switch {
	case isIdentStart(b):
		n := 1
		for n < len(buf) && isIdentCont(buf[n]) {
			n++
		}
		return tok.Ident(intern.NewBytes(buf[:n])), n, nil

	case isDigit(b) || (b == '.' && len(buf) > 1 && isDigit(buf[1])):
		n := 1
		for n < len(buf) {
			switch c := buf[n]; {
			case c == '.' || isIdentCont(c):
				n++
			case (c == '+' || c == '-') && n > 0 &&
				(buf[n-1] == 'e' || buf[n-1] == 'E' || buf[n-1] == 'p' || buf[n-1] == 'P'):
				n++
			default:
				goto doneNum
			}
		}
	doneNum:
		return tok.Token{Kind: tok.PREP_NUMBER, Str: intern.NewBytes(buf[:n])}, n, nil

	case b == '"':
		n := 1
		for n < len(buf) {
			if buf[n] == '\\' && n+1 < len(buf) {
				n += 2
				continue
			}
			if buf[n] == '"' {
				n++
				break
			}
			n++
		}
		if n > len(buf) || buf[n-1] != '"' {
			return tok.Token{}, n, fmt.Errorf("%v: unterminated string literal", c0.Pos())
		}
		return tok.Str(intern.NewBytes(buf[:n])), n, nil

	case b == '#' && len(buf) > 1 && buf[1] == '#':
		return tok.Token{Kind: tok.TOKEN_PASTE}, 2, nil

	case b == '\n':
		return tok.Token{Kind: tok.NEWLINE}, 1, nil

	default:
		return tok.Punct(rune(b)), 1, nil
	}
}

// TokenizeOne scans buf and requires that it produce exactly one
// token consuming every byte; this is the shape PasteOperator needs
// when re-tokenizing the concatenation of two token spellings
// (spec.md 4.D).
func TokenizeOne(buf []byte) (tok.Token, error) {
	t, n, err := Tokenize(buf)
	if err != nil {
		return tok.Token{}, err
	}
	if n != len(buf) {
		return tok.Token{}, fmt.Errorf("invalid token resulting from pasting: %q", buf)
	}
	return t, nil
}

// TokenizeAll scans every token out of buf, for use by tests and by
// the builtin-definition bootstrap helper.
func TokenizeAll(buf []byte) ([]tok.Token, error) {
	var out []tok.Token
	ws := 0
	for len(buf) > 0 {
		if buf[0] == ' ' || buf[0] == '\t' {
			ws++
			buf = buf[1:]
			continue
		}
		t, n, err := Tokenize(buf)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			break
		}
		t.LeadingWhitespace = ws
		ws = 0
		out = append(out, t)
		buf = buf[n:]
	}
	return out, nil
}
