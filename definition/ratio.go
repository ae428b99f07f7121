/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package definition

import (
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Ratio is a ratio-to-base value read from a listing. It accepts a plain
// number or a product/quotient expression over numbers and the constants
// pi and tau, e.g. "pi / 180" or "3.26 * 9460730472580800".
type Ratio float64

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *Ratio) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return errors.Newf("line %d: ratio must be a scalar", value.Line)
	}
	v, err := EvalRatio(value.Value)
	if err != nil {
		return errors.Wrapf(err, "line %d", value.Line)
	}
	*r = Ratio(v)
	return nil
}

// UnmarshalTOML implements toml.Unmarshaler.
func (r *Ratio) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case float64:
		*r = Ratio(v)
	case int64:
		*r = Ratio(v)
	case string:
		f, err := EvalRatio(v)
		if err != nil {
			return err
		}
		*r = Ratio(f)
	default:
		return errors.Newf("ratio: unsupported TOML value of type %T", data)
	}
	return nil
}

// EvalRatio evaluates a ratio expression.
//
// Grammar:
//
//	expr   = factor { ("*" | "/") factor }
//	factor = number | "pi" | "tau" | "(" expr ")"
//
// Operators associate left to right. Underscores inside numbers are ignored.
func EvalRatio(expr string) (float64, error) {
	p := &exprParser{src: expr}
	v, err := p.expr()
	if err != nil {
		return 0, errors.Wrapf(err, "ratio %q", expr)
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return 0, errors.Newf("ratio %q: unexpected %q at offset %d", expr, p.src[p.pos:], p.pos)
	}
	return v, nil
}

type exprParser struct {
	src string
	pos int
}

func (p *exprParser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

func (p *exprParser) expr() (float64, error) {
	v, err := p.factor()
	if err != nil {
		return 0, err
	}
	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			return v, nil
		}
		op := p.src[p.pos]
		if op != '*' && op != '/' {
			return v, nil
		}
		p.pos++
		rhs, err := p.factor()
		if err != nil {
			return 0, err
		}
		if op == '*' {
			v *= rhs
		} else {
			v /= rhs
		}
	}
}

func (p *exprParser) factor() (float64, error) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return 0, errors.New("unexpected end of expression")
	}
	c := p.src[p.pos]
	switch {
	case c == '(':
		p.pos++
		v, err := p.expr()
		if err != nil {
			return 0, err
		}
		p.skipSpace()
		if p.pos >= len(p.src) || p.src[p.pos] != ')' {
			return 0, errors.Newf("missing ')' at offset %d", p.pos)
		}
		p.pos++
		return v, nil
	case isLetter(c):
		start := p.pos
		for p.pos < len(p.src) && isLetter(p.src[p.pos]) {
			p.pos++
		}
		switch name := strings.ToLower(p.src[start:p.pos]); name {
		case "pi":
			return math.Pi, nil
		case "tau":
			return 2 * math.Pi, nil
		default:
			return 0, errors.Newf("unknown constant %q", name)
		}
	default:
		return p.number()
	}
}

func (p *exprParser) number() (float64, error) {
	start := p.pos
	if p.src[p.pos] == '+' || p.src[p.pos] == '-' {
		p.pos++
	}
scan:
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch {
		case c >= '0' && c <= '9', c == '.', c == '_':
			p.pos++
		case c == 'e' || c == 'E':
			p.pos++
			if p.pos < len(p.src) && (p.src[p.pos] == '+' || p.src[p.pos] == '-') {
				p.pos++
			}
		default:
			break scan
		}
	}
	tok := strings.ReplaceAll(p.src[start:p.pos], "_", "")
	if tok == "" {
		return 0, errors.Newf("expected number at offset %d", start)
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, errors.Newf("invalid number %q", tok)
	}
	return v, nil
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
