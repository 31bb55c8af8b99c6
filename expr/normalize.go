// SPDX-License-Identifier: MIT

package expr

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	opPowerAlias  = "^"
	opPowerNative = "**"
	mathQualifier = "math."
	eqSign        = "="
	systemSep     = ";"
)

// identRe matches identifier candidates. Matches glued to a preceding digit
// belong to a numeric literal and are filtered out by identifiers.
var identRe = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)

// Normalize rewrites a user formula into the native grammar form:
//   - "^" becomes "**";
//   - a "math." qualifier before a function name is dropped;
//   - "LHS = RHS" becomes "(LHS) - (RHS)";
//   - unary minus becomes an explicit "(0 - operand)" spanning the whole
//     power chain, so -x**2 means -(x**2); unary plus is dropped;
//   - a chained exponent is grouped to the right: 2**3**2 is 2**(3**2);
//   - numeric literals are re-emitted in plain decimal form (1e-3 → 0.001).
//
// Errors:
//   - ErrEmpty for blank input or a blank side;
//   - ErrSyntax when more than one "=" is present or a literal is malformed.
func Normalize(src string) (string, error) {
	s := strings.TrimSpace(src)
	if s == "" {
		return "", &ParseError{Expr: src, Err: ErrEmpty}
	}
	s = strings.ReplaceAll(s, opPowerAlias, opPowerNative)
	s = strings.ReplaceAll(s, mathQualifier, "")

	if lhs, rhs, found := strings.Cut(s, eqSign); found {
		if strings.Contains(rhs, eqSign) {
			return "", &ParseError{Expr: src, Detail: "more than one '='", Err: ErrSyntax}
		}
		lhs, rhs = strings.TrimSpace(lhs), strings.TrimSpace(rhs)
		if lhs == "" || rhs == "" {
			return "", &ParseError{Expr: src, Detail: "empty side of '='", Err: ErrEmpty}
		}
		s = "(" + lhs + ") - (" + rhs + ")"
	}

	lx, err := lex(s)
	if err != nil {
		return "", &ParseError{Expr: src, Detail: err.Error(), Err: ErrSyntax}
	}
	w := rewriter{toks: lx}
	w.sequence(false)

	return strings.Join(w.out, " "), nil
}

// SplitSystem splits a ";"-separated list of equations, trimming blanks and
// dropping empty segments.
func SplitSystem(src string) []string {
	parts := strings.Split(src, systemSep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}

// Display renders a formula for people: "**" as "^" and the "*" of an
// implied product (a number times a name or a group) removed, so 3*x reads
// 3x while 2*3 stays as typed.
func Display(src string) string {
	s := strings.ReplaceAll(src, opPowerNative, opPowerAlias)
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '*' && impliedProduct(s, i) {
			for len(out) > 0 && out[len(out)-1] == ' ' {
				out = out[:len(out)-1]
			}
			for i+1 < len(s) && s[i+1] == ' ' {
				i++
			}
			continue
		}
		out = append(out, s[i])
	}

	return string(out)
}

// impliedProduct reports whether the "*" at i sits between a plain numeric
// literal and an identifier or "(".
func impliedProduct(s string, i int) bool {
	j := i - 1
	for j >= 0 && s[j] == ' ' {
		j--
	}
	if j < 0 || !isDigit(s[j]) {
		return false
	}
	for j >= 0 && (isDigit(s[j]) || s[j] == '.') {
		j--
	}
	if j >= 0 && isIdentStart(s[j]) {
		return false // x2, 1e3
	}
	if j > 0 && (s[j] == '+' || s[j] == '-') && (s[j-1] == 'e' || s[j-1] == 'E') {
		return false // 1e-3
	}
	k := i + 1
	for k < len(s) && s[k] == ' ' {
		k++
	}

	return k < len(s) && (isIdentStart(s[k]) || s[k] == '(')
}

// identifiers lists identifier candidates of s in order of appearance.
func identifiers(s string) []string {
	var out []string
	for _, loc := range identRe.FindAllStringIndex(s, -1) {
		if loc[0] > 0 {
			prev := s[loc[0]-1]
			if prev >= '0' && prev <= '9' || prev == '.' {
				continue // suffix of a numeric literal, left to the parser
			}
		}
		out = append(out, s[loc[0]:loc[1]])
	}

	return out
}

// ---------- lexing ----------

type lexKind int

const (
	lexNumber lexKind = iota
	lexIdent
	lexOp // operators and any other punctuation
	lexOpen
	lexClose
)

type lexeme struct {
	kind lexKind
	text string
}

// lex splits s into lexemes. It never rejects punctuation: anything that is
// not part of the grammar is passed on and refused by the later gates.
func lex(s string) ([]lexeme, error) {
	var out []lexeme
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case isDigit(c) || c == '.' && i+1 < len(s) && isDigit(s[i+1]):
			j := scanNumber(s, i)
			v, err := strconv.ParseFloat(s[i:j], 64)
			if err != nil {
				return nil, err
			}
			out = append(out, lexeme{lexNumber, strconv.FormatFloat(v, 'f', -1, 64)})
			i = j
		case isIdentStart(c):
			j := i + 1
			for j < len(s) && (isIdentStart(s[j]) || isDigit(s[j])) {
				j++
			}
			out = append(out, lexeme{lexIdent, s[i:j]})
			i = j
		case c == '(':
			out = append(out, lexeme{lexOpen, "("})
			i++
		case c == ')':
			out = append(out, lexeme{lexClose, ")"})
			i++
		case c == '*' && i+1 < len(s) && s[i+1] == '*':
			out = append(out, lexeme{lexOp, opPowerNative})
			i += 2
		default:
			out = append(out, lexeme{lexOp, string(c)})
			i++
		}
	}

	return out, nil
}

// scanNumber returns the end of the literal starting at i: digits, one
// fraction and an optional exponent.
func scanNumber(s string, i int) int {
	j := i
	for j < len(s) && isDigit(s[j]) {
		j++
	}
	if j < len(s) && s[j] == '.' {
		j++
		for j < len(s) && isDigit(s[j]) {
			j++
		}
	}
	if j < len(s) && (s[j] == 'e' || s[j] == 'E') {
		k := j + 1
		if k < len(s) && (s[k] == '+' || s[k] == '-') {
			k++
		}
		if k < len(s) && isDigit(s[k]) {
			for k < len(s) && isDigit(s[k]) {
				k++
			}
			j = k
		}
	}

	return j
}

func isDigit(c byte) bool      { return c >= '0' && c <= '9' }
func isIdentStart(c byte) bool { return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }

// ---------- unary minus rewriting ----------

// rewriter copies lexemes to out, replacing every unary minus by an explicit
// subtraction from zero and dropping every unary plus. Grammar used for the
// operand extent:
//
//	unary   := ('-' | '+') unary | power
//	power   := primary [ '**' unary ]
//	primary := number | ident [ group ] | group
type rewriter struct {
	toks []lexeme
	pos  int
	out  []string
}

func (w *rewriter) peek() (lexeme, bool) {
	if w.pos >= len(w.toks) {
		return lexeme{}, false
	}

	return w.toks[w.pos], true
}

func (w *rewriter) emit(s ...string) { w.out = append(w.out, s...) }

// sequence copies lexemes until the end or, when inGroup, until the closing
// parenthesis of the current group (left unconsumed).
func (w *rewriter) sequence(inGroup bool) {
	unaryPos := true
	for {
		t, ok := w.peek()
		if !ok {
			return
		}
		switch {
		case t.kind == lexClose:
			if inGroup {
				return
			}
			w.emit(t.text) // unbalanced, left to the parser to report
			w.pos++
			unaryPos = false
		case t.kind == lexOp && t.text == "+" && unaryPos:
			w.pos++
		case t.kind == lexOp && t.text == "-" && unaryPos:
			w.unary()
			unaryPos = false
		case t.kind == lexOp:
			w.emit(t.text)
			w.pos++
			unaryPos = true
		default:
			w.power()
			unaryPos = false
		}
	}
}

func (w *rewriter) unary() {
	w.skipPlus()
	t, ok := w.peek()
	if ok && t.kind == lexOp && t.text == "-" {
		w.pos++
		w.emit("(", "0", "-")
		w.unary()
		w.emit(")")

		return
	}
	w.power()
}

// power reports whether it consumed a "**". The chain is right associative,
// so a chained right operand is emitted as an explicit group.
func (w *rewriter) power() bool {
	w.primary()
	t, ok := w.peek()
	if !ok || t.kind != lexOp || t.text != opPowerNative {
		return false
	}
	w.emit(t.text)
	w.pos++
	w.skipPlus()
	if n, ok := w.peek(); ok && n.kind == lexOp && n.text == "-" {
		w.unary()

		return true
	}
	start := len(w.out)
	if w.power() {
		seg := append([]string{"("}, w.out[start:]...)
		w.out = append(w.out[:start], append(seg, ")")...)
	}

	return true
}

// skipPlus drops unary plus signs.
func (w *rewriter) skipPlus() {
	for {
		t, ok := w.peek()
		if !ok || t.kind != lexOp || t.text != "+" {
			return
		}
		w.pos++
	}
}

func (w *rewriter) primary() {
	t, ok := w.peek()
	if !ok {
		return
	}
	switch t.kind {
	case lexOpen:
		w.group()
	case lexIdent:
		w.emit(t.text)
		w.pos++
		if n, ok := w.peek(); ok && n.kind == lexOpen {
			w.group()
		}
	case lexNumber:
		w.emit(t.text)
		w.pos++
	default:
		// Operator where an operand was expected; copy it, the parser rejects.
		w.emit(t.text)
		w.pos++
	}
}

func (w *rewriter) group() {
	w.emit("(")
	w.pos++
	w.sequence(true)
	if t, ok := w.peek(); ok && t.kind == lexClose {
		w.emit(")")
		w.pos++
	}
}
