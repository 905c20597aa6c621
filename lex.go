package keycalc

import (
	"strconv"
	"strings"
	"unicode"
)

// Token is one lexical piece of display text.
type Token struct {
	// Text is the token's source text.
	Text string
	// Kind is the lexical kind of the token.
	Kind TokenKind
	// Col is the 1-based rune column at which the token starts.
	Col int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Col)
}

// TokenKind is the lexical kind of a token. It says what the token looks
// like, not whether it means anything; the classifier decides that.
type TokenKind int8

const (
	tokenNone TokenKind = iota
	// TokenNum is a run of digits and points, possibly signed, possibly with
	// an exponent.
	TokenNum
	// TokenSymbol is one of the single-rune operator or unary symbols.
	TokenSymbol
	// TokenWord is a run of letters, e.g. a function name.
	TokenWord
	// TokenConst is a named constant, i.e. π.
	TokenConst
	// TokenInvalid is a rune that cannot start any other token.
	TokenInvalid
)

func (k TokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case TokenNum:
		return "Num"
	case TokenSymbol:
		return "Symbol"
	case TokenWord:
		return "Word"
	case TokenConst:
		return "Const"
	case TokenInvalid:
		return "Invalid"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Symbols contains the runes which always split the display text. Each one is
// a token by itself.
const Symbols = "-+*/^√!"

// Pi is the rune for the constant π.
const Pi = 'π'

type lexer struct {
	src []rune
	// pos is the index of the next rune to scan.
	pos int
	// prev is the kind of the last token scanned, used to decide whether a
	// minus sign is an operator or part of a number.
	prev TokenKind
}

func lex(src string) *lexer {
	return &lexer{src: []rune(src)}
}

// at returns the rune at index i, or -1 past the end of the input.
func (l *lexer) at(i int) rune {
	if i >= len(l.src) {
		return -1
	}
	return l.src[i]
}

// next scans the next token from the input. ok is false at the end of the
// input.
func (l *lexer) next() (tok Token, ok bool) {
	if l.pos >= len(l.src) {
		return Token{}, false
	}
	start := l.pos
	r := l.src[l.pos]
	switch {
	case isDigit(r), r == '.':
		l.scanNum()
		tok.Kind = TokenNum
	case r == '-' && l.signable() && startsNum(l.at(l.pos+1)):
		// A minus where no operand can have ended is the sign of the
		// number after it.
		l.pos++
		l.scanNum()
		tok.Kind = TokenNum
	case strings.ContainsRune(Symbols, r):
		l.pos++
		tok.Kind = TokenSymbol
	case r == Pi:
		l.pos++
		tok.Kind = TokenConst
	case unicode.IsLetter(r):
		l.scanWord()
		tok.Kind = TokenWord
	default:
		l.pos++
		tok.Kind = TokenInvalid
	}
	tok.Text = string(l.src[start:l.pos])
	tok.Col = start + 1
	l.prev = tok.Kind
	return tok, true
}

// signable reports whether a minus sign at the current position can only be
// the sign of a number, i.e. it does not follow something that ends an
// operand.
func (l *lexer) signable() bool {
	return l.prev == tokenNone || l.prev == TokenSymbol || l.prev == TokenWord
}

// scanNum scans digits and points, plus an exponent if one directly follows
// them. Whether the result is a valid number is for the classifier to decide.
func (l *lexer) scanNum() {
	for startsNum(l.at(l.pos)) {
		l.pos++
	}
	if r := l.at(l.pos); r != 'E' && r != 'e' {
		return
	}
	// Take the exponent only if it has digits, as in the 1.0E-4 form that
	// results are displayed in. Otherwise the marker is left for a word.
	k := l.pos + 1
	if l.at(k) == '-' {
		k++
	}
	if !isDigit(l.at(k)) {
		return
	}
	for isDigit(l.at(k)) {
		k++
	}
	l.pos = k
}

func (l *lexer) scanWord() {
	for r := l.at(l.pos); r != Pi && unicode.IsLetter(r); r = l.at(l.pos) {
		l.pos++
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func startsNum(r rune) bool {
	return isDigit(r) || r == '.'
}

// Tokenize splits display text into tokens. Symbols are always split from
// their neighbors, numbers are split from letters, and empty tokens are never
// produced.
func Tokenize(src string) []Token {
	scan := lex(src)
	var toks []Token
	for {
		tok, ok := scan.next()
		if !ok {
			return toks
		}
		if tok.Text == "" {
			continue
		}
		toks = append(toks, tok)
	}
}
