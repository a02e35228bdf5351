/*
File    : bogus-go/lexer/lexer.go
*/

// Package lexer performs lexical analysis of Bogus source code. It scans
// the source text once, eagerly, into a slice of tokens, tracking
// line/column positions for diagnostics.
package lexer

import (
	"fmt"

	"github.com/juhofriman/bogus-go/token"
)

// Error reports a malformed token together with the source position
// where scanning started to go wrong.
type Error struct {
	Message string
	Line    int
	Column  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s @ [%d:%d]", e.Message, e.Line, e.Column)
}

// Lexer scans Bogus source text character by character, producing a
// stream of tokens. It maintains the current byte, its position, and
// line/column counters for error reporting, mirroring the cursor-driven
// scanners this interpreter's evaluator and parser are themselves built
// around.
type Lexer struct {
	Src       string
	Current   byte
	Position  int
	SrcLength int
	Line      int
	Column    int
}

// NewLexer creates a Lexer positioned at the first character of src.
func NewLexer(src string) *Lexer {
	current := byte(0)
	if len(src) > 0 {
		current = src[0]
	}
	return &Lexer{
		Src:       src,
		Current:   current,
		Position:  0,
		SrcLength: len(src),
		Line:      1,
		Column:    0,
	}
}

// Peek returns the next character without consuming it, or 0 at end of
// source.
func (lex *Lexer) Peek() byte {
	if lex.Position+1 >= lex.SrcLength {
		return 0
	}
	return lex.Src[lex.Position+1]
}

// Advance moves to the next character, updating Position and Column.
// Line/Column handling for newlines is done by the caller, since not
// every caller of Advance is walking through whitespace.
func (lex *Lexer) Advance() {
	lex.Position++
	lex.Column++
	if lex.Position >= lex.SrcLength {
		lex.Current = 0
		lex.Position = lex.SrcLength
	} else {
		lex.Current = lex.Src[lex.Position]
	}
}

// IgnoreWhitespacesAndComments skips whitespace and line comments between
// tokens, tracking line/column as it goes.
func (lex *Lexer) IgnoreWhitespacesAndComments() {
	for {
		if lex.Current == '\n' {
			lex.Advance()
			lex.Line++
			lex.Column = 0
		} else if isWhitespace(lex.Current) {
			lex.Advance()
		} else if lex.Current == '/' && lex.Peek() == '/' {
			lex.skipLineComment()
		} else {
			break
		}
	}
}

func (lex *Lexer) skipLineComment() {
	for lex.Current != '\n' && lex.Current != 0 {
		lex.Advance()
	}
}

// NextToken scans and returns the next token, or a lexing error.
// Reaching the end of input yields an EOF token, never an error.
func (lex *Lexer) NextToken() (token.Token, error) {
	lex.IgnoreWhitespacesAndComments()

	line, column := lex.Line, lex.Column

	switch {
	case lex.Current == 0:
		return token.New(token.EOF, "", line, column), nil

	case lex.Current == '"':
		return lex.readString(line, column)

	case isDigit(lex.Current):
		return lex.readNumber(line, column)

	case isAlpha(lex.Current) || lex.Current == '_':
		return lex.readIdentifier(line, column), nil

	case lex.Current == '-':
		if lex.Peek() == '>' {
			lex.Advance()
			lex.Advance()
			return token.New(token.ARROW, "->", line, column), nil
		}
		lex.Advance()
		return token.New(token.MINUS, "-", line, column), nil

	case lex.Current == '=':
		if lex.Peek() == '=' {
			lex.Advance()
			lex.Advance()
			return token.New(token.EQUALS, "==", line, column), nil
		}
		lex.Advance()
		return token.New(token.ASSIGN, "=", line, column), nil

	case lex.Current == '!':
		if lex.Peek() == '=' {
			lex.Advance()
			lex.Advance()
			return token.New(token.NOT_EQUALS, "!=", line, column), nil
		}
		return token.Token{}, &Error{Message: fmt.Sprintf("unexpected character '%c'", lex.Current), Line: line, Column: column}

	case lex.Current == '+':
		lex.Advance()
		return token.New(token.PLUS, "+", line, column), nil

	case lex.Current == '*':
		lex.Advance()
		return token.New(token.MULTIPLICATION, "*", line, column), nil

	case lex.Current == '/':
		lex.Advance()
		return token.New(token.DIVISION, "/", line, column), nil

	case lex.Current == ',':
		lex.Advance()
		return token.New(token.COMMA, ",", line, column), nil

	case lex.Current == '.':
		lex.Advance()
		return token.New(token.DOT, ".", line, column), nil

	case lex.Current == ';':
		lex.Advance()
		return token.New(token.SEMICOLON, ";", line, column), nil

	case lex.Current == '(':
		lex.Advance()
		return token.New(token.LEFT_PARENS, "(", line, column), nil

	case lex.Current == ')':
		lex.Advance()
		return token.New(token.RIGHT_PARENS, ")", line, column), nil

	case lex.Current == '{':
		lex.Advance()
		return token.New(token.LEFT_BRACE, "{", line, column), nil

	case lex.Current == '}':
		lex.Advance()
		return token.New(token.RIGHT_BRACE, "}", line, column), nil

	default:
		c := lex.Current
		lex.Advance()
		return token.Token{}, &Error{Message: fmt.Sprintf("unexpected character '%c'", c), Line: line, Column: column}
	}
}

// readString scans a "..." literal. The only escape character is `\`;
// whatever follows it is stored verbatim, with no translation table.
func (lex *Lexer) readString(line, column int) (token.Token, error) {
	lex.Advance() // consume opening quote

	var buf []byte
	for {
		if lex.Current == 0 {
			return token.Token{}, &Error{Message: "string is not terminated", Line: line, Column: column}
		}
		if lex.Current == '"' {
			break
		}
		if lex.Current == '\\' {
			lex.Advance()
			if lex.Current == 0 {
				return token.Token{}, &Error{Message: "string is not terminated", Line: line, Column: column}
			}
			buf = append(buf, lex.Current)
			lex.Advance()
			continue
		}
		buf = append(buf, lex.Current)
		lex.Advance()
	}
	lex.Advance() // consume closing quote
	return token.New(token.STRING, string(buf), line, column), nil
}

// readNumber scans an Integer or, if a '.' followed by a digit appears,
// promotes to Float. A digit-led buffer immediately followed by a letter
// is rejected: identifiers may not start with a digit.
func (lex *Lexer) readNumber(line, column int) (token.Token, error) {
	start := lex.Position
	for isDigit(lex.Current) {
		lex.Advance()
	}

	isFloat := false
	if lex.Current == '.' && isDigit(lex.Peek()) {
		isFloat = true
		lex.Advance()
		for isDigit(lex.Current) {
			lex.Advance()
		}
	}

	if isAlpha(lex.Current) || lex.Current == '_' {
		return token.Token{}, &Error{Message: "identifier can't start with digit", Line: line, Column: column}
	}

	literal := lex.Src[start:lex.Position]
	kind := token.INTEGER
	if isFloat {
		kind = token.FLOAT
	}
	return token.New(kind, literal, line, column), nil
}

// readIdentifier scans an identifier or, if it matches a reserved word,
// a keyword token.
func (lex *Lexer) readIdentifier(line, column int) token.Token {
	start := lex.Position
	for isAlphanumeric(lex.Current) || lex.Current == '_' {
		lex.Advance()
	}
	literal := lex.Src[start:lex.Position]
	return token.New(token.LookupIdentifier(literal), literal, line, column)
}

// ConsumeTokens scans the whole source eagerly and returns every token up
// to (but not including) EOF, or the first lexing error encountered.
func (lex *Lexer) ConsumeTokens() ([]token.Token, error) {
	tokens := make([]token.Token, 0)
	for {
		tok, err := lex.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Type == token.EOF {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}
