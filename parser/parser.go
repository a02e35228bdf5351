/*
File    : bogus-go/parser/parser.go
*/

/*
Package parser implements a Pratt parser (top-down operator precedence
parser) for the Bogus language.

The parser consumes the token slice the lexer produced eagerly and
builds the expression tree defined in the ast package. Each token kind
has up to two roles, registered in two maps:

  - NUD (null denotation): the token begins an expression — literals,
    identifiers, prefix minus, grouping parens, blocks, let/fun/return/if.
  - LED (left denotation): the token continues an already-parsed left
    operand — infix operators, assignment, the call suffix, and the
    terminators that end an expression without composing.

parseExpression(rbp) drives both: one NUD to seed the left expression,
then LEDs as long as the next token binds strictly tighter than the
caller's right binding power.

Errors are collected into Errors instead of panicking, so the driver
can report them all and decide whether to continue.
*/
package parser

import (
	"fmt"

	"github.com/juhofriman/bogus-go/ast"
	"github.com/juhofriman/bogus-go/token"
)

// nudParseFunction parses a token appearing at the start of an
// expression into its node.
type nudParseFunction func(tok token.Token) (ast.Expression, error)

// ledParseFunction parses a token appearing after a left operand,
// absorbing the operand into a larger node (or, for terminators,
// returning it unchanged).
type ledParseFunction func(tok token.Token, left ast.Expression) (ast.Expression, error)

// Parser holds the token slice, a cursor into it, the NUD/LED
// registration maps, and the collected parse errors.
type Parser struct {
	Tokens []token.Token
	Pos    int

	NudFuncs map[token.Type]nudParseFunction
	LedFuncs map[token.Type]ledParseFunction

	Errors []string
}

// NewParser creates a parser over an eagerly-lexed token slice.
func NewParser(tokens []token.Token) *Parser {
	par := &Parser{
		Tokens: tokens,
		Errors: make([]string, 0),
	}
	par.init()
	return par
}

// init registers every parselet. Together with the binding power table
// in parser_precedence.go this is the whole grammar of the language.
func (par *Parser) init() {
	par.NudFuncs = make(map[token.Type]nudParseFunction)
	par.LedFuncs = make(map[token.Type]ledParseFunction)

	// Literals and identifiers
	par.registerNudFuncs(par.parseIntegerLiteral, token.INTEGER)
	par.registerNudFuncs(par.parseFloatLiteral, token.FLOAT)
	par.registerNudFuncs(par.parseStringLiteral, token.STRING)
	par.registerNudFuncs(par.parseBooleanLiteral, token.TRUE, token.FALSE)
	par.registerNudFuncs(par.parseNullLiteral, token.NULL)
	par.registerNudFuncs(par.parseIdentifier, token.IDENTIFIER)

	// Operators: prefix roles
	par.registerNudFuncs(par.parsePrefixPlus, token.PLUS)
	par.registerNudFuncs(par.parsePrefixMinus, token.MINUS)

	// Operators: infix roles
	par.registerLedFuncs(par.parseBinaryExpression,
		token.PLUS, token.MINUS, token.MULTIPLICATION, token.DIVISION)
	par.registerLedFuncs(par.parseEqualsExpression, token.EQUALS, token.NOT_EQUALS)
	par.registerLedFuncs(par.parseAssignExpression, token.ASSIGN)

	// Grouping parens begin an expression; the same token after a left
	// operand is the call suffix.
	par.registerNudFuncs(par.parseGroupingParens, token.LEFT_PARENS)
	par.registerLedFuncs(par.parseCallExpression, token.LEFT_PARENS)

	// Blocks
	par.registerNudFuncs(par.parseGrouped, token.LEFT_BRACE)

	// Definitions and control flow
	par.registerNudFuncs(par.parseLet, token.LET)
	par.registerNudFuncs(par.parseFun, token.FUN)
	par.registerNudFuncs(par.parseReturn, token.RETURN)
	par.registerNudFuncs(par.parseIf, token.IF)

	// Terminators end an expression without composing. Their LED hands
	// the left operand back untouched; the binding power table keeps
	// them from consuming anything past themselves.
	par.registerLedFuncs(par.parseTerminator,
		token.SEMICOLON, token.RIGHT_PARENS, token.RIGHT_BRACE, token.COMMA)
}

func (par *Parser) registerNudFuncs(fn nudParseFunction, types ...token.Type) {
	for _, t := range types {
		par.NudFuncs[t] = fn
	}
}

func (par *Parser) registerLedFuncs(fn ledParseFunction, types ...token.Type) {
	for _, t := range types {
		par.LedFuncs[t] = fn
	}
}

// hasNext reports whether any tokens remain.
func (par *Parser) hasNext() bool {
	return par.Pos < len(par.Tokens)
}

// peek returns the next token without consuming it. Only valid when
// hasNext().
func (par *Parser) peek() token.Token {
	return par.Tokens[par.Pos]
}

// next consumes and returns the next token. Only valid when hasNext().
func (par *Parser) next() token.Token {
	tok := par.Tokens[par.Pos]
	par.Pos++
	return tok
}

// nextOrErr consumes the next token, failing when the stream ran out
// mid-expression.
func (par *Parser) nextOrErr() (token.Token, error) {
	if !par.hasNext() {
		return token.Token{}, fmt.Errorf("Unexpected EOF")
	}
	return par.next(), nil
}

// peekOrErr returns the next token without consuming it, failing when
// the stream ran out mid-expression.
func (par *Parser) peekOrErr() (token.Token, error) {
	if !par.hasNext() {
		return token.Token{}, fmt.Errorf("Unexpected EOF")
	}
	return par.peek(), nil
}

// expectNext consumes the next token and asserts its kind, for the
// fixed delimiters inside let/fun forms.
func (par *Parser) expectNext(expected token.Type) (token.Token, error) {
	tok, err := par.nextOrErr()
	if err != nil {
		return token.Token{}, err
	}
	if tok.Type != expected {
		return token.Token{}, fmt.Errorf("Expecting %s, but got %s", expected, tok.Type)
	}
	return tok, nil
}

// parseExpression is the Pratt core. It consumes one token for its NUD
// to seed the left expression, then keeps absorbing tokens through
// their LEDs while the next token's right binding power strictly
// exceeds rbp.
func (par *Parser) parseExpression(rbp int) (ast.Expression, error) {
	tok, err := par.nextOrErr()
	if err != nil {
		return nil, err
	}

	nud, ok := par.NudFuncs[tok.Type]
	if !ok {
		return nil, fmt.Errorf("Can't parse %s in NUD position", tok.Type)
	}
	left, err := nud(tok)
	if err != nil {
		return nil, err
	}

	for par.hasNext() && rightBindingPower(par.peek().Type) > rbp {
		tok := par.next()
		led, ok := par.LedFuncs[tok.Type]
		if !ok {
			return nil, fmt.Errorf("Can't parse %s in LED position", tok.Type)
		}
		left, err = led(tok, left)
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

// addError records a parse error message.
func (par *Parser) addError(msg string) {
	par.Errors = append(par.Errors, msg)
}

// HasErrors reports whether parsing collected any errors. Check this
// after Parse before evaluating the result.
func (par *Parser) HasErrors() bool {
	return len(par.Errors) > 0
}

// GetErrors returns the collected parse error messages.
func (par *Parser) GetErrors() []string {
	return par.Errors
}

// Parse consumes the whole token stream as a sequence of top-level
// expressions. Errors are collected rather than returned; a program
// that failed to parse should not be evaluated.
func (par *Parser) Parse() *ast.Program {
	program := &ast.Program{Statements: make([]ast.Expression, 0)}
	for par.hasNext() {
		expr, err := par.parseExpression(0)
		if err != nil {
			par.addError(err.Error())
			break
		}
		program.Statements = append(program.Statements, expr)
	}
	return program
}
