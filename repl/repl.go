/*
File    : bogus-go/repl/repl.go

Package repl implements the interactive Read-Eval-Print Loop for the
Bogus interpreter. The REPL has three modes, switched with a command
prefix and reflected in the prompt:

  - :normal   bogus>          lines are parsed and evaluated
  - :lexus    bogus [lex]>    lines are lexed only; tokens are printed
  - :ast      bogus [ast]>    lines are parsed; the tree is printed

One evaluator (and so one top-level scope) lives for the whole session,
so bindings accumulate across lines. The readline library provides line
editing and command history.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/juhofriman/bogus-go/ast"
	"github.com/juhofriman/bogus-go/eval"
	"github.com/juhofriman/bogus-go/lexer"
	"github.com/juhofriman/bogus-go/object"
	"github.com/juhofriman/bogus-go/parser"
	"github.com/juhofriman/bogus-go/token"
)

// Mode selects what the REPL does with a line of input.
type Mode string

const (
	ModeNormal Mode = "normal"
	ModeLexus  Mode = "lexus"
	ModeAst    Mode = "ast"
)

// prompts per mode
var prompts = map[Mode]string{
	ModeNormal: "bogus> ",
	ModeLexus:  "bogus [lex]> ",
	ModeAst:    "bogus [ast]> ",
}

// Color definitions for REPL output: results in yellow, errors in red,
// banner and informational text in green/cyan/blue.
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the interactive session configuration and current mode.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Mode    Mode
}

// NewRepl creates a REPL starting in normal (evaluate) mode.
func NewRepl(banner, version, author, line, license string) *Repl {
	return &Repl{
		Banner:  banner,
		Version: version,
		Author:  author,
		Line:    line,
		License: license,
		Mode:    ModeNormal,
	}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Bogus!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Switch modes with :normal, :lexus or :ast")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop. It runs until '.exit' or EOF
// (Ctrl-D). The reader argument is unused directly because readline
// takes over the terminal; it is kept so callers hand the session its
// streams in one place.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(prompts[r.Mode])
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}

		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		// Mode switches update the prompt and consume the line.
		if mode, ok := parseModeSwitch(line); ok {
			r.Mode = mode
			rl.SetPrompt(prompts[mode])
			continue
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line, evaluator)
	}
}

// parseModeSwitch recognizes the :normal / :lexus / :ast commands.
func parseModeSwitch(line string) (Mode, bool) {
	switch {
	case strings.HasPrefix(line, ":normal"):
		return ModeNormal, true
	case strings.HasPrefix(line, ":lexus"):
		return ModeLexus, true
	case strings.HasPrefix(line, ":ast"):
		return ModeAst, true
	}
	return "", false
}

// executeWithRecovery dispatches one input line according to the
// current mode, with panic recovery so a bug in the interpreter shows
// as an error line instead of killing the session.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, evaluator *eval.Evaluator) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	tokens, err := lexer.NewLexer(line).ConsumeTokens()
	if err != nil {
		redColor.Fprintf(writer, "LexingError: %s\n", err)
		return
	}

	switch r.Mode {
	case ModeLexus:
		r.printTokens(writer, tokens)
	case ModeAst:
		r.printTree(writer, tokens)
	default:
		r.evaluate(writer, tokens, evaluator)
	}
}

// printTokens shows the lexed token stream, one token per line.
func (r *Repl) printTokens(writer io.Writer, tokens []token.Token) {
	yellowColor.Fprintln(writer, "[")
	for _, tok := range tokens {
		yellowColor.Fprintf(writer, "\t%s,\n", tok)
	}
	yellowColor.Fprintln(writer, "]")
}

// printTree parses the tokens and dumps the expression tree without
// evaluating it.
func (r *Repl) printTree(writer io.Writer, tokens []token.Token) {
	par := parser.NewParser(tokens)
	program := par.Parse()
	if par.HasErrors() {
		for _, msg := range par.GetErrors() {
			redColor.Fprintf(writer, "Parsing Error: %s\n", msg)
		}
		return
	}
	visitor := &ast.PrintVisitor{}
	program.Accept(visitor)
	yellowColor.Fprint(writer, visitor.String())
}

// evaluate parses the tokens and evaluates each top-level expression,
// printing every non-Void result via its type projection.
func (r *Repl) evaluate(writer io.Writer, tokens []token.Token, evaluator *eval.Evaluator) {
	par := parser.NewParser(tokens)
	program := par.Parse()
	if par.HasErrors() {
		for _, msg := range par.GetErrors() {
			redColor.Fprintf(writer, "Parsing Error: %s\n", msg)
		}
		return
	}

	for _, stmt := range program.Statements {
		result, err := evaluator.Eval(stmt)
		if err != nil {
			redColor.Fprintf(writer, "Evaluation Error: %s\n", err)
			return
		}
		if result.GetType() != object.VoidType {
			yellowColor.Fprintf(writer, "%s\n", result.ToString())
		}
	}
}
