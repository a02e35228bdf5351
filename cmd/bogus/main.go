/*
File    : bogus-go/cmd/bogus/main.go

Package main is the entry point for the Bogus interpreter. It provides
two modes of operation:
 1. REPL mode (`bogus repl` or no argument): interactive loop
 2. File mode (`bogus <path>`): read a source file, evaluate it once in
    a fresh top-level scope, exit nonzero on error
*/
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/juhofriman/bogus-go/eval"
	"github.com/juhofriman/bogus-go/lexer"
	"github.com/juhofriman/bogus-go/object"
	"github.com/juhofriman/bogus-go/parser"
	"github.com/juhofriman/bogus-go/repl"
)

// VERSION represents the current version of the Bogus interpreter
var VERSION = "v0.1.0"

// AUTHOR contains the contact information of the interpreter's author
var AUTHOR = "juhofriman"

// LICENCE specifies the software license
var LICENCE = "MIT"

// BANNER is the ASCII art logo displayed when starting the REPL
var BANNER = `
 ▄▄▄▄    ▄▄▄▄    ▄▄▄▄  ▄    ▄  ▄▄▄▄
 █   █  █    █  █    ▀ █    █ █    ▀
 █▄▄▄▀  █    █  █  ▄▄▄ █    █  ▀▀▀▄▄
 █   █  █    █  █    █ █    █ ▀    █
 ▀▄▄▄▀   ▀▄▄▄▀   ▀▄▄▄▀  ▀▄▄▄▀  ▀▄▄▄▀
`

// LINE is a separator line used for visual formatting in the REPL
var LINE = "----------------------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	// Piped output must not carry ANSI escapes.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}

	if len(os.Args) > 1 {
		arg := os.Args[1]

		if arg == "--help" || arg == "-h" {
			showHelp()
			os.Exit(0)
		}

		if arg == "--version" || arg == "-v" {
			showVersion()
			os.Exit(0)
		}

		if arg != "repl" {
			runFile(arg)
			return
		}
	}

	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE)
	repler.Start(os.Stdin, os.Stdout)
}

// showHelp displays usage information.
func showHelp() {
	cyanColor.Println("Bogus - A Small Interpreted Language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  bogus                     Start interactive REPL mode")
	yellowColor.Println("  bogus repl                Start interactive REPL mode")
	yellowColor.Println("  bogus <path-to-file>      Evaluate a Bogus source file")
	yellowColor.Println("  bogus --help              Display this help message")
	yellowColor.Println("  bogus --version           Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  :normal                   Evaluate input (default)")
	yellowColor.Println("  :lexus                    Show the token stream for input")
	yellowColor.Println("  :ast                      Show the expression tree for input")
	yellowColor.Println("  .exit                     Exit the REPL")
}

// showVersion displays the version information.
func showVersion() {
	cyanColor.Println("Bogus - A Small Interpreted Language")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENCE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile reads and evaluates a Bogus source file. The whole file is
// lexed and parsed up front; evaluation stops at the first error with
// a nonzero exit code.
func runFile(fileName string) {
	fileContent, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not read file '%s': %v\n", fileName, err)
		os.Exit(1)
	}

	tokens, lexErr := lexer.NewLexer(string(fileContent)).ConsumeTokens()
	if lexErr != nil {
		redColor.Fprintf(os.Stderr, "LexingError: %s\n", lexErr)
		os.Exit(1)
	}

	par := parser.NewParser(tokens)
	program := par.Parse()
	if par.HasErrors() {
		for _, msg := range par.GetErrors() {
			redColor.Fprintf(os.Stderr, "Parsing Error: %s\n", msg)
		}
		os.Exit(1)
	}

	evaluator := eval.NewEvaluator()
	for _, stmt := range program.Statements {
		result, err := evaluator.Eval(stmt)
		if err != nil {
			redColor.Fprintf(os.Stderr, "Evaluation Error: %s\n", err)
			os.Exit(1)
		}
		// Void is a statement result, not output. Everything else
		// prints via its type projection, null included.
		if result.GetType() != object.VoidType {
			yellowColor.Fprintf(os.Stdout, "%s\n", result.ToString())
		}
	}
}
