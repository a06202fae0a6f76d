// Command elf is the CLI entry point: file-mode execution, an
// interactive REPL, and the two out-of-core dump commands of
// SPEC_FULL.md §4.
//
// Grounded on the teacher's main/main.go (hand-parsed os.Args
// switch over --help/--version/file-mode/REPL-mode; no flag package,
// matching SPEC_FULL.md §2's Configuration note). File I/O and the
// process exit code are the "external collaborator" spec.md §1 names
// as out of the core's scope — this file is the thinnest possible
// wrapper gluing that collaborator to eval.Evaluate.
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/elf-lang/eval"
	"github.com/akashmaji946/elf-lang/lexer"
	"github.com/akashmaji946/elf-lang/parser"
	"github.com/akashmaji946/elf-lang/repl"
	"github.com/fatih/color"
)

const (
	version = "0.1.0"
	author  = "elf-lang contributors"
	license = "MIT"
	prompt  = "elf >>> "
	line    = "----------------------------------------"
	banner  = `
   ___  _  __
  / _ \| |/ _|
 |  __/| | |_
 | |___|_|__|
`
)

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		startREPL()
		return
	}

	switch args[0] {
	case "--help", "-h":
		printHelp()
	case "--version", "-v":
		fmt.Printf("elf %s\n", version)
	case "--tokens":
		requireFileArg(args, dumpTokens)
	case "--ast":
		requireFileArg(args, dumpAST)
	default:
		runFile(args[0])
	}
}

func printHelp() {
	fmt.Println("elf - a small expression-oriented language")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  elf                 Start the interactive REPL")
	fmt.Println("  elf <file>          Evaluate a source file")
	fmt.Println("  elf --tokens <file> Dump the file's tokens as JSON Lines")
	fmt.Println("  elf --ast <file>    Dump the file's AST as indented JSON")
	fmt.Println("  elf --version       Show version information")
	fmt.Println("  elf --help          Show this help")
}

func requireFileArg(args []string, action func(string)) {
	if len(args) < 2 {
		color.New(color.FgRed).Fprintln(os.Stderr, "expected a file argument")
		os.Exit(1)
	}
	action(args[1])
}

func readSource(path string) string {
	content, err := os.ReadFile(path)
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "error reading %s: %v\n", path, err)
		os.Exit(1)
	}
	return string(content)
}

func runFile(path string) {
	source := readSource(path)
	output := eval.Evaluate(source)
	fmt.Println(output)
}

func dumpTokens(path string) {
	source := readSource(path)
	out, err := lexer.DumpTokensJSONL(source)
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "error dumping tokens: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(out)
}

func dumpAST(path string) {
	source := readSource(path)
	p := parser.NewParser(source)
	program := p.Parse()
	if p.HasErrors() {
		color.New(color.FgRed).Fprintf(os.Stderr, "%s\n", p.FirstError())
		os.Exit(1)
	}
	out, err := parser.DumpASTJSON(program)
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "error dumping ast: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(out)
}

func startREPL() {
	r := repl.NewRepl(banner, version, author, line, license, prompt)
	r.Start(os.Stdin, os.Stdout)
}
