// Package repl implements the elf Read-Eval-Print Loop, grounded
// verbatim on the teacher's repl/repl.go structure (banner, readline,
// coloured output, ".exit") but driving elf's lexer/parser/eval
// pipeline instead of go-mix's.
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/elf-lang/eval"
	"github.com/akashmaji946/elf-lang/object"
	"github.com/akashmaji946/elf-lang/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the chrome (banner, prompt, version info) printed around
// the interactive session; it carries no interpreter state itself.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to elf!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the interactive loop. Each line is parsed and evaluated
// against one long-lived Evaluator so that let/let-mut bindings
// persist across lines, the interactive analogue of spec.md §6.1's
// single-shot Evaluate.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	evaluator := eval.NewEvaluator()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line, evaluator)
	}
}

func (r *Repl) executeWithRecovery(writer io.Writer, line string, evaluator *eval.Evaluator) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[Error] %v\n", recovered)
		}
	}()

	p := parser.NewParser(line)
	program := p.Parse()

	if p.HasErrors() {
		redColor.Fprintf(writer, "[Error] %s\n", p.FirstError())
		return
	}

	output, result := evaluator.EvalREPLLine(program)
	if output != "" {
		writer.Write([]byte(output))
	}
	if errVal, ok := result.(*object.Error); ok {
		redColor.Fprintf(writer, "[Error] %s\n", errVal.Message)
		return
	}
	yellowColor.Fprintf(writer, "%s\n", result.String())
}
