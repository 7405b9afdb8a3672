/*
Command accents is an interactive tool for inspecting math accents.

	accents [-config file.yaml] [-classifier unicode|curated] [-trace Info]

At the prompt, enter one of

	list                       list the accent table
	names                      list the named accents
	lookup <text>              resolve text to an accent
	classify <text>            show where an accent is placed
	apply <accent> <base> ...  attach an accent, with optional size:… and dotless:…
	help                       show this overview
	quit                       leave (or <ctrl>D)

Names are completed with <tab>.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/mathacc/core"
	"github.com/npillmayer/mathacc/engine/mathlib"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'mathacc.cli'
func tracer() tracing.Trace {
	return tracing.Select("mathacc.cli")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	tconf := testconfig.Conf{
		"tracing.adapter":   "go",
		"trace.mathacc.cli": "Info",
	}
	if err := trace2go.ConfigureRoot(tconf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	confpath := flag.String("config", "", "YAML configuration file")
	classifier := flag.String("classifier", "", "Accent classifier [unicode|curated]")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError) // will set the correct level later
	pterm.Info.Println("Welcome to the math accents CLI")
	//
	conf, err := loadConfig(*confpath)
	if err != nil {
		core.UserError(os.Stderr, err)
		os.Exit(2)
	}
	if *classifier != "" {
		conf[mathlib.KeyClassifier] = *classifier
	}
	lib, err := mathlib.New(conf)
	if err != nil {
		core.UserError(os.Stderr, err)
		os.Exit(3)
	}
	//
	// set up REPL
	repl, err := readline.NewEx(&readline.Config{
		Prompt:       "acc > ",
		AutoComplete: newCompleter(lib.Scope().Names()),
	})
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	defer repl.Close()
	intp := &Intp{repl: repl, lib: lib}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	tracer().Infof("Accents are classified by %s", lib.Classifier().Name())
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl *readline.Instance
	lib  *mathlib.Library
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd := parseCommand(line)
		quit, err := intp.execute(cmd)
		if err != nil {
			core.UserError(os.Stdout, err)
			tracer().Debugf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}
