package main

import (
	"bufio"
	"flag"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/classes/tokens"
	"github.com/npillmayer/classes/tokens/lexmach"
)

// main() starts an interactive CLI, where users may enter commands operating
// on a class list. It is intended as a sandbox to explore the difference
// between immutable and mutable class lists, and how input gets normalized.
//
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Initial load")
	mutable := flag.Bool("mutable", false, "Start with a mutable class list")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to CLASSREPL") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	tracer().SetTraceLevel(traceLevel(*tlevel)) // now set the user supplied level
	//
	// set up normalization with a lexmachine splitter
	splitter, err := lexmach.NewSplitter()
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	input := strings.TrimSpace(strings.Join(flag.Args(), " "))
	tracer().Infof("Input argument is \"%s\"", input)
	//
	// set up REPL
	repl, err := readline.New("classes> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp := NewIntp(splitter, *mutable)
	intp.repl = repl
	intp.newList(input)
	//
	// load an init file and start receiving commands
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.loadInitFile(*initf)           // init file name provided by flag
	intp.REPL()                         // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()
	intp.evalLines(f)
}

// evalLines evaluates commands from r, one per line. Blank lines are skipped,
// but counted. It returns the numbers of the lines which failed to evaluate.
func (intp *Intp) evalLines(r io.Reader) []int {
	var failed []int
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if _, err := intp.Eval(line); err != nil {
			tracer().Errorf("Error line %d: %v", lineno, err)
			failed = append(failed, lineno)
		}
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: " + err.Error())
	}
	return failed
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
		if gconf.GetBool("classrepl-echo") {
			pterm.Println(line)
		}
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}

// normalizer returns a normalizer splitting with the interpreter's splitter.
func (intp *Intp) normalizer() *tokens.Normalizer {
	return tokens.NewNormalizer(tokens.WithSplitter(intp.splitter))
}
