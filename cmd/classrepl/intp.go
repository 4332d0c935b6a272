package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/pterm/pterm"

	"github.com/npillmayer/classes"
	"github.com/npillmayer/classes/tokens"
	"github.com/npillmayer/classes/tokens/lexmach"
)

// classList is what immutable and mutable class lists have in common.
type classList interface {
	tokens.Source
	Has(string) bool
	Count() int
	String() string
}

var (
	_ classList = (*classes.Classes)(nil)
	_ classList = (*classes.MutableClasses)(nil)
)

// Intp is our interpreter object
type Intp struct {
	repl     *readline.Instance
	splitter *lexmach.Splitter
	mutable  bool
	current  classList
	history  *arraylist.List // snapshots of former lists, for undo
}

// NewIntp creates an interpreter with an empty current list.
func NewIntp(splitter *lexmach.Splitter, mutable bool) *Intp {
	intp := &Intp{
		splitter: splitter,
		mutable:  mutable,
		history:  arraylist.New(),
	}
	intp.newList("")
	return intp
}

type command struct {
	help string
	run  func(intp *Intp, args string) (bool, error)
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"new":     {"new <classes>       replace the current list", (*Intp).cmdNew},
		"with":    {"with <classes>      add classes", (*Intp).cmdWith},
		"without": {"without <classes>   remove classes", (*Intp).cmdWithout},
		"keep":    {"keep <prefix>       keep classes starting with prefix", (*Intp).cmdKeep},
		"drop":    {"drop <prefix>       remove classes starting with prefix", (*Intp).cmdDrop},
		"clear":   {"clear               remove all classes", (*Intp).cmdClear},
		"has":     {"has <class>         check for a class", (*Intp).cmdHas},
		"count":   {"count               number of classes", (*Intp).cmdCount},
		"list":    {"list                print classes as a tree", (*Intp).cmdList},
		"sorted":  {"sorted              print classes in lexical order", (*Intp).cmdSorted},
		"scan":    {"scan <text>         show token positions in text", (*Intp).cmdScan},
		"hash":    {"hash                fingerprint of the current list", (*Intp).cmdHash},
		"mode":    {"mode mutable|immutable  switch kind of list", (*Intp).cmdMode},
		"undo":    {"undo                restore the previous list", (*Intp).cmdUndo},
		"help":    {"help                this message", (*Intp).cmdHelp},
		"quit":    {"quit                leave", (*Intp).cmdQuit},
	}
}

// Eval evaluates a command, given on a line by itself.
// It returns true if the user wants to quit.
func (intp *Intp) Eval(line string) (bool, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false, nil
	}
	cmd, args := line, ""
	if i := strings.IndexFunc(line, tokens.IsSpace); i > 0 {
		cmd, args = line[:i], strings.TrimSpace(line[i:])
	}
	c, ok := commands[cmd]
	if !ok {
		return false, fmt.Errorf("unknown command %q, try 'help'", cmd)
	}
	tracer().Debugf("command %s(%q)", cmd, args)
	return c.run(intp, args)
}

// --- Modifying commands ----------------------------------------------------

func (intp *Intp) newList(input string) {
	S := intp.normalizer().Normalize(input)
	if intp.mutable {
		intp.current = classes.FromMutable(S)
	} else {
		intp.current = classes.From(S)
	}
}

// apply runs an operation for the current kind of list and reports if the
// operation returned the receiver or a new list.
func (intp *Intp) apply(imm func(*classes.Classes) *classes.Classes,
	mut func(*classes.MutableClasses) *classes.MutableClasses) {
	//
	intp.history.Add(classes.From(intp.current))
	var result classList
	switch l := intp.current.(type) {
	case *classes.Classes:
		result = imm(l)
	case *classes.MutableClasses:
		result = mut(l)
	}
	if result == intp.current {
		intp.printList("modified")
	} else {
		intp.current = result
		intp.printList("new list")
	}
}

func (intp *Intp) cmdNew(args string) (bool, error) {
	intp.history.Add(classes.From(intp.current))
	intp.newList(args)
	intp.printList("new list")
	return false, nil
}

func (intp *Intp) cmdWith(args string) (bool, error) {
	S := intp.normalizer().Normalize(args)
	intp.apply(
		func(c *classes.Classes) *classes.Classes { return c.With(S) },
		func(m *classes.MutableClasses) *classes.MutableClasses { return m.With(S) },
	)
	return false, nil
}

func (intp *Intp) cmdWithout(args string) (bool, error) {
	S := intp.normalizer().Normalize(args)
	intp.apply(
		func(c *classes.Classes) *classes.Classes { return c.Without(S) },
		func(m *classes.MutableClasses) *classes.MutableClasses { return m.Without(S) },
	)
	return false, nil
}

func (intp *Intp) cmdKeep(args string) (bool, error) {
	return intp.filterPrefix(args, true)
}

func (intp *Intp) cmdDrop(args string) (bool, error) {
	return intp.filterPrefix(args, false)
}

func (intp *Intp) filterPrefix(prefix string, keep bool) (bool, error) {
	if prefix == "" {
		return false, fmt.Errorf("missing prefix")
	}
	pred := func(class string) bool {
		return strings.HasPrefix(class, prefix) == keep
	}
	intp.apply(
		func(c *classes.Classes) *classes.Classes { return c.Filter(pred) },
		func(m *classes.MutableClasses) *classes.MutableClasses { return m.Filter(pred) },
	)
	return false, nil
}

func (intp *Intp) cmdClear(string) (bool, error) {
	intp.apply(
		(*classes.Classes).Clear,
		(*classes.MutableClasses).Clear,
	)
	return false, nil
}

func (intp *Intp) cmdMode(args string) (bool, error) {
	switch args {
	case "mutable":
		intp.mutable = true
		intp.current = classes.FromMutable(intp.current)
	case "immutable":
		intp.mutable = false
		intp.current = classes.From(intp.current)
	default:
		return false, fmt.Errorf("mode must be 'mutable' or 'immutable', is %q", args)
	}
	intp.printList("mode " + args)
	return false, nil
}

func (intp *Intp) cmdUndo(string) (bool, error) {
	n := intp.history.Size()
	if n == 0 {
		return false, fmt.Errorf("nothing to undo")
	}
	v, _ := intp.history.Get(n - 1)
	intp.history.Remove(n - 1)
	prev := v.(*classes.Classes)
	if intp.mutable {
		intp.current = classes.FromMutable(prev)
	} else {
		intp.current = prev
	}
	intp.printList("restored")
	return false, nil
}

// --- Querying commands -----------------------------------------------------

func (intp *Intp) cmdHas(args string) (bool, error) {
	if args == "" {
		return false, fmt.Errorf("missing class")
	}
	pterm.Info.Println(fmt.Sprintf("has %q: %v", args, intp.current.Has(args)))
	return false, nil
}

func (intp *Intp) cmdCount(string) (bool, error) {
	pterm.Info.Println(fmt.Sprintf("%d classes", intp.current.Count()))
	return false, nil
}

func (intp *Intp) cmdList(string) (bool, error) {
	ll := pterm.LeveledList{pterm.LeveledListItem{Level: 0, Text: intp.kind()}}
	for i, class := range intp.current.Values() {
		ll = append(ll, pterm.LeveledListItem{
			Level: 1,
			Text:  fmt.Sprintf("%2d: %s", i, class),
		})
	}
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
	return false, nil
}

// sortedClasses returns the classes of the current list in lexical order.
func (intp *Intp) sortedClasses() []string {
	set := treeset.NewWith(utils.StringComparator)
	for _, class := range intp.current.Values() {
		set.Add(class)
	}
	sorted := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		sorted = append(sorted, v.(string))
	}
	return sorted
}

func (intp *Intp) cmdSorted(string) (bool, error) {
	pterm.Info.Println(strings.Join(intp.sortedClasses(), " "))
	return false, nil
}

func (intp *Intp) cmdScan(args string) (bool, error) {
	toks, err := intp.splitter.Scan(args)
	if err != nil {
		return false, err
	}
	for _, tok := range toks {
		pterm.Println(fmt.Sprintf(" %-20s @ %s", tok.Lexeme, tok.Span))
	}
	pterm.Info.Println(fmt.Sprintf("%d tokens", len(toks)))
	return false, nil
}

func (intp *Intp) cmdHash(string) (bool, error) {
	pterm.Info.Println(classes.Fingerprint(intp.current))
	return false, nil
}

func (intp *Intp) cmdHelp(string) (bool, error) {
	names := treeset.NewWith(utils.StringComparator)
	for name := range commands {
		names.Add(name)
	}
	for _, name := range names.Values() {
		pterm.Println("  " + commands[name.(string)].help)
	}
	return false, nil
}

func (intp *Intp) cmdQuit(string) (bool, error) {
	return true, nil
}

// --- Output ----------------------------------------------------------------

func (intp *Intp) kind() string {
	if intp.mutable {
		return "mutable"
	}
	return "immutable"
}

func (intp *Intp) printList(what string) {
	tracer().Debugf("%s list after %s: [%s]", intp.kind(), what, intp.current)
	pterm.Info.Println(fmt.Sprintf("(%s, %s) \"%s\"", intp.kind(), what, intp.current))
}
