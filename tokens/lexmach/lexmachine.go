package lexmach

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/classes/tokens"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'classes.tokens'.
func tracer() tracing.Trace {
	return tracing.Select("classes.tokens")
}

// TokenType is the lexmachine token type for class tokens.
const TokenType = 1

// Patterns for the DFA. The byte set is the one of tokens.IsSpace.
const (
	whitespace    = "[ \t\n\v\f\r]+"
	nonWhitespace = "[^ \t\n\v\f\r]+"
)

// Token is a class token, together with its position in the input.
type Token struct {
	Lexeme string
	Span   tokens.Span
}

// Splitter is a tokens.Splitter using a lexmachine DFA.
type Splitter struct {
	lexer *lexmachine.Lexer
	Error func(error) // error handler, called for scanner errors
}

var _ tokens.Splitter = (*Splitter)(nil)

// NewSplitter creates a new lexmachine-based splitter.
//
// NewSplitter will return an error if compiling the DFA failed.
func NewSplitter() (*Splitter, error) {
	lexer := lexmachine.NewLexer()
	lexer.Add([]byte(whitespace), Skip)
	lexer.Add([]byte(nonWhitespace), MakeToken(TokenType))
	if err := lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, fmt.Errorf("lexmach: cannot compile DFA: %w", err)
	}
	return &Splitter{lexer: lexer, Error: logError}, nil
}

// SetErrorHandler sets an error handler for the splitter.
func (sp *Splitter) SetErrorHandler(h func(error)) {
	if h == nil {
		sp.Error = logError
		return
	}
	sp.Error = h
}

// Default error reporting function for lexmachine-based splitters
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// Scan breaks input into tokens and reports their spans.
func (sp *Splitter) Scan(input string) ([]Token, error) {
	s, err := sp.lexer.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	list := arraylist.New()
	tok, err, eof := s.Next()
	for !eof {
		if err != nil {
			sp.Error(err)
			if ui, is := err.(*machines.UnconsumedInput); is {
				s.TC = ui.FailTC
			}
			tok, err, eof = s.Next()
			continue
		}
		token := tok.(*lexmachine.Token)
		tracer().Debugf("tok is %d | %q", token.Type, token.Lexeme)
		list.Add(Token{
			Lexeme: string(token.Lexeme),
			Span:   tokens.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
		})
		tok, err, eof = s.Next()
	}
	toks := make([]Token, 0, list.Size())
	it := list.Iterator()
	for it.Next() {
		toks = append(toks, it.Value().(Token))
	}
	return toks, nil
}

// Split is part of the tokens.Splitter interface.
func (sp *Splitter) Split(input string) []string {
	toks, err := sp.Scan(input)
	if err != nil {
		sp.Error(err)
		return nil
	}
	fragments := make([]string, len(toks))
	for i, tok := range toks {
		fragments[i] = tok.Lexeme
	}
	return fragments
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
