package ast

import (
	"fmt"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// TokType enumerates the lexical token kinds of a single in-line
// statement. Indentation is not a token here: it is stripped and
// measured by the line splitter before a line ever reaches the lexer.
type TokType int

const (
	TokIdent TokType = iota
	TokInt
	TokIf
	TokPrint
	TokAssert
	TokAnd
	TokFalse
	TokAssign // =
	TokEq     // ==
	TokNe     // !=
	TokLt     // <
	TokLe     // <=
	TokGt     // >
	TokGe     // >=
	TokPlus
	TokMinus
	TokStar
	TokSlash
	TokColon
	TokEOF
)

// Token is a single lexed token, with its column span within the line
// it was scanned from.
type Token struct {
	Type   TokType
	Lexeme string
	From   int
	To     int
}

var keywords = map[string]TokType{
	"if":     TokIf,
	"print":  TokPrint,
	"assert": TokAssert,
	"and":    TokAnd,
	"False":  TokFalse,
}

// Lexer tokenizes one in-line statement at a time using a compiled
// lexmachine DFA.
type Lexer struct {
	lex *lexmachine.Lexer
}

// NewLexer builds and compiles the lexer's DFA. Constructing one is
// comparatively expensive; callers should build one Lexer and reuse it
// across every line of a program.
func NewLexer() (*Lexer, error) {
	lex := lexmachine.NewLexer()

	add := func(pattern string, tt TokType) {
		lex.Add([]byte(pattern), makeAction(tt))
	}

	lex.Add([]byte(`( |\t)+`), skipAction)
	add(`==`, TokEq)
	add(`!=`, TokNe)
	add(`<=`, TokLe)
	add(`>=`, TokGe)
	add(`<`, TokLt)
	add(`>`, TokGt)
	add(`=`, TokAssign)
	add(`\+`, TokPlus)
	add(`-`, TokMinus)
	add(`\*`, TokStar)
	add(`/`, TokSlash)
	add(`:`, TokColon)
	lex.Add([]byte(`[0-9]+`), func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return makeToken(TokInt, m), nil
	})
	lex.Add([]byte(`[A-Za-z_][A-Za-z0-9_]*`), func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		text := string(m.Bytes)
		if tt, ok := keywords[text]; ok {
			return makeToken(tt, m), nil
		}
		return makeToken(TokIdent, m), nil
	})

	if err := lex.Compile(); err != nil {
		tracer().Errorf("lexer DFA compile failed: %v", err)
		return nil, fmt.Errorf("compiling lexer: %w", err)
	}
	return &Lexer{lex: lex}, nil
}

func makeAction(tt TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return makeToken(tt, m), nil
	}
}

func skipAction(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	return nil, nil
}

func makeToken(tt TokType, m *machines.Match) Token {
	return Token{Type: tt, Lexeme: string(m.Bytes), From: m.StartColumn, To: m.EndColumn}
}

// Tokenize scans a single dedented line into a token slice, terminated
// by a TokEOF sentinel.
func (l *Lexer) Tokenize(line string) ([]Token, error) {
	scanner, err := l.lex.Scanner([]byte(line))
	if err != nil {
		return nil, fmt.Errorf("building scanner: %w", err)
	}
	var toks []Token
	for {
		tok, err, eof := scanner.Next()
		if err != nil {
			if ui, ok := err.(*machines.UnconsumedInput); ok {
				tracer().Errorf("unconsumed input at column %d: %q", ui.StartColumn, line[ui.StartColumn:])
				return nil, fmt.Errorf("unrecognized input at column %d in %q", ui.StartColumn, line)
			}
			return nil, err
		}
		if eof {
			break
		}
		if tok == nil {
			continue
		}
		toks = append(toks, tok.(Token))
	}
	toks = append(toks, Token{Type: TokEOF})
	return toks, nil
}
