package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sudouser2010/halfwaytree/symex"
)

// line is one non-blank source line, with its leading-whitespace depth
// already measured and stripped.
type line struct {
	indent int
	text   string
	lineNo int
}

// splitLines breaks source into indented lines, discarding blank
// lines; there is no comment syntax, so a line starting with '#' is
// kept and handed to the lexer. Indentation is measured in raw leading-whitespace
// characters; lexmachine never sees it, since only the dedented
// remainder of each line is tokenized.
func splitLines(src string) []line {
	var out []line
	for i, raw := range strings.Split(src, "\n") {
		trimmed := strings.TrimRight(raw, "\r")
		stripped := strings.TrimLeft(trimmed, " \t")
		if strings.TrimSpace(stripped) == "" {
			continue
		}
		indent := len(trimmed) - len(stripped)
		out = append(out, line{indent: indent, text: stripped, lineNo: i + 1})
	}
	return out
}

// Parser turns source text into a Program by first grouping lines into
// nested bodies by indentation, then recursive-descent parsing each
// line's tokens into a statement.
type Parser struct {
	lexer *Lexer
}

// NewParser builds a Parser, compiling its lexer's DFA once.
func NewParser() (*Parser, error) {
	lx, err := NewLexer()
	if err != nil {
		return nil, err
	}
	return &Parser{lexer: lx}, nil
}

// Parse parses src into a Program. It does not append the synthetic
// terminal statement; call Program.AppendTerminal for that.
func (p *Parser) Parse(src string) (*Program, error) {
	lines := splitLines(src)
	body, _, err := p.parseBody(lines, 0, 0)
	if err != nil {
		return nil, err
	}
	return &Program{Root: body}, nil
}

// parseBody consumes lines at exactly the given indent, starting at
// index start, until a line with lesser indent or end of input.
// Returns the constructed body and the index of the first unconsumed line.
func (p *Parser) parseBody(lines []line, start int, indent int) (*Body, int, error) {
	body := NewBody()
	i := start
	for i < len(lines) {
		ln := lines[i]
		if ln.indent < indent {
			break
		}
		if ln.indent > indent {
			return nil, 0, fmt.Errorf("line %d: unexpected indentation", ln.lineNo)
		}
		stmt, isIf, err := p.parseLine(ln)
		if err != nil {
			return nil, 0, err
		}
		i++
		if isIf {
			ifStmt := stmt.(*If)
			if i >= len(lines) || lines[i].indent <= indent {
				return nil, 0, fmt.Errorf("line %d: if with no indented body", ln.lineNo)
			}
			then, next, err := p.parseBody(lines, i, lines[i].indent)
			if err != nil {
				return nil, 0, err
			}
			ifStmt.Then = then
			i = next
		}
		body.Append(stmt)
	}
	return body, i, nil
}

// parseLine parses a single in-line statement. The bool return reports
// whether it is an If, whose then-body the caller still must attach.
func (p *Parser) parseLine(ln line) (Stmt, bool, error) {
	toks, err := p.lexer.Tokenize(ln.text)
	if err != nil {
		return nil, false, fmt.Errorf("line %d: %w", ln.lineNo, err)
	}
	pl := &lineParser{toks: toks, lineNo: ln.lineNo}
	stmt, isIf, err := pl.parseStmt()
	if err != nil {
		return nil, false, err
	}
	if pl.peek().Type != TokEOF {
		return nil, false, fmt.Errorf("line %d: unexpected trailing token %q", ln.lineNo, pl.peek().Lexeme)
	}
	return stmt, isIf, nil
}

// lineParser is a small recursive-descent parser over one line's tokens.
type lineParser struct {
	toks   []Token
	pos    int
	lineNo int
}

func (lp *lineParser) peek() Token { return lp.toks[lp.pos] }

func (lp *lineParser) next() Token {
	t := lp.toks[lp.pos]
	if lp.pos < len(lp.toks)-1 {
		lp.pos++
	}
	return t
}

func (lp *lineParser) expect(tt TokType, what string) (Token, error) {
	if lp.peek().Type != tt {
		return Token{}, fmt.Errorf("line %d: expected %s, found %q", lp.lineNo, what, lp.peek().Lexeme)
	}
	return lp.next(), nil
}

func (lp *lineParser) span(from, to int) symex.Span {
	return symex.Span{from, to}
}

func (lp *lineParser) parseStmt() (Stmt, bool, error) {
	switch lp.peek().Type {
	case TokIf:
		s, err := lp.parseIf()
		return s, true, err
	case TokPrint:
		tok := lp.next()
		return NewPrint(lp.span(tok.From, tok.To)), false, nil
	case TokAssert:
		from := lp.next().From
		to := from
		// Any argument (e.g. "False") is consumed but its value is
		// ignored: every assert is treated as an unconditional error path.
		for lp.peek().Type != TokEOF {
			to = lp.next().To
		}
		return NewAssert(lp.span(from, to)), false, nil
	case TokIdent:
		s, err := lp.parseAssign()
		return s, false, err
	}
	return nil, false, fmt.Errorf("line %d: unexpected token %q", lp.lineNo, lp.peek().Lexeme)
}

func (lp *lineParser) parseAssign() (Stmt, error) {
	name, err := lp.expect(TokIdent, "variable name")
	if err != nil {
		return nil, err
	}
	if _, err := lp.expect(TokAssign, "'='"); err != nil {
		return nil, err
	}
	rhs, err := lp.parseArith()
	if err != nil {
		return nil, err
	}
	return NewAssign(name.Lexeme, rhs, lp.span(name.From, rhs.Span().To())), nil
}

func (lp *lineParser) parseIf() (*If, error) {
	start := lp.next().From // 'if'
	test, err := lp.parseBoolExpr()
	if err != nil {
		return nil, err
	}
	colon, err := lp.expect(TokColon, "':'")
	if err != nil {
		return nil, err
	}
	return NewIf(test, nil, lp.span(start, colon.To)), nil
}

// parseBoolExpr parses a comparison, or a conjunction of comparisons
// joined by "and".
func (lp *lineParser) parseBoolExpr() (Expr, error) {
	first, err := lp.parseCompare()
	if err != nil {
		return nil, err
	}
	operands := []Expr{first}
	for lp.peek().Type == TokAnd {
		lp.next()
		next, err := lp.parseCompare()
		if err != nil {
			return nil, err
		}
		operands = append(operands, next)
	}
	if len(operands) == 1 {
		return operands[0], nil
	}
	return NewBoolAnd(operands, lp.span(operands[0].Span().From(), operands[len(operands)-1].Span().To())), nil
}

func (lp *lineParser) parseCompare() (Expr, error) {
	l, err := lp.parseArith()
	if err != nil {
		return nil, err
	}
	op, ok := compareOpFor(lp.peek().Type)
	if !ok {
		return nil, fmt.Errorf("line %d: expected a comparison operator, found %q", lp.lineNo, lp.peek().Lexeme)
	}
	lp.next()
	r, err := lp.parseArith()
	if err != nil {
		return nil, err
	}
	return NewCompare(op, l, r, lp.span(l.Span().From(), r.Span().To())), nil
}

func compareOpFor(tt TokType) (CompareOp, bool) {
	switch tt {
	case TokEq:
		return OpEq, true
	case TokNe:
		return OpNe, true
	case TokLt:
		return OpLt, true
	case TokLe:
		return OpLe, true
	case TokGt:
		return OpGt, true
	case TokGe:
		return OpGe, true
	}
	return 0, false
}

// parseArith parses +/- terms over */÷ factors, standard precedence
// climbing in two tiers since the grammar has exactly two levels.
func (lp *lineParser) parseArith() (Expr, error) {
	l, err := lp.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		var op ArithOp
		switch lp.peek().Type {
		case TokPlus:
			op = OpAdd
		case TokMinus:
			op = OpSub
		default:
			return l, nil
		}
		lp.next()
		r, err := lp.parseTerm()
		if err != nil {
			return nil, err
		}
		l = NewBinOp(op, l, r, lp.span(l.Span().From(), r.Span().To()))
	}
}

func (lp *lineParser) parseTerm() (Expr, error) {
	l, err := lp.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		var op ArithOp
		switch lp.peek().Type {
		case TokStar:
			op = OpMul
		case TokSlash:
			op = OpDiv
		default:
			return l, nil
		}
		lp.next()
		r, err := lp.parseFactor()
		if err != nil {
			return nil, err
		}
		l = NewBinOp(op, l, r, lp.span(l.Span().From(), r.Span().To()))
	}
}

func (lp *lineParser) parseFactor() (Expr, error) {
	tok := lp.peek()
	switch tok.Type {
	case TokInt:
		lp.next()
		v, err := strconv.Atoi(tok.Lexeme)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid integer literal %q", lp.lineNo, tok.Lexeme)
		}
		return NewIntLiteral(v, lp.span(tok.From, tok.To)), nil
	case TokIdent:
		lp.next()
		return NewName(tok.Lexeme, lp.span(tok.From, tok.To)), nil
	case TokMinus:
		lp.next()
		inner, err := lp.parseFactor()
		if err != nil {
			return nil, err
		}
		return NewBinOp(OpSub, NewIntLiteral(0, inner.Span()), inner, inner.Span()), nil
	}
	return nil, fmt.Errorf("line %d: expected a number or name, found %q", lp.lineNo, tok.Lexeme)
}
