// parser.go: recursive-descent parser from tokens to an expression tree.
//
// The grammar is a single expression per line:
//
//	expr := NUMBER | BOOLEAN | SYMBOL | "(" expr* ")"
//
// There is no quoting, no strings, no multi-line forms. Parse consumes one
// expression and ignores anything after it on the line. Failures come back
// as *ParseError carrying the 1-based column where things went wrong, which
// WrapErrorWithSource (errors.go) turns into a caret snippet.
package minilisp

// ParseError is a syntax failure at a 1-based column of the input line.
type ParseError struct {
	Col int
	Msg string
}

func (e *ParseError) Error() string { return e.Msg }

// ParseSource tokenizes src and parses one expression from it.
func ParseSource(src string) (Expr, error) {
	return Parse(Tokenize(src))
}

// Parse reads one expression from the token stream. Trailing tokens are
// ignored.
func Parse(toks []Token) (Expr, error) {
	p := &parser{toks: toks}
	return p.parseExpr()
}

type parser struct {
	toks []Token
	pos  int
}

func (p *parser) next() (Token, bool) {
	if p.pos >= len(p.toks) {
		return Token{}, false
	}
	t := p.toks[p.pos]
	p.pos++
	return t, true
}

// endCol is the column just past the last token, where a truncated input
// went wrong.
func (p *parser) endCol() int {
	if len(p.toks) == 0 {
		return 1
	}
	last := p.toks[len(p.toks)-1]
	return last.Col + len([]rune(last.Lexeme))
}

func (p *parser) parseExpr() (Expr, error) {
	tok, ok := p.next()
	if !ok {
		return Expr{}, &ParseError{Col: p.endCol(), Msg: "unexpected end of input"}
	}
	switch tok.Type {
	case LPAREN:
		return p.parseList()
	case RPAREN:
		return Expr{}, &ParseError{Col: tok.Col, Msg: "unexpected ')'"}
	default:
		return leaf(tok), nil
	}
}

// parseList collects sub-expressions until the matching ")". The opening
// "(" has already been consumed.
func (p *parser) parseList() (Expr, error) {
	items := []Expr{}
	for {
		tok, ok := p.next()
		if !ok {
			return Expr{}, &ParseError{Col: p.endCol(), Msg: "unexpected end of input inside list"}
		}
		switch tok.Type {
		case LPAREN:
			sub, err := p.parseList()
			if err != nil {
				return Expr{}, err
			}
			items = append(items, sub)
		case RPAREN:
			return ListOf(items...), nil
		default:
			items = append(items, leaf(tok))
		}
	}
}

func leaf(tok Token) Expr {
	switch tok.Type {
	case BOOLEAN:
		return BoolLit(tok.Literal.(bool))
	case NUMBER:
		return NumberLit(tok.Literal.(float64))
	default:
		return SymbolOf(tok.Lexeme)
	}
}
