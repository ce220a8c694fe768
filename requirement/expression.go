package requirement

import (
	"fmt"
	"strconv"
	"unicode"

	"github.com/brequin/brequin/audit/course"
)

// Requirement expressions describe predicates in text:
//
//	expression := term ('|' term)*
//	term       := factor ('&' factor)*
//	factor     := '(' expression ')'
//	            | N 'of' '(' expression (',' expression)* ')'
//	            | N 'credits' ['of' factor]
//	            | 'any' | 'upper' | 'dept' DEPT | 'tag' TAG | DEPT NUMBER
//
// For example "CSE 114 & (MAT 211 | AMS 210)" or "39 credits of upper".

type TokenType int

const (
	TokenWord TokenType = iota
	TokenLParen
	TokenRParen
	TokenAnd
	TokenOr
	TokenComma
	TokenEnd
)

type Token struct {
	Type  TokenType
	Value string
	Pos   int
}

type lexerState int

const (
	lexerStart lexerState = iota
	lexerWord
)

var punctuation = map[rune]TokenType{
	'(': TokenLParen,
	')': TokenRParen,
	'&': TokenAnd,
	'|': TokenOr,
	',': TokenComma,
}

// ParseError reports where an expression stopped making sense.
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("position %v: %v", e.Pos, e.Msg)
}

// Tokenize splits an expression into words and punctuation. The result
// always ends with a TokenEnd.
func Tokenize(expression string) []Token {
	initialPos := 0
	state := lexerStart

	var tokens []Token
	endWord := func(pos int) {
		if state == lexerWord {
			tokens = append(tokens, Token{Type: TokenWord, Value: expression[initialPos:pos], Pos: initialPos})
			state = lexerStart
		}
	}

	for pos, char := range expression {
		if tokenType, ok := punctuation[char]; ok {
			endWord(pos)
			tokens = append(tokens, Token{Type: tokenType, Value: string(char), Pos: pos})
			continue
		}
		if unicode.IsSpace(char) {
			endWord(pos)
			continue
		}
		if state == lexerStart {
			state = lexerWord
			initialPos = pos
		}
	}
	endWord(len(expression))

	tokens = append(tokens, Token{Type: TokenEnd, Value: "$", Pos: len(expression)})
	return tokens
}

// Parse builds a fresh predicate from an expression.
func Parse(expression string) (Predicate, error) {
	tokens := Tokenize(expression)

	predicate, err := parseExpression(&tokens)
	if err != nil {
		return nil, err
	}
	if _, err := eat(&tokens, TokenEnd); err != nil {
		return nil, err
	}
	return predicate, nil
}

func eat(tokens *[]Token, tokenType TokenType) (Token, error) {
	token := (*tokens)[0]
	if token.Type != tokenType {
		return Token{}, unexpected(token)
	}
	if token.Type != TokenEnd {
		*tokens = (*tokens)[1:]
	}
	return token, nil
}

func unexpected(token Token) error {
	if token.Type == TokenEnd {
		return &ParseError{Pos: token.Pos, Msg: "unexpected end of expression"}
	}
	return &ParseError{Pos: token.Pos, Msg: fmt.Sprintf("unexpected %q", token.Value)}
}

func peek(tokens *[]Token) Token {
	return (*tokens)[0]
}

func parseExpression(tokens *[]Token) (Predicate, error) {
	head, err := parseTerm(tokens)
	if err != nil {
		return nil, err
	}

	tail, err := parseTerms(tokens)
	if err != nil {
		return nil, err
	}

	if len(tail) == 0 {
		return head, nil
	}
	return Or(head, tail[0], tail[1:]...), nil
}

func parseTerms(tokens *[]Token) ([]Predicate, error) {
	if peek(tokens).Type != TokenOr {
		return nil, nil
	}
	eat(tokens, TokenOr)

	head, err := parseTerm(tokens)
	if err != nil {
		return nil, err
	}

	tail, err := parseTerms(tokens)
	if err != nil {
		return nil, err
	}
	return append([]Predicate{head}, tail...), nil
}

func parseTerm(tokens *[]Token) (Predicate, error) {
	term, err := parseFactor(tokens)
	if err != nil {
		return nil, err
	}

	factors, err := parseFactors(tokens)
	if err != nil {
		return nil, err
	}

	for _, factor := range factors {
		term = And(term, factor)
	}
	return term, nil
}

func parseFactors(tokens *[]Token) ([]Predicate, error) {
	if peek(tokens).Type != TokenAnd {
		return nil, nil
	}
	eat(tokens, TokenAnd)

	head, err := parseFactor(tokens)
	if err != nil {
		return nil, err
	}

	tail, err := parseFactors(tokens)
	if err != nil {
		return nil, err
	}
	return append([]Predicate{head}, tail...), nil
}

func parseFactor(tokens *[]Token) (Predicate, error) {
	switch peek(tokens).Type {
	case TokenLParen:
		eat(tokens, TokenLParen)

		expression, err := parseExpression(tokens)
		if err != nil {
			return nil, err
		}

		if _, err := eat(tokens, TokenRParen); err != nil {
			return nil, err
		}
		return expression, nil
	case TokenWord:
		return parseAtom(tokens)
	default:
		return nil, unexpected(peek(tokens))
	}
}

func parseAtom(tokens *[]Token) (Predicate, error) {
	word, _ := eat(tokens, TokenWord)

	switch {
	case word.Value == "any":
		return Any(), nil
	case word.Value == "upper":
		return IsUpperDivision(), nil
	case word.Value == "dept":
		department, err := eat(tokens, TokenWord)
		if err != nil {
			return nil, err
		}
		return InDepartment(department.Value), nil
	case word.Value == "tag":
		tag, err := eat(tokens, TokenWord)
		if err != nil {
			return nil, err
		}
		return HasDistributionTag(tag.Value), nil
	case unicode.IsDigit(rune(word.Value[0])):
		return parseCount(word, tokens)
	}

	number, err := eat(tokens, TokenWord)
	if err != nil {
		return nil, err
	}
	department, n, err := course.ParseID(word.Value + " " + number.Value)
	if err != nil {
		return nil, &ParseError{Pos: word.Pos, Msg: err.Error()}
	}
	return IsCourse(course.ID(department, n)), nil
}

// parseCount handles the two forms that start with a number: "N of (...)"
// and "N credits [of factor]".
func parseCount(count Token, tokens *[]Token) (Predicate, error) {
	keyword, err := eat(tokens, TokenWord)
	if err != nil {
		return nil, err
	}

	switch keyword.Value {
	case "of":
		n, err := strconv.Atoi(count.Value)
		if err != nil {
			return nil, &ParseError{Pos: count.Pos, Msg: fmt.Sprintf("invalid count %q", count.Value)}
		}

		if _, err := eat(tokens, TokenLParen); err != nil {
			return nil, err
		}

		var list []Predicate
		for {
			item, err := parseExpression(tokens)
			if err != nil {
				return nil, err
			}
			list = append(list, item)

			if peek(tokens).Type != TokenComma {
				break
			}
			eat(tokens, TokenComma)
		}

		if _, err := eat(tokens, TokenRParen); err != nil {
			return nil, err
		}
		return NOutOfList(n, list), nil
	case "credits":
		threshold, err := strconv.ParseFloat(count.Value, 64)
		if err != nil || threshold < 0 {
			return nil, &ParseError{Pos: count.Pos, Msg: fmt.Sprintf("invalid credit threshold %q", count.Value)}
		}

		next := peek(tokens)
		if next.Type != TokenWord || next.Value != "of" {
			return MinimumCredits(threshold, nil), nil
		}
		eat(tokens, TokenWord)

		filter, err := parseFactor(tokens)
		if err != nil {
			return nil, err
		}
		return MinimumCredits(threshold, filter), nil
	default:
		return nil, unexpected(keyword)
	}
}
