// Package parser groups a token stream into a parsed pipeline.
package parser

import (
	"errors"

	"github.com/adarshanand67/helix-shell/internal/ast"
	"github.com/adarshanand67/helix-shell/internal/lexer"
	"github.com/adarshanand67/helix-shell/internal/token"
)

// Sentinel parse errors, checked with errors.Is.
var (
	ErrUnterminatedQuote          = errors.New("unterminated quote")
	ErrExpectedFilenameAfterRedir = errors.New("expected filename after redirection")
	ErrMissingCommandInStage      = errors.New("missing command in pipeline stage")
	ErrUnexpectedTokenAfterBg     = errors.New("unexpected token after background operator")
)

type parser struct {
	toks []token.Token
	pos  int
}

// Parse tokenizes line and groups the result into a Pipeline.
func Parse(line string) (*ast.Pipeline, error) {
	toks := lexer.Tokenize(line)
	if lexer.Unterminated(toks) {
		return nil, ErrUnterminatedQuote
	}
	return ParseTokens(toks, line)
}

// ParseTokens parses an already-tokenized line. raw is stored verbatim on
// the resulting Pipeline for display purposes.
func ParseTokens(toks []token.Token, raw string) (*ast.Pipeline, error) {
	p := &parser{toks: toks}
	return p.parsePipeline(raw)
}

func (p *parser) peek() token.Token {
	return p.toks[p.pos]
}

func (p *parser) advance() token.Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) parsePipeline(raw string) (*ast.Pipeline, error) {
	var stages []ast.Command

	for {
		stage, err := p.parseStage()
		if err != nil {
			return nil, err
		}
		stages = append(stages, stage)

		if p.peek().Kind == token.PIPE {
			p.advance()
			continue
		}
		break
	}

	pipeline := &ast.Pipeline{Stages: stages, Raw: raw}

	if p.peek().Kind == token.BACKGROUND {
		p.advance()
		pipeline.Background = true
	}

	// SEMICOLON is reserved; this core treats it as end-of-pipeline and
	// does not parse anything that might follow it.
	if p.peek().Kind == token.SEMICOLON {
		p.advance()
		return pipeline, nil
	}

	if p.peek().Kind != token.END {
		return nil, ErrUnexpectedTokenAfterBg
	}

	return pipeline, nil
}

func (p *parser) parseStage() (ast.Command, error) {
	var cmd ast.Command

	for {
		t := p.peek()
		switch t.Kind {
		case token.WORD:
			p.advance()
			cmd.Argv = append(cmd.Argv, t.Lexeme)
		case token.REDIR_IN:
			p.advance()
			file, err := p.expectWord()
			if err != nil {
				return ast.Command{}, err
			}
			cmd.StdinFile = &file
		case token.REDIR_OUT:
			p.advance()
			file, err := p.expectWord()
			if err != nil {
				return ast.Command{}, err
			}
			cmd.StdoutFile = &file
			cmd.StdoutAppend = false
		case token.REDIR_OUT_APPEND:
			p.advance()
			file, err := p.expectWord()
			if err != nil {
				return ast.Command{}, err
			}
			cmd.StdoutFile = &file
			cmd.StdoutAppend = true
		case token.REDIR_ERR:
			p.advance()
			file, err := p.expectWord()
			if err != nil {
				return ast.Command{}, err
			}
			cmd.StderrFile = &file
			cmd.StderrAppend = false
		case token.REDIR_ERR_APPEND:
			p.advance()
			file, err := p.expectWord()
			if err != nil {
				return ast.Command{}, err
			}
			cmd.StderrFile = &file
			cmd.StderrAppend = true
		default:
			// PIPE, BACKGROUND, SEMICOLON, END all terminate the stage.
			if len(cmd.Argv) == 0 {
				return ast.Command{}, ErrMissingCommandInStage
			}
			return cmd, nil
		}
	}
}

func (p *parser) expectWord() (string, error) {
	t := p.peek()
	if t.Kind != token.WORD {
		return "", ErrExpectedFilenameAfterRedir
	}
	p.advance()
	return t.Lexeme, nil
}
