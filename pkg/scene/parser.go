package scene

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2"
)

// Parser parses scene description files.
type Parser struct {
	parser *participle.Parser[Document]
}

// NewParser builds a scene parser instance.
func NewParser() (*Parser, error) {
	parser, err := participle.Build[Document](
		participle.Lexer(SceneLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.Unquote("String"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}

	return &Parser{parser: parser}, nil
}

// Parse parses a scene from a reader.
func (p *Parser) Parse(r io.Reader) (*Document, error) {
	doc, err := p.parser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return doc, nil
}

// ParseString parses a scene from a string.
func (p *Parser) ParseString(input string) (*Document, error) {
	doc, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return doc, nil
}

// ParseFile parses a scene from a file path.
func (p *Parser) ParseFile(filename string) (*Document, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return p.Parse(file)
}

// ParseFile parses a scene file with a one-shot parser.
func ParseFile(filename string) (*Document, error) {
	p, err := NewParser()
	if err != nil {
		return nil, err
	}
	return p.ParseFile(filename)
}
