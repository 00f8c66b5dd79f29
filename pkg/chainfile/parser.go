// Package chainfile parses chain definition files: small VHDL-flavored
// descriptions of a shift-register cascade (which pins carry the data, latch
// and clock lines, and which chips hang off them, in physical order).
//
//	-- three cascaded 8-bit registers on the lobby board
//	chain "lobby" is
//	    line data  : 17;
//	    line latch : 27;
//	    line clock : 22;
//
//	    register "U1" : 8;
//	    register "U2" : 8;
//	    register "U3" : 8;
//
//	    inverted : false;
//	end chain;
package chainfile

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2"
)

// Parser parses chain definition files.
type Parser struct {
	parser *participle.Parser[File]
}

// NewParser creates a new chain file parser instance.
func NewParser() (*Parser, error) {
	parser, err := participle.Build[File](
		participle.Lexer(ChainLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("chainfile: build parser: %w", err)
	}

	return &Parser{parser: parser}, nil
}

// Parse parses a chain definition from a reader.
func (p *Parser) Parse(r io.Reader) (*File, error) {
	file, err := p.parser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("chainfile: parse error: %w", err)
	}
	return file, nil
}

// ParseString parses a chain definition from a string.
func (p *Parser) ParseString(input string) (*File, error) {
	file, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("chainfile: parse error: %w", err)
	}
	return file, nil
}

// ParseFile parses a chain definition from a file path.
func (p *Parser) ParseFile(filename string) (*File, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("chainfile: open file: %w", err)
	}
	defer f.Close()

	return p.Parse(f)
}
