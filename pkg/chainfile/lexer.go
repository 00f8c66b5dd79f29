package chainfile

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// ChainLexer defines the lexical structure for chain definition files.
// The format borrows VHDL's surface syntax (keywords, "--" comments,
// semicolon-terminated statements) so the files read like the hardware
// descriptions board people already know.
var ChainLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments - VHDL style (-- to end of line)
	{Name: "Comment", Pattern: `--[^\n]*`},

	// Whitespace
	{Name: "Whitespace", Pattern: `[\s\t\n\r]+`},

	// Keywords (case-insensitive)
	{Name: "KwChain", Pattern: `(?i)\bCHAIN\b`},
	{Name: "KwIs", Pattern: `(?i)\bIS\b`},
	{Name: "KwEnd", Pattern: `(?i)\bEND\b`},

	// Statement keywords
	{Name: "KwLine", Pattern: `(?i)\bLINE\b`},
	{Name: "KwRegister", Pattern: `(?i)\bREGISTER\b`},
	{Name: "KwInverted", Pattern: `(?i)\bINVERTED\b`},

	// Line roles
	{Name: "KwData", Pattern: `(?i)\bDATA\b`},
	{Name: "KwLatch", Pattern: `(?i)\bLATCH\b`},
	{Name: "KwClock", Pattern: `(?i)\bCLOCK\b`},

	// Boolean literals
	{Name: "KwTrue", Pattern: `(?i)\bTRUE\b`},
	{Name: "KwFalse", Pattern: `(?i)\bFALSE\b`},

	// Punctuation
	{Name: "Colon", Pattern: `:`},
	{Name: "Semicolon", Pattern: `;`},

	// Literals
	{Name: "String", Pattern: `"(?:[^"\\]|\\.)*"`},
	{Name: "Integer", Pattern: `[-+]?[0-9]+`},

	// Identifiers (must come after keywords)
	{Name: "Ident", Pattern: `[a-zA-Z][a-zA-Z0-9_]*`},
})
