package chainfile

// File represents a complete chain definition file.
// A file contains exactly one chain declaration.
type File struct {
	Chain *ChainDecl `@@`
}

// ChainDecl represents the top-level chain block.
// Example: chain "lobby" is ... end chain;
type ChainDecl struct {
	Name  string       `KwChain @String KwIs`
	Stmts []*Statement `@@*`
	End   string       `KwEnd KwChain Semicolon`
}

// Statement represents one declaration inside the chain block.
type Statement struct {
	Line     *LineDecl     `  @@`
	Register *RegisterDecl `| @@`
	Inverted *InvertDecl   `| @@`
}

// LineDecl assigns a pin number to one of the three signal lines.
// Example: line data : 17;
type LineDecl struct {
	Role string `KwLine @( KwData | KwLatch | KwClock )`
	Pin  int    `Colon @Integer Semicolon`
}

// RegisterDecl declares one chip in the cascade, in physical order starting
// at the controller.
// Example: register "U3" : 8;
type RegisterDecl struct {
	Name string `KwRegister @String`
	Pins int    `Colon @Integer Semicolon`
}

// InvertDecl flips the logic level of every transmitted bit.
// Example: inverted : true;
type InvertDecl struct {
	Value bool `KwInverted Colon ( @KwTrue | KwFalse ) Semicolon`
}

// unquote strips the surrounding double quotes from a String token.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
