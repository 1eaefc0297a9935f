package scene

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// SceneLexer defines the lexical structure of scene files: s-expressions
// with line comments, bare identifiers, quoted strings, and signed decimal
// numbers.
var SceneLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments run from ';' to end of line, Lisp style.
	{Name: "Comment", Pattern: `;[^\n]*`},
	{Name: "Whitespace", Pattern: `[ \t\n\r]+`},

	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},

	{Name: "Number", Pattern: `[-+]?\d+(\.\d+)?`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_.-]*`},
})
