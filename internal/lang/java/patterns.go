package java

// Reference regular expressions for complete Java numeric literals,
// underscore separators and type suffixes included. Each expression
// describes one literal kind in full; the grammar rules in this package
// recognize the same literals from their split token form.
const (
	// Hexadecimal floating point, mandatory p/P exponent (0x1.2p3, 0X1.FP-2).
	PatternHexFloat = `0[xX](?:[0-9a-fA-F]+(?:_[0-9a-fA-F]+)*(?:\.(?:[0-9a-fA-F]+(?:_[0-9a-fA-F]+)*)?)?|\.(?:[0-9a-fA-F]+(?:_[0-9a-fA-F]+)*))[pP][+-]?[0-9]+(?:_[0-9]+)*[fFdD]?`

	// Decimal floating point with exponent (1.23e10, .5e-2, 1e5).
	PatternDecimalFloatExp = `(?:[0-9]+(?:_[0-9]+)*\.[0-9]+(?:_[0-9]+)*|[0-9]+(?:_[0-9]+)*\.|\.[0-9]+(?:_[0-9]+)*|[0-9]+(?:_[0-9]+)*)[eE][+-]?[0-9]+(?:_[0-9]+)*[fFdD]?`

	// Decimal floating point without exponent (3.14, .5, 123.).
	PatternDecimalFloat = `(?:[0-9]+(?:_[0-9]+)*\.[0-9]+(?:_[0-9]+)*|[0-9]+(?:_[0-9]+)*\.(?:[fFdD])?|\.[0-9]+(?:_[0-9]+)*)[fFdD]?`

	// Hexadecimal integer (0x1A, 0XFFFL).
	PatternHexInt = `0[xX][0-9a-fA-F]+(?:_[0-9a-fA-F]+)*[lL]?`

	// Binary integer (0b1010, 0B1111L).
	PatternBinaryInt = `0[bB][01]+(?:_[01]+)*[lL]?`

	// Octal integer (0777, 012, 0).
	PatternOctalInt = `0[0-7]*(?:_[0-7]+)*[lL]?`

	// Decimal integer (123, 42L, 1_000_000).
	PatternDecimalInt = `[1-9](?:[0-9]*(?:_[0-9]+)*)?[lL]?`
)

// PatternNumericLiteral is the alternation of every literal kind, most
// specific first.
const PatternNumericLiteral = PatternHexFloat +
	`|` + PatternDecimalFloatExp +
	`|` + PatternDecimalFloat +
	`|` + PatternHexInt +
	`|` + PatternBinaryInt +
	`|` + PatternOctalInt +
	`|` + PatternDecimalInt
