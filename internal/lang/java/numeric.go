package java

import (
	"github.com/lexgram/lexgram/internal/grammar"
	"github.com/lexgram/lexgram/internal/rules"
)

// NumericDefinition registers the numeric literal rules. Because `.`
// and `_` are separator characters, a literal like 0x1.2p3 arrives as
// several tokens; the rules below reassemble every split form. Order is
// by specificity, most specific first, floats before integers.
type NumericDefinition struct {
	builder *grammar.Builder
}

func NewNumericDefinition(builder *grammar.Builder) *NumericDefinition {
	return &NumericDefinition{builder: builder}
}

func (self *NumericDefinition) AddNumericRules() {
	self.defineNumericFragments()

	self.addHexFloatWithDotRules()
	self.addHexFloatNoDotRule()
	self.addDecimalFloatWithExponentAndDotRules()
	self.addDecimalFloatWithExponentNoDotRule()
	self.addDecimalFloatNoExponentRules()

	self.addOctalIntWithUnderscoreRules()
	self.addHexIntWithUnderscoreRules()
	self.addBinaryIntWithUnderscoreRules()
	self.addDecimalIntWithUnderscoreRules()

	self.addHexIntRule()
	self.addBinaryIntRule()
	self.addOctalIntRule()
	self.addDecimalIntRule()
}

func (self *NumericDefinition) defineNumericFragments() {
	self.builder.DefineRule("Digits", pat("[0-9]+"))
	self.builder.DefineRule("HexDigits", pat("[0-9a-fA-F]+"))
	self.builder.DefineRule("OctalDigits", pat("[0-7]+"))
	self.builder.DefineRule("BinaryDigits", pat("[01]+"))

	// digit runs with an attached suffix
	self.builder.DefineRule("DigitsWithFloatSuffix", pat("[0-9]+[fFdD]"))
	self.builder.DefineRule("DigitsWithLongSuffix", pat("[0-9]+[lL]"))
	self.builder.DefineRule("HexDigitsWithFloatSuffix", pat("[0-9a-fA-F]+[fFdD]"))
	self.builder.DefineRule("HexDigitsWithLongSuffix", pat("[0-9a-fA-F]+[lL]"))
	self.builder.DefineRule("BinaryDigitsWithLongSuffix", pat("[01]+[lL]"))

	// digit runs with an attached exponent
	self.builder.DefineRule("HexDigitsWithHexExponent", pat("[0-9a-fA-F]+[pP][+-]?[0-9]+"))
	self.builder.DefineRule("HexDigitsWithHexExponentAndSuffix", pat("[0-9a-fA-F]+[pP][+-]?[0-9]+[fFdD]"))
	self.builder.DefineRule("DigitsWithExponent", pat("[0-9]+[eE][+-]?[0-9]+"))
	self.builder.DefineRule("DigitsWithExponentAndSuffix", pat("[0-9]+[eE][+-]?[0-9]+[fFdD]"))

	// bare exponent forms
	self.builder.DefineRule("Exponent", pat("[eE][+-]?"))
	self.builder.DefineRule("HexExponent", pat("[pP][+-]?"))
	self.builder.DefineRule("ExponentWithDigits", pat("[eE][+-]?[0-9]+"))
	self.builder.DefineRule("ExponentWithDigitsAndSuffix", pat("[eE][+-]?[0-9]+[fFdD]"))
	self.builder.DefineRule("HexExponentWithDigits", pat("[pP][+-]?[0-9]+"))
	self.builder.DefineRule("HexExponentWithDigitsAndSuffix", pat("[pP][+-]?[0-9]+[fFdD]"))

	self.builder.DefineRule("FloatSuffix", pat("[fFdD]"))
	self.builder.DefineRule("LongSuffix", pat("[lL]"))
}

// underscored matches zero or more additional `_`-separated runs of
// the given fragment.
func underscored(fragment string) rules.Rule {
	return rules.ZeroOrMore(rules.Sequence(
		val("_"),
		ref(fragment),
	))
}

func (self *NumericDefinition) group(r rules.Rule) {
	self.builder.AddRule(r, grammar.Grouping(grammar.GroupAll))
}

// Hex floats that contain a decimal point, e.g. 0x1.2p3, 0X1.FP-2,
// 0x.8p0, 0x1.p5, 0x1_2.3p4, 0x1.2_3p4, 0x1.2p1_0.
func (self *NumericDefinition) addHexFloatWithDotRules() {
	// 0x1_2.3p4: underscores in the integer part
	self.group(rules.Sequence(
		pat("0[xX][0-9a-fA-F]+"),
		val("_"),
		ref("HexDigits"),
		underscored("HexDigits"),
		val("."),
		ref("HexDigitsWithHexExponent"),
		rules.Optional(ref("FloatSuffix")),
	))

	// 0x1.2_3p4: one underscore in the fractional part
	self.group(rules.Sequence(
		pat("0[xX][0-9a-fA-F]+"),
		val("."),
		ref("HexDigits"),
		val("_"),
		ref("HexDigitsWithHexExponent"),
		rules.Optional(ref("FloatSuffix")),
	))

	// 0x1.2_3_4p5: several underscores in the fractional part
	self.group(rules.Sequence(
		pat("0[xX][0-9a-fA-F]+"),
		val("."),
		ref("HexDigits"),
		val("_"),
		ref("HexDigits"),
		underscored("HexDigits"),
		pat("[pP][+-]?[0-9]+"),
		rules.Optional(ref("FloatSuffix")),
	))

	// 0x1.2p1_0: underscores in the exponent
	self.group(rules.Sequence(
		pat("0[xX][0-9a-fA-F]+"),
		val("."),
		ref("HexDigitsWithHexExponent"),
		val("_"),
		ref("Digits"),
		underscored("Digits"),
		rules.Optional(ref("FloatSuffix")),
	))

	// 0x1.2p3f: fractional part carries exponent and suffix
	self.group(rules.Sequence(
		pat("0[xX][0-9a-fA-F]+"),
		val("."),
		ref("HexDigitsWithHexExponentAndSuffix"),
	))

	// 0x1.2p3: fractional part carries the exponent
	self.group(rules.Sequence(
		pat("0[xX][0-9a-fA-F]+"),
		val("."),
		ref("HexDigitsWithHexExponent"),
		rules.Optional(ref("FloatSuffix")),
	))

	// 0x.8p0f: no integer part, exponent and suffix attached
	self.group(rules.Sequence(
		pat("0[xX]"),
		val("."),
		ref("HexDigitsWithHexExponentAndSuffix"),
	))

	// 0x.8p0: no integer part
	self.group(rules.Sequence(
		pat("0[xX]"),
		val("."),
		ref("HexDigitsWithHexExponent"),
		rules.Optional(ref("FloatSuffix")),
	))

	// 0x1.Fp-2 or 0x1.91eb851eb851fp+6: fractional part and exponent
	// letter lex together, the sign splits the exponent
	self.group(rules.Sequence(
		pat("0[xX][0-9a-fA-F]+"),
		val("."),
		pat("[0-9a-fA-F]+[pP]"),
		pat("[+-]"),
		ref("Digits"),
		rules.Optional(ref("FloatSuffix")),
	))

	// 0x1.2p3f: prefix alone, exponent and suffix attached to fraction
	self.group(rules.Sequence(
		pat("0[xX]"),
		ref("HexDigits"),
		val("."),
		ref("HexExponentWithDigitsAndSuffix"),
	))

	// 0x1.2p3: prefix alone, exponent attached to fraction
	self.group(rules.Sequence(
		pat("0[xX]"),
		ref("HexDigits"),
		val("."),
		ref("HexExponentWithDigits"),
		rules.Optional(ref("FloatSuffix")),
	))

	// 0x1.2p3f: every part its own token
	self.group(rules.Sequence(
		pat("0[xX]"),
		ref("HexDigits"),
		val("."),
		ref("HexDigits"),
		ref("HexExponent"),
		ref("Digits"),
		rules.Optional(ref("FloatSuffix")),
	))

	// 0x1.p3: no fractional part, every part separate
	self.group(rules.Sequence(
		pat("0[xX]"),
		ref("HexDigits"),
		val("."),
		ref("HexExponent"),
		ref("Digits"),
		rules.Optional(ref("FloatSuffix")),
	))

	// 0x.2p3: no integer part, exponent attached
	self.group(rules.Sequence(
		pat("0[xX]"),
		val("."),
		ref("HexExponentWithDigits"),
		rules.Optional(ref("FloatSuffix")),
	))

	// 0x.2p3: no integer part, every part separate
	self.group(rules.Sequence(
		pat("0[xX]"),
		val("."),
		ref("HexDigits"),
		ref("HexExponent"),
		ref("Digits"),
		rules.Optional(ref("FloatSuffix")),
	))
}

// Hex floats without a decimal point lex as a single token, e.g. 0x1p0,
// 0xABCp10, 0x1p5f.
func (self *NumericDefinition) addHexFloatNoDotRule() {
	self.builder.AddRule(
		pat("0[xX][0-9a-fA-F]+[pP][+-]?[0-9]+[fFdD]?"),
		grammar.Grouping(grammar.GroupMatched),
	)
}

// Decimal floats with exponent and decimal point, e.g. 1.23e10, 1.e10,
// .5e-2.
func (self *NumericDefinition) addDecimalFloatWithExponentAndDotRules() {
	// 1.0e1_000: underscores in the exponent, must come first
	self.group(rules.Sequence(
		ref("Digits"),
		val("."),
		ref("DigitsWithExponent"),
		val("_"),
		ref("Digits"),
		underscored("Digits"),
		rules.Optional(ref("FloatSuffix")),
	))

	// 1.23e10f: fraction carries exponent and suffix
	self.group(rules.Sequence(
		ref("Digits"),
		val("."),
		ref("DigitsWithExponentAndSuffix"),
	))

	// 1.23e10: fraction carries the exponent
	self.group(rules.Sequence(
		ref("Digits"),
		val("."),
		ref("DigitsWithExponent"),
		rules.Optional(ref("FloatSuffix")),
	))

	// .5e10f: no integer part, exponent and suffix attached
	self.group(rules.Sequence(
		val("."),
		ref("DigitsWithExponentAndSuffix"),
	))

	// .5e10: no integer part
	self.group(rules.Sequence(
		val("."),
		ref("DigitsWithExponent"),
		rules.Optional(ref("FloatSuffix")),
	))

	// .5e-2: no integer part, exponent sign separate
	self.group(rules.Sequence(
		val("."),
		pat("[0-9]+[eE]"),
		pat("[+-]"),
		ref("Digits"),
		rules.Optional(ref("FloatSuffix")),
	))

	// 1.23e-10: exponent sign separate
	self.group(rules.Sequence(
		ref("Digits"),
		val("."),
		pat("[0-9]+[eE]"),
		pat("[+-]"),
		ref("Digits"),
		rules.Optional(ref("FloatSuffix")),
	))

	// 1.23e10f: exponent and suffix together after the dot
	self.group(rules.Sequence(
		ref("Digits"),
		val("."),
		ref("ExponentWithDigitsAndSuffix"),
	))

	// 1.23e10 or 1.e10: exponent together after the dot
	self.group(rules.Sequence(
		ref("Digits"),
		val("."),
		ref("ExponentWithDigits"),
		rules.Optional(ref("FloatSuffix")),
	))

	// 1.23e10f: every part its own token
	self.group(rules.Sequence(
		ref("Digits"),
		val("."),
		ref("Digits"),
		ref("Exponent"),
		ref("Digits"),
		rules.Optional(ref("FloatSuffix")),
	))

	// .5e10: no integer part, exponent together
	self.group(rules.Sequence(
		val("."),
		ref("ExponentWithDigits"),
		rules.Optional(ref("FloatSuffix")),
	))

	// .5e10: no integer part, every part separate
	self.group(rules.Sequence(
		val("."),
		ref("Digits"),
		ref("Exponent"),
		ref("Digits"),
		rules.Optional(ref("FloatSuffix")),
	))
}

// Decimal floats with exponent but no decimal point lex as a single
// token, e.g. 1e10, 1E-5, 1e10f.
func (self *NumericDefinition) addDecimalFloatWithExponentNoDotRule() {
	self.builder.AddRule(
		pat("[0-9]+[eE][+-]?[0-9]+[fFdD]?"),
		grammar.Grouping(grammar.GroupMatched),
	)
}

// Decimal floats without exponent, e.g. 3.14, 3.14f, .5, 123.,
// 3.14_15_92.
func (self *NumericDefinition) addDecimalFloatNoExponentRules() {
	// 1.23_45_67f: underscores in the fractional part
	self.group(rules.Sequence(
		ref("Digits"),
		val("."),
		ref("Digits"),
		val("_"),
		ref("Digits"),
		underscored("Digits"),
		rules.Optional(ref("FloatSuffix")),
	))

	// 1.23f: suffix attached to the fraction
	self.group(rules.Sequence(
		ref("Digits"),
		val("."),
		ref("DigitsWithFloatSuffix"),
	))

	// 1.23 or 1.23 f
	self.group(rules.Sequence(
		ref("Digits"),
		val("."),
		ref("Digits"),
		rules.Optional(ref("FloatSuffix")),
	))

	// 123.f: suffix separate
	self.group(rules.Sequence(
		ref("Digits"),
		val("."),
		ref("FloatSuffix"),
	))

	// 123.
	self.group(rules.Sequence(
		ref("Digits"),
		val("."),
	))

	// .5_67_89f: underscores in the fraction, no integer part
	self.group(rules.Sequence(
		val("."),
		ref("Digits"),
		val("_"),
		ref("Digits"),
		underscored("Digits"),
		rules.Optional(ref("FloatSuffix")),
	))

	// .5f: suffix attached
	self.group(rules.Sequence(
		val("."),
		ref("DigitsWithFloatSuffix"),
	))

	// .5 or .5 f
	self.group(rules.Sequence(
		val("."),
		ref("Digits"),
		rules.Optional(ref("FloatSuffix")),
	))
}

// Octal integers with underscores, e.g. 0_7_7_7, 07_77L. Only runs
// starting with a lone zero token qualify so decimal literals like
// 1_000_000 are untouched.
func (self *NumericDefinition) addOctalIntWithUnderscoreRules() {
	// 0_77L: suffix attached
	self.group(rules.Sequence(
		val("0"),
		val("_"),
		ref("DigitsWithLongSuffix"),
	))

	// 0_7_7_7 with optional separate suffix
	self.group(rules.Sequence(
		val("0"),
		val("_"),
		ref("OctalDigits"),
		underscored("OctalDigits"),
		rules.Optional(ref("LongSuffix")),
	))
}

// Hex integers with underscores, e.g. 0xDE_AD_BE_EF, 0xFF_FF_FF_FFL.
func (self *NumericDefinition) addHexIntWithUnderscoreRules() {
	// suffix attached to the last digit run
	self.group(rules.Sequence(
		pat("0[xX][0-9a-fA-F]+"),
		val("_"),
		ref("HexDigits"),
		underscored("HexDigits"),
		val("_"),
		ref("HexDigitsWithLongSuffix"),
	))

	// no suffix or a separate one
	self.group(rules.Sequence(
		pat("0[xX][0-9a-fA-F]+"),
		val("_"),
		ref("HexDigits"),
		underscored("HexDigits"),
		rules.Optional(ref("LongSuffix")),
	))
}

// Binary integers with underscores, e.g. 0b1010_1010, 0B1111_0000L.
func (self *NumericDefinition) addBinaryIntWithUnderscoreRules() {
	// 0b1111_0000L: suffix attached
	self.group(rules.Sequence(
		pat("0[bB][01]+"),
		val("_"),
		ref("BinaryDigitsWithLongSuffix"),
	))

	// several underscore runs
	self.group(rules.Sequence(
		pat("0[bB][01]+"),
		val("_"),
		ref("BinaryDigits"),
		val("_"),
		ref("BinaryDigits"),
		underscored("BinaryDigits"),
		rules.Optional(ref("LongSuffix")),
	))

	// one underscore run, no suffix or a separate one
	self.group(rules.Sequence(
		pat("0[bB][01]+"),
		val("_"),
		ref("BinaryDigits"),
		underscored("BinaryDigits"),
		rules.Optional(ref("LongSuffix")),
	))
}

// Decimal integers with underscores, e.g. 1_000_000, 1_000L.
func (self *NumericDefinition) addDecimalIntWithUnderscoreRules() {
	// suffix attached to the last digit run
	self.group(rules.Sequence(
		ref("Digits"),
		val("_"),
		ref("Digits"),
		underscored("Digits"),
		val("_"),
		ref("DigitsWithLongSuffix"),
	))

	// no suffix or a separate one
	self.group(rules.Sequence(
		ref("Digits"),
		val("_"),
		ref("Digits"),
		underscored("Digits"),
		rules.Optional(ref("LongSuffix")),
	))
}

func (self *NumericDefinition) addHexIntRule() {
	self.builder.AddRule(
		pat("0[xX][0-9a-fA-F]+[lL]?"),
		grammar.Grouping(grammar.GroupMatched),
	)
}

func (self *NumericDefinition) addBinaryIntRule() {
	self.builder.AddRule(
		pat("0[bB][01]+[lL]?"),
		grammar.Grouping(grammar.GroupMatched),
	)
}

func (self *NumericDefinition) addOctalIntRule() {
	self.builder.AddRule(
		pat("0[0-7]*[lL]?"),
		grammar.Grouping(grammar.GroupMatched),
	)
}

// Decimal integers must come after the octal rule so a leading zero is
// never matched as decimal.
func (self *NumericDefinition) addDecimalIntRule() {
	self.builder.AddRule(
		pat("[1-9][0-9]*[lL]?"),
		grammar.Grouping(grammar.GroupMatched),
	)
}
