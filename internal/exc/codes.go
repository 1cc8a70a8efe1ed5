package exc

const (
	CodeUnknownFatal          = "L0000"
	CodeConflictingCharacter  = "L0001"
	CodeIllegalCharacter      = "L0002"
	CodeUnknownRuleReference  = "L0003"
	CodeInvalidPattern        = "L0004"
	CodeInvalidRule           = "L0005"
	CodeDuplicateRuleFragment = "L0006"
	CodeFileNotFound          = "L0007"
	CodeInvalidConfig         = "L0008"
)

var (
	defaultNonFatal = map[string]bool{}
)
