package ir

// Warning codes reported during generation.
const (
	// WarnUnknownType is reported for a spec type whose discriminator is not
	// bool, u32, string, tuple or struct. No declaration is produced for it.
	WarnUnknownType = "unknown_type"

	// WarnNameCollision is reported when two generated names in one scope are
	// identical after case conversion.
	WarnNameCollision = "name_collision"
)

// Warning represents a non-fatal issue encountered during generation.
type Warning struct {
	// Code is a machine-readable warning identifier.
	Code string

	// Message is a human-readable description.
	Message string

	// TypeName is the generated type that triggered the warning, if applicable.
	TypeName string
}

// String formats the warning as "code: message".
func (w Warning) String() string {
	return w.Code + ": " + w.Message
}
