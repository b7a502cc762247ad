package model

// Severity classifies a catalogued exception site.
type Severity string

const (
	// SeverityError is the only level the matcher currently assigns.
	SeverityError Severity = "ERROR"
)

// UnresolvedCode is assigned when a symbolic code has no registry entry.
const UnresolvedCode = 0

// ExceptionSite is one matched exception-raising call. Field order matches the
// catalog's key order.
type ExceptionSite struct {
	FilePath        Path     `json:"file_path"`
	ErrorCodeNumber int      `json:"error_code"`
	ErrorCodeName   string   `json:"error_code_name"`
	ClassName       string   `json:"error_class_name"`
	MessageTemplate string   `json:"error_message_template"`
	Variables       []string `json:"error_message_variables"`
	Severity        Severity `json:"severity_level"`
	OriginalText    string   `json:"original_text"`
}

// Resolved reports whether the site's code was found in the registry.
func (s ExceptionSite) Resolved() bool {
	return s.ErrorCodeNumber != UnresolvedCode
}
