package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseResolve   Phase = "resolve"   // IDL graph traversal / catalog building
	PhaseTranslate Phase = "translate" // signature to lattice method translation
	PhaseGenerate  Phase = "generate"  // binding assembly
	PhaseEmit      Phase = "emit"      // source rendering
	PhaseConfig    Phase = "config"    // binding configuration parsing
	PhaseEncode    Phase = "encode"    // Go to wire value
	PhaseDecode    Phase = "decode"    // wire value to Go
	PhaseDispatch  Phase = "dispatch"  // inbound invocation routing
	PhaseInvoke    Phase = "invoke"    // outbound invocation
)

// Kind categorizes the error
type Kind string

const (
	KindUnresolvedType     Kind = "unresolved_type"
	KindMalformedPath      Kind = "malformed_path"
	KindInvalidConfig      Kind = "invalid_config"
	KindDuplicateOperation Kind = "duplicate_operation"
	KindDuplicateSubject   Kind = "duplicate_subject"
	KindDuplicateKey       Kind = "duplicate_key"
	KindMalformedOperation Kind = "malformed_operation"
	KindUnexpected         Kind = "unexpected"
	KindUnsupported        Kind = "unsupported"
	KindInvalidData        Kind = "invalid_data"
	KindInvalidInput       Kind = "invalid_input"
	KindNotFound           Kind = "not_found"
)

// Error is the structured error type used throughout the binding compiler
type Error struct {
	Value   any
	Cause   error
	Phase   Phase
	Kind    Kind
	GoType  string
	WitType string
	Detail  string
	Path    []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.GoType != "" || e.WitType != "" {
		b.WriteString(": ")
		if e.GoType != "" && e.WitType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
			b.WriteString(", WIT type ")
			b.WriteString(e.WitType)
		} else if e.GoType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
		} else {
			b.WriteString("WIT type ")
			b.WriteString(e.WitType)
		}
	}

	if e.Detail != "" {
		if e.GoType != "" || e.WitType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the element path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// WitType sets the WIT type name
func (b *Builder) WitType(t string) *Builder {
	b.err.WitType = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// UnresolvedType creates an error for a type name that no catalog can resolve
func UnresolvedType(phase Phase, path []string, typeName string) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindUnresolvedType,
		Path:    path,
		WitType: typeName,
		Detail:  fmt.Sprintf("type %q not found in any catalog", typeName),
	}
}

// MalformedPath creates an error for an interface path without exactly three segments
func MalformedPath(path string) *Error {
	return &Error{
		Phase:  PhaseTranslate,
		Kind:   KindMalformedPath,
		Detail: fmt.Sprintf("interface path %q must have namespace, package and interface segments", path),
		Value:  path,
	}
}

// InvalidConfig creates a binding configuration error
func InvalidConfig(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseConfig,
		Kind:   KindInvalidConfig,
		Detail: detail,
		Cause:  cause,
	}
}

// DuplicateOperation creates an error for two functions mapping to one operation name
func DuplicateOperation(iface, operation string) *Error {
	return &Error{
		Phase:  PhaseGenerate,
		Kind:   KindDuplicateOperation,
		Path:   []string{iface},
		Detail: fmt.Sprintf("operation %q produced twice", operation),
		Value:  operation,
	}
}

// DuplicateSubject creates an error for two functions mapping to one subject
func DuplicateSubject(subject string) *Error {
	return &Error{
		Phase:  PhaseGenerate,
		Kind:   KindDuplicateSubject,
		Detail: fmt.Sprintf("subject %q produced twice", subject),
		Value:  subject,
	}
}

// Unsupported creates an unsupported construct error
func Unsupported(phase Phase, path []string, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Path:   path,
		Detail: what,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
