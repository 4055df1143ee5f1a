package sdk

import "strings"

// TransportTag is the fixed transport discriminator segment of every
// subject this compiler emits.
const TransportTag = "wrpc"

// SubjectEntry maps one wire subject to its call descriptor. The table
// holding these entries is built once at process start and is immutable
// afterward; concurrent inbound-message handlers read it without locking.
type SubjectEntry struct {
	// WorldKey is the upper-camel identity of the owning interface,
	// e.g. "KeyValue".
	WorldKey string

	// Function is the plain function name, e.g. "get".
	Function string

	// Descriptor carries the function's argument/return shape for
	// late-bound marshalling.
	Descriptor DynamicFunction
}

// Subject builds the wire subject for one operation:
//
//	<routing-domain>.<component-id>.wrpc.<protocol-version>.<operation>
//
// The operation segment keeps its own internal punctuation; only the
// routing prefix is dot-joined here.
func Subject(latticeName, componentID, version, operation string) string {
	return strings.Join([]string{latticeName, componentID, TransportTag, version, operation}, ".")
}

// SubjectMapper is implemented by generated bindings to hand the host the
// inbound subject table.
type SubjectMapper interface {
	IncomingInvocationSubjects(latticeName, componentID, version string) (map[string]SubjectEntry, error)
}
