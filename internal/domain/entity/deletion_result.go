package entity

// DeletionOutcome classifies the result of a chat.delete call.
type DeletionOutcome int

const (
	// DeletionSucceeded means Slack acknowledged the deletion.
	DeletionSucceeded DeletionOutcome = iota

	// DeletionRejected means the call completed but Slack refused the
	// operation for a domain reason (message_not_found, cant_delete_message, ...).
	DeletionRejected

	// DeletionFailed means the call did not complete as a valid API exchange
	// (credential rejected, network failure, malformed request, ...).
	DeletionFailed
)

// String returns the outcome name used in logs and metric attributes.
func (o DeletionOutcome) String() string {
	switch o {
	case DeletionSucceeded:
		return "deleted"
	case DeletionRejected:
		return "rejected"
	case DeletionFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// DeletionResult is the outcome of a single deletion attempt.
// Code carries the Slack error code for Rejected and Failed outcomes.
type DeletionResult struct {
	Outcome DeletionOutcome
	Code    string
	Err     error // underlying error, nil on success
}

// NewDeletionSucceeded returns a successful result.
func NewDeletionSucceeded() DeletionResult {
	return DeletionResult{Outcome: DeletionSucceeded}
}

// NewDeletionRejected returns an application-level failure carrying the Slack error code.
func NewDeletionRejected(code string, err error) DeletionResult {
	return DeletionResult{Outcome: DeletionRejected, Code: code, Err: err}
}

// NewDeletionFailed returns a transport or protocol-level failure.
func NewDeletionFailed(code string, err error) DeletionResult {
	return DeletionResult{Outcome: DeletionFailed, Code: code, Err: err}
}
