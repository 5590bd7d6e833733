package rewrite

// OutcomeKind classifies how a rewrite attempt ended.
type OutcomeKind uint8

const (
	// OutcomeOK carries a rewritten sentence.
	OutcomeOK OutcomeKind = iota
	// OutcomeKnownFailure is an anticipated condition: engine not
	// configured, service rejected the request, model declined.
	OutcomeKnownFailure
	// OutcomeUnexpectedFailure is anything else; Diagnostic carries
	// what is known for the bug report.
	OutcomeUnexpectedFailure
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeOK:
		return "ok"
	case OutcomeKnownFailure:
		return "known_failure"
	}
	return "unexpected_failure"
}

// Outcome is the result of one Rephrase call. Exactly one of Text,
// Reason or Diagnostic is meaningful depending on Kind.
type Outcome struct {
	Kind       OutcomeKind
	Text       string
	Diff       []DiffSegment
	Reason     string
	Diagnostic string
}

// Ok builds a successful outcome with a precomputed diff against the
// original sentence.
func Ok(original, rewritten string) Outcome {
	return Outcome{
		Kind: OutcomeOK,
		Text: rewritten,
		Diff: ComputeDiff(original, rewritten),
	}
}

// KnownFailure builds an outcome for an anticipated condition.
func KnownFailure(reason string) Outcome {
	return Outcome{Kind: OutcomeKnownFailure, Reason: reason}
}

// UnexpectedFailure builds an outcome for an unanticipated error.
func UnexpectedFailure(diagnostic string) Outcome {
	return Outcome{Kind: OutcomeUnexpectedFailure, Diagnostic: diagnostic}
}
