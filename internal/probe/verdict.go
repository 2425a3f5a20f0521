package probe

// Verdict is the resolved classification for one (candidate, platform) pair.
type Verdict string

const (
	// VerdictAvailable means the handle appears unclaimed.
	VerdictAvailable Verdict = "available"

	// VerdictTaken means the handle appears claimed.
	VerdictTaken Verdict = "taken"

	// VerdictUnknown means the evidence was inconclusive.
	VerdictUnknown Verdict = "unknown"

	// VerdictError means probing failed (transport error, exhausted retries).
	VerdictError Verdict = "error"
)

// Conclusive reports whether the verdict settles the availability question.
func (v Verdict) Conclusive() bool {
	return v == VerdictAvailable || v == VerdictTaken
}
