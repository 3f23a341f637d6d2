package wfh

import "time"

const (
	AutoRejectReason = "Auto-rejected by system"

	// A pending request goes stale once this many calendar months have fully
	// elapsed since it was filed.
	AutoRejectAfterMonths = 2
)

// Transition is one staged status change produced by a policy.
type Transition struct {
	RequestID string
	From      Status
	To        Status
	Reason    string
}

// StaleAfter is the last calendar day on which a request filed on applyDate is still fresh.
func StaleAfter(applyDate time.Time) time.Time {
	return AddMonths(DateOf(applyDate), AutoRejectAfterMonths)
}

// ShouldAutoReject: apply_date + 2 months < today, compared as calendar days.
func ShouldAutoReject(applyDate, today time.Time) bool {
	return StaleAfter(applyDate).Before(DateOf(today))
}

// PlanAutoReject returns the transitions for every stale pending request, in input order.
// Requests in any other status are ignored.
func PlanAutoReject(today time.Time, reqs []WFHRequest) []Transition {
	var out []Transition
	for _, r := range reqs {
		if r.RequestStatus != StatusPending || !ShouldAutoReject(r.ApplyDate, today) {
			continue
		}
		out = append(out, Transition{
			RequestID: r.RequestID,
			From:      StatusPending,
			To:        StatusCancelled,
			Reason:    AutoRejectReason,
		})
	}
	return out
}

// Apply mutates r in place; only status and reason change.
func (r *WFHRequest) Apply(t Transition) {
	r.RequestStatus = t.To
	r.RequestReason = t.Reason
}
