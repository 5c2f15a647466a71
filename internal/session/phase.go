package session

// Phase is the lifecycle position of a session.
type Phase string

// Session phases.
const (
	// PhaseLoading: no items loaded yet.
	PhaseLoading Phase = "loading"
	// PhaseReady: items loaded, nothing done on them yet.
	PhaseReady Phase = "ready"
	// PhaseActive: the user is working through the items.
	PhaseActive Phase = "active"
	// PhaseRevealed: the current item's answer or back face is showing.
	PhaseRevealed Phase = "revealed"
	// PhaseCompleted: the user advanced past the last item.
	PhaseCompleted Phase = "completed"
)

// String returns the phase name.
func (p Phase) String() string {
	return string(p)
}

// interactive reports whether item operations are allowed in p.
func (p Phase) interactive() bool {
	return p == PhaseReady || p == PhaseActive
}
