package grid

// SiteState is the state of a single site.
type SiteState uint8

const (
	// Blocked sites do not participate in connectivity.
	Blocked SiteState = iota
	// Open sites connect to their open orthogonal neighbours.
	Open
)

// String returns "blocked" or "open".
func (s SiteState) String() string {
	if s == Open {
		return "open"
	}

	return "blocked"
}

// orthogonal lists (dRow, dCol) offsets in N, E, S, W order.
var orthogonal = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Grid holds an N×N lattice plus two always-open sentinel sites.
// state has N·N+2 entries; state[0] and state[N·N+1] are the sentinels.
// N is fixed at construction.
type Grid struct {
	n               int
	state           []SiteState
	open            int // open real sites; sentinels excluded
	neighborOffsets [][2]int
}
