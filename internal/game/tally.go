package game

// Outcome is the derived result of a finished game. It is never
// persisted; clients compute it from the revealed document.
type Outcome int

const (
	// OutcomeImposterCaught: there was an imposter and the top suspect
	// is them. The players win.
	OutcomeImposterCaught Outcome = iota
	// OutcomeImposterEscaped: there was an imposter but the vote landed
	// elsewhere (including on the sentinel). The imposter wins.
	OutcomeImposterEscaped
	// OutcomeNobodyRightly: there was no imposter and most players said
	// so. The players win.
	OutcomeNobodyRightly
	// OutcomeFalseAccusation: there was no imposter but someone was
	// blamed anyway.
	OutcomeFalseAccusation
)

// VoteCount is one tally line.
type VoteCount struct {
	TargetID string
	Count    int
}

// TallyResult is the counted ballot.
type TallyResult struct {
	Counts     []VoteCount // only targets that received votes
	TopSuspect string      // empty when no votes were cast
	Outcome    Outcome
	PlayersWin bool
}

// Tally counts votes per target. Candidates are considered in player
// order with the NO_IMPOSTER sentinel last, and the first candidate to
// reach the maximum count wins ties; the ordering is deliberate so that
// every client derives the same result.
func Tally(r *Room) TallyResult {
	counts := make(map[string]int)
	for i := range r.Players {
		if v := r.Players[i].Vote; v != "" {
			counts[v]++
		}
	}

	candidates := make([]string, 0, len(r.Players)+1)
	for i := range r.Players {
		candidates = append(candidates, r.Players[i].ID)
	}
	candidates = append(candidates, NoImposterVote)

	var result TallyResult
	best := 0
	for _, id := range candidates {
		n := counts[id]
		if n == 0 {
			continue
		}
		result.Counts = append(result.Counts, VoteCount{TargetID: id, Count: n})
		if n > best {
			best = n
			result.TopSuspect = id
		}
	}

	imposter := r.Imposter()
	switch {
	case r.HasImposter && imposter != nil && result.TopSuspect == imposter.ID:
		result.Outcome = OutcomeImposterCaught
		result.PlayersWin = true
	case r.HasImposter:
		result.Outcome = OutcomeImposterEscaped
	case result.TopSuspect == NoImposterVote:
		result.Outcome = OutcomeNobodyRightly
		result.PlayersWin = true
	default:
		result.Outcome = OutcomeFalseAccusation
	}
	return result
}
