package vote

import "errors"

// ErrInvalidVoteType is returned when a result carries a vote type other
// than Upvote or Downvote.
var ErrInvalidVoteType = errors.New("vote: result must be an upvote or a downvote")

// Reconcile merges a resolved vote into the pre-vote state without waiting
// for a refetch.
//
// The ±1 correction when switching sides compensates for the mutation
// client reporting only the new vote's own increment. Repeating the current
// vote type is a no-op reported as AlreadyVoted.
func Reconcile(cur State, incoming Type, increment int) (State, Outcome, error) {
	switch incoming {
	case Upvote:
		switch cur.Type {
		case Upvote:
			return cur, AlreadyVoted, nil
		case Downvote:
			return State{Type: Upvote, Score: cur.Score + increment + 1}, Applied, nil
		default:
			return State{Type: Upvote, Score: cur.Score + increment}, Applied, nil
		}
	case Downvote:
		switch cur.Type {
		case Downvote:
			return cur, AlreadyVoted, nil
		case Upvote:
			return State{Type: Downvote, Score: cur.Score + increment - 1}, Applied, nil
		default:
			return State{Type: Downvote, Score: cur.Score + increment}, Applied, nil
		}
	}
	return cur, Failed, ErrInvalidVoteType
}
