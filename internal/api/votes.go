package api

import (
	"context"
	"net/http"

	"paperhub/internal/vote"
)

type voteResponse struct {
	ID        int       `json:"id"`
	VoteType  vote.Type `json:"vote_type"`
	Increment *int      `json:"increment"`
}

// PostUpvote casts an upvote and returns its result directly.
func (c *Client) PostUpvote(ctx context.Context, t Target) (vote.Result, error) {
	return c.postVote(ctx, t, vote.Upvote)
}

// PostDownvote casts a downvote and returns its result directly.
func (c *Client) PostDownvote(ctx context.Context, t Target) (vote.Result, error) {
	return c.postVote(ctx, t, vote.Downvote)
}

func (c *Client) postVote(ctx context.Context, t Target, intent vote.Type) (vote.Result, error) {
	path, err := t.Path()
	if err != nil {
		return vote.Result{}, err
	}
	if intent == vote.Upvote {
		path += "/upvote/"
	} else {
		path += "/downvote/"
	}

	var resp voteResponse
	if err := c.do(ctx, http.MethodPost, path, nil, &resp); err != nil {
		return vote.Result{}, err
	}

	// The API echoes the vote record; fall back to the intent when it
	// leaves the type out.
	vt := resp.VoteType
	if vt != vote.Upvote && vt != vote.Downvote {
		vt = intent
	}
	increment := vt.Increment()
	if resp.Increment != nil {
		increment = *resp.Increment
	}

	return vote.Result{Success: true, Type: vt, Increment: increment}, nil
}
