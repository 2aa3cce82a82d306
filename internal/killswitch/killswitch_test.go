package killswitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnabled(t *testing.T) {
	assert.True(t, Enabled(Bounty, Development))
	assert.True(t, Enabled(Bounty, Staging))
	assert.False(t, Enabled(Bounty, Production))

	for _, env := range []string{Development, Staging, Production} {
		assert.False(t, Enabled(PeerReview, env), env)
	}

	assert.False(t, Enabled("leaderboard", Development))
	assert.False(t, Enabled(Bounty, "qa"))
}

func TestFor(t *testing.T) {
	f := For(Staging)
	assert.True(t, f.On("bounty"))
	assert.False(t, f.On("peerReview"))
	assert.False(t, f.On("missing"))
}
