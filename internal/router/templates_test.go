package router

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paperhub/internal/vote"
)

func TestLoadTemplates(t *testing.T) {
	r, err := LoadTemplates("../../web/templates")
	require.NoError(t, err)
	for _, name := range []string{
		"document/show.html", "thread/show.html", "error.html",
		"fragments/vote.html", "fragments/comment_item.html", "fragments/comment_text.html",
	} {
		assert.Contains(t, r, name)
	}
}

func TestLoadTemplatesMissingDir(t *testing.T) {
	_, err := LoadTemplates(t.TempDir())
	assert.Error(t, err)
}

func TestFuncMap(t *testing.T) {
	voteClass := FuncMap["voteClass"].(func(vote.Type) string)
	assert.Equal(t, "upvoted", voteClass(vote.Upvote))
	assert.Equal(t, "downvoted", voteClass(vote.Downvote))
	assert.Equal(t, "", voteClass(vote.None))

	dict := FuncMap["dict"].(func(...interface{}) (map[string]interface{}, error))
	m, err := dict("a", 1, "b", "two")
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"a": 1, "b": "two"}, m)
	_, err = dict("odd")
	assert.Error(t, err)

	timeSince := FuncMap["timeSince"].(func(time.Time) string)
	assert.Equal(t, "just now", timeSince(time.Now()))
}
