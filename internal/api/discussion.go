package api

import (
	"context"
	"fmt"
	"net/http"

	"paperhub/internal/models"
)

func (c *Client) GetDocument(ctx context.Context, paperID int) (models.Document, error) {
	var doc models.Document
	err := c.get(ctx, fmt.Sprintf("/api/paper/%d/", paperID), &doc)
	return doc, err
}

func (c *Client) ListThreads(ctx context.Context, paperID int) ([]models.Thread, error) {
	var page models.Page[models.Thread]
	if err := c.get(ctx, fmt.Sprintf("/api/paper/%d/discussion/?page=1", paperID), &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

func (c *Client) GetThread(ctx context.Context, paperID, threadID int) (models.Thread, error) {
	var thread models.Thread
	err := c.get(ctx, fmt.Sprintf("/api/paper/%d/discussion/%d/", paperID, threadID), &thread)
	return thread, err
}

func (c *Client) ListComments(ctx context.Context, paperID, threadID int) ([]models.Comment, error) {
	var page models.Page[models.Comment]
	if err := c.get(ctx, fmt.Sprintf("/api/paper/%d/discussion/%d/comment/?page=1", paperID, threadID), &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

// GetComment fetches one comment, or one reply when t.ReplyID is set.
func (c *Client) GetComment(ctx context.Context, t Target) (models.Comment, error) {
	path, err := t.Path()
	if err != nil {
		return models.Comment{}, err
	}
	var comment models.Comment
	err = c.get(ctx, path+"/", &comment)
	return comment, err
}

type textBody struct {
	Text string `json:"text"`
}

// UpdateComment replaces the text of a comment or reply.
func (c *Client) UpdateComment(ctx context.Context, t Target, text string) (models.Comment, error) {
	path, err := t.Path()
	if err != nil {
		return models.Comment{}, err
	}
	var comment models.Comment
	err = c.do(ctx, http.MethodPatch, path+"/", textBody{Text: text}, &comment)
	return comment, err
}

// CreateReply posts a reply under the comment t points at.
func (c *Client) CreateReply(ctx context.Context, t Target, text string) (models.Comment, error) {
	t.ReplyID = 0
	if t.CommentID == 0 {
		return models.Comment{}, ErrIncompleteTarget
	}
	path, err := t.Path()
	if err != nil {
		return models.Comment{}, err
	}
	var reply models.Comment
	err = c.do(ctx, http.MethodPost, path+"/reply/", textBody{Text: text}, &reply)
	return reply, err
}
