package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/2beens/lifedash/internal/study"
)

func (c *Client) StartStudySession(ctx context.Context, bucketID *int, startedAt time.Time) (*study.Session, error) {
	var session study.Session
	if err := c.do(ctx, http.MethodPost, "/study/sessions/start", study.StartSessionRequest{
		BucketID:  bucketID,
		StartedAt: startedAt,
	}, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Client) EndStudySession(ctx context.Context, id int, endedAt time.Time, deleteIfEmpty bool) (*study.EndSessionResponse, error) {
	var resp study.EndSessionResponse
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/study/sessions/%d/end", id), study.EndSessionRequest{
		EndedAt:       endedAt,
		DeleteIfEmpty: deleteIfEmpty,
	}, &resp); err != nil {
		return nil, resourceNotFound(err, study.MsgSessionGone)
	}
	return &resp, nil
}

// ActiveStudySession returns nil when the user has no open study session.
func (c *Client) ActiveStudySession(ctx context.Context) (*study.Session, error) {
	var resp study.ActiveSessionResponse
	if err := c.do(ctx, http.MethodGet, "/study/sessions/active", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Session, nil
}

func (c *Client) ListBuckets(ctx context.Context) ([]study.Bucket, error) {
	var buckets []study.Bucket
	if err := c.do(ctx, http.MethodGet, "/study/buckets", nil, &buckets); err != nil {
		return nil, err
	}
	return buckets, nil
}
