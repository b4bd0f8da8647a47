package planclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ekaraca/shiftdash/pkg/core/model"
)

// LeaveDays fetches leave days within [startKey, endKey]. Empty keys fetch
// the backend's default window.
func (c *Client) LeaveDays(ctx context.Context, startKey, endKey string) ([]model.LeaveDay, error) {
	query := url.Values{}
	if startKey != "" {
		query.Set("start_date", startKey)
	}
	if endKey != "" {
		query.Set("end_date", endKey)
	}

	var leaveDays []model.LeaveDay
	if err := c.do(ctx, http.MethodGet, "/api/leave-days", query, nil, &leaveDays); err != nil {
		return nil, err
	}
	return leaveDays, nil
}

// CreateLeaveDays records leave for one member across [startKey, endKey].
// The backend materializes one record per day of the range.
func (c *Client) CreateLeaveDays(ctx context.Context, memberID int, startKey, endKey string) ([]model.LeaveDay, error) {
	body := struct {
		MemberID  int    `json:"member_id"`
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date"`
	}{MemberID: memberID, StartDate: startKey, EndDate: endKey}

	var created []model.LeaveDay
	if err := c.do(ctx, http.MethodPost, "/api/leave-days", nil, body, &created); err != nil {
		return nil, err
	}
	return created, nil
}

// DeleteLeaveDay removes a single leave-day record by id
func (c *Client) DeleteLeaveDay(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/leave-days/%d", id), nil, nil, nil)
}
