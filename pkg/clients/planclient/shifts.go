package planclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/ekaraca/shiftdash/pkg/core/model"
)

// Shifts fetches the shifts overlapping [startKey, endKey]
func (c *Client) Shifts(ctx context.Context, startKey, endKey string) ([]model.Shift, error) {
	query := url.Values{}
	query.Set("start_date", startKey)
	query.Set("end_date", endKey)

	var shifts []model.Shift
	if err := c.do(ctx, http.MethodGet, "/api/shifts", query, nil, &shifts); err != nil {
		return nil, err
	}
	return shifts, nil
}

// GenerateShifts asks the backend to build a shift plan for the range. The
// generation algorithm is entirely server-side; the response is the set of
// created shifts.
func (c *Client) GenerateShifts(ctx context.Context, startKey, endKey string) ([]model.Shift, error) {
	body := map[string]string{"start_date": startKey, "end_date": endKey}

	var shifts []model.Shift
	if err := c.do(ctx, http.MethodPost, "/api/shifts/generate", nil, body, &shifts); err != nil {
		return nil, err
	}
	return shifts, nil
}

// ClearShifts deletes every shift
func (c *Client) ClearShifts(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/api/shifts", nil, nil, nil)
}

// ReassignShift moves the shift on a single date to another member
func (c *Client) ReassignShift(ctx context.Context, dateKey string, memberID int) error {
	body := struct {
		Date     string `json:"date"`
		MemberID int    `json:"member_id"`
	}{Date: dateKey, MemberID: memberID}
	return c.do(ctx, http.MethodPut, "/api/shifts/date", nil, body, nil)
}
