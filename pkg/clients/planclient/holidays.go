package planclient

import (
	"context"
	"net/http"

	"github.com/ekaraca/shiftdash/pkg/core/model"
)

// Holidays fetches the public-holiday map keyed by YYYY-MM-DD. The endpoint
// is readable without a credential.
func (c *Client) Holidays(ctx context.Context) (model.Holidays, error) {
	var holidays model.Holidays
	if err := c.do(ctx, http.MethodGet, "/api/holidays", nil, nil, &holidays); err != nil {
		return nil, err
	}
	if holidays == nil {
		holidays = model.Holidays{}
	}
	return holidays, nil
}
