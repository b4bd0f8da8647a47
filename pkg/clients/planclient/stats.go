package planclient

import (
	"context"
	"net/http"

	"github.com/ekaraca/shiftdash/pkg/core/model"
)

// Stats fetches the server-side per-member shift aggregates
func (c *Client) Stats(ctx context.Context) ([]model.Stat, error) {
	var stats []model.Stat
	if err := c.do(ctx, http.MethodGet, "/api/stats", nil, nil, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}
