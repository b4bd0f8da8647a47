package planclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ekaraca/shiftdash/pkg/core/model"
)

// Members fetches the full member roster
func (c *Client) Members(ctx context.Context) ([]model.Member, error) {
	var members []model.Member
	if err := c.do(ctx, http.MethodGet, "/api/members", nil, nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// CreateMember adds a member by name
func (c *Client) CreateMember(ctx context.Context, name string) (*model.Member, error) {
	var member model.Member
	body := map[string]string{"name": name}
	if err := c.do(ctx, http.MethodPost, "/api/members", nil, body, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

// DeleteMember removes a member by id
func (c *Client) DeleteMember(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/members/%d", id), nil, nil, nil)
}
