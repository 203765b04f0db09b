package backend

import "context"

type adminRepository struct {
	client *Client
}

func NewAdminRepository(client *Client) AdminRepository {
	return &adminRepository{client: client}
}

func (r *adminRepository) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	var resp LoginResponse
	if err := r.client.post(ctx, "/admin/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
