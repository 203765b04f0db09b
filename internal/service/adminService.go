package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/wahe7/book-slots/internal/backend"
	"github.com/wahe7/book-slots/internal/entity"
	"github.com/wahe7/book-slots/internal/session"
)

type adminService struct {
	adminRepo backend.AdminRepository
	sessions  session.Store
}

func NewAdminService(adminRepo backend.AdminRepository, sessions session.Store) AdminService {
	return &adminService{
		adminRepo: adminRepo,
		sessions:  sessions,
	}
}

// Login verifies credentials against the backend and opens a server-side
// session. Every failure mode collapses into ErrInvalidCredentials; the
// caller never learns which part was wrong.
func (s *adminService) Login(ctx context.Context, email, password string) (*session.Session, error) {
	resp, err := s.adminRepo.Login(ctx, &backend.LoginRequest{Email: email, Password: password})
	if err != nil {
		logrus.Errorf("admin login failed: %v", err)
		return nil, entity.ErrInvalidCredentials
	}
	if !resp.Success {
		return nil, entity.ErrInvalidCredentials
	}

	adminName, adminEmail := "", email
	if resp.Admin != nil {
		adminName = resp.Admin.Name
		adminEmail = resp.Admin.Email
	}

	sess, err := s.sessions.Create(ctx, adminName, adminEmail)
	if err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *adminService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessions.Delete(ctx, sessionID)
}

func (s *adminService) CurrentSession(ctx context.Context, sessionID string) (*session.Session, error) {
	if sessionID == "" {
		return nil, entity.ErrSessionNotFound
	}
	return s.sessions.Get(ctx, sessionID)
}
