package identity

import (
	"context"
	"log/slog"
)

// Repository defines the data access methods for users and departments.
type Repository interface {
	GetUserByID(ctx context.Context, id string) (*User, error)
	GetDepartmentByID(ctx context.Context, id string) (*Department, error)
	ListUsers(ctx context.Context) ([]*User, error)
	ListDepartments(ctx context.Context) ([]*Department, error)
}

// Service is the identity and role store consumed by the workflow engine.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) GetUser(ctx context.Context, id string) (*User, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		s.logger.Warn("user lookup failed", "user_id", id, "error", err)
		return nil, ErrUserNotFound
	}
	return user, nil
}

// ResolveRecipient resolves a referral target id against users first, then
// department aliases.
func (s *Service) ResolveRecipient(ctx context.Context, id string) (*Recipient, error) {
	if user, err := s.repo.GetUserByID(ctx, id); err == nil {
		return &Recipient{
			ID:         user.ID,
			Kind:       RecipientKindUser,
			Name:       user.Name,
			Department: user.Department,
		}, nil
	}

	if dept, err := s.repo.GetDepartmentByID(ctx, id); err == nil {
		return &Recipient{
			ID:         dept.ID,
			Kind:       RecipientKindDepartment,
			Name:       dept.Name,
			Department: dept.Name,
		}, nil
	}

	s.logger.Warn("recipient did not resolve", "recipient_id", id)
	return nil, ErrRecipientNotFound
}

// ListRecipients returns every valid referral target: all users plus all
// department aliases.
func (s *Service) ListRecipients(ctx context.Context) ([]*Recipient, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, err
	}

	departments, err := s.repo.ListDepartments(ctx)
	if err != nil {
		s.logger.Error("failed to list departments", "error", err)
		return nil, err
	}

	recipients := make([]*Recipient, 0, len(users)+len(departments))
	for _, u := range users {
		recipients = append(recipients, &Recipient{
			ID:         u.ID,
			Kind:       RecipientKindUser,
			Name:       u.Name,
			Department: u.Department,
		})
	}
	for _, d := range departments {
		recipients = append(recipients, &Recipient{
			ID:         d.ID,
			Kind:       RecipientKindDepartment,
			Name:       d.Name,
			Department: d.Name,
		})
	}

	return recipients, nil
}
