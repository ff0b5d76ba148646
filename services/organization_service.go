package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/blogem/opsledger/models"
	"github.com/blogem/opsledger/querycache"
	"github.com/blogem/opsledger/repositories"
	"github.com/blogem/opsledger/userctx"
)

const scopeMemberships = "memberships"

// OrganizationService interface defines organization and membership business logic
type OrganizationService interface {
	// ListForUser returns the organizations of the user in context with their role
	ListForUser(ctx context.Context) ([]models.Organization, error)
	// Membership resolves the user's membership, wrapping models.ErrForbidden when there is none
	Membership(ctx context.Context, orgID int, email string) (*models.Membership, error)
	// Create creates an organization owned by ownerEmail
	Create(ctx context.Context, form *models.OrganizationForm, ownerEmail string) (*models.Organization, error)
	// AddMember adds or re-roles a member; only admins and owners may do so
	AddMember(ctx context.Context, orgID int, form *models.MemberForm) (*models.Membership, error)
}

type organizationService struct {
	base
	repo repositories.OrganizationRepository
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(repo repositories.OrganizationRepository, deps Deps) OrganizationService {
	return &organizationService{base: newBase(deps, scopeMemberships), repo: repo}
}

func (s *organizationService) ListForUser(ctx context.Context) ([]models.Organization, error) {
	email := userctx.GetUserEmail(ctx)
	orgs, err := s.repo.ListForUser(ctx, email)
	if err != nil {
		return nil, s.fail(ctx, "failed to list organizations", err)
	}
	return orgs, nil
}

func (s *organizationService) Membership(ctx context.Context, orgID int, email string) (*models.Membership, error) {
	if orgID <= 0 || email == "" {
		return nil, fmt.Errorf("%w: not a member of organization %d", models.ErrForbidden, orgID)
	}
	m, err := querycache.Get(ctx, s.cache, s.key(orgID, "member", email), func(ctx context.Context) (*models.Membership, error) {
		return s.repo.GetMembership(ctx, orgID, email)
	})
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: not a member of organization %d", models.ErrForbidden, orgID)
		}
		return nil, s.fail(ctx, "failed to resolve membership", err, zap.Int("org_id", orgID))
	}
	copied := *m
	return &copied, nil
}

func (s *organizationService) Create(ctx context.Context, form *models.OrganizationForm, ownerEmail string) (*models.Organization, error) {
	if err := invalid(form.Validate()); err != nil {
		return nil, err
	}
	if ownerEmail == "" {
		return nil, badInput("Owner email is required")
	}

	org := &models.Organization{Name: form.Name, Slug: form.Slug, CreatedAt: s.now().UTC().Truncate(time.Second)}
	if err := s.repo.Create(ctx, org); err != nil {
		return nil, s.fail(ctx, "failed to create organization", err)
	}
	owner := &models.Membership{OrganizationID: org.ID, UserEmail: ownerEmail, Role: models.RoleOwner}
	if err := s.repo.AddMember(ctx, owner); err != nil {
		return nil, s.fail(ctx, "failed to create organization", err)
	}
	s.logger.Info("organization created",
		zap.Int("org_id", org.ID),
		zap.String("slug", org.Slug),
		zap.String("owner", owner.UserEmail))

	org.Role = models.RoleOwner
	return org, nil
}

func (s *organizationService) AddMember(ctx context.Context, orgID int, form *models.MemberForm) (*models.Membership, error) {
	if current, ok := userctx.GetOrganizationID(ctx); !ok || current != orgID || !models.RoleAtLeast(userctx.GetRole(ctx), models.RoleAdmin) {
		return nil, fmt.Errorf("%w: admin role required to manage members", models.ErrForbidden)
	}
	if form.Role == models.RoleOwner && userctx.GetRole(ctx) != models.RoleOwner {
		return nil, fmt.Errorf("%w: only owners can add owners", models.ErrForbidden)
	}
	if err := invalid(form.Validate()); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetMembership(ctx, orgID, form.Email)
	switch {
	case err == nil:
		if existing.Role == models.RoleOwner && form.Role != models.RoleOwner && userctx.GetRole(ctx) != models.RoleOwner {
			return nil, fmt.Errorf("%w: only owners can change an owner's role", models.ErrForbidden)
		}
	case !isNotFound(err):
		return nil, s.fail(ctx, "failed to add organization member", err)
	}

	m := &models.Membership{OrganizationID: orgID, UserEmail: form.Email, Role: form.Role}
	if err := s.repo.AddMember(ctx, m); err != nil {
		return nil, s.fail(ctx, "failed to add organization member", err)
	}
	s.cache.Invalidate(orgID, scopeMemberships)
	return m, nil
}
