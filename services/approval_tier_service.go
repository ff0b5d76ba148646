package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/blogem/opsledger/models"
	"github.com/blogem/opsledger/querycache"
	"github.com/blogem/opsledger/repositories"
)

// ApprovalCategories are the document categories that carry approval chains
var ApprovalCategories = []string{"purchase_order", "journal_entry", "expense", "invoice"}

// TierImport is the YAML document accepted by ImportTiers
type TierImport struct {
	Tiers []models.ApprovalTierForm `yaml:"tiers"`
}

// ApprovalTierService interface defines approval tier business logic
type ApprovalTierService interface {
	List(ctx context.Context, filter models.ApprovalTierFilter) ([]models.ApprovalTier, error)
	Get(ctx context.Context, id int) (*models.ApprovalTier, error)
	Create(ctx context.Context, form *models.ApprovalTierForm) (*models.ApprovalTier, error)
	Update(ctx context.Context, id int, form *models.ApprovalTierForm) (*models.ApprovalTier, error)
	Delete(ctx context.Context, id int) error
	// MatchTier selects the approval tier an amount falls into among the category's active tiers
	MatchTier(ctx context.Context, category string, amount float64) (*models.TierMatch, error)
	// ImportTiers replaces the tiers of every category present in the YAML document.
	// It returns the number of tiers stored per category.
	ImportTiers(ctx context.Context, r io.Reader) (map[string]int, error)
}

type approvalTierService struct {
	base
	repo repositories.ApprovalTierRepository
}

// NewApprovalTierService creates a new approval tier service
func NewApprovalTierService(repo repositories.ApprovalTierRepository, deps Deps) ApprovalTierService {
	return &approvalTierService{base: newBase(deps, scopeApprovalTiers), repo: repo}
}

func (s *approvalTierService) List(ctx context.Context, filter models.ApprovalTierFilter) ([]models.ApprovalTier, error) {
	orgID, err := s.org(ctx)
	if err != nil {
		return nil, err
	}
	tiers, err := querycache.Get(ctx, s.cache, s.key(orgID, "list", filter), func(ctx context.Context) ([]models.ApprovalTier, error) {
		return s.repo.List(ctx, orgID, filter)
	})
	if err != nil {
		return nil, s.fail(ctx, "failed to list approval tiers", err)
	}
	copied := make([]models.ApprovalTier, len(tiers))
	for i := range tiers {
		copied[i] = tiers[i].Clone()
	}
	return copied, nil
}

func (s *approvalTierService) Get(ctx context.Context, id int) (*models.ApprovalTier, error) {
	orgID, err := s.org(ctx)
	if err != nil {
		return nil, err
	}
	if err := validID(id); err != nil {
		return nil, err
	}
	tier, err := querycache.Get(ctx, s.cache, s.key(orgID, "get", id), func(ctx context.Context) (*models.ApprovalTier, error) {
		return s.repo.GetByID(ctx, orgID, id)
	})
	if err != nil {
		return nil, s.fail(ctx, "failed to get approval tier", err)
	}
	copied := tier.Clone()
	return &copied, nil
}

func (s *approvalTierService) Create(ctx context.Context, form *models.ApprovalTierForm) (*models.ApprovalTier, error) {
	orgID, err := s.org(ctx)
	if err != nil {
		return nil, err
	}
	if err := invalid(form.Validate()); err != nil {
		return nil, err
	}

	tier := &models.ApprovalTier{OrganizationID: orgID}
	form.Apply(tier)
	if err := s.repo.Create(ctx, tier); err != nil {
		return nil, s.fail(ctx, "failed to create approval tier", err)
	}
	s.invalidate(orgID)
	return tier, nil
}

func (s *approvalTierService) Update(ctx context.Context, id int, form *models.ApprovalTierForm) (*models.ApprovalTier, error) {
	orgID, err := s.org(ctx)
	if err != nil {
		return nil, err
	}
	if err := validID(id); err != nil {
		return nil, err
	}
	if err := invalid(form.Validate()); err != nil {
		return nil, err
	}

	tier, err := s.repo.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, s.fail(ctx, "failed to update approval tier", err)
	}
	form.Apply(tier)
	if err := s.repo.Update(ctx, tier); err != nil {
		return nil, s.fail(ctx, "failed to update approval tier", err)
	}
	s.invalidate(orgID)
	return tier, nil
}

func (s *approvalTierService) Delete(ctx context.Context, id int) error {
	orgID, err := s.org(ctx)
	if err != nil {
		return err
	}
	if err := validID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, orgID, id); err != nil {
		return s.fail(ctx, "failed to delete approval tier", err)
	}
	s.invalidate(orgID)
	return nil
}

func (s *approvalTierService) MatchTier(ctx context.Context, category string, amount float64) (*models.TierMatch, error) {
	if !isApprovalCategory(category) {
		return nil, badInput("Category must be one of: %v", ApprovalCategories)
	}
	orgID, err := s.org(ctx)
	if err != nil {
		return nil, err
	}

	filter := models.ApprovalTierFilter{Category: category, ActiveOnly: true}
	tiers, err := querycache.Get(ctx, s.cache, s.key(orgID, "active", filter), func(ctx context.Context) ([]models.ApprovalTier, error) {
		return listAll(func(opts models.ListOptions) ([]models.ApprovalTier, error) {
			f := filter
			f.ListOptions = opts
			return s.repo.List(ctx, orgID, f)
		})
	})
	if err != nil {
		return nil, s.fail(ctx, "failed to match approval tier", err)
	}

	match := &models.TierMatch{Category: category, Amount: amount}
	if tier := models.MatchTierForAmount(tiers, amount); tier != nil {
		copied := tier.Clone()
		match.Tier = &copied
	}
	return match, nil
}

func (s *approvalTierService) ImportTiers(ctx context.Context, r io.Reader) (map[string]int, error) {
	orgID, err := s.org(ctx)
	if err != nil {
		return nil, err
	}

	var doc TierImport
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, badInput("Tier file is empty")
		}
		return nil, badInput("Invalid tier file: %v", err)
	}

	var messages []string
	byCategory := map[string][]models.ApprovalTier{}
	for i := range doc.Tiers {
		form := &doc.Tiers[i]
		if errs := form.Validate(); len(errs) > 0 {
			for _, e := range errs {
				messages = append(messages, fmt.Sprintf("Tier %d: %s", i+1, e))
			}
			continue
		}
		var tier models.ApprovalTier
		form.Apply(&tier)
		byCategory[tier.Category] = append(byCategory[tier.Category], tier)
	}
	if err := invalid(messages); err != nil {
		return nil, err
	}
	if len(byCategory) == 0 {
		return nil, badInput("Tier file contains no tiers")
	}

	categories := make([]string, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	counts := make(map[string]int, len(categories))
	for _, c := range categories {
		tiers := byCategory[c]
		sort.SliceStable(tiers, func(i, j int) bool { return tiers[i].Level < tiers[j].Level })
		if err := s.repo.ReplaceCategory(ctx, orgID, c, tiers); err != nil {
			s.invalidate(orgID)
			return nil, s.fail(ctx, "failed to import approval tiers", err)
		}
		counts[c] = len(tiers)
	}
	s.invalidate(orgID)
	return counts, nil
}

func isApprovalCategory(category string) bool {
	for _, c := range ApprovalCategories {
		if c == category {
			return true
		}
	}
	return false
}
