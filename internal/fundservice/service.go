// Package fundservice manages the form workflow around the ledger: it submits
// entities, asks for confirmation before deletions and raises notifications.
package fundservice

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/fund-manager/internal/domain"
	"github.com/go-petr/fund-manager/internal/notice"
)

// Ledger provides the ledger operations needed by the workflow.
//
//go:generate mockgen -source service.go -destination service_mock.go -package fundservice
type Ledger interface {
	AddBank(ctx context.Context, arg domain.CreateBankParams) (domain.Bank, error)
	AddObjective(ctx context.Context, arg domain.CreateObjectiveParams) (domain.Objective, error)
	DeleteBank(ctx context.Context, id string) (int, error)
	DeleteObjective(ctx context.Context, id string) error
	GetBank(ctx context.Context, id string) (domain.Bank, error)
	ListBanks(ctx context.Context) ([]domain.Bank, error)
	ListObjectives(ctx context.Context, bankID string) ([]domain.Objective, error)
	BankName(ctx context.Context, id string) string
	TotalBalance(ctx context.Context) (decimal.Decimal, error)
	Overview(ctx context.Context) (domain.Overview, error)
}

// Expansion is the accordion state that must follow bank deletions.
type Expansion interface {
	IsExpanded(id string) bool
	Forget(id string)
}

// Service facilitates the form workflow.
type Service struct {
	ledger    Ledger
	notifier  notice.Notifier
	expansion Expansion
}

// New returns the workflow service.
func New(l Ledger, n notice.Notifier, e Expansion) *Service {
	return &Service{
		ledger:    l,
		notifier:  n,
		expansion: e,
	}
}

// SubmitBank adds the bank and notifies about the outcome.
func (s *Service) SubmitBank(ctx context.Context, arg domain.CreateBankParams) (domain.Bank, error) {
	bank, err := s.ledger.AddBank(ctx, arg)
	if err != nil {
		s.notifyFailure(ctx, err)
		return domain.Bank{}, err
	}

	s.notifier.Notify(ctx, notice.BankAdded)

	return bank, nil
}

// SubmitObjective adds the objective and notifies about the outcome.
func (s *Service) SubmitObjective(ctx context.Context, arg domain.CreateObjectiveParams) (domain.Objective, error) {
	objective, err := s.ledger.AddObjective(ctx, arg)
	if err != nil {
		s.notifyFailure(ctx, err)
		return domain.Objective{}, err
	}

	s.notifier.Notify(ctx, notice.ObjectiveAdded)

	return objective, nil
}

// notifyFailure maps a rejected submission to its notification. Missing or
// malformed fields take precedence over the amount rule.
func (s *Service) notifyFailure(ctx context.Context, err error) {
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		return
	}

	if len(ve.Violations) == 1 && errors.Is(err, domain.ErrAmountExceedsTarget) {
		s.notifier.Notify(ctx, notice.AmountExceedsTarget)
		return
	}

	s.notifier.Notify(ctx, notice.FormInvalid)
}

// DeleteBank asks c for confirmation, then removes the bank with its
// objectives. A declined prompt returns domain.ErrNotConfirmed and changes
// nothing.
func (s *Service) DeleteBank(ctx context.Context, id string, c notice.Confirmer) (int, error) {
	if !c.Confirm(ctx, notice.DeleteBankPrompt) {
		zerolog.Ctx(ctx).Debug().Str("bank_id", id).Msg("deletion declined")
		return 0, domain.ErrNotConfirmed
	}

	removed, err := s.ledger.DeleteBank(ctx, id)
	if err != nil {
		return 0, err
	}

	s.expansion.Forget(id)
	s.notifier.Notify(ctx, notice.BankDeleted)

	return removed, nil
}

// DeleteObjective asks c for confirmation, then removes the objective.
func (s *Service) DeleteObjective(ctx context.Context, id string, c notice.Confirmer) error {
	if !c.Confirm(ctx, notice.DeleteObjectivePrompt) {
		zerolog.Ctx(ctx).Debug().Str("objective_id", id).Msg("deletion declined")
		return domain.ErrNotConfirmed
	}

	if err := s.ledger.DeleteObjective(ctx, id); err != nil {
		return err
	}

	s.notifier.Notify(ctx, notice.ObjectiveDeleted)

	return nil
}

// GetBank returns the bank with the given ID.
func (s *Service) GetBank(ctx context.Context, id string) (domain.Bank, error) {
	return s.ledger.GetBank(ctx, id)
}

// ListBanks returns all banks in creation order.
func (s *Service) ListBanks(ctx context.Context) ([]domain.Bank, error) {
	return s.ledger.ListBanks(ctx)
}

// ListObjectives returns the objectives of the bank, or all of them when bankID is empty.
func (s *Service) ListObjectives(ctx context.Context, bankID string) ([]domain.Objective, error) {
	return s.ledger.ListObjectives(ctx, bankID)
}

// BankName returns the bank name or domain.UnknownBankName.
func (s *Service) BankName(ctx context.Context, id string) string {
	return s.ledger.BankName(ctx, id)
}

// TotalBalance returns the sum of all bank balances.
func (s *Service) TotalBalance(ctx context.Context) (decimal.Decimal, error) {
	return s.ledger.TotalBalance(ctx)
}

// Overview returns the dashboard with the expanded bank marked.
func (s *Service) Overview(ctx context.Context) (domain.Overview, error) {
	o, err := s.ledger.Overview(ctx)
	if err != nil {
		return domain.Overview{}, err
	}

	for i := range o.Banks {
		o.Banks[i].Expanded = s.expansion.IsExpanded(o.Banks[i].Bank.ID)
	}

	return o, nil
}
