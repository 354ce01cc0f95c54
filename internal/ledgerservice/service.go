// Package ledgerservice manages business logic layer of banks and objectives.
package ledgerservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/fund-manager/internal/domain"
	"github.com/go-petr/fund-manager/pkg/iconpkg"
	"github.com/go-petr/fund-manager/pkg/idpkg"
	"github.com/go-petr/fund-manager/pkg/validatorpkg"
)

// Repo provides data access layer interface needed by ledger service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package ledgerservice
type Repo interface {
	CreateBank(ctx context.Context, b domain.Bank) (domain.Bank, error)
	GetBank(ctx context.Context, id string) (domain.Bank, error)
	ListBanks(ctx context.Context) ([]domain.Bank, error)
	DeleteBank(ctx context.Context, id string) (int, error)
	CreateObjective(ctx context.Context, o domain.Objective) (domain.Objective, error)
	ListObjectives(ctx context.Context, bankID string) ([]domain.Objective, error)
	DeleteObjective(ctx context.Context, id string) error
	TotalBalance(ctx context.Context) (decimal.Decimal, error)
	Snapshot(ctx context.Context) ([]domain.Bank, []domain.Objective, error)
}

// Service facilitates ledger service layer logic.
type Service struct {
	repo     Repo
	ids      idpkg.Generator
	validate *validator.Validate
}

// New returns ledger service struct to manage banks and objectives.
func New(r Repo, ids idpkg.Generator) (*Service, error) {
	v, err := validatorpkg.New()
	if err != nil {
		return nil, err
	}

	return &Service{
		repo:     r,
		ids:      ids,
		validate: v,
	}, nil
}

// AddBank validates the input and stores a new bank with a fresh identifier.
func (s *Service) AddBank(ctx context.Context, arg domain.CreateBankParams) (domain.Bank, error) {
	l := zerolog.Ctx(ctx)

	if err := s.validate.Struct(arg); err != nil {
		l.Info().Err(err).Send()
		return domain.Bank{}, domain.NewValidationError(validatorpkg.Violations(err)...)
	}

	bank := domain.Bank{
		ID:          s.ids.NewID(),
		Name:        arg.Name,
		Balance:     arg.Balance,
		AccountType: arg.AccountType,
		Icon:        strings.ToUpper(arg.Icon),
	}

	created, err := s.repo.CreateBank(ctx, bank)
	if err != nil {
		l.Error().Err(err).Str("bank_id", bank.ID).Send()
		return domain.Bank{}, err
	}

	return created, nil
}

// AddObjective validates the input and stores a new objective with a fresh
// identifier and the classes of the selected icon.
func (s *Service) AddObjective(ctx context.Context, arg domain.CreateObjectiveParams) (domain.Objective, error) {
	l := zerolog.Ctx(ctx)

	if verr := s.validateObjective(ctx, arg); verr != nil {
		l.Info().Err(verr).Send()
		return domain.Objective{}, verr
	}

	icon, ok := iconpkg.Find(arg.IconType)
	if !ok {
		return domain.Objective{}, iconViolation(arg.IconType)
	}

	objective := domain.Objective{
		ID:            s.ids.NewID(),
		Name:          arg.Name,
		CurrentAmount: arg.CurrentAmount,
		TargetAmount:  arg.TargetAmount,
		BankID:        arg.BankID,
		Icon:          icon.Name,
		IconClass:     icon.IconClass,
		ProgressClass: icon.ProgressClass,
	}

	created, err := s.repo.CreateObjective(ctx, objective)
	if err != nil {
		// The bank may have been deleted after validation.
		if errors.Is(err, domain.ErrBankNotFound) {
			return domain.Objective{}, bankViolation(arg.BankID)
		}

		l.Error().Err(err).Str("objective_id", objective.ID).Send()

		return domain.Objective{}, err
	}

	return created, nil
}

func (s *Service) validateObjective(ctx context.Context, arg domain.CreateObjectiveParams) *domain.ValidationError {
	var (
		violations []domain.FieldViolation
		cause      error
	)

	if err := s.validate.Struct(arg); err != nil {
		violations = validatorpkg.Violations(err)
	}

	if arg.CurrentAmount.GreaterThan(arg.TargetAmount) {
		violations = append(violations, domain.FieldViolation{
			Field:   "CurrentAmount",
			Rule:    "ltefield",
			Message: domain.ErrAmountExceedsTarget.Error(),
		})
		cause = domain.ErrAmountExceedsTarget
	}

	if arg.BankID != "" {
		if _, err := s.repo.GetBank(ctx, arg.BankID); err != nil {
			v := bankViolation(arg.BankID)
			violations = append(violations, v.Violations...)

			if cause == nil {
				cause = domain.ErrBankNotFound
			}
		}
	}

	if len(violations) == 0 {
		return nil
	}

	return domain.NewValidationError(violations...).WithCause(cause)
}

func bankViolation(bankID string) *domain.ValidationError {
	return domain.NewValidationError(domain.FieldViolation{
		Field:   "BankID",
		Rule:    "exists",
		Message: fmt.Sprintf("%s: %q", domain.ErrBankNotFound, bankID),
	}).WithCause(domain.ErrBankNotFound)
}

func iconViolation(key string) *domain.ValidationError {
	return domain.NewValidationError(domain.FieldViolation{
		Field:   "IconType",
		Rule:    validatorpkg.TagIcon,
		Message: fmt.Sprintf("%s: %q", domain.ErrIconNotFound, key),
	}).WithCause(domain.ErrIconNotFound)
}

// DeleteBank removes the bank and every objective it owns as one operation.
// It returns the number of objectives removed.
func (s *Service) DeleteBank(ctx context.Context, id string) (int, error) {
	removed, err := s.repo.DeleteBank(ctx, id)
	if err != nil {
		return 0, err
	}

	zerolog.Ctx(ctx).Info().
		Str("bank_id", id).
		Int("objectives_removed", removed).
		Msg("bank deleted")

	return removed, nil
}

// DeleteObjective removes exactly one objective.
func (s *Service) DeleteObjective(ctx context.Context, id string) error {
	return s.repo.DeleteObjective(ctx, id)
}

// GetBank returns the bank with the given ID.
func (s *Service) GetBank(ctx context.Context, id string) (domain.Bank, error) {
	return s.repo.GetBank(ctx, id)
}

// ListBanks returns all banks in creation order.
func (s *Service) ListBanks(ctx context.Context) ([]domain.Bank, error) {
	return s.repo.ListBanks(ctx)
}

// ListObjectives returns the objectives of the bank, or all objectives when bankID is empty.
func (s *Service) ListObjectives(ctx context.Context, bankID string) ([]domain.Objective, error) {
	return s.repo.ListObjectives(ctx, bankID)
}

// TotalBalance returns the sum of all bank balances.
func (s *Service) TotalBalance(ctx context.Context) (decimal.Decimal, error) {
	return s.repo.TotalBalance(ctx)
}

// ObjectiveProgress returns the completion percentage of the objective.
func (s *Service) ObjectiveProgress(o domain.Objective) int64 {
	return o.Progress()
}

// BankName returns the bank name or domain.UnknownBankName.
func (s *Service) BankName(ctx context.Context, id string) string {
	b, err := s.repo.GetBank(ctx, id)
	if err != nil {
		return domain.UnknownBankName
	}

	return b.Name
}

// FindIcon looks the key up in the icon palette.
func (s *Service) FindIcon(key string) (domain.IconBundle, bool) {
	return iconpkg.Find(key)
}

// Overview returns every bank with its objectives and the total balance, read
// from one consistent snapshot.
func (s *Service) Overview(ctx context.Context) (domain.Overview, error) {
	banks, objectives, err := s.repo.Snapshot(ctx)
	if err != nil {
		return domain.Overview{}, err
	}

	byBank := make(map[string][]domain.ObjectiveProgress, len(banks))
	for _, o := range objectives {
		byBank[o.BankID] = append(byBank[o.BankID], domain.ObjectiveProgress{
			Objective: o,
			Progress:  o.Progress(),
		})
	}

	res := domain.Overview{
		TotalBalance: decimal.Zero,
		Banks:        make([]domain.BankOverview, len(banks)),
	}

	for i, b := range banks {
		res.TotalBalance = res.TotalBalance.Add(b.Balance)

		items := byBank[b.ID]
		if items == nil {
			items = []domain.ObjectiveProgress{}
		}

		res.Banks[i] = domain.BankOverview{
			Bank:       b,
			IconClass:  iconpkg.BankIconClass(b.ID),
			Objectives: items,
		}
	}

	return res, nil
}

// Seed stores entities that already carry identifiers, such as demo data.
//
// The whole batch is checked before anything is stored: banks and objectives
// follow the same field rules as AddBank and AddObjective, identifiers must be
// unused, and each objective must reference a stored or seeded bank.
func (s *Service) Seed(ctx context.Context, banks []domain.Bank, objectives []domain.Objective) error {
	if err := s.checkSeed(ctx, banks, objectives); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("seed rejected")
		return err
	}

	for _, b := range banks {
		if _, err := s.repo.CreateBank(ctx, b); err != nil {
			return fmt.Errorf("seeding bank %q: %w", b.ID, err)
		}
	}

	for _, o := range objectives {
		if _, err := s.repo.CreateObjective(ctx, o); err != nil {
			return fmt.Errorf("seeding objective %q: %w", o.ID, err)
		}
	}

	return nil
}

func (s *Service) checkSeed(ctx context.Context, banks []domain.Bank, objectives []domain.Objective) error {
	storedBanks, storedObjectives, err := s.repo.Snapshot(ctx)
	if err != nil {
		return err
	}

	bankIDs := make(map[string]struct{}, len(storedBanks)+len(banks))
	for _, b := range storedBanks {
		bankIDs[b.ID] = struct{}{}
	}

	objectiveIDs := make(map[string]struct{}, len(storedObjectives)+len(objectives))
	for _, o := range storedObjectives {
		objectiveIDs[o.ID] = struct{}{}
	}

	for _, b := range banks {
		if b.ID == "" {
			return fmt.Errorf("seeding bank %q: empty id: %w", b.Name, domain.ErrValidationFailed)
		}

		if _, ok := bankIDs[b.ID]; ok {
			return fmt.Errorf("seeding bank %q: %w", b.ID, domain.ErrDuplicateID)
		}

		err := s.validate.Struct(domain.CreateBankParams{
			Name:        b.Name,
			Balance:     b.Balance,
			AccountType: b.AccountType,
			Icon:        b.Icon,
		})
		if err != nil {
			return fmt.Errorf("seeding bank %q: %w", b.ID, domain.NewValidationError(validatorpkg.Violations(err)...))
		}

		bankIDs[b.ID] = struct{}{}
	}

	for _, o := range objectives {
		if o.ID == "" {
			return fmt.Errorf("seeding objective %q: empty id: %w", o.Name, domain.ErrValidationFailed)
		}

		if _, ok := objectiveIDs[o.ID]; ok {
			return fmt.Errorf("seeding objective %q: %w", o.ID, domain.ErrDuplicateID)
		}

		if o.CurrentAmount.GreaterThan(o.TargetAmount) {
			return fmt.Errorf("seeding objective %q: %w", o.ID, domain.ErrAmountExceedsTarget)
		}

		if _, ok := iconpkg.Find(o.Icon); !ok {
			return fmt.Errorf("seeding objective %q: %w", o.ID, domain.ErrIconNotFound)
		}

		if _, ok := bankIDs[o.BankID]; !ok {
			return fmt.Errorf("seeding objective %q: %w", o.ID, domain.ErrBankNotFound)
		}

		err := s.validate.Struct(domain.CreateObjectiveParams{
			Name:          o.Name,
			CurrentAmount: o.CurrentAmount,
			TargetAmount:  o.TargetAmount,
			BankID:        o.BankID,
			IconType:      o.Icon,
		})
		if err != nil {
			return fmt.Errorf("seeding objective %q: %w", o.ID, domain.NewValidationError(validatorpkg.Violations(err)...))
		}

		objectiveIDs[o.ID] = struct{}{}
	}

	return nil
}
