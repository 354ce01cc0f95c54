// Package ledgerrepo manages the in-memory data access layer of banks and objectives.
package ledgerrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/go-petr/fund-manager/internal/domain"
)

type bankRecord struct {
	bank domain.Bank
	seq  uint64
}

type objectiveRecord struct {
	objective domain.Objective
	seq       uint64
}

// RepoMem keeps banks and objectives keyed by identifier.
//
// byBank indexes objective IDs by owning bank, so a cascade delete touches only
// the objectives of that bank. Every method runs inside the same lock, so
// readers never see a bank removed while its objectives remain.
type RepoMem struct {
	mu         sync.RWMutex
	seq        uint64
	banks      map[string]bankRecord
	objectives map[string]objectiveRecord
	byBank     map[string]map[string]struct{}
}

// NewRepoMem returns an empty in-memory ledger repository.
func NewRepoMem() *RepoMem {
	return &RepoMem{
		banks:      make(map[string]bankRecord),
		objectives: make(map[string]objectiveRecord),
		byBank:     make(map[string]map[string]struct{}),
	}
}

// CreateBank stores the bank and returns it.
func (r *RepoMem) CreateBank(ctx context.Context, b domain.Bank) (domain.Bank, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.banks[b.ID]; ok {
		return domain.Bank{}, domain.ErrDuplicateID
	}

	r.seq++
	r.banks[b.ID] = bankRecord{bank: b, seq: r.seq}
	r.byBank[b.ID] = make(map[string]struct{})

	return b, nil
}

// GetBank returns the bank with the given ID.
func (r *RepoMem) GetBank(ctx context.Context, id string) (domain.Bank, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.banks[id]
	if !ok {
		return domain.Bank{}, domain.ErrBankNotFound
	}

	return rec.bank, nil
}

// ListBanks returns all banks in creation order.
func (r *RepoMem) ListBanks(ctx context.Context) ([]domain.Bank, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.listBanks(), nil
}

func (r *RepoMem) listBanks() []domain.Bank {
	recs := make([]bankRecord, 0, len(r.banks))
	for _, rec := range r.banks {
		recs = append(recs, rec)
	}

	sort.Slice(recs, func(i, j int) bool { return recs[i].seq < recs[j].seq })

	items := make([]domain.Bank, len(recs))
	for i, rec := range recs {
		items[i] = rec.bank
	}

	return items
}

// DeleteBank removes the bank together with all of its objectives and returns
// the number of objectives removed.
func (r *RepoMem) DeleteBank(ctx context.Context, id string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.banks[id]; !ok {
		return 0, domain.ErrBankNotFound
	}

	owned := r.byBank[id]
	for objectiveID := range owned {
		delete(r.objectives, objectiveID)
	}

	delete(r.byBank, id)
	delete(r.banks, id)

	return len(owned), nil
}

// CreateObjective stores the objective if its bank exists.
func (r *RepoMem) CreateObjective(ctx context.Context, o domain.Objective) (domain.Objective, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	owned, ok := r.byBank[o.BankID]
	if !ok {
		return domain.Objective{}, domain.ErrBankNotFound
	}

	if _, ok := r.objectives[o.ID]; ok {
		return domain.Objective{}, domain.ErrDuplicateID
	}

	r.seq++
	r.objectives[o.ID] = objectiveRecord{objective: o, seq: r.seq}
	owned[o.ID] = struct{}{}

	return o, nil
}

// GetObjective returns the objective with the given ID.
func (r *RepoMem) GetObjective(ctx context.Context, id string) (domain.Objective, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.objectives[id]
	if !ok {
		return domain.Objective{}, domain.ErrObjectiveNotFound
	}

	return rec.objective, nil
}

// ListObjectives returns objectives in creation order. An empty bankID lists
// the objectives of every bank.
func (r *RepoMem) ListObjectives(ctx context.Context, bankID string) ([]domain.Objective, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if bankID == "" {
		return r.listObjectives(nil), nil
	}

	owned, ok := r.byBank[bankID]
	if !ok {
		return nil, domain.ErrBankNotFound
	}

	return r.listObjectives(owned), nil
}

func (r *RepoMem) listObjectives(ids map[string]struct{}) []domain.Objective {
	recs := make([]objectiveRecord, 0, len(r.objectives))

	if ids == nil {
		for _, rec := range r.objectives {
			recs = append(recs, rec)
		}
	} else {
		for id := range ids {
			recs = append(recs, r.objectives[id])
		}
	}

	sort.Slice(recs, func(i, j int) bool { return recs[i].seq < recs[j].seq })

	items := make([]domain.Objective, len(recs))
	for i, rec := range recs {
		items[i] = rec.objective
	}

	return items
}

// DeleteObjective removes exactly one objective.
func (r *RepoMem) DeleteObjective(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.objectives[id]
	if !ok {
		return domain.ErrObjectiveNotFound
	}

	delete(r.objectives, id)
	delete(r.byBank[rec.objective.BankID], id)

	return nil
}

// TotalBalance sums the balances of all banks.
func (r *RepoMem) TotalBalance(ctx context.Context) (decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := decimal.Zero
	for _, rec := range r.banks {
		total = total.Add(rec.bank.Balance)
	}

	return total, nil
}

// Snapshot returns banks and objectives read within one critical section.
func (r *RepoMem) Snapshot(ctx context.Context) ([]domain.Bank, []domain.Objective, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.listBanks(), r.listObjectives(nil), nil
}
