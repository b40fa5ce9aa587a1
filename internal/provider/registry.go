package provider

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

type Registry struct {
	mu        sync.RWMutex
	providers map[Kind]Provider
}

func NewRegistry() *Registry {
	return &Registry{
		providers: make(map[Kind]Provider),
	}
}

func (r *Registry) Register(p Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.providers[p.ID()]; exists {
		return fmt.Errorf("provider %q already registered", p.ID())
	}
	r.providers[p.ID()] = p
	return nil
}

func (r *Registry) Unregister(kind Kind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.providers, kind)
}

func (r *Registry) Get(kind Kind) (Provider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.providers[kind]
	return p, ok
}

func (r *Registry) All() []Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ps := make([]Provider, 0, len(r.providers))
	for _, p := range r.providers {
		ps = append(ps, p)
	}

	sort.Slice(ps, func(i, j int) bool {
		return ps[i].ID() < ps[j].ID()
	})

	return ps
}

// FetchAll queries every account concurrently and returns one result per
// account, in the accounts' original order. A failing account never
// affects the others: adapter errors, unregistered kinds, and context
// cancellation all become error-status results in their reserved slot.
func (r *Registry) FetchAll(ctx context.Context, accounts []Account) []BalanceResult {
	results := make([]BalanceResult, len(accounts))
	var wg sync.WaitGroup

	for i, account := range accounts {
		wg.Add(1)
		go func(idx int, acc Account) {
			defer wg.Done()

			if ctx.Err() != nil {
				results[idx] = failedResult(acc, ctx.Err().Error())
				return
			}

			p, ok := r.Get(acc.Provider)
			if !ok {
				results[idx] = failedResult(acc, fmt.Sprintf("provider %q not registered", acc.Provider))
				return
			}

			amount, err := p.FetchBalance(ctx, acc)
			if err != nil {
				results[idx] = failedResult(acc, err.Error())
				return
			}

			results[idx] = BalanceResult{
				Provider:    acc.Provider,
				DisplayName: acc.Provider.Label(),
				Icon:        acc.Provider.Icon(),
				Name:        acc.Name,
				Timestamp:   time.Now(),
				Status:      StatusOK,
				Amount:      amount,
			}
		}(i, account)
	}

	wg.Wait()
	return results
}

func failedResult(acc Account, msg string) BalanceResult {
	return BalanceResult{
		Provider:    acc.Provider,
		DisplayName: acc.Provider.Label(),
		Icon:        acc.Provider.Icon(),
		Name:        acc.Name,
		Timestamp:   time.Now(),
		Status:      StatusError,
		Error:       msg,
	}
}
