package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/user/cloud-balance-monitor/internal/provider"
)

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) balancesHandler(w http.ResponseWriter, r *http.Request) {
	providerFilter := r.URL.Query().Get("provider")
	nameFilter := r.URL.Query().Get("name")

	if data, ok := s.cache.Get(); ok {
		filtered := s.filterResults(data, providerFilter, nameFilter)
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Cache", "HIT")
		json.NewEncoder(w).Encode(filtered)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.config.Settings.Timeout)
	defer cancel()

	results := s.registry.FetchAll(ctx, s.config.Accounts)
	s.cache.Set(results)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Cache", "MISS")
	json.NewEncoder(w).Encode(s.filterResults(results, providerFilter, nameFilter))
}

func (s *Server) filterResults(results []provider.BalanceResult, providerFilter, nameFilter string) []provider.BalanceResult {
	if providerFilter == "" && nameFilter == "" {
		return results
	}

	var filtered []provider.BalanceResult
	for _, result := range results {
		if providerFilter != "" && string(result.Provider) != providerFilter {
			continue
		}
		if nameFilter != "" && result.Name != nameFilter {
			continue
		}
		filtered = append(filtered, result)
	}
	return filtered
}

func (s *Server) providersHandler(w http.ResponseWriter, r *http.Request) {
	providers := s.registry.All()
	providerInfo := make([]map[string]interface{}, len(providers))

	for i, p := range providers {
		providerInfo[i] = map[string]interface{}{
			"id":           p.ID(),
			"display_name": p.DisplayName(),
			"icon":         p.ID().Icon(),
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(providerInfo)
}

func (s *Server) registerHandlers(mux *http.ServeMux) {
	mux.HandleFunc("/api/v1/health", s.healthHandler)
	mux.HandleFunc("/api/v1/balances", s.balancesHandler)
	mux.HandleFunc("/api/v1/providers", s.providersHandler)
}
