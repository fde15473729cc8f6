package http

import (
	"net/http"

	applog "fincouples/internal/log"
)

// handleContas serves the collection endpoints: list and create.
func (s *Server) handleContas(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeData(w, http.StatusOK, s.contas.Contas())
	case http.MethodPost:
		s.handleCreateConta(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleCreateConta(w http.ResponseWriter, r *http.Request) {
	var req contaCreateRequest
	if err := decodeBody(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conta, err := req.toConta()
	if err != nil {
		writeError(w, err)
		return
	}

	created, err := s.contas.Add(r.Context(), conta)
	if err != nil {
		applog.FromContext(r.Context()).ErrorContext(r.Context(), "Failed to create conta",
			applog.FieldError, err, applog.FieldOperation, applog.OpCreate)
		writeError(w, err)
		return
	}

	writeData(w, http.StatusCreated, created)
}

// handleContaByID serves /api/contas/{id} and /api/contas/{id}/toggle.
func (s *Server) handleContaByID(w http.ResponseWriter, r *http.Request) {
	id, rest := pathID(r.URL.Path, "/api/contas")
	if id == "" {
		http.NotFound(w, r)
		return
	}

	if rest == "toggle" {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if err := s.contas.ToggleAtiva(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if rest != "" {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodPut, http.MethodPatch:
		var req contaPatchRequest
		if err := decodeBody(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		patch, err := req.toPatch()
		if err != nil {
			writeError(w, err)
			return
		}
		updated, err := s.contas.Edit(r.Context(), id, patch)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, http.StatusOK, updated)

	case http.MethodDelete:
		if err := s.contas.Remove(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleSaldoGeral reports the aggregated balance over ativa contas.
func (s *Server) handleSaldoGeral(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	saldo := s.contas.SaldoGeral()
	writeData(w, http.StatusOK, map[string]any{
		"saldo":     saldo,
		"formatado": formatReais(saldo.Cents),
	})
}
