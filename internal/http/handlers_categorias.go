package http

import (
	"net/http"

	"fincouples/internal/core"
	applog "fincouples/internal/log"
)

// handleCategorias serves the collection endpoints. GET accepts an
// optional ?tipo=receita|despesa filter.
func (s *Server) handleCategorias(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		if raw := r.URL.Query().Get("tipo"); raw != "" {
			tipo := core.CategoriaTipo(raw)
			if !tipo.IsValid() {
				writeError(w, core.ErrInvalidTipo)
				return
			}
			writeData(w, http.StatusOK, s.categorias.PorTipo(tipo))
			return
		}
		writeData(w, http.StatusOK, s.categorias.Categorias())

	case http.MethodPost:
		var req categoriaCreateRequest
		if err := decodeBody(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		categoria, err := req.toCategoria()
		if err != nil {
			writeError(w, err)
			return
		}
		created, err := s.categorias.Add(r.Context(), categoria)
		if err != nil {
			applog.FromContext(r.Context()).ErrorContext(r.Context(), "Failed to create categoria",
				applog.FieldError, err, applog.FieldOperation, applog.OpCreate)
			writeError(w, err)
			return
		}
		writeData(w, http.StatusCreated, created)

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleCategoriaByID serves /api/categorias/{id}.
func (s *Server) handleCategoriaByID(w http.ResponseWriter, r *http.Request) {
	id, rest := pathID(r.URL.Path, "/api/categorias")
	if id == "" || rest != "" {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodPut, http.MethodPatch:
		var req categoriaPatchRequest
		if err := decodeBody(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		patch, err := req.toPatch()
		if err != nil {
			writeError(w, err)
			return
		}
		updated, err := s.categorias.Edit(r.Context(), id, patch)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, http.StatusOK, updated)

	case http.MethodDelete:
		if err := s.categorias.Remove(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}
