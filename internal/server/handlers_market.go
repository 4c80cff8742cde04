package server

import (
	"net/http"
)

// handleMarketQuotes handles GET /api/market/quotes.
func (s *Server) handleMarketQuotes(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	snapshot := s.ensureQuotes(r.Context())
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"source":     s.app.QuoteSource.Name(),
		"count":      len(snapshot),
		"quotes":     snapshot,
		"updated_at": s.app.QuoteService.UpdatedAt(),
	})
}

// handleMarketRefresh handles POST /api/market/refresh: an immediate
// synchronous refresh outside the scheduler cadence.
func (s *Server) handleMarketRefresh(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	symbols := s.app.Holdings.Symbols()
	snapshot := s.app.QuoteService.Refresh(r.Context(), symbols)

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"source":     s.app.QuoteSource.Name(),
		"count":      len(snapshot),
		"quotes":     snapshot,
		"updated_at": s.app.QuoteService.UpdatedAt(),
	})
}

// handleMarketCatalog handles GET /api/market/catalog?q=term.
func (s *Server) handleMarketCatalog(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	results := s.app.CatalogService.Search(r.URL.Query().Get("q"))
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"count":   len(results),
		"results": results,
	})
}

// handleNews handles GET /api/news?symbols=A,B&tags=earnings.
func (s *Server) handleNews(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	q := r.URL.Query()
	articles := s.app.NewsService.Feed(
		s.app.Holdings.Symbols(),
		splitListParam(q.Get("symbols")),
		splitListParam(q.Get("tags")),
	)

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"count":    len(articles),
		"articles": articles,
	})
}

// handleNewsTags handles GET /api/news/tags.
func (s *Server) handleNewsTags(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"tags": s.app.NewsService.Tags(s.app.Holdings.Symbols()),
	})
}
