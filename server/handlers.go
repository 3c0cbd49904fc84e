package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newsinsight/pkg/domain"
	"github.com/umputun/newsinsight/pkg/search"
	"github.com/umputun/newsinsight/pkg/store"
)

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	count, err := s.store.CountArticles(r.Context())
	if err != nil {
		lgr.Printf("[WARN] article count failed: %v", err)
		count = -1
	}
	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"status":   "ok",
		"version":  s.version,
		"articles": count,
		"time":     time.Now().UTC(),
	})
}

// searchHandler serves ranked topic queries
func (s *Server) searchHandler(w http.ResponseWriter, r *http.Request) {
	req, err := searchRequest(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	articles, err := s.searcher.Search(r.Context(), req)
	if err != nil {
		lgr.Printf("[ERROR] search for %q failed: %v", req.Topic, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	views := make([]articleView, len(articles))
	for i := range articles {
		views[i] = articleView{Article: articles[i], Teaser: articles[i].Teaser(teaserLimit)}
	}
	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"topic":    req.Topic,
		"count":    len(views),
		"articles": views,
	})
}

// teaserLimit caps the one-line summary served with search results
const teaserLimit = 180

// articleView is an article with its derived teaser line
type articleView struct {
	domain.Article
	Teaser string `json:"teaser,omitempty"`
}

// ingestHandler triggers a blocking ingestion run for a topic
func (s *Server) ingestHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Topic string `json:"topic"`
		Limit int    `json:"limit"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(body.Topic) == "" {
		renderError(w, r, fmt.Errorf("topic is required"), http.StatusBadRequest)
		return
	}

	result, err := s.ingester.Ingest(r.Context(), body.Topic, body.Limit)
	if err != nil {
		lgr.Printf("[ERROR] ingestion for %q failed: %v", body.Topic, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, result)
}

// articleHandler returns a single article by ID
func (s *Server) articleHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	article, err := s.store.GetArticle(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			renderError(w, r, fmt.Errorf("article %s not found", id), http.StatusNotFound)
			return
		}
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, article)
}

// explainHandler returns a generated context explanation for an article
func (s *Server) explainHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	text, err := s.searcher.Explain(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			renderError(w, r, fmt.Errorf("article %s not found", id), http.StatusNotFound)
			return
		}
		lgr.Printf("[ERROR] explain for %s failed: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"id": id, "explanation": text})
}

// listBlacklistHandler returns all blacklist entries
func (s *Server) listBlacklistHandler(w http.ResponseWriter, r *http.Request) {
	entries, err := s.store.ListBlacklist(r.Context())
	if err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"count": len(entries), "entries": entries})
}

// addBlacklistHandler adds a source or keyword blacklist entry
func (s *Server) addBlacklistHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Kind   string `json:"kind"`
		Value  string `json:"value"`
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	kind, ok := domain.ParseBlacklistKind(body.Kind)
	if !ok {
		renderError(w, r, fmt.Errorf("invalid kind %q, want source or keyword", body.Kind), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(body.Value) == "" {
		renderError(w, r, fmt.Errorf("value is required"), http.StatusBadRequest)
		return
	}

	entry := domain.BlacklistEntry{Kind: kind, Value: body.Value, Reason: body.Reason, AddedAt: time.Now()}
	if err := s.store.AddBlacklistEntry(r.Context(), entry); err != nil {
		lgr.Printf("[ERROR] add blacklist entry failed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusCreated, entry)
}

// searchRequest parses and validates search query parameters
func searchRequest(r *http.Request) (search.Request, error) {
	q := r.URL.Query()
	req := search.Request{Topic: strings.TrimSpace(q.Get("topic"))}
	if req.Topic == "" {
		return req, fmt.Errorf("topic is required")
	}

	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			return req, fmt.Errorf("invalid limit %q", v)
		}
		req.Limit = limit
	}
	if v := q.Get("age_days"); v != "" {
		age, err := strconv.Atoi(v)
		if err != nil || age < 0 {
			return req, fmt.Errorf("invalid age_days %q", v)
		}
		req.AgeDays = age
	}
	if v := q.Get("sentiment"); v != "" {
		sentiment, ok := domain.ParseSentiment(v)
		if !ok {
			return req, fmt.Errorf("invalid sentiment %q", v)
		}
		req.Sentiment = sentiment
	}
	return req, nil
}
