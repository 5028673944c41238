package http

import (
	"net/http"
	"strconv"

	"github.com/emidobak1/happy-snail/internal/feed"
)

type FeedHandler struct {
	feed *feed.Feed
}

func NewFeedHandler(f *feed.Feed) *FeedHandler {
	return &FeedHandler{feed: f}
}

func (h *FeedHandler) GetFeed(w http.ResponseWriter, r *http.Request) {
	limit := 6
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			respondError(w, http.StatusBadRequest, "invalid_limit", "limit must be a positive integer")
			return
		}
		limit = n
	}

	posts, err := h.feed.Latest(r.Context(), limit)
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, "feed_unavailable", "failed to fetch posts")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"username": h.feed.Username(),
		"posts":    posts,
	})
}
