package handler

import (
	"net/http"

	"github.com/Lutefd/estate-site/internal/commons"
	"github.com/Lutefd/estate-site/internal/media"
)

func HandlerNormalizeMedia(w http.ResponseWriter, r *http.Request) {
	url := r.URL.Query().Get("url")
	if url == "" {
		commons.RespondWithError(w, http.StatusBadRequest, "missing required parameter: url")
		return
	}
	commons.RespondWithJSON(w, http.StatusOK, media.Classify(url))
}

// HandlerParseMedia classifies every URL of a comma-separated media cell.
func HandlerParseMedia(w http.ResponseWriter, r *http.Request) {
	field := r.URL.Query().Get("field")
	if field == "" {
		commons.RespondWithError(w, http.StatusBadRequest, "missing required parameter: field")
		return
	}
	commons.RespondWithJSON(w, http.StatusOK, media.ClassifyList(field))
}
