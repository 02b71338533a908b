package handler

import (
	"net/http"

	"jobboard/internal/common"

	"github.com/rs/zerolog/log"
)

// respondServiceError converts a service failure into an HTTP response.
// Business-rule failures carry their message; internal failures are
// logged in full and answered with a generic message only.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error, genericMsg string) {
	status := common.HTTPStatusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", r.URL.Path).Msg(genericMsg)
		common.RespondWithError(w, status, genericMsg)
		return
	}
	common.RespondWithError(w, status, err.Error())
}
