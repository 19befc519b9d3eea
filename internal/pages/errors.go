package pages

import (
	"errors"
	"net/http"

	"github.com/angelofallars/htmx-go"

	"github.com/desertaaed/landing/internal/logger"
	"github.com/desertaaed/landing/internal/reveal"
	"github.com/desertaaed/landing/internal/structpages"
)

// ErrorHandler logs err and answers with its status. htmx requests get no
// swap so the element on the page stays as it was.
func ErrorHandler(lggr logger.Logger) structpages.ErrorHandler {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		status := statusOf(err)
		if status >= http.StatusInternalServerError {
			lggr.Errorw("page failed", "method", r.Method, "path", r.URL.Path, "err", err)
		} else {
			lggr.Debugw("page rejected", "method", r.Method, "path", r.URL.Path, "status", status, "err", err)
		}

		if htmx.IsHTMX(r) {
			if werr := htmx.NewResponse().Reswap(htmx.SwapNone).StatusCode(status).Write(w); werr != nil {
				lggr.Errorw("writing htmx error response", "err", werr)
			}
			return
		}
		http.Error(w, http.StatusText(status), status)
	}
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, reveal.ErrUnknownElement), errors.Is(err, structpages.ErrComponentNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
