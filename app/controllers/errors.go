package controllers

import (
	"errors"
	"net/http"

	"github.com/km-arc/diaita/app/clients"
	"github.com/km-arc/diaita/app/database"
	"github.com/km-arc/diaita/app/services"
	gohttp "github.com/km-arc/diaita/framework/http"
)

const (
	msgInvalidPayload = "Invalid request payload"
	msgUnavailable    = "Upstream service temporarily unavailable"
)

// fail maps err onto a status: missing rows and upstream 404s answer
// notFound, an open breaker answers 503, everything else answers failure
// with a 500.
func fail(res *gohttp.Response, err error, notFound, failure string) {
	var ue *clients.UpstreamError
	switch {
	case errors.Is(err, services.ErrMissingUserID):
		res.BadRequest(err.Error())
	case errors.Is(err, database.ErrNotFound),
		errors.As(err, &ue) && ue.Status == http.StatusNotFound:
		res.NotFound(notFound)
	case errors.Is(err, clients.ErrUnavailable):
		res.ServiceUnavailable(msgUnavailable)
	default:
		res.ServerError(failure)
	}
}
