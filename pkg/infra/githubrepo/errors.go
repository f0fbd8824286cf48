package githubrepo

import (
	"net/http"

	"github.com/champ-oss/action-update-app/pkg/domain/types"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
)

// wrapAPIError classifies a failed API call into exactly one error
// kind. This is the only place HTTP status codes are inspected; the
// commit engine dispatches on the resulting tag.
//
//	401/403      -> auth (fatal, never retried)
//	404          -> not_found (fatal, surfaced per file)
//	409/422      -> conflict (the optimistic-concurrency signal)
//	5xx or no response -> transient
func wrapAPIError(err error, resp *github.Response, msg string, options ...goerr.Option) error {
	kind := types.TagTransient
	if resp != nil {
		switch resp.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			kind = types.TagAuth
		case http.StatusNotFound:
			kind = types.TagNotFound
		case http.StatusConflict, http.StatusUnprocessableEntity:
			kind = types.TagConflict
		}
	}

	options = append(options, goerr.T(kind))
	return goerr.Wrap(err, msg, options...)
}
