package s3trace

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// ZerologHook logs every request/response pair through a zerolog.Logger,
// grounded in zombar-tunnelmesh's pervasive zerolog.Logger-field style
// (SPEC_FULL.md §9).
type ZerologHook struct {
	Logger zerolog.Logger
}

// NewZerologHook builds a ZerologHook around logger.
func NewZerologHook(logger zerolog.Logger) *ZerologHook {
	return &ZerologHook{Logger: logger}
}

// Request logs the outgoing method/URL at debug level.
func (h *ZerologHook) Request(req *http.Request) {
	h.Logger.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Str("request_id", req.Header.Get(requestIDHeader)).
		Msg("s3go: request")
}

// Response logs the status/duration on success, or the error on failure.
func (h *ZerologHook) Response(req *http.Request, res *http.Response, dur time.Duration, err error) {
	event := h.Logger.Debug()
	if err != nil {
		event = h.Logger.Warn()
	}
	event = event.
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Str("request_id", req.Header.Get(requestIDHeader)).
		Dur("duration", dur)
	if err != nil {
		event.Err(err).Msg("s3go: request failed")
		return
	}
	event.Int("status", res.StatusCode).Msg("s3go: response")
}
