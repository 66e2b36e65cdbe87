package pbi

import (
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// mergeHeaders appends values from src into dst.
func mergeHeaders(dst http.Header, src http.Header) {
	for k, vs := range src {
		for _, v := range vs {
			dst.Add(k, v)
		}
	}
}

// redactHeaders masks credentials for logging.
func redactHeaders(h http.Header) http.Header {
	cp := http.Header{}
	for k, vs := range h {
		for _, v := range vs {
			if strings.EqualFold(k, "Authorization") {
				cp.Add(k, redact(v))
			} else {
				cp.Add(k, v)
			}
		}
	}
	return cp
}

func redact(v string) string {
	scheme, tok, ok := strings.Cut(v, " ")
	if !ok {
		return "********"
	}
	if len(tok) > 8 {
		return scheme + " " + tok[:4] + "..." + tok[len(tok)-4:]
	}
	return scheme + " ********"
}

// normalizeBackoff ensures sane defaults for backoff windows.
func normalizeBackoff(initial, max time.Duration) (time.Duration, time.Duration) {
	if initial <= 0 {
		initial = 200 * time.Millisecond
	}
	if max <= 0 {
		max = 2 * time.Second
	}
	if max < initial {
		max = initial
	}
	return initial, max
}

// normalizeRetries ensures non-negative retry counts.
func normalizeRetries(r int) int {
	if r < 0 {
		return 0
	}
	return r
}

// leveledZap adapts zap to retryablehttp.LeveledLogger. Errors are logged at
// warn because an intermediate failure is followed by a retry.
type leveledZap struct {
	inner *zap.SugaredLogger
}

func (l leveledZap) Error(msg string, keysAndValues ...any) { l.inner.Warnw(msg, keysAndValues...) }
func (l leveledZap) Warn(msg string, keysAndValues ...any)  { l.inner.Warnw(msg, keysAndValues...) }
func (l leveledZap) Info(msg string, keysAndValues ...any)  { l.inner.Debugw(msg, keysAndValues...) }
func (l leveledZap) Debug(msg string, keysAndValues ...any) { l.inner.Debugw(msg, keysAndValues...) }
