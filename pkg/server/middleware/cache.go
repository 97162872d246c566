package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/bshore/github-contribution-merge/pkg/metrics"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/rs/zerolog"
)

type cachedResponse struct {
	status int
	header http.Header
	body   []byte
}

// ChartCache memoizes successful rendered charts for a short TTL, keyed
// by the raw query string. Only 200 responses are stored; error
// responses always pass through.
type ChartCache struct {
	cache *expirable.LRU[string, cachedResponse]
}

func NewChartCache(size int, ttl time.Duration) *ChartCache {
	return &ChartCache{
		cache: expirable.NewLRU[string, cachedResponse](size, nil, ttl),
	}
}

func (c *ChartCache) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		key := req.URL.RawQuery

		if cached, ok := c.cache.Get(key); ok {
			metrics.ChartCacheHits.Inc()
			zerolog.Ctx(req.Context()).Debug().Str("key", key).Msg("chart cache hit")
			for name, values := range cached.header {
				w.Header()[name] = values
			}
			w.WriteHeader(cached.status)
			_, _ = w.Write(cached.body)
			return
		}
		metrics.ChartCacheMisses.Inc()

		recorder := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, req)

		if recorder.status == http.StatusOK {
			c.cache.Add(key, cachedResponse{
				status: recorder.status,
				header: w.Header().Clone(),
				body:   recorder.body.Bytes(),
			})
		}
	})
}

// responseRecorder tees the response body so a successful render can be
// stored after it has been written to the client.
type responseRecorder struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (r *responseRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}
