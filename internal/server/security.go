package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/wagerlab/predictgate/internal/logger"
)

// Abuse thresholds. Postback traffic is bursty because networks replay
// undelivered callbacks, so the per-IP budget is generous.
const (
	rateLimitWindow          = 5 * time.Minute
	maxRequestsPerWindow     = 1000
	failedAuthAlertThreshold = 5
)

// ipStats accumulates per-client counters inside the current window.
type ipStats struct {
	requests   int
	failedAuth int
}

// clientMonitor tracks per-IP request volume and failed admin logins.
// Counters reset together when the window rolls over.
type clientMonitor struct {
	mu          sync.Mutex
	byIP        map[string]*ipStats
	windowStart time.Time
}

func newClientMonitor() *clientMonitor {
	return &clientMonitor{
		byIP:        make(map[string]*ipStats),
		windowStart: time.Now(),
	}
}

// stats returns the current-window counters for an IP.
// Caller must hold the mutex.
func (m *clientMonitor) stats(ip string) *ipStats {
	if time.Since(m.windowStart) > rateLimitWindow {
		m.byIP = make(map[string]*ipStats)
		m.windowStart = time.Now()
	}

	st, ok := m.byIP[ip]
	if !ok {
		st = &ipStats{}
		m.byIP[ip] = st
	}
	return st
}

func (m *clientMonitor) recordFailedAuth(ip string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	st := m.stats(ip)
	st.failedAuth++
	if st.failedAuth >= failedAuthAlertThreshold {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", st.failedAuth)
	}
}

// allowRequest counts a request and reports whether the client is still
// inside its window budget.
func (m *clientMonitor) allowRequest(ip string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	st := m.stats(ip)
	st.requests++
	if st.requests > maxRequestsPerWindow {
		if st.requests%100 == 0 { // sample the log under sustained floods
			slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", st.requests)
		}
		return false
	}
	return true
}

// isPublicPath reports whether a request path is served without an API key.
func isPublicPath(path string) bool {
	for _, prefix := range PublicPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// AuthMiddleware requires a valid X-API-Key on everything outside
// PublicPaths. Ingest and frontend paths stay open because affiliate
// networks cannot attach custom headers to pixel callbacks.
func AuthMiddleware(apiKey string, trustedProxies []string, monitor *clientMonitor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			providedKey := r.Header.Get(HeaderAPIKey)

			// Constant time comparison to prevent timing attacks
			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				ip := clientIP(r, trustedProxies)
				monitor.recordFailedAuth(ip)

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"ip", ip)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitMiddleware rejects clients that exceed the per-IP window budget.
func RateLimitMiddleware(trustedProxies []string, monitor *clientMonitor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !monitor.allowRequest(clientIP(r, trustedProxies)) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP resolves the client address for rate limiting. X-Forwarded-For is
// honored only when the direct peer is a trusted proxy, and then the
// rightmost entry wins: it is the address that connected to that proxy.
func clientIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	for _, proxy := range trustedProxies {
		if proxy == remoteIP {
			if forwarded := r.Header.Get(HeaderForwardedFor); forwarded != "" {
				hops := strings.Split(forwarded, ",")
				return strings.TrimSpace(hops[len(hops)-1])
			}
			break
		}
	}

	return remoteIP
}

// SecurityHeadersMiddleware sets standard browser protection headers.
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	headers := map[string]string{
		HeaderContentType:    HeaderValueNoSniff,
		HeaderFrameOptions:   HeaderValueSameOrigin,
		HeaderXSSProtection:  HeaderValueXSSBlock,
		HeaderReferrerPolicy: HeaderValueReferrerStrictOrigin,
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for name, value := range headers {
				w.Header().Set(name, value)
			}
			next.ServeHTTP(w, r)
		})
	}
}
