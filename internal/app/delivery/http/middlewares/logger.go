package middlewares

import (
	"net/http"
	"time"

	"clinic-portal/internal/app/config"
	"clinic-portal/internal/pkg/constvars"

	"github.com/sirupsen/logrus"
)

// RequestLogger writes one access log line per request.
func (m *Middlewares) RequestLogger(appConfig config.App, log *logrus.Logger) func(next http.Handler) http.Handler {
	tz, err := time.LoadLocation(appConfig.Timezone)
	if err != nil {
		log.Warnf("Invalid time zone %q: %v", appConfig.Timezone, err)
		tz = time.UTC
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rec, r)

			log.WithFields(logrus.Fields{
				constvars.LoggingRequestIDKey:  r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY),
				constvars.LoggingRemoteAddrKey: r.RemoteAddr,
				constvars.LoggingMethodKey:     r.Method,
				constvars.LoggingStatusCodeKey: rec.statusCode,
				constvars.LoggingDurationKey:   time.Since(start).String(),
			}).Infof("%s | %s %s", time.Now().In(tz).Format(time.RFC850), r.Method, r.RequestURI)
		})
	}
}
