package main

import (
	"log/slog"
	"net/http"
	"strings"
	"time"
)

func newRequestLoggerMiddleware(excludedPaths []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path

			/*
			 * If this path is excluded, keep going.
			 */
			for _, excludedPath := range excludedPaths {
				if strings.HasPrefix(path, excludedPath) {
					next.ServeHTTP(w, r)
					return
				}
			}

			start := time.Now()
			next.ServeHTTP(w, r)

			slog.Debug("request handled",
				"method", r.Method,
				"path", path,
				"duration", time.Since(start),
			)
		})
	}
}
