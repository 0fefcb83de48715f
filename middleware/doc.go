// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote, request_id) and completion
(status, duration_ms).

# Request IDs

WithRequestID reuses the caller's X-Request-ID or generates a UUID, echoes it
in the response and stores it in the context:

	id := middleware.RequestIDFromContext(r.Context())

# Embedding

Widgets are shown inside iframes on third-party sites. Embeddable sets
frame-ancestors * and disables caching, since every response depends on the
current time. CORS opens the read-only JSON API to any origin:

	server := http.Server{
		Handler: middleware.WithRequestID(middleware.Embeddable(middleware.CORS(mux))),
	}

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
