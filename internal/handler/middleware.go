package handler

import (
	"io"
	"net/http"
	"runtime/debug"
	"time"

	"fsanano/store-api/internal/errs"

	"github.com/andybalholm/brotli"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const requestIDHeader = "X-Request-ID"

// requestLogger tags each request with an id, taken from the inbound header
// when present, and stores a logger carrying it in the request context.
func requestLogger(base zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(requestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(requestIDHeader, id)

			log := base.With().Str("request_id", id).Logger()
			next.ServeHTTP(w, r.WithContext(log.WithContext(r.Context())))
		})
	}
}

func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		log := zerolog.Ctx(r.Context())
		var event *zerolog.Event
		switch {
		case status >= http.StatusInternalServerError:
			event = log.Error()
		case status >= http.StatusBadRequest:
			event = log.Warn()
		default:
			event = log.Info()
		}
		event.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote", r.RemoteAddr).
			Int("status", status).
			Int("bytes", ww.BytesWritten()).
			Dur("latency", time.Since(start)).
			Msg("request")
	})
}

// recoverer turns a panic into the 500 envelope. http.ErrAbortHandler is
// re-raised so the server can abort the connection.
func recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			zerolog.Ctx(r.Context()).Error().
				Interface("panic", rvr).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")
			writeJSON(w, r, http.StatusInternalServerError, envelope{Error: errs.MsgInternalError})
		}()

		next.ServeHTTP(w, r)
	})
}

// compressor negotiates gzip, deflate or br for JSON responses.
func compressor() func(http.Handler) http.Handler {
	c := middleware.NewCompressor(5, "application/json")
	c.SetEncoder("br", func(w io.Writer, level int) io.Writer {
		return brotli.NewWriterLevel(w, level)
	})
	return c.Handler
}
