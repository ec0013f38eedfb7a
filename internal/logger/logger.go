package logger

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// New cria o logger estruturado do serviço.
func New() (*zap.Logger, error) {
	return zap.NewProduction()
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Middleware registra cada requisição HTTP com método, rota, status e
// duração.
func Middleware(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			inicio := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)
			log.Info("requisição",
				zap.String("metodo", r.Method),
				zap.String("rota", r.URL.Path),
				zap.Int("status", sw.status),
				zap.Duration("duracao", time.Since(inicio)),
			)
		})
	}
}
