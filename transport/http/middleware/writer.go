package middleware

import "net/http"

// statusWriter remembers the first status written through it.
type statusWriter struct {
	http.ResponseWriter
	status int
	wrote  bool
	// onHeader runs once, right before the status line is written.
	onHeader func(w http.ResponseWriter, status int)
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wrote {
		w.status = code
		w.wrote = true

		if w.onHeader != nil {
			w.onHeader(w.ResponseWriter, code)
		}
	}

	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.wrote {
		w.WriteHeader(http.StatusOK)
	}

	return w.ResponseWriter.Write(b) //nolint:wrapcheck
}

func (w *statusWriter) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}

	return w.status
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
