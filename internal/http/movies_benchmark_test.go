package httpserver

import (
	"fmt"
	"net/http"
	"testing"
)

func BenchmarkHandleCreateMovie(b *testing.B) {
	srv := buildTestServer(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		body := fmt.Sprintf(`{"name":"Bench Movie %d","description":"bench","popularity":50}`, i)
		rec := doRequest(srv, http.MethodPost, "/movies/", body)
		if rec.Code != http.StatusOK {
			b.Fatalf("unexpected status %d", rec.Code)
		}
	}
}
