//go:build !js
// +build !js

package main

import (
	_ "embed"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"
)

//go:embed index.html
var indexHTML []byte

// newHandler serves the embedded page at the root and everything else, such
// as the compiled game script and models, from staticDir.
func newHandler(staticDir string) http.Handler {
	mux := http.NewServeMux()
	files := http.FileServer(http.Dir(staticDir))

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" || r.URL.Path == "/index.html" {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(indexHTML)
			return
		}
		files.ServeHTTP(w, r)
	})

	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy"}`))
	})

	return logRequests(mux)
}

// logRequests logs every request with its duration.
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

func main() {
	port := flag.Int("port", 8080, "HTTP server port")
	staticDir := flag.String("static", ".", "Directory to serve static files from")
	flag.Parse()

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("UFO Defense server starting on http://localhost%s", addr)
	log.Printf("Serving static files from: %s", *staticDir)

	if err := http.ListenAndServe(addr, newHandler(*staticDir)); err != nil {
		log.Fatal(err)
	}
}
