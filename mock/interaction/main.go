package main

import (
	_ "embed"
	"log"
	"net/http"
	"strconv"
	"time"
)

//go:embed data.json
var jsonData []byte

func main() {
	http.HandleFunc("/contents", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Internal") != "content" {
			w.WriteHeader(http.StatusForbidden)
			log.Printf("[Interaction] %s %s - 403 missing internal header", r.Method, r.URL.Path)

			return
		}

		// Simulate network latency (50-200ms)
		time.Sleep(time.Duration(50+time.Now().UnixNano()%150) * time.Millisecond)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		// One fixed engagement page; page 2+ is empty.
		if page, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && page > 1 {
			if _, err := w.Write([]byte("[]")); err != nil {
				log.Printf("[Interaction] Write error: %v", err)
			}
		} else if _, err := w.Write(jsonData); err != nil {
			log.Printf("[Interaction] Write error: %v", err)
		}

		log.Printf("[Interaction] %s %s?%s - 200 OK", r.Method, r.URL.Path, r.URL.RawQuery)
	})

	http.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"healthy"}`)); err != nil {
			log.Printf("[Interaction] Health write error: %v", err)
		}
	})

	log.Println("Mock interaction service running on :7000")
	server := &http.Server{
		Addr:         ":7000",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.Fatal(server.ListenAndServe())
}
