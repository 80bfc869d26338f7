package main

import (
	"log"
	"net/http"
	"strings"
	"time"
)

// knownUsers is the fixed set of user ids the mock accepts.
var knownUsers = map[string]bool{
	"user-1":  true,
	"user-2":  true,
	"user-3":  true,
	"editor":  true,
	"curator": true,
}

func main() {
	http.HandleFunc("/user/", func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimPrefix(r.URL.Path, "/user/")

		if !knownUsers[userID] {
			w.WriteHeader(http.StatusNotFound)
			log.Printf("[UserService] %s %s - 404 Not Found", r.Method, r.URL.Path)

			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"id":"` + userID + `"}`)); err != nil {
			log.Printf("[UserService] Write error: %v", err)
		}

		log.Printf("[UserService] %s %s - 200 OK", r.Method, r.URL.Path)
	})

	http.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"healthy"}`)); err != nil {
			log.Printf("[UserService] Health write error: %v", err)
		}
	})

	log.Println("Mock user service running on :8000")
	server := &http.Server{
		Addr:         ":8000",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.Fatal(server.ListenAndServe())
}
