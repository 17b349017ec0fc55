package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"campusmatch_client/devserver"
	"campusmatch_client/models"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

// seedStore builds the dev server's world: the session user, a small
// candidate pool, and one incoming like so a right swipe can produce a
// mutual match during local testing.
func seedStore() *devserver.Store {
	me := models.Candidate{
		ID:          uuid.New().String(),
		DisplayName: "Sam",
		Age:         21,
		Major:       "Computer Science",
		Bio:         "Coffee-fueled, always down for a study session.",
		Interests:   []string{"climbing", "board games"},
	}
	candidates := []models.Candidate{
		{
			ID:          uuid.New().String(),
			DisplayName: "Priya",
			Age:         20,
			Major:       "Linguistics",
			Bio:         "Collecting languages and campus cats.",
			Interests:   []string{"languages", "photography"},
			HasImage:    true,
		},
		{
			ID:          uuid.New().String(),
			DisplayName: "Marcus",
			Age:         22,
			Major:       "Mechanical Engineering",
			Bio:         "Builds robots, breaks PRs.",
			Interests:   []string{"robotics", "climbing"},
		},
		{
			ID:          uuid.New().String(),
			DisplayName: "Elena",
			Age:         21,
			Major:       "Philosophy",
			Bio:         "Will argue about free will over boba.",
			Interests:   []string{"debate", "board games"},
		},
	}

	store := devserver.NewStore(me, candidates)
	// Priya already liked us; swiping right on her card yields a 201.
	store.SeedIncomingLike(candidates[0].ID)
	return store
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	log.Println("Seeding in-memory dev store...")
	store := seedStore()
	log.Println("Dev store ready.")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	r := mux.NewRouter()

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "campusmatch dev server")
	}).Methods("GET")

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	devserver.RegisterRoutes(r, store)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	log.Printf("Starting dev server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
