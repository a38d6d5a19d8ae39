package main

import (
	"log"
	"net/http"
	"os"

	"euchre-game/internal/database"
	"euchre-game/internal/server"
)

func main() {
	log.Println("Starting Euchre server...")

	db := database.New()
	defer db.Close()

	hub := server.NewHub(&db)
	go hub.Run()

	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		server.ServeWs(hub, w, r)
	})

	fs := http.FileServer(http.Dir("web/static"))
	http.Handle("/", fs)

	server.HandleRoutes(&db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Fatal(http.ListenAndServe(":"+port, nil))
}
