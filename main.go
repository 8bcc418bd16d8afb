package main

import (
	"log"
	"os"

	"github.com/valyala/fasthttp"

	"negotiation-engine/internal/handler"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Negotiation engine starting on port %s", port)
	if err := fasthttp.ListenAndServe(":"+port, handler.Route); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
