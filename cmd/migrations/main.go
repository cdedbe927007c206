package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/vncsmyrnk/voteservice/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/voteservice/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("a command is required: up, down or status.")
	}
	command := os.Args[1]

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := postgres.Open(context.Background(), cfg.PostgresURL())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	switch command {
	case "up":
		err = postgres.Migrate(db)
	case "down":
		err = postgres.Rollback(db)
	case "status":
		err = postgres.Status(db)
	default:
		log.Fatalf("unknown command %q", command)
	}
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("Migration command %q executed successfully.", command)
}
