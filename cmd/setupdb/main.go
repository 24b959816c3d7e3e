// Command setupdb creates the hospital SQLite database and fills it with
// sample doctors and appointments. Run it once before starting the server,
// or rerun it to reset the data.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/harshinharshi/medical-chatbot/pkg/hospital"
)

func main() {
	path := flag.String("db", "hospital.db", "Path of the SQLite database to create")
	flag.Parse()

	ctx := context.Background()

	store, err := hospital.Open(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.Setup(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create schema: %v\n", err)
		os.Exit(1)
	}
	if err := store.Seed(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "failed to seed data: %v\n", err)
		os.Exit(1)
	}

	doctors, err := store.Doctors(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to verify data: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Database created successfully at %s\n", *path)
	fmt.Printf("Doctors added: %d\n", len(doctors))
	fmt.Println("You can now start the server to use the assistant.")
}
