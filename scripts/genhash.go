// genhash/main.go
// Prints an argon2id PHC hash for SEED_PASSWORD, for seeding staff accounts.

package main

import (
	"fmt"
	"log"
	"os"

	"warsztat/internal/auth"
)

func main() {
	pw := os.Getenv("SEED_PASSWORD")
	if pw == "" {
		log.Fatal("set SEED_PASSWORD")
	}
	phc, err := auth.HashPassword(pw, auth.DefaultArgonParams())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(phc)
}
