// Command hashpw reads a password from the terminal without echo and prints
// its bcrypt hash. Useful for seeding accounts manually.
package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/dmitrijs2005/inkpost/internal/server/auth"
)

func main() {

	fmt.Fprint(os.Stderr, "Enter password: ")
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		log.Fatalf("error reading password: %v", err)
	}
	if len(pw) == 0 {
		log.Fatal("empty password")
	}

	hash, err := auth.HashPassword(string(pw))
	if err != nil {
		log.Fatalf("error hashing password: %v", err)
	}

	fmt.Println(hash)
}
