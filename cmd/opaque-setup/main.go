// Command opaque-setup prints a fresh OPAQUE server setup for the
// OPAQUE_SERVER_SETUP variable. Changing the setup of a running deployment
// invalidates every registered password.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/aussiebroadwan/wgchat/internal/chat/pake"
)

func main() {
	envLine := flag.Bool("env", false, "print as an OPAQUE_SERVER_SETUP=... line for a .env file")
	check := flag.String("check", "", "validate an existing setup instead of generating one")
	flag.Parse()

	if *check != "" {
		if _, err := pake.ParseSetup(*check); err != nil {
			log.Fatalf("invalid setup: %v", err)
		}
		fmt.Fprintln(os.Stderr, "setup is valid")
		return
	}

	setup := pake.GenerateSetup().String()
	if *envLine {
		fmt.Printf("OPAQUE_SERVER_SETUP=%s\n", setup)
		return
	}
	fmt.Println(setup)
}
