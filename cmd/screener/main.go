package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/callsentry/callscreen/internal/engine"
)

// Offline screener: classifies a single number without touching the
// registry, useful for checking rule behavior before deploying lists.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	phonePtr := flag.String("phone", "", "The phone number to classify (raw caller string)")
	modePtr := flag.String("mode", "smart", "Analysis mode: smart, aggressive or permissive")
	flag.Parse()

	if *phonePtr == "" {
		log.Fatal("❌ Error: You must provide a phone number.\nUsage: go run cmd/screener/main.go -phone=+79991111111 -mode=aggressive")
	}

	mode, err := engine.ParseMode(*modePtr)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	lists, err := engine.DefaultLists().OverrideFromFiles(
		os.Getenv("KNOWN_SPAM_FILE"),
		os.Getenv("HIGH_RISK_FILE"),
	)
	if err != nil {
		log.Fatalf("❌ Error loading blacklists: %v", err)
	}

	verdict := engine.New(lists).Classify(*phonePtr, mode)

	if verdict.Blocked {
		log.Printf("⛔ %s [%s] BLOCKED: %s (%s)", *phonePtr, mode, verdict.Reason, verdict.Reason.ThreatType())
		os.Exit(1)
	}
	log.Printf("✅ %s [%s] allowed", *phonePtr, mode)
}
