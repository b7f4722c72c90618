package config

import (
	"log"
	"os"
)

// WhatsAppNumber returns the destination number for the storefront order
// handoff. Configured per deployment, never hard-coded at call sites.
func WhatsAppNumber() string {
	number := os.Getenv("WHATSAPP_NUMBER")
	if number == "" {
		number = "94767764438"
		log.Println("⚠️  WHATSAPP_NUMBER not set, using default store number")
	}
	return number
}
