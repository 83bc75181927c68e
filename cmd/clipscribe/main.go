package main

import (
	"github.com/joho/godotenv"
)

func main() {
	// Local development keeps OPENAI_API_KEY in a .env file; a missing
	// file is fine.
	_ = godotenv.Load()

	Execute()
}
