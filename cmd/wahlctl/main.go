package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("load .env failed: %v", err)
	}
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
