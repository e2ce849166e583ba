/*
Copyright © 2025 researchhub
*/
package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/researchhub/researchhub-be/cmd"
)

func main() {
	cmd.Execute()
}

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}
}
