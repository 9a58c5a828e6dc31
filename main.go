package main

import (
	"log"

	"github.com/campusflow/trafficq/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatalf("trafficq: %v", err)
	}
}
