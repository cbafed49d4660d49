// Example program demonstrating the npmship library API. It performs a
// dry-run release of the package in the current directory, answering the
// bump-kind prompt with the configured default.
//
// Run from an npm package directory:
//
//	go run ./example/
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/npmship/npmship/pkg/npmship"
)

func main() {
	defaultChoice := "patch"

	result, err := npmship.Run(context.Background(), npmship.Options{
		Dir:       ".",
		DryRun:    true,
		Yes:       true,
		Overrides: &npmship.Overrides{DefaultChoice: &defaultChoice},
		Log:       func(msg string) { fmt.Println(msg) },
	})
	if err != nil {
		log.Fatalf("release failed: %v", err)
	}

	fmt.Printf("released version %s\n", result.Version)
}
