package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/marcelsud/library-admin/fixtures"
)

/* validate-fixtures - Standalone CLI tool to validate a fixtures file
 * Usage: go run cmd/validate-fixtures/main.go [fixtures.yaml]
 * Exit codes: 0 = valid, 1 = invalid
 */

func main() {
	fixturesFile := "fixtures.yaml"
	if len(os.Args) > 1 {
		fixturesFile = os.Args[1]
	}

	fmt.Printf("Validating fixtures file: %s\n", fixturesFile)
	fmt.Println(strings.Repeat("-", 50))

	loader := fixtures.NewLoader()
	if err := loader.Load(fixturesFile); err != nil {
		fmt.Fprintf(os.Stderr, "❌ VALIDATION FAILED\n\n")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	authors := loader.List()
	fmt.Printf("✓ VALIDATION PASSED\n\n")
	fmt.Printf("Loaded %d author(s), %d book(s):\n", len(authors), loader.BookCount())

	for i, a := range authors {
		fmt.Printf("\n%d. %s <%s>\n", i+1, a.Name, a.Email)
		if a.BirthYear != nil {
			fmt.Printf("   Born:  %d\n", *a.BirthYear)
		}
		for _, b := range a.Books {
			year := "n/a"
			if b.PublishedYear != nil {
				year = fmt.Sprint(*b.PublishedYear)
			}
			fmt.Printf("   - %s (%s)\n", b.Title, year)
		}
	}

	fmt.Printf("\n✓ All fixtures are valid!\n")
	os.Exit(0)
}
