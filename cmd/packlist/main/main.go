package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/packlist/cmd/packlist"
	"github.com/arthur-debert/packlist/pkg/ui/styles"
)

func main() {
	rootCmd := packlist.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.Render("Error", fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
