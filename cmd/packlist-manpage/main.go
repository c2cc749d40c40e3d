package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/packlist/cmd/packlist"
	"github.com/arthur-debert/packlist/internal/version"
)

func main() {
	rootCmd := packlist.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "PACKLIST",
		Section: "1",
		Source:  "packlist " + version.Version,
		Manual:  "packlist manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
