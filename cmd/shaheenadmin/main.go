package main

import (
	"fmt"
	"os"

	"github.com/shaheenplus/shaheen-admin-go/internal/admincli"
)

func main() {
	if err := admincli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
