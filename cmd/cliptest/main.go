//go:build ignore

// Manual check that the system clipboard accepts writes:
//
//	go run ./cmd/cliptest "some text"
package main

import (
	"fmt"
	"os"

	"github.com/zhubert/postview/internal/clipboard"
)

func main() {
	text := "postview clipboard test"
	if len(os.Args) > 1 {
		text = os.Args[1]
	}

	if err := clipboard.Init(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if err := clipboard.WriteText(text); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Copied %q\n", text)
}
