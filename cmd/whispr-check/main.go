// cmd/whispr-check/main.go
package main

import (
	"os"

	"whispr/internal/checkapp"
)

func main() {
	os.Exit(checkapp.Run(os.Args[1:], os.Stdout, os.Stderr))
}
