package main

import (
	"fmt"
	"os"

	"github.com/dargueta/p8z"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(
			os.Stderr,
			"Decode a string literal produced by p8z.\nUsage: %s input-file output-file\n",
			os.Args[0])
		os.Exit(1)
	}

	sourceFilePath := os.Args[1]
	outputFilePath := os.Args[2]

	literal, errSrc := os.ReadFile(sourceFilePath)
	if errSrc != nil {
		fmt.Fprintf(
			os.Stderr, "Failed to read file: `%v`: %s\n", sourceFilePath, errSrc)
		os.Exit(1)
	}

	decoded, err := p8z.Decode(string(literal))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding literal: %s\n", err)
		os.Exit(2)
	}

	errOut := os.WriteFile(outputFilePath, decoded, 0o644)
	if errOut != nil {
		fmt.Fprintf(
			os.Stderr, "Failed to write file: `%v`: %s\n", outputFilePath, errOut)
		os.Exit(1)
	}

	fmt.Printf("Decoded %d literal bytes to %d bytes.\n", len(literal), len(decoded))
}
