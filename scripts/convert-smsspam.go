//go:build ignore

// Convert the UCI SMS Spam Collection (one "label<TAB>text" message per
// line) into the label,text corpus format read by spam-cli and spam-bench.
// Usage: go run ./scripts/convert-smsspam.go [IN] [OUT]
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

func main() {
	inFile := "testdata/smsspamcollection/SMSSpamCollection"
	outFile := "spam.csv"
	if len(os.Args) > 1 {
		inFile = os.Args[1]
	}
	if len(os.Args) > 2 {
		outFile = os.Args[2]
	}

	fmt.Printf("Converting %s...\n", inFile)
	spam, ham, skipped, err := convert(inFile, outFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("  -> %s (%d spam, %d ham, %d skipped)\n", outFile, spam, ham, skipped)
}

func convert(inPath, outPath string) (spam, ham, skipped int, err error) {
	in, err := os.Open(inPath)
	if err != nil {
		return 0, 0, 0, err
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return 0, 0, 0, err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(out)
	if _, err := fmt.Fprintln(w, "v1,v2"); err != nil {
		return 0, 0, 0, err
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		label, text, ok := strings.Cut(scanner.Text(), "\t")
		if !ok || (label != "spam" && label != "ham") {
			skipped++
			continue
		}
		if label == "spam" {
			spam++
		} else {
			ham++
		}
		quoted := `"` + strings.ReplaceAll(text, `"`, `""`) + `"`
		if _, err := fmt.Fprintf(w, "%s,%s\n", label, quoted); err != nil {
			return 0, 0, 0, err
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, 0, 0, err
	}

	return spam, ham, skipped, w.Flush()
}
