package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"doc-text/app"
	"doc-text/config"
	"doc-text/extract"
)

// Color codes for terminal output
const (
	RED    = "\033[31m"
	GREEN  = "\033[32m"
	YELLOW = "\033[33m"
	BLUE   = "\033[34m"
	GRAY   = "\033[90m"
	BOLD   = "\033[1m"
	NC     = "\033[0m" // No Color
)

// getTerminalWidth returns the terminal width, defaulting to 80 if unable to detect
func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // Default fallback width
	}
	return width
}

// createSeparator creates a separator line that fits the terminal width
func createSeparator() string {
	width := getTerminalWidth()
	if width > 120 {
		width = 120 // Maximum reasonable width
	}
	return strings.Repeat("━", width)
}

func main() {
	args := parseArguments(os.Args[1:])

	if args.FilePath == "" {
		showUsage()
		os.Exit(1)
	}

	// Format comes from the file extension unless overridden; unrecognized
	// extensions are rejected here, before the engine is invoked.
	format, ok := config.FormatForFile(args.FilePath)
	if args.Format != "" {
		format, ok = config.ParseFormat(args.Format)
		if !ok {
			fmt.Fprintf(os.Stderr, "%sError: unknown format %q%s\n", RED, args.Format, NC)
			os.Exit(1)
		}
	}
	if !ok {
		fmt.Fprintf(os.Stderr, "%sError: unsupported file extension (supported: %s)%s\n",
			RED, strings.Join(config.SupportedExtensions(), ", "), NC)
		os.Exit(1)
	}

	data, err := os.ReadFile(args.FilePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%sError: %v%s\n", RED, err, NC)
		os.Exit(1)
	}

	if args.TUI {
		os.Exit(app.Run(args.FilePath, format, data))
	}

	startTime := time.Now()
	result, err := extract.Extract(data, format)
	elapsed := time.Since(startTime)

	if err != nil {
		if errors.Is(err, extract.ErrEmptyExtraction) {
			// Structurally fine but no text (e.g. image-only PDF): prompt
			// for a different file instead of a hard failure.
			fmt.Fprintf(os.Stderr, "%s📄 No text found in this document.%s\n", YELLOW, NC)
			fmt.Fprintf(os.Stderr, "Try:\n")
			fmt.Fprintf(os.Stderr, "  • A text-based export instead of a scanned image\n")
			fmt.Fprintf(os.Stderr, "  • Saving the document as .docx or plain text\n")
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "%sError: %v%s\n", RED, err, NC)
		os.Exit(1)
	}

	if args.Plain {
		fmt.Println(result.Body)
	} else {
		fmt.Printf("%s%s📄 %s%s (%s, %s)\n", BOLD, BLUE, args.FilePath, NC, format, formatByteCount(len(data)))
		fmt.Printf("%s%s%s\n", GRAY, createSeparator(), NC)
		fmt.Println(result.Body)
		fmt.Printf("%s%s%s\n", GRAY, createSeparator(), NC)
		fmt.Printf("%s✅ Extracted %d characters in %.0f ms%s\n", GREEN, len(result.Body), elapsed.Seconds()*1000, NC)
	}

	if args.ShowWarnings {
		for _, w := range result.Warnings {
			fmt.Fprintf(os.Stderr, "%s⚠️  %s%s\n", YELLOW, w, NC)
		}
	}
}

// formatByteCount renders a size like "12.4 KB"
func formatByteCount(n int) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}
