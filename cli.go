package main

import (
	"fmt"
	"os"

	"doc-text/app"
)

// Arguments holds parsed command line arguments
type Arguments struct {
	FilePath     string
	Format       string
	ShowWarnings bool
	Plain        bool
	TUI          bool
}

// parseArguments parses command line args
func parseArguments(args []string) *Arguments {
	result := &Arguments{}

	expectFormat := false

	for _, a := range args {
		if expectFormat {
			result.Format = a
			expectFormat = false
			continue
		}
		switch a {
		case "--format", "-f":
			expectFormat = true
		case "--warnings", "-w":
			result.ShowWarnings = true
		case "--plain", "-p":
			result.Plain = true
		case "--tui", "-t":
			result.TUI = true
		case "--help", "-h":
			showUsage()
			os.Exit(0)
		case "--version", "-v":
			showVersion()
			os.Exit(0)
		default:
			if result.FilePath == "" {
				result.FilePath = a
			}
		}
	}

	return result
}

// showUsage displays usage information
func showUsage() {
	fmt.Printf("%s%sdoctext%s - Document Text Extraction (Pure Go decoders)\n", BOLD, BLUE, NC)
	fmt.Println()
	fmt.Printf("%sUSAGE:%s\n", BOLD, NC)
	fmt.Printf("  doctext %s<file>%s\n", YELLOW, NC)
	fmt.Printf("  doctext %s--format pdf%s <file>\n", YELLOW, NC)
	fmt.Printf("  doctext %s--tui%s <file>\n", YELLOW, NC)
	fmt.Println()
	fmt.Printf("%sOPTIONS:%s\n", BOLD, NC)
	fmt.Printf("  %s--format, -f%s   Override the format inferred from the extension\n", YELLOW, NC)
	fmt.Printf("                 (text, markdown, rtf, pdf, docx)\n")
	fmt.Printf("  %s--warnings, -w%s Print recoverable extraction anomalies to stderr\n", YELLOW, NC)
	fmt.Printf("  %s--plain, -p%s    Body only, no banner or colors (for piping)\n", YELLOW, NC)
	fmt.Printf("  %s--tui, -t%s      Interactive scrollable preview\n", YELLOW, NC)
	fmt.Printf("  %s--help, -h%s     Show this help message\n", YELLOW, NC)
	fmt.Printf("  %s--version, -v%s  Show version information\n", YELLOW, NC)
	fmt.Println()
	fmt.Printf("%sEXAMPLES:%s\n", BOLD, NC)
	fmt.Printf("  doctext resume.pdf\n")
	fmt.Printf("  doctext --plain resume.docx | wc -l\n")
	fmt.Printf("  doctext --format rtf exported.txt\n")
}

// showVersion displays version information
func showVersion() {
	fmt.Printf("%sdoctext%s v%s\n", BOLD, NC, app.Version)
	fmt.Printf("Document Text Extraction Tool\n")
	fmt.Printf("From-scratch ZIP, DEFLATE, PDF and RTF decoding\n")
}
