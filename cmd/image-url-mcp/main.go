package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/image-url-tools-mcp/internal/config"
	"github.com/ironsheep/image-url-tools-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("image-url-tools-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("image-url-tools-mcp - MCP server for image transformation URLs")
			fmt.Println()
			fmt.Println("Usage: image-url-tools-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  IMAGE_URL_MCP_LOG_LEVEL=debug    Enable debug logging")
			fmt.Println("  IMAGE_URL_MCP_CONFIG=<path>      YAML configuration file")
			fmt.Println("  IMAGE_URL_MCP_BASE_URL=<url>     Base URL for relative image references")
			fmt.Println("  IMAGE_URL_MCP_ORIGIN=<url>       Page origin used when no base URL is set")
			fmt.Println("  IMAGE_URL_MCP_PROJECT=<slug>     Default project slug")
			fmt.Println("  IMAGE_URL_MCP_FORMAT=webp|png    Default output format")
			fmt.Println()
			fmt.Println("Variables may also be set in .env or .env.local in the working directory.")
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	host, err := config.LoadHostConfig(os.Getenv(config.EnvConfigPath))
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	logLevel := os.Getenv("IMAGE_URL_MCP_LOG_LEVEL")
	if logLevel == "debug" {
		log.Printf("Image URL MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("Base URL: %q, origin: %q, project: %q", host.BaseURL, host.Origin, host.Project)
	}

	srv := server.New(host)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
