package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"memoir/internal/config"
	"memoir/internal/database"
	"memoir/internal/persistence"
	"memoir/internal/store"
)

// snapshotFile wraps an exported state with enough metadata to recognize it
type snapshotFile struct {
	Version    int         `json:"version"`
	ExportedAt time.Time   `json:"exportedAt"`
	State      store.State `json:"state"`
}

const snapshotVersion = 1

func main() {
	// Define subcommands
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	importCmd := flag.NewFlagSet("import", flag.ExitOnError)

	// Export flags
	exportOutput := exportCmd.String("output", "", "Output file path (default: memoir_backup_YYYYMMDD_HHMMSS.json)")

	// Import flags
	importInput := importCmd.String("input", "", "Input file path (required)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.EnsureSchema(); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	adapter := persistence.NewAdapter(db)

	switch os.Args[1] {
	case "export":
		exportCmd.Parse(os.Args[2:])
		handleExport(adapter, *exportOutput)

	case "import":
		importCmd.Parse(os.Args[2:])
		if *importInput == "" {
			fmt.Println("Error: -input flag is required")
			importCmd.PrintDefaults()
			os.Exit(1)
		}
		handleImport(adapter, *importInput)

	default:
		printUsage()
		os.Exit(1)
	}
}

func handleExport(adapter *persistence.Adapter, outputPath string) {
	// Generate default filename if not provided
	if outputPath == "" {
		timestamp := time.Now().Format("20060102_150405")
		outputPath = fmt.Sprintf("memoir_backup_%s.json", timestamp)
	}

	// Ensure directory exists
	dir := filepath.Dir(outputPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Failed to create output directory: %v", err)
		}
	}

	snapshot := snapshotFile{
		Version:    snapshotVersion,
		ExportedAt: time.Now(),
		State:      adapter.Load(),
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode snapshot: %v", err)
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		log.Fatalf("Failed to write snapshot: %v", err)
	}

	fileInfo, _ := os.Stat(outputPath)
	log.Printf("Export complete: %s (%.2f KB)", outputPath, float64(fileInfo.Size())/1024)
}

func handleImport(adapter *persistence.Adapter, inputPath string) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		log.Fatalf("Failed to read input file: %v", err)
	}

	var snapshot snapshotFile
	if err := json.Unmarshal(data, &snapshot); err != nil {
		log.Fatalf("Failed to parse snapshot: %v", err)
	}
	if snapshot.Version != snapshotVersion {
		log.Fatalf("Unsupported snapshot version %d (expected %d)", snapshot.Version, snapshotVersion)
	}

	adapter.Save(snapshot.State)
	log.Printf("Import complete: %d sessions, %d flashcards, %d journal entries",
		len(snapshot.State.GameSessions),
		len(snapshot.State.Flashcards),
		len(snapshot.State.JournalEntries))
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  backup export [-output FILE]   Export the state snapshot to a JSON file")
	fmt.Println("  backup import -input FILE      Import a state snapshot, overwriting the stored slots")
}
