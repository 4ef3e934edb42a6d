package cli

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"inkwell/app/config"
	"inkwell/app/repositories"
	"inkwell/app/routes"
)

// HandleCommand dispatches a subcommand.
func HandleCommand(args []string) {
	if len(args) < 1 {
		printHelp()
		os.Exit(1)
	}

	cmd := args[0]
	switch cmd {
	case "serve":
		serve()
	case "clean":
		clean()
	case "init":
		initDb()
	case "backup":
		backup()
	case "restore":
		if len(args) < 2 {
			fmt.Println("Error: backup file path required for restore")
			os.Exit(1)
		}
		restore(args[1])
	case "help":
		printHelp()
	default:
		fmt.Printf("Unknown command: %s\n\n", cmd)
		printHelp()
		os.Exit(1)
	}
}

// printHelp prints help for the subcommands
func printHelp() {
	helpText := `Usage: inkwell <command> [options]

Commands:
  serve                          Run the blog API server
  clean                          Remove the blog database
  init                           Initialize a new empty database
  backup                         Create a backup of the database
  restore [file]                 Restore database from backup
  help                           Display this help message

Configuration is read from INKWELL_* environment variables.
`
	fmt.Println(helpText)
}

// serve starts the blog API server
func serve() {
	cfg := config.Load()

	db, err := repositories.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := os.MkdirAll(cfg.UploadsDir, 0755); err != nil {
		log.Fatalf("Failed to create uploads directory: %v", err)
	}

	handler := routes.Setup(cfg, db)

	log.Printf("Starting blog API on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// clean removes the database
func clean() {
	cfg := config.Load()

	if _, err := os.Stat(cfg.DBPath); os.IsNotExist(err) {
		fmt.Println("Database is already clean (does not exist)")
		return
	}

	fmt.Print("Are you sure you want to clean the database? This cannot be undone. [y/N] ")
	var response string
	fmt.Scanln(&response)
	if response != "y" && response != "Y" {
		fmt.Println("Operation cancelled")
		return
	}

	if err := os.RemoveAll(cfg.DBPath); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("Database cleaned successfully")
}

// initDb initializes a new empty database
func initDb() {
	cfg := config.Load()

	if _, err := os.Stat(cfg.DBPath); err == nil {
		fmt.Println("Database already exists. Use 'clean' first if you want to reinitialize.")
		return
	}

	if err := os.MkdirAll(cfg.DBPath, 0755); err != nil {
		log.Fatalf("Failed to create database directory: %v", err)
	}

	db, err := repositories.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	fmt.Println("Database initialized successfully")
}

// backup creates a backup of the database
func backup() {
	cfg := config.Load()

	if _, err := os.Stat(cfg.DBPath); os.IsNotExist(err) {
		fmt.Println("No database exists to backup")
		return
	}

	backupDir := "data/backups"
	if err := os.MkdirAll(backupDir, 0755); err != nil {
		log.Fatalf("Failed to create backup directory: %v", err)
	}

	db, err := repositories.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	backupFile := filepath.Join(backupDir, fmt.Sprintf("backup_%d.db", time.Now().Unix()))
	f, err := os.Create(backupFile)
	if err != nil {
		log.Fatalf("Failed to create backup file: %v", err)
	}
	defer f.Close()

	if _, err := db.Backup(f, 0); err != nil {
		log.Fatalf("Failed to backup database: %v", err)
	}

	fmt.Printf("Database backed up successfully to %s\n", backupFile)
}

// restore restores the database from a backup
func restore(backupFile string) {
	cfg := config.Load()

	if _, err := os.Stat(backupFile); os.IsNotExist(err) {
		fmt.Printf("Backup file does not exist: %s\n", backupFile)
		return
	}

	if _, err := os.Stat(cfg.DBPath); err == nil {
		fmt.Print("Existing database found. Do you want to replace it? [y/N] ")
		var response string
		fmt.Scanln(&response)
		if response != "y" && response != "Y" {
			fmt.Println("Operation cancelled")
			return
		}
		if err := os.RemoveAll(cfg.DBPath); err != nil {
			log.Fatalf("Failed to remove existing database: %v", err)
		}
	}

	if err := os.MkdirAll(cfg.DBPath, 0755); err != nil {
		log.Fatalf("Failed to create database directory: %v", err)
	}

	db, err := repositories.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	f, err := os.Open(backupFile)
	if err != nil {
		log.Fatalf("Failed to open backup file: %v", err)
	}
	defer f.Close()

	if err := db.Load(f, 4); err != nil {
		log.Fatalf("Failed to restore database: %v", err)
	}

	fmt.Println("Database restored successfully")
}
