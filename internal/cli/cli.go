package cli

import (
	"fmt"
	"os"
	"syscall"

	"golang.org/x/term"

	"github.com/sharadc16/volunteer-attendance-tracker-sub001/internal/auth"
	"github.com/sharadc16/volunteer-attendance-tracker-sub001/internal/storage"
	"github.com/sharadc16/volunteer-attendance-tracker-sub001/internal/sync"
)

// Cli bundles the services the commands operate on.
type Cli struct {
	store        storage.Store // tracked store: mutations feed the sync core
	authService  auth.Service
	orchestrator *sync.Orchestrator
	tracker      *sync.Tracker
}

// New creates the command surface
func New(store storage.Store, authService auth.Service, orchestrator *sync.Orchestrator, tracker *sync.Tracker) *Cli {
	return &Cli{
		store:        store,
		authService:  authService,
		orchestrator: orchestrator,
		tracker:      tracker,
	}
}

// PrintUsage выводит справку по командам
func PrintUsage() {
	fmt.Println("Volunteer Attendance Tracker")
	fmt.Println()
	fmt.Println("Usage: tracker [flags] <command> [args]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  login                        Authenticate with the sheet gateway")
	fmt.Println("  logout                       Remove the stored session")
	fmt.Println("  add-volunteer <name> [args]  Add a volunteer")
	fmt.Println("  add-event <name> <date>      Add an event")
	fmt.Println("  checkin <volunteer> <event>  Record a check-in")
	fmt.Println("  list <type>                  List volunteers, events or attendance")
	fmt.Println("  sync [-full] [types...]      Force a sync cycle")
	fmt.Println("  status                       Show sync status and statistics")
	fmt.Println("  watch                        Run the periodic sync loop")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -server <url>   Sheet gateway URL")
	fmt.Println("  -db <path>      Path to the local SQLite database")
	fmt.Println("  -state <path>   Path to the sync state database")
}

// readPassword читает пароль без эха в терминал
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	password, err := term.ReadPassword(syscall.Stdin)
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(password), nil
}

// readLine читает строку из stdin
func readLine(prompt string) (string, error) {
	fmt.Print(prompt)
	var line string
	if _, err := fmt.Fscanln(os.Stdin, &line); err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return line, nil
}
