package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"flag"

	"github.com/htorianik/gsqlite/internal/log"
	"github.com/htorianik/gsqlite/pkg/gsqlite"
)

var (
	dbPath   = flag.String("db", ":memory:", "Database file path")
	echoMode = flag.Bool("echo", false, "Echo SQL statements")
)

func main() {
	flag.Parse()

	if level := os.Getenv("GSQLITE_LOG"); level != "" {
		log.SetLevel(log.ParseLevel(level))
	}

	conn, err := gsqlite.Connect(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close()

	cursor, err := conn.Cursor()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// One-shot mode: execute argv as a single statement and exit.
	args := flag.Args()
	if len(args) > 0 {
		sql := strings.Join(args, " ")
		if *echoMode {
			fmt.Println(sql)
		}
		if err := runStatement(conn, cursor, sql, NewFormatter()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		conn.Commit()
		return
	}

	version, _ := gsqlite.LibVersion()
	fmt.Printf("gsqlite-cli - SQLite shell (library %s)\n", version)
	fmt.Println("Type '.help' for help, 'exit' or 'quit' to exit")
	fmt.Println()

	formatter := NewFormatter()
	history := NewHistoryManager()
	history.Load()
	defer history.Save()

	timerEnabled := false

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("gsqlite> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		history.Add(line)

		if strings.HasPrefix(line, ".") {
			if handleMetaCommand(conn, cursor, line, formatter, &timerEnabled) {
				break
			}
			continue
		}

		if line == "exit" || line == "quit" {
			break
		}

		if *echoMode {
			fmt.Println(line)
		}

		start := time.Now()
		err := runStatement(conn, cursor, line, formatter)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		if timerEnabled {
			elapsed := time.Since(start)
			fmt.Printf("Run Time: real %.3f ms\n", float64(elapsed.Microseconds())/1000.0)
		}
	}
}

// runStatement executes one SQL statement on the shared cursor and renders
// the outcome: a formatted result table for queries, an affected-row count
// for writes.
func runStatement(conn *gsqlite.Connection, cursor *gsqlite.Cursor, sql string, formatter *Formatter) error {
	if err := cursor.Execute(sql); err != nil {
		return err
	}

	description := cursor.Description()
	if description == nil {
		if changes, err := conn.Changes(); err == nil && changes > 0 {
			fmt.Printf("%d row(s) affected\n", changes)
		}
		return nil
	}

	rows, err := cursor.FetchAll()
	if err != nil {
		return err
	}
	fmt.Print(formatter.Format(description, rows))
	return nil
}

// handleMetaCommand processes dot commands. Returns true to exit the shell.
func handleMetaCommand(conn *gsqlite.Connection, cursor *gsqlite.Cursor, line string, formatter *Formatter, timerEnabled *bool) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case ".exit", ".quit":
		return true

	case ".help":
		printHelp()

	case ".tables":
		listTables(cursor)

	case ".schema":
		showSchema(cursor, args)

	case ".mode":
		setOutputMode(formatter, args)

	case ".headers":
		toggleHeaders(formatter, args)

	case ".timer":
		toggleTimer(timerEnabled, args)

	case ".nullvalue":
		setNullValue(formatter, args)

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s (try .help)\n", parts[0])
	}
	return false
}

func printHelp() {
	fmt.Println("Database:")
	fmt.Println("  .tables               List all tables")
	fmt.Println("  .schema [TABLE]       Show CREATE statement(s)")
	fmt.Println()
	fmt.Println("Output:")
	fmt.Println("  .mode MODE            Set output mode (csv, table, list, json)")
	fmt.Println("  .headers on|off       Toggle column headers")
	fmt.Println("  .nullvalue TEXT       Set string for NULL values")
	fmt.Println()
	fmt.Println("Other:")
	fmt.Println("  .timer on|off         Toggle query timer")
	fmt.Println("  .help                 Show this help")
	fmt.Println("  .exit, .quit          Exit the shell")
}

func listTables(cursor *gsqlite.Cursor) {
	err := cursor.Execute(
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	rows, err := cursor.FetchAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	for _, row := range rows {
		fmt.Println(row[0])
	}
}

func showSchema(cursor *gsqlite.Cursor, args []string) {
	var err error
	if len(args) > 0 {
		err = cursor.Execute(
			"SELECT sql FROM sqlite_master WHERE tbl_name = ? AND sql IS NOT NULL", args[0])
	} else {
		err = cursor.Execute("SELECT sql FROM sqlite_master WHERE sql IS NOT NULL ORDER BY name")
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	rows, err := cursor.FetchAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	for _, row := range rows {
		fmt.Printf("%s;\n", row[0])
	}
}

func setOutputMode(formatter *Formatter, args []string) {
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "Usage: .mode MODE (csv, table, list, json)\n")
		return
	}
	switch strings.ToLower(args[0]) {
	case "csv", "table", "list", "json":
		formatter.SetMode(strings.ToLower(args[0]))
	default:
		fmt.Fprintf(os.Stderr, "Unknown mode: %s\n", args[0])
	}
}

func toggleHeaders(formatter *Formatter, args []string) {
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "Usage: .headers on|off\n")
		return
	}
	switch strings.ToLower(args[0]) {
	case "on":
		formatter.SetShowHeaders(true)
	case "off":
		formatter.SetShowHeaders(false)
	default:
		fmt.Fprintf(os.Stderr, "Usage: .headers on|off\n")
	}
}

func toggleTimer(enabled *bool, args []string) {
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "Usage: .timer on|off\n")
		return
	}
	switch strings.ToLower(args[0]) {
	case "on":
		*enabled = true
	case "off":
		*enabled = false
	default:
		fmt.Fprintf(os.Stderr, "Usage: .timer on|off\n")
	}
}

func setNullValue(formatter *Formatter, args []string) {
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "Usage: .nullvalue TEXT\n")
		return
	}
	formatter.SetNullValue(args[0])
}
