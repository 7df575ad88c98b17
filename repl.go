package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/DmitriyGrigoriev/console-app/engine"
	"github.com/DmitriyGrigoriev/console-app/query"

	"github.com/chzyer/readline"
)

// startRepl reads commands line by line and dispatches them to the
// engine until END or EOF. Errors are reported to the user and never
// terminate the session.
func startRepl(db *engine.Engine) error {
	reader, err := readline.New("> ")

	if err != nil {
		return err
	}

	defer func() {
		_ = reader.Close()
	}()

	fmt.Println("Enter commands (type 'END' to exit):")

	for {
		line, err := reader.Readline()

		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}

		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return err
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		cmd, err := query.Parse(line)

		if err != nil {
			fmt.Println("Unknown command or invalid arguments")
			continue
		}

		if cmd.Type == query.CommandEnd {
			return nil
		}

		runCommand(db, cmd)
	}
}

func runCommand(db *engine.Engine, cmd *query.Command) {
	switch cmd.Type {

	case query.CommandSet:
		if err := db.Set(cmd.Key, cmd.Value); err != nil {
			fmt.Println("ERR:", err)
		}

	case query.CommandGet:
		value, found, err := db.Get(cmd.Key)

		if err != nil {
			fmt.Println("ERR:", err)
			return
		}

		if !found {
			fmt.Println("NULL")
			return
		}

		fmt.Println(value)

	case query.CommandUnset:
		if err := db.Unset(cmd.Key); err != nil {
			fmt.Println("ERR:", err)
		}

	case query.CommandCounts:
		count, err := db.CountWithValue(cmd.Value)

		if err != nil {
			fmt.Println("ERR:", err)
			return
		}

		fmt.Println(count)

	case query.CommandFind:
		keys, err := db.FindKeysWithValue(cmd.Value)

		if err != nil {
			fmt.Println("ERR:", err)
			return
		}

		if len(keys) == 0 {
			fmt.Println("NULL")
			return
		}

		sort.Strings(keys)
		fmt.Println(strings.Join(keys, " "))

	case query.CommandBegin:
		db.Begin()

	case query.CommandCommit:
		reportTransactionOutcome(db.Commit())

	case query.CommandRollback:
		reportTransactionOutcome(db.Rollback())

	case query.CommandHelp:
		printHelp()

	default:
		fmt.Println("Unknown command or invalid arguments")
	}
}

func reportTransactionOutcome(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, engine.NoActiveTransactionError) {
		fmt.Println("NO TRANSACTION")
		return
	}

	fmt.Println("ERR:", err)
}

func printHelp() {
	fmt.Println()
	fmt.Println("AVAILABLE COMMANDS")
	fmt.Println("──────────────────────────────────────────────────────────────")
	fmt.Printf("  %-10s | %-20s | %s\n", "Name", "Usage", "Description")
	fmt.Println("──────────────────────────────────────────────────────────────")

	order := []query.CommandType{
		query.CommandSet,
		query.CommandGet,
		query.CommandUnset,
		query.CommandCounts,
		query.CommandFind,
		query.CommandBegin,
		query.CommandCommit,
		query.CommandRollback,
		query.CommandHelp,
		query.CommandEnd,
	}

	for _, cmdType := range order {
		meta := query.CommandRegistry[cmdType]
		fmt.Printf("- %-10s %-22s %s\n", meta.Name, meta.Usage, meta.Description)
	}

	fmt.Println()
}
