package main

import (
	"fmt"
	"os"
	"time"

	"github.com/Namek/battle-tactics/internal/version"
)

const pkg = "github.com/Namek/battle-tactics/internal/version"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		return
	}

	switch os.Args[1] {
	case "today":
		fmt.Println(time.Now().UTC().Format("2006-01-02"))
	case "id":
		date := time.Now().UTC().Format("2006-01-02")
		if len(os.Args) > 2 {
			date = os.Args[2]
		}
		id, err := version.BuildIDFor(date)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(id)
	case "ldflags":
		if len(os.Args) < 4 {
			fmt.Println("Usage: buildstamp ldflags <commit> <branch> [ci]")
			return
		}
		flags := fmt.Sprintf("-X %s.BuildDate=%s -X %s.BuildCommit=%s -X %s.BuildBranch=%s",
			pkg, time.Now().UTC().Format("2006-01-02"), pkg, os.Args[2], pkg, os.Args[3])
		if len(os.Args) > 4 {
			flags += fmt.Sprintf(" -X %s.BuildCI=%s", pkg, os.Args[4])
		}
		fmt.Println(flags)
	default:
		printHelp()
	}
}

func printHelp() {
	fmt.Println(`Build stamp - метаданные сборки для internal/version
Commands:
  today                          - текущая дата сборки (UTC, YYYY-MM-DD)
  id [YYYY-MM-DD]                - номер сборки для даты (по умолчанию сегодня)
  ldflags <commit> <branch> [ci] - строка -ldflags для go build`)
}
