package main

import (
	"os"

	"aktis-jira-pages/cmd/jira-pages/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
