package common

import (
	"fmt"

	"github.com/ternarybob/banner"
)

// PrintBanner displays the CLI startup banner
func PrintBanner(cfg *Config, command string) {
	b := banner.New().
		SetStyle(banner.StyleDouble).
		SetBorderColor(banner.ColorPurple).
		SetTextColor(banner.ColorWhite).
		SetBold(true).
		SetWidth(80)

	fmt.Printf("\n")

	b.PrintTopLine()
	b.PrintCenteredText("AKTIS JIRA PAGES")
	b.PrintCenteredText("Jira UI Page Objects")
	b.PrintSeparatorLine()

	b.PrintKeyValue("Version", GetFullVersion(), 15)
	b.PrintKeyValue("Command", command, 15)
	b.PrintKeyValue("Jira", cfg.Jira.BaseURL, 15)
	b.PrintKeyValue("Backend", cfg.Browser.Backend, 15)
	b.PrintKeyValue("Headless", fmt.Sprintf("%v", cfg.Browser.Headless), 15)
	b.PrintBottomLine()

	if logFile := GetLogFilePath(); logFile != "" {
		fmt.Printf("   • Log File: %s\n", logFile)
	}
	fmt.Printf("\n")
}

// PrintColorizedMessage prints a message with specified color
func PrintColorizedMessage(color, message string) {
	fmt.Printf("%s%s%s\n", color, message, banner.ColorReset)
}

// PrintSuccess prints a success message in green
func PrintSuccess(message string) {
	PrintColorizedMessage(banner.ColorGreen, fmt.Sprintf("✓ %s", message))
}

// PrintError prints an error message in red
func PrintError(message string) {
	PrintColorizedMessage(banner.ColorRed, fmt.Sprintf("✗ %s", message))
}

// PrintWarning prints a warning message in yellow
func PrintWarning(message string) {
	PrintColorizedMessage(banner.ColorYellow, fmt.Sprintf("⚠ %s", message))
}
