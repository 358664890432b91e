package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pmoretti/linksift/internal/ui"
)

// interactiveCmd represents the interactive command.
var interactiveCmd = &cobra.Command{
	Use:   "interactive [path]",
	Short: "Launch interactive TUI for URL validation",
	Long: `Launch an interactive terminal UI to validate URLs in files.

Watch progress in real-time, then browse the valid and invalid
URLs in a filterable list.

Controls:
  ↑/↓ or j/k    Navigate through results
  f             Toggle valid/invalid view
  q             Quit (cancels a running scan)`,
	Args: cobra.MaximumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		cfg, err := loadConfig(false)
		exitOnError(err, "Invalid configuration")

		p := tea.NewProgram(ui.New(getPathArg(args), cfg))
		if _, err := p.Run(); err != nil {
			fmt.Printf("Error running interactive mode: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
