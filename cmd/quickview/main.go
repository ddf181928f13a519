package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/djenkins1/quickview/internal/config"
	"github.com/djenkins1/quickview/internal/debuglog"
	"github.com/djenkins1/quickview/internal/storage"
	"github.com/djenkins1/quickview/internal/tui"
)

// Version is the version of the application, set at build time
var Version = "dev"

var (
	dbPath     string
	configPath string
	quiet      bool
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:   "quickview [subreddit]",
	Short: "Browse recent subreddit posts as a card grid",
	Long: "quickview shows the posts of a subreddit from a chosen date onward,\n" +
		"laid out as a grid of cards. Favorites are kept between runs.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(tui.ModeGrid, initialQuery(args))
	},
}

var topCmd = &cobra.Command{
	Use:   "top [subreddit]",
	Short: "Show the top ten posters of a subreddit",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(tui.ModeTop, initialQuery(args))
	},
}

var generateConfigCmd = &cobra.Command{
	Use:   "generate-config",
	Short: "Write the default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		home, _ := os.UserHomeDir()
		configFile := filepath.Join(home, ".config", "quickview", "config.toml")
		if err := config.GenerateDefaultConfig(configFile); err != nil {
			return fmt.Errorf("generating config: %w", err)
		}
		fmt.Printf("Generated default configuration at: %s\n", configFile)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("quickview %s\n", Version)
		fmt.Println("subreddit viewer")
		fmt.Println("github.com/djenkins1/quickview")
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to database file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to configuration file")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "skip startup banner")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "write a debug log")

	rootCmd.AddCommand(topCmd, generateConfigCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func initialQuery(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

func runApp(mode tui.Mode, query string) error {
	if debug {
		if err := debuglog.Setup(debuglog.LevelDebug); err != nil {
			log.Printf("debug log unavailable: %v", err)
		}
		defer debuglog.Close()
	}

	if !quiet {
		showBanner()
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Override database path if provided via flag
	if dbPath != "" {
		cfg.Database.Path = dbPath
	}
	if len(cfg.Database.Path) >= 2 && cfg.Database.Path[:2] == "~/" {
		home, _ := os.UserHomeDir()
		cfg.Database.Path = filepath.Join(home, cfg.Database.Path[2:])
	}

	store, err := storage.NewStore(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	app := tui.NewApp(store, cfg, mode, query)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running app: %w", err)
	}
	return nil
}

func showBanner() {
	lines := make([]string, 0, len(tui.LogoLines)+2)
	for i, line := range tui.LogoLines {
		style := lipgloss.NewStyle().
			Foreground(tui.BannerColors[i%len(tui.BannerColors)]).
			Bold(true)
		lines = append(lines, style.Render(line))
	}
	lines = append(lines, "",
		lipgloss.NewStyle().Foreground(tui.BannerColors[2]).Render("subreddit viewer "+Version))

	banner := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(tui.BannerColors[0]).
		Padding(1, 3).
		MarginTop(1).
		MarginBottom(1).
		Render(lipgloss.JoinVertical(lipgloss.Center, lines...))

	fmt.Println(lipgloss.NewStyle().
		Width(60).
		Align(lipgloss.Center).
		Render(banner))
}
