package main

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"notenav/internal/app"
	"notenav/internal/common"
	"notenav/internal/config"
	"notenav/internal/ui"
	"notenav/internal/ui/views"
	"notenav/internal/vault"
	"notenav/internal/watcher"
)

// Build-time variables injected via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func init() {
	// A TUI spends most of its time waiting on terminal input and
	// fsnotify; two OS threads cover the render and dispatch work even
	// with several instances open. Explicit GOMAXPROCS wins.
	if os.Getenv("GOMAXPROCS") == "" {
		maxProcs := 2
		if n := runtime.NumCPU(); n < maxProcs {
			maxProcs = n
		}
		runtime.GOMAXPROCS(maxProcs)
	}

	// Keep RSS low; the whole item model of a large vault fits well
	// under this.
	debug.SetMemoryLimit(50 * 1024 * 1024) // 50 MiB
}

func main() {
	rootCmd := buildRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "notenav",
		Short: "A keyboard-first TUI navigator for markdown note vaults",
		Long: `notenav is a terminal navigator for folders of markdown notes.

It shows the vault's folder and tag hierarchy, a virtualized note list
with pinning, date grouping, and multi-selection, and a rendered
preview of the current note — all from a single TUI powered by
Bubbletea.`,
		RunE:          runApp,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"notenav %s\n  commit:  %s\n  built:   %s\n  go:      %s\n  os/arch: %s/%s\n",
		version, commit, date, runtime.Version(), runtime.GOOS, runtime.GOARCH,
	))

	rootCmd.AddCommand(buildVersionCmd())
	rootCmd.AddCommand(buildCompletionCmd())

	rootCmd.Flags().StringP("vault", "v", "", "Path to the note vault (defaults to config, then cwd)")

	return rootCmd
}

// buildVersionCmd creates the `notenav version` subcommand supporting --json.
func buildVersionCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(_ *cobra.Command, _ []string) error {
			info := map[string]string{
				"version": version,
				"commit":  commit,
				"date":    date,
				"go":      runtime.Version(),
				"os":      runtime.GOOS,
				"arch":    runtime.GOARCH,
			}
			if jsonOutput {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}
			fmt.Printf("notenav %s\n", version)
			fmt.Printf("  commit:  %s\n", commit)
			fmt.Printf("  built:   %s\n", date)
			fmt.Printf("  go:      %s\n", runtime.Version())
			fmt.Printf("  os/arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output version info as JSON")

	return cmd
}

// buildCompletionCmd creates the `notenav completion` subcommand.
func buildCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for notenav.

Examples:
  # Bash (add to ~/.bashrc)
  notenav completion bash > /etc/bash_completion.d/notenav

  # Zsh (add to ~/.zshrc before compinit)
  notenav completion zsh > "${fpath[1]}/_notenav"

  # Fish
  notenav completion fish > ~/.config/fish/completions/notenav.fish

  # PowerShell
  notenav completion powershell > notenav.ps1`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			default:
				return fmt.Errorf("unsupported shell: %s", args[0])
			}
		},
	}

	return cmd
}

func runApp(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	vaultPath, _ := cmd.Flags().GetString("vault")
	if vaultPath == "" {
		vaultPath = cfg.Vault
	}
	if vaultPath == "" {
		vaultPath = "."
	}

	fsSvc, err := vault.NewFSService(vaultPath)
	if err != nil {
		return fmt.Errorf("opening vault: %w", err)
	}

	// A short TTL cache deduplicates scans within one refresh cycle:
	// tree counts and list contents come from the same walk.
	svc := vault.NewCachedService(fsSvc, 2*time.Second)

	pins, err := vault.LoadPins(fsSvc.Root())
	if err != nil {
		return fmt.Errorf("loading pins: %w", err)
	}

	styles := ui.NewStyles(ui.ThemeByName(cfg.Theme))
	keys := app.NewKeyMap(config.DefaultKeyBindings())

	viewMap := map[common.PaneID]common.View{
		common.PaneTree:    views.NewTreeView(svc, keys.Nav, styles),
		common.PaneList:    views.NewListView(svc, pins, cfg, keys.Nav, styles),
		common.PanePreview: views.NewPreviewView(svc, styles),
	}

	model := app.New(svc, cfg, viewMap)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	debounce := time.Duration(cfg.DebounceMS) * time.Millisecond
	if watchCh, stop, watchErr := watcher.Watch(fsSvc.Root(), debounce); watchErr == nil {
		defer stop()
		go func() {
			for range watchCh {
				svc.Invalidate()
				p.Send(common.RefreshMsg{})
			}
		}()
	}

	_, err = p.Run()
	return err
}
