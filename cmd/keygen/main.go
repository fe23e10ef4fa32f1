// Package main provides the keygen CLI tool for generating a seed phrase backup
// on an air-gapped computer.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/complex-gh/keygen"
	klog "github.com/complex-gh/keygen/internal/log"
	"github.com/mattn/go-isatty"
	mcobra "github.com/muesli/mango-cobra"
	"github.com/muesli/roff"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	maxWidth = 72

	heavyRule = "═══════════════════════════════════════════════════════════════"
	lightRule = "─────────────────────────────────────────────────────────────"
)

var (
	baseStyle  = lipgloss.NewStyle().Margin(0, 0, 1, 2) //nolint:mnd
	red        = lipgloss.Color(completeColor("#FF4444", "196", "9"))
	errorStyle = baseStyle.
			Foreground(red).
			Background(lipgloss.AdaptiveColor{Light: completeColor("#FFEBEB", "255", "7"), Dark: completeColor("#2B1A1A", "235", "8")}).
			Padding(1, 2) //nolint:mnd

	rootCmd = &cobra.Command{
		Use:   "keygen [label]",
		Short: "Generate a 24-word BIP39 seed phrase backup",
		Long: `Generate a 24-word BIP39 seed phrase and BIP32 master key from secure
randomness and write printable backup files for a metal plate.

The optional label is printed on the backup. Files are written to ./output:
  seed_phrase_printable.txt     full report for punching a metal plate
  seed_words_simple.txt         numbered word list
  seed_words_for_coldcard.txt   bare word list for hardware wallet import

Run this on an air-gapped computer and delete the files after printing.`,
		Example: `  keygen
  keygen "Cold Storage 2026"`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			label := keygen.DefaultLabel
			if len(args) > 0 {
				label = args[0]
			}

			color := isatty.IsTerminal(os.Stdout.Fd())
			if err := run(os.Stdout, keygen.DefaultOutputDir, label, color); err != nil {
				return formatError(os.Stdout, err, color)
			}
			return nil
		},
	}

	manCmd = &cobra.Command{
		Use:          "man",
		Args:         cobra.NoArgs,
		Short:        "generate man pages",
		Hidden:       true,
		SilenceUsage: true,
		RunE: func(*cobra.Command, []string) error {
			manPage, err := mcobra.NewManPage(1, rootCmd)
			if err != nil {
				//nolint: wrapcheck
				return err
			}
			manPage = manPage.WithSection("Copyright", "(C) 2025-2026 complex.\n"+
				"Released under MIT license.")
			fmt.Println(manPage.Build(roff.NewDocument()))
			return nil
		},
	}

	// completionCmd generates shell completion scripts for bash, zsh, fish, and powershell.
	completionCmd = &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `Generate shell completion script for keygen.

To load completions:

Bash:
  $ source <(keygen completion bash)

Zsh:
  $ keygen completion zsh > "${fpath[1]}/_keygen"

Fish:
  $ keygen completion fish | source

PowerShell:
  PS> keygen completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		SilenceUsage:          true,
		RunE: func(_ *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return rootCmd.GenBashCompletion(os.Stdout)
			case "zsh":
				return rootCmd.GenZshCompletion(os.Stdout)
			case "fish":
				return rootCmd.GenFishCompletion(os.Stdout, true)
			case "powershell":
				return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
			default:
				return fmt.Errorf("unknown shell: %s", args[0])
			}
		},
	}
)

func init() {
	rootCmd.AddCommand(manCmd)
	rootCmd.AddCommand(completionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// run generates a wallet, writes its artifacts into dir and prints progress
// and the closing security notes to w.
func run(w io.Writer, dir, label string, color bool) error {
	logger := klog.WithComponent(klog.NewConsoleLogger(w, !color), "keygen")

	fmt.Fprintln(w, heavyRule)
	fmt.Fprintln(w, "        Bitcoin Key Generator - Air-Gapped Edition")
	fmt.Fprintln(w, heavyRule)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generating secure BIP39 mnemonic seed phrase...")
	fmt.Fprintln(w)

	res, err := keygen.Run(dir, keygen.Options{
		Label:  label,
		Logger: &logger,
	})
	if err != nil {
		return err
	}

	printSummary(w, dir, res.Fingerprint)
	return nil
}

func printSummary(w io.Writer, dir, fingerprint string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, heavyRule)
	fmt.Fprintln(w, "                    GENERATION COMPLETE")
	fmt.Fprintln(w, heavyRule)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Files created in: %s\n", dir)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "IMPORTANT SECURITY NOTES:")
	fmt.Fprintln(w, lightRule)
	fmt.Fprintf(w, "1. Print the '%s' file for metal plate\n", keygen.PrintableFile)
	fmt.Fprintln(w, "2. Verify all words are correct before punching")
	fmt.Fprintln(w, "3. Store metal plate in secure, fireproof location")
	fmt.Fprintln(w, "4. Create backup copy in separate location")
	fmt.Fprintln(w, "5. Delete all files from this computer after printing")
	fmt.Fprintln(w, "6. Never store seed phrases on internet-connected devices")
	fmt.Fprintln(w, "7. Test import on hardware wallet with small amount first")
	fmt.Fprintln(w, lightRule)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Fingerprint: %s\n", fingerprint)
	fmt.Fprintln(w, "(Verify this matches your hardware wallet after import)")
	fmt.Fprintln(w)
}

func getWidth(maxw int) int {
	w, _, err := term.GetSize(int(os.Stdout.Fd())) //nolint: gosec
	if err != nil || w > maxw {
		return maxWidth
	}
	return w
}

func renderBlock(w io.Writer, s lipgloss.Style, width int, str string) {
	_, _ = io.WriteString(w, s.Width(width).Render(str))
	_, _ = io.WriteString(w, "\n")
}

// formatError shows err in a styled block on w when tty is set and returns a
// short error naming the failed stage, so cobra does not repeat the details on
// stderr. Without a terminal err is returned unchanged.
func formatError(w io.Writer, err error, tty bool) error {
	if !tty {
		return err
	}

	b := strings.Builder{}
	b.WriteRune('\n')
	renderBlock(&b, errorStyle, getWidth(maxWidth), err.Error())
	b.WriteRune('\n')
	_, _ = io.WriteString(w, b.String())

	var serr *keygen.StageError
	if errors.As(err, &serr) {
		return fmt.Errorf("generation failed at the %s stage", serr.Stage)
	}
	return fmt.Errorf("generation failed")
}

func completeColor(truecolor, ansi256, ansi string) string {
	//nolint: exhaustive
	switch lipgloss.ColorProfile() {
	case termenv.TrueColor:
		return truecolor
	case termenv.ANSI256:
		return ansi256
	}
	return ansi
}
