// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package keygen

import (
	"fmt"
	"strings"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
)

const (
	// TimestampLayout is the local-time layout used in the printable report.
	TimestampLayout = "2006-01-02 15:04:05"

	// NetworkLabel is the mainnet name shown in the printable report.
	NetworkLabel = "Bitcoin Mainnet"

	gridColumns   = 4
	gridWordWidth = 12

	heavyRule = "═══════════════════════════════════════════════════════════════"
	lightRule = "─────────────────────────────────────────────────────────────"
)

// Section headers of the printable report.
const (
	HeaderTitle        = "BITCOIN SEED PHRASE - METAL PLATE BACKUP"
	HeaderWarning      = "SECURITY WARNING"
	HeaderSeedWords    = "SEED WORDS"
	HeaderChecklist    = "VERIFICATION CHECKLIST"
	HeaderSingleColumn = "SINGLE COLUMN FORMAT"
	HeaderInstructions = "HARDWARE WALLET IMPORT INSTRUCTIONS"
)

var checklist = []string{
	fmt.Sprintf("All %d words are clearly readable", WordCount),
	fmt.Sprintf("Words are in correct numerical order (1-%d)", WordCount),
	"Fingerprint matches hardware wallet device",
	"Metal plate is stored in secure location",
	"Backup copy exists in separate location",
}

// NetworkName returns the network line of the printable report for net.
// A nil net is mainnet.
func NetworkName(net *chaincfg.Params) string {
	if net == nil {
		return NetworkLabel
	}
	switch net.Name {
	case chaincfg.MainNetParams.Name:
		return NetworkLabel
	case chaincfg.TestNet3Params.Name:
		return "Bitcoin Testnet3"
	case chaincfg.RegressionNetParams.Name:
		return "Bitcoin Regtest"
	case chaincfg.SigNetParams.Name:
		return "Bitcoin Signet"
	}
	return "Bitcoin " + net.Name
}

// RenderPrintableReport renders the full backup document meant to be printed
// and used as the reference while punching a metal plate. ts is rendered in
// its own location. The network line reads NetworkLabel.
func RenderPrintableReport(words []string, fingerprint, label string, ts time.Time) string {
	return renderPrintableReport(words, fingerprint, label, NetworkLabel, ts)
}

//nolint:funlen
func renderPrintableReport(words []string, fingerprint, label, network string, ts time.Time) string {
	var b strings.Builder

	// Header
	b.WriteString(heavyRule + "\n")
	fmt.Fprintf(&b, "           %s\n", HeaderTitle)
	b.WriteString(heavyRule + "\n\n")

	fmt.Fprintf(&b, "Label: %s\n", label)
	fmt.Fprintf(&b, "Generated: %s\n", ts.Format(TimestampLayout))
	fmt.Fprintf(&b, "Fingerprint: %s\n", fingerprint)
	fmt.Fprintf(&b, "Word Count: %d words (%d bits entropy)\n", WordCount, EntropyBits)
	fmt.Fprintf(&b, "Network: %s\n\n", network)

	fmt.Fprintf(&b, "⚠️  %s ⚠️\n", HeaderWarning)
	b.WriteString(lightRule + "\n")
	b.WriteString("This seed phrase provides full access to your Bitcoin wallet.\n")
	b.WriteString("Store this metal plate in a secure, fireproof location.\n")
	b.WriteString("Never share this seed phrase with anyone.\n")
	b.WriteString(lightRule + "\n\n")

	fmt.Fprintf(&b, "%s (Punch these in order):\n", HeaderSeedWords)
	b.WriteString(heavyRule + "\n\n")
	writeGrid(&b, words)

	b.WriteString("\n")
	b.WriteString(heavyRule + "\n")
	fmt.Fprintf(&b, "%s:\n", HeaderChecklist)
	b.WriteString(lightRule + "\n")
	for _, item := range checklist {
		fmt.Fprintf(&b, "□ %s\n", item)
	}
	b.WriteString(heavyRule + "\n\n")

	fmt.Fprintf(&b, "\n\n%s (Alternative punching reference):\n", HeaderSingleColumn)
	b.WriteString(heavyRule + "\n")
	b.WriteString(RenderSimpleList(words))
	b.WriteString(heavyRule + "\n\n")

	fmt.Fprintf(&b, "%s:\n", HeaderInstructions)
	b.WriteString(lightRule + "\n")
	b.WriteString("This seed phrase is compatible with all BIP39 hardware wallets\n")
	b.WriteString("(Coldcard, Trezor, Ledger, BitBox, etc.).\n\n")
	b.WriteString("Example - Coldcard:\n")
	b.WriteString("1. Power on your Coldcard device\n")
	b.WriteString("2. Navigate to: Advanced > Danger Zone > Seed Functions > Import Existing\n")
	fmt.Fprintf(&b, "3. Select '%d words' when prompted\n", WordCount)
	fmt.Fprintf(&b, "4. Enter the %d words in order (1-%d)\n", WordCount, WordCount)
	fmt.Fprintf(&b, "5. Verify the fingerprint matches: %s\n", fingerprint)
	b.WriteString("6. Set a secure PIN code\n")
	b.WriteString("7. Test with a small transaction before storing large amounts\n\n")
	b.WriteString("For other hardware wallets, follow their specific recovery/import process.\n")
	b.WriteString(lightRule + "\n\n")

	// Footer
	b.WriteString("Generated by keygen (air-gapped system)\n")
	b.WriteString(heavyRule + "\n")

	return b.String()
}

// writeGrid writes words in rows of gridColumns. Every row, including a short
// last one, ends with a newline.
func writeGrid(b *strings.Builder, words []string) {
	for i, word := range words {
		n := i + 1
		fmt.Fprintf(b, "%2d. %-*s", n, gridWordWidth, word)
		if n%gridColumns == 0 {
			b.WriteString("\n")
		} else {
			b.WriteString("  ")
		}
	}
	if len(words)%gridColumns != 0 {
		b.WriteString("\n")
	}
}

// RenderSimpleList renders one "NN. word" line per word and nothing else.
func RenderSimpleList(words []string) string {
	var b strings.Builder
	for i, word := range words {
		fmt.Fprintf(&b, "%2d. %s\n", i+1, word)
	}
	return b.String()
}

// RenderImportList renders the bare words joined by newlines, the format
// hardware wallet recovery tools accept as a word list.
func RenderImportList(words []string) string {
	return strings.Join(words, "\n")
}
