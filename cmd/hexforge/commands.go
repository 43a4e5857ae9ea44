package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/draal/hexforge/internal/buffer"
	"github.com/draal/hexforge/internal/checksum"
	"github.com/draal/hexforge/internal/config"
	"github.com/draal/hexforge/internal/export"
	"github.com/draal/hexforge/internal/logging"
	"github.com/draal/hexforge/internal/search"
	"github.com/draal/hexforge/internal/session"
	"github.com/draal/hexforge/internal/sigscan"
	"github.com/draal/hexforge/internal/ui"
)

// Command flags
var (
	outputPath string
	forceLoad  bool
	minStrLen  int
	scanStride int
	hexQuery   bool
	dryRun     bool
	assumeYes  bool
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&forceLoad, "force", false, "Load files over the size threshold without asking")

	dumpCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the dump to a file instead of stdout")
	analyzeCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the report to a file instead of stdout")
	analyzeCmd.Flags().IntVar(&scanStride, "stride", 0, "Signature scan stride in bytes (default from config)")
	stringsCmd.Flags().IntVar(&minStrLen, "min-len", 0, "Minimum string length (default from config)")
	searchCmd.Flags().BoolVar(&hexQuery, "hex", false, "Require the query to be strict hex bytes")
	patchCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would change without writing")
	patchCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the patch-write confirmation")

	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(stringsCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(patchCmd)
	rootCmd.AddCommand(recentCmd)
}

// prefs loads user preferences, falling back to defaults on error so a
// corrupt config file degrades rather than blocking every command.
func prefs() *config.Preferences {
	reg, err := config.LoadRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		return config.NewRegistry().Preferences
	}
	return reg.Preferences
}

// loadFile reads path into a buffer, asking before oversized loads
// unless --force was given.
func loadFile(path string) (*buffer.Buffer, error) {
	p := prefs()
	opts := buffer.LoadOptions{
		SizeThreshold: p.LargeLoadThresholdBytes(),
		HistoryLimit:  p.HistoryDepth,
		Confirm: func(path string, size int64) bool {
			if forceLoad {
				return true
			}
			return ui.ConfirmLargeLoad(path, size)
		},
	}
	buf, err := buffer.Load(path, opts)
	if err != nil {
		return nil, err
	}
	logging.LogFileOp(path, "loaded", buf.Len())
	if err := config.AddRecent(path); err != nil {
		// Recent-list failures never block the actual work
		fmt.Fprintf(os.Stderr, "Warning: recent list not updated: %v\n", err)
	}
	return buf, nil
}

// openOutput returns the report destination: a created file for -o,
// stdout otherwise.
func openOutput() (*os.File, func(), error) {
	if outputPath == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot create %s: %w", outputPath, err)
	}
	return f, func() { f.Close() }, nil
}

var infoCmd = &cobra.Command{
	Use:   "info FILE",
	Short: "Show basic information about a binary image",
	Long: `Show the size, detected file type and checksum summary of an image.

Type detection matches known magic signatures (Android boot images,
ELF, ZIP/APK, sparse images, PNG, JPEG, gzip, tar) at their expected
offsets, then falls back to a text/binary heuristic.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	buf, err := loadFile(args[0])
	if err != nil {
		return err
	}

	report := checksum.Compute(buf.Bytes())
	fmt.Printf("File:   %s\n", buf.Path())
	fmt.Printf("Size:   %d bytes\n", buf.Len())
	fmt.Printf("Type:   %s\n", sigscan.DetectTypeName(buf.Bytes()))
	fmt.Printf("CRC32:  %s\n", report.CRC32Hex())
	fmt.Printf("SHA256: %s\n", report.SHA256Hex())

	if buf.Len() > 0 {
		ui.NewPrinter(nil).PrintHexPreview(previewHex(buf.Bytes()))
	}
	return nil
}

// previewHex formats the first lines of a buffer as an offset-prefixed
// hex grid for the info preview box.
func previewHex(data []byte) string {
	const maxLines = 4
	var b strings.Builder
	for line := 0; line < maxLines && line*buffer.LineWidth < len(data); line++ {
		start := line * buffer.LineWidth
		end := start + buffer.LineWidth
		if end > len(data) {
			end = len(data)
		}
		if line > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%08X ", start)
		for _, v := range data[start:end] {
			fmt.Fprintf(&b, " %02X", v)
		}
	}
	return b.String()
}

var dumpCmd = &cobra.Command{
	Use:   "dump FILE",
	Short: "Export a hex dump of an image",
	Long: `Export the classic octet-grid hex dump: 16 bytes per line with an
8-digit offset column and an ASCII rendering.`,
	Example: `  # Dump to stdout
  hexforge dump boot.img

  # Dump to a file
  hexforge dump boot.img -o boot.hex`,
	Args: cobra.ExactArgs(1),
	RunE: runDump,
}

func runDump(cmd *cobra.Command, args []string) error {
	buf, err := loadFile(args[0])
	if err != nil {
		return err
	}
	w, done, err := openOutput()
	if err != nil {
		return err
	}
	defer done()

	if err := export.WriteHexDump(w, buf.Bytes(), export.Meta{Path: buf.Path()}); err != nil {
		return fmt.Errorf("dump failed: %w", err)
	}
	return nil
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze FILE",
	Short: "Run the full analysis passes over an image",
	Long: `Run every whole-buffer analysis pass: file-type detection, CRC32 and
cryptographic checksums, the byte-frequency histogram and the stride
signature scan, then render the combined report.

The signature scan checks the magic table only at stride-aligned
offsets (512 bytes by default). Lower --stride to catch unaligned
structures at the cost of a slower pass.`,
	Example: `  # Analyze with defaults
  hexforge analyze boot.img

  # Dense signature scan, report to file
  hexforge analyze boot.img --stride 16 -o boot-report.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	p := prefs()
	stride := scanStride
	if stride <= 0 {
		stride = p.SignatureStride
	}

	buf, err := loadFile(args[0])
	if err != nil {
		return err
	}

	printer := ui.NewPrinter(nil)
	// Progress UI only when the report itself goes elsewhere, so stdout
	// stays clean for redirection.
	showUI := outputPath != ""
	if showUI {
		printer.PrintHeader("IMAGE ANALYSIS", "hexforge analyze "+args[0], map[string]string{
			"File":   buf.Path(),
			"Size":   fmt.Sprintf("%d bytes", buf.Len()),
			"Stride": fmt.Sprintf("%d bytes", stride),
		})
		printer.Newline()
	}

	progress := ui.NewProgress("Analyzing image...", 3)
	progress.SetStepNames([]string{
		"Computing checksums",
		"Scanning signatures",
		"Detecting file type",
	})

	progress.StartStep(1, "")
	report := checksum.Compute(buf.Bytes())
	progress.CompleteStep(1, fmt.Sprintf("%d bytes hashed", buf.Len()))

	progress.StartStep(2, "")
	if _, err := sigscan.Signatures(); err != nil {
		progress.FailStep(2, "signature database unreadable")
		if showUI {
			printer.Println(progress.Render())
		}
		return err
	}
	tree := sigscan.Scan(buf.Bytes(), sigscan.ScanOptions{Stride: stride})
	progress.CompleteStep(2, fmt.Sprintf("%d structure(s)", len(tree.Children)))

	progress.StartStep(3, "")
	typeLabel := sigscan.DetectTypeName(buf.Bytes())
	progress.CompleteStep(3, typeLabel)

	if showUI {
		// Plain printer fallback when the renderer cannot start
		if err := ui.RenderOnce(progress.Render()); err != nil {
			printer.Println(progress.Render())
		}
	}

	w, done, err := openOutput()
	if err != nil {
		return err
	}
	defer done()

	if err := export.WriteAnalysis(w, report, typeLabel, export.Meta{Path: buf.Path()}); err != nil {
		return fmt.Errorf("analysis export failed: %w", err)
	}

	fmt.Fprintf(w, "\nStructures (stride %d)\n", stride)
	if len(tree.Children) == 0 {
		fmt.Fprintln(w, "  none found")
	}
	for _, node := range tree.Children {
		fmt.Fprintf(w, "  %s  %s\n", node.Location(), node.Name)
	}
	return nil
}

var stringsCmd = &cobra.Command{
	Use:   "strings FILE",
	Short: "Extract printable strings from an image",
	Args:  cobra.ExactArgs(1),
	RunE:  runStrings,
}

func runStrings(cmd *cobra.Command, args []string) error {
	minLen := minStrLen
	if minLen <= 0 {
		minLen = prefs().MinStringLength
	}

	buf, err := loadFile(args[0])
	if err != nil {
		return err
	}

	matches, truncated := sigscan.ExtractStrings(buf.Bytes(), minLen)
	for _, m := range matches {
		fmt.Printf("%08X  %s\n", m.Offset, m.Text)
	}
	if truncated {
		fmt.Fprintf(os.Stderr, "Result cap reached (%d strings); the file contains more.\n", sigscan.MaxStringMatches)
	}
	return nil
}

var searchCmd = &cobra.Command{
	Use:   "search FILE QUERY",
	Short: "Search an image for a byte or text pattern",
	Long: `Search the image for an exact pattern.

The query is parsed as hex byte tokens when possible ("FF 00 AB" or
"FF00AB"); anything that is not valid hex is matched as literal text.
Use --hex to reject non-hex queries instead of falling back to text.`,
	Example: `  # Find a magic sequence
  hexforge search boot.img "50 4B 03 04"

  # Find a kernel command line fragment
  hexforge search boot.img "console=ttyMSM0"`,
	Args: cobra.ExactArgs(2),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	buf, err := loadFile(args[0])
	if err != nil {
		return err
	}

	var query search.Query
	if hexQuery {
		pattern, err := search.ParseHex(args[1])
		if err != nil {
			return err
		}
		query = search.Query{Raw: args[1], Bytes: pattern, Kind: search.KindHex}
	} else {
		query = search.ParseQuery(args[1])
	}

	logging.LogRawBytes("search pattern", query.Bytes)
	set := search.Find(buf.Bytes(), query)
	logging.LogSearch(query.Raw, set.Count(), set.Truncated)

	fmt.Printf("%d match(es) for %s query %q\n", set.Count(), query.Kind, args[1])
	for _, r := range set.Results {
		fmt.Printf("  %08X  %d bytes  %s\n", r.Offset, r.Length, r.Preview)
	}
	if set.Truncated {
		fmt.Fprintf(os.Stderr, "Result cap reached (%d matches); the file contains more.\n", search.MaxResults)
	}
	return nil
}

var patchCmd = &cobra.Command{
	Use:   "patch FILE FIND REPLACE",
	Short: "Replace every occurrence of a byte pattern",
	Long: `Replace every match of FIND with REPLACE and write the image back.

FIND follows the search query rules (hex tokens or literal text).
REPLACE must be strict hex of exactly the same byte length as each
match; mismatched or malformed replacements are rejected before any
byte changes. Replacements apply in descending offset order.

Writing the patched image back is destructive, so it asks for typed
confirmation unless --yes is given.`,
	Example: `  # Neutralize a magic, reviewing first
  hexforge patch boot.img "50 4B 03 04" "00 00 00 00" --dry-run

  # Apply for real, skipping the prompt
  hexforge patch boot.img "50 4B 03 04" "00 00 00 00" --yes`,
	Args: cobra.ExactArgs(3),
	RunE: runPatch,
}

func runPatch(cmd *cobra.Command, args []string) error {
	path, find, replace := args[0], args[1], args[2]

	repl, err := search.ParseHex(replace)
	if err != nil {
		return fmt.Errorf("replacement must be strict hex: %w", err)
	}

	p := prefs()
	sess := session.New(session.Options{
		Logger: session.ZapLogger{},
		Prefs:  p,
		Confirm: session.ConfirmFunc(func(prompt string) bool {
			return forceLoad || ui.ConfirmYesNo(prompt)
		}),
		TrackRecent: true,
	})
	if err := sess.Open(path); err != nil {
		return err
	}

	set := sess.Search(find)
	if set.Count() == 0 {
		fmt.Printf("No matches for %q; nothing to do.\n", find)
		return nil
	}

	if dryRun {
		fmt.Printf("%d match(es) would be replaced:\n", set.Count())
		for _, r := range set.Results {
			if r.Length != len(repl) {
				fmt.Printf("  %08X  skipped (length %d != %d)\n", r.Offset, r.Length, len(repl))
				continue
			}
			fmt.Printf("  %08X  %s -> %s\n", r.Offset, r.Preview, replace)
		}
		return nil
	}

	printer := ui.NewPrinter(nil)
	stats, err := sess.ReplaceAll(repl)
	if err != nil {
		return err
	}
	if stats.Replaced == 0 {
		ui.PrintStyledLine(ui.RenderWarning("No matches replaced", map[string]string{
			"Skipped": fmt.Sprintf("%d length-mismatched match(es)", stats.Skipped),
			"File":    "unchanged",
		}))
		return nil
	}

	if !assumeYes && !ui.PatchWriteConfirmation(path) {
		fmt.Println("Patch not written; file unchanged on disk.")
		return nil
	}
	if err := sess.Save(); err != nil {
		printer.PrintError("Patch write failed", err, []string{
			"Check that the file is writable",
			"Check free space on the target filesystem",
		})
		return err
	}

	printer.PrintSuccess("Patch applied", map[string]string{
		"File":     path,
		"Replaced": fmt.Sprintf("%d match(es)", stats.Replaced),
		"Skipped":  fmt.Sprintf("%d", stats.Skipped),
	})
	return nil
}

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently opened files",
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := config.LoadRecent()
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			fmt.Println("No recent files.")
			return nil
		}
		for i, p := range paths {
			fmt.Printf("%2d. %s\n", i+1, p)
		}
		return nil
	},
}
