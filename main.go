// i18nstr encodes translatable strings. It can parse, translate and extract
// t!('…') templates.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/minios-linux/i18nstr/builder"
	"github.com/minios-linux/i18nstr/config"
	"github.com/minios-linux/i18nstr/extract"
	"github.com/minios-linux/i18nstr/i18n"
	"github.com/minios-linux/i18nstr/i18nstr"
	"github.com/minios-linux/i18nstr/pofile"
)

// Version information (set via -ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// ANSI colors
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[0;31m"
	colorGreen  = "\033[0;32m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
	colorGray   = "\033[0;90m"
)

// ---------------------------------------------------------------------------
// Logging
// ---------------------------------------------------------------------------

// successField marks info entries printed as [OK].
const successField = "ok"

// prefixFormatter renders entries as "[LEVEL] message" with a colored tag.
type prefixFormatter struct {
	color bool
}

func (f *prefixFormatter) Format(e *log.Entry) ([]byte, error) {
	tag, color := "[INFO]", colorBlue
	switch e.Level {
	case log.DebugLevel, log.TraceLevel:
		tag, color = "[DEBUG]", colorGray
	case log.WarnLevel:
		tag, color = "[WARN]", colorYellow
	case log.ErrorLevel, log.FatalLevel, log.PanicLevel:
		tag, color = "[ERROR]", colorRed
	default:
		if _, ok := e.Data[successField]; ok {
			tag, color = "[OK]", colorGreen
		}
	}

	var b bytes.Buffer
	if f.color {
		b.WriteString(color + tag + colorReset)
	} else {
		b.WriteString(tag)
	}
	b.WriteByte(' ')
	b.WriteString(e.Message)
	b.WriteByte('\n')
	return b.Bytes(), nil
}

func setupLogging(w io.Writer, verbose bool) {
	log.SetOutput(w)
	color := false
	if f, ok := w.(*os.File); ok {
		if info, err := f.Stat(); err == nil {
			color = info.Mode()&os.ModeCharDevice != 0
		}
	}
	log.SetFormatter(&prefixFormatter{color: color})
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

// say renders a message of the command itself in the user's language.
func say(m builder.I18n) string {
	return builder.Localize(m, i18n.Resolver())
}

func logInfo(m builder.I18n)    { log.Info(say(m)) }
func logSuccess(m builder.I18n) { log.WithField(successField, true).Info(say(m)) }
func logWarning(m builder.I18n) { log.Warn(say(m)) }

func logError(format string, args ...any) {
	log.Errorf(format, args...)
}

// ---------------------------------------------------------------------------
// Global flags
// ---------------------------------------------------------------------------

var (
	rootDir  string
	langFlag string
	catalogs []string
	verbose  bool
)

// ---------------------------------------------------------------------------
// Root command
// ---------------------------------------------------------------------------

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "i18nstr",
		Short: "Encoded translatable strings: parse, translate, extract",
		Long: `i18nstr: encoded translatable strings.

A translatable string is either a quoted literal ('text') or a template macro
whose arguments are themselves encoded strings:

  t!('File not found: {0}','report.txt')

Templates are translated by looking up their body in a catalog (PO, gettext
tree, JSON, YAML or go-i18n TOML) and substituting the arguments.

Catalogs come from .i18nstr.yaml in the project root, I18NSTR_* environment
variables and --catalog flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd.ErrOrStderr(), verbose)
			i18n.Init("")
		},
	}

	// Global persistent flags, inherited by all subcommands
	root.PersistentFlags().StringVar(&rootDir, "root", ".", "Project root directory")
	root.PersistentFlags().StringVar(&langFlag, "lang", "", "Target language (default: from config or locale)")
	root.PersistentFlags().StringArrayVar(&catalogs, "catalog", nil, "Additional catalog file or gettext directory (repeatable)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newParseCmd(),
		newTranslateCmd(),
		newTransformCmd(),
		newExtractCmd(),
		newCheckCmd(),
		newVersionCmd(),
	)

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logError("%v", err)
		os.Exit(1)
	}
}

// ---------------------------------------------------------------------------
// Input helpers
// ---------------------------------------------------------------------------

// readEncoded returns the first argument, or stdin when it is "-" or
// missing. Surrounding whitespace is trimmed.
func readEncoded(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		return strings.TrimSpace(args[0]), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// readFile returns the named file, or stdin for "-" or no argument.
func readFile(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), nil
}

func parseEncoded(text string) (i18nstr.String, error) {
	s, err := i18nstr.Parse(text)
	if err != nil {
		return i18nstr.String{}, fmt.Errorf("%s: %w", say(msgInvalidInput()), err)
	}
	return s, nil
}

// loadTranslator builds the resolver from the project file and flags.
func loadTranslator() (*config.Translator, error) {
	cfg, err := config.Load(rootDir)
	if err != nil {
		return nil, err
	}
	for _, path := range catalogs {
		if err := cfg.AddCatalog(config.Catalog{Lang: langFlag, Path: path}); err != nil {
			return nil, err
		}
	}

	tr, err := cfg.Translator(langFlag)
	if err != nil {
		return nil, err
	}
	log.Debug(say(msgTranslatingInto(tr.Lang)))
	return tr, nil
}

// ---------------------------------------------------------------------------
// version (display version information)
// ---------------------------------------------------------------------------

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display version, commit hash, and build date.`,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "i18nstr version %s\n", version)
			fmt.Fprintf(out, "  commit:    %s\n", commit)
			fmt.Fprintf(out, "  built:     %s\n", date)
		},
	}
}

// ---------------------------------------------------------------------------
// parse / format (canonical form and tree view)
// ---------------------------------------------------------------------------

func newParseCmd() *cobra.Command {
	var tree bool

	cmd := &cobra.Command{
		Use:     "parse [encoded|-]",
		Aliases: []string{"format"},
		Short:   "Validate an encoded string and print its canonical form",
		Long: `Parse one encoded string and print it back in canonical form
(no whitespace between macro arguments, minimal escaping).

With --tree the parsed structure is printed instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readEncoded(cmd, args)
			if err != nil {
				return err
			}
			s, err := parseEncoded(text)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if tree {
				printTree(out, s, 0)
				return nil
			}
			_, err = fmt.Fprintln(out, i18nstr.Format(s))
			return err
		},
	}
	cmd.Flags().BoolVar(&tree, "tree", false, "Print the parsed tree")

	return cmd
}

func printTree(w io.Writer, s i18nstr.String, depth int) {
	indent := strings.Repeat("  ", depth)
	if s.IsLiteral() {
		fmt.Fprintf(w, "%sliteral %q\n", indent, s.Text())
		return
	}
	fmt.Fprintf(w, "%stemplate %q\n", indent, s.Text())
	for _, arg := range s.Args() {
		printTree(w, arg, depth+1)
	}
}

// ---------------------------------------------------------------------------
// translate (one encoded string)
// ---------------------------------------------------------------------------

func newTranslateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "translate [encoded|-]",
		Short: "Translate one encoded string with the configured catalogs",
		Long: `Parse one encoded string and render it in the target language.

Bodies without a translation are used as they are. Malformed placeholders
are copied to the output unchanged.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readEncoded(cmd, args)
			if err != nil {
				return err
			}
			s, err := parseEncoded(text)
			if err != nil {
				return err
			}
			tr, err := loadTranslator()
			if err != nil {
				return err
			}
			defer tr.Close()

			_, err = fmt.Fprintln(cmd.OutOrStdout(), s.Translate(tr))
			return err
		},
	}
}

// ---------------------------------------------------------------------------
// transform (every macro in free text)
// ---------------------------------------------------------------------------

func newTransformCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "transform [file|-]",
		Short: "Translate every t!(...) occurrence in free text",
		Long: `Read free text and replace every encoded template in it with its
translation. Text outside templates is copied unchanged. A malformed
template fails the whole run and nothing is written.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readFile(cmd, args)
			if err != nil {
				return err
			}
			tr, err := loadTranslator()
			if err != nil {
				return err
			}
			defer tr.Close()

			out, err := i18nstr.Transform(text, tr)
			if err != nil {
				return fmt.Errorf("%s: %w", say(msgInvalidInput()), err)
			}

			if output == "" || output == "-" {
				_, err = io.WriteString(cmd.OutOrStdout(), out)
				return err
			}
			if err := os.WriteFile(output, []byte(out), 0644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			logSuccess(msgWrote(output))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

// ---------------------------------------------------------------------------
// extract (POT template from t!(...) occurrences)
// ---------------------------------------------------------------------------

func newExtractCmd() *cobra.Command {
	var (
		output  string
		project string
		exts    []string
	)

	cmd := &cobra.Command{
		Use:   "extract <path>...",
		Short: "Collect template bodies into a POT file",
		Long: `Scan files and directories for t!(...) templates and write every
template body, nested ones included, to a gettext POT file.

VCS, vendor and build directories are skipped. Malformed templates are
reported and skipped.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if project == "" {
				project = "messages"
			}
			r, err := extract.Run(args, output, project, extract.Options{Extensions: exts})
			if err != nil {
				return err
			}
			for _, w := range r.Warnings {
				logWarning(msgSkippedMalformed(w.Ref))
			}
			logInfo(msgScannedFiles(len(r.Files)))
			logSuccess(msgWroteMessages(len(r.Messages), output))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "messages.pot", "Output .pot file")
	cmd.Flags().StringVar(&project, "project", "", "Project-Id-Version for the POT header")
	cmd.Flags().StringSliceVar(&exts, "ext", nil, "Only scan files with these extensions (e.g. .txt,.md)")

	return cmd
}

// ---------------------------------------------------------------------------
// check (PO catalog review)
// ---------------------------------------------------------------------------

// errCheckFailed is returned when a catalog has placeholder problems.
var errCheckFailed = errors.New("check failed")

func newCheckCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check <po-file>",
		Short: "Report untranslated entries and placeholder mismatches",
		Long: `Review a PO catalog of template bodies.

Untranslated and fuzzy entries are listed. A translation that uses a
different set of {n} placeholders than its body is an error, because the
arguments would be lost or misplaced. With --strict untranslated entries
fail the check too.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := pofile.ParseFile(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failures := 0
			for _, p := range pofile.Check(f) {
				fmt.Fprintln(out, say(msgProblem(p)))
				if p.Kind == pofile.PlaceholderMismatch || (strict && p.Kind == pofile.Untranslated) {
					failures++
				}
			}

			stats := f.Stats()
			logInfo(msgStats(stats))
			if failures > 0 {
				return fmt.Errorf("%s: %w", say(msgProblemsFound(failures)), errCheckFailed)
			}
			logSuccess(msgCatalogOK(args[0]))
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on untranslated entries")

	return cmd
}
