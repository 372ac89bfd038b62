package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"

	"github.com/emekoi/zig-docgen/lexer"
	"github.com/emekoi/zig-docgen/tokfmt"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "zig-docgen",
		Short:         "Documentation tooling for Zig source files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newTokensCmd(), newHashCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newTokensCmd() *cobra.Command {
	var (
		format string
		kinds  []string
		watch  bool
	)

	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Tokenize a Zig source file and print its token stream",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := parseKindFilter(kinds)
			if err != nil {
				return err
			}

			file := ""
			if len(args) == 1 {
				file = args[0]
			}

			if watch {
				if file == "" || file == "-" {
					return fmt.Errorf("--watch requires a file argument")
				}
				return watchTokens(cmd.OutOrStdout(), file, format, filter)
			}

			source, src, err := readInput(file)
			if err != nil {
				return err
			}
			return emitTokens(cmd.OutOrStdout(), source, src, format, filter)
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format: text, json, or cbor")
	cmd.Flags().StringSliceVar(&kinds, "kind", nil, "Only emit tokens of these kinds (repeatable)")
	cmd.Flags().BoolVar(&watch, "watch", false, "Re-tokenize whenever the file changes")
	return cmd
}

func newHashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash [file]",
		Short: "Print the content hash of a file's token stream",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := ""
			if len(args) == 1 {
				file = args[0]
			}
			source, src, err := readInput(file)
			if err != nil {
				return err
			}

			tok := lexer.New(src)
			if err := tok.Process(); err != nil {
				return err
			}
			defer tok.Close()

			digest, err := tokfmt.NewStream(source, tok.Tokens(), tok.Errors()).Hash()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%x  %s\n", digest, source)
			return nil
		},
	}
}

// parseKindFilter resolves kind names to a membership set. An unknown name
// fails with a fuzzy-matched suggestion from the full kind table.
func parseKindFilter(names []string) (map[lexer.TokenKind]bool, error) {
	if len(names) == 0 {
		return nil, nil
	}
	filter := make(map[lexer.TokenKind]bool, len(names))
	for _, name := range names {
		kind, ok := lexer.ParseKind(name)
		if !ok {
			if suggestion := closestKind(name); suggestion != "" {
				return nil, fmt.Errorf("unknown token kind %q (did you mean %q?)", name, suggestion)
			}
			return nil, fmt.Errorf("unknown token kind %q", name)
		}
		filter[kind] = true
	}
	return filter, nil
}

// closestKind ranks the kind table against the given name and returns the
// best match, or "" when nothing is close enough.
func closestKind(name string) string {
	ranks := fuzzy.RankFindFold(name, lexer.KindNames())
	if len(ranks) > 0 {
		return ranks[0].Target
	}
	return ""
}

// emitTokens tokenizes src and writes the stream in the requested format.
// Recovered errors go to stderr in text mode and into the stream otherwise;
// either way they fail the command after the output is written.
func emitTokens(w io.Writer, source string, src []byte, format string, filter map[lexer.TokenKind]bool) error {
	tok := lexer.New(src)
	if err := tok.Process(); err != nil {
		return err
	}
	defer tok.Close()

	tokens := tok.Tokens()
	if filter != nil {
		kept := tokens[:0:0]
		for _, tk := range tokens {
			if filter[tk.Kind] {
				kept = append(kept, tk)
			}
		}
		tokens = kept
	}
	errs := tok.Errors()

	switch format {
	case "text":
		for _, tk := range tokens {
			fmt.Fprintln(w, tk.String())
		}
		for _, tk := range errs {
			fmt.Fprintf(os.Stderr, "%s: %d:%d: %s\n", source, tk.Span.StartLine, tk.Span.StartColumn, tk.Err)
		}
	case "json":
		data, err := json.MarshalIndent(tokfmt.NewStream(source, tokens, errs), "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(data))
	case "cbor":
		data, err := tokfmt.NewStream(source, tokens, errs).MarshalBinary()
		if err != nil {
			return err
		}
		if _, err := w.Write(data); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q (expected text, json, or cbor)", format)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s: %d lexical error(s)", source, len(errs))
	}
	return nil
}

// watchTokens re-tokenizes the file on every write until interrupted.
// Editors that replace files via rename drop the watch on the old inode, so
// the path is re-added after such events.
func watchTokens(w io.Writer, file string, format string, filter map[lexer.TokenKind]bool) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(file); err != nil {
		return fmt.Errorf("failed to watch %s: %w", file, err)
	}

	run := func() {
		src, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		if err := emitTokens(w, file, src, format, filter); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
	run()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				run()
			}
			if event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
				_ = watcher.Add(file)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watch error: %v\n", err)
		}
	}
}

// readInput handles the 3 modes of input:
// 1. Explicit stdin with "-"
// 2. Piped input (auto-detected when no file is given)
// 3. File input
// It returns a display label alongside the source bytes.
func readInput(file string) (string, []byte, error) {
	if file == "-" || (file == "" && hasPipedInput()) {
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", nil, fmt.Errorf("error reading stdin: %w", err)
		}
		return "<stdin>", src, nil
	}
	if file == "" {
		return "", nil, fmt.Errorf("no input: pass a file argument or pipe source on stdin")
	}
	if !strings.HasSuffix(file, ".zig") {
		fmt.Fprintf(os.Stderr, "warning: %s does not look like a Zig source file\n", file)
	}

	src, err := os.ReadFile(file)
	if err != nil {
		return "", nil, fmt.Errorf("error opening file %s: %w", file, err)
	}
	return file, src, nil
}

// hasPipedInput detects if there's data piped to stdin.
func hasPipedInput() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}

	// Not a character device means stdin is a pipe or redirect.
	return (stat.Mode() & os.ModeCharDevice) == 0
}
