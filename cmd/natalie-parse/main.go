// Package main implements the natalie-parse CLI. It reads a single source
// file and runs either the lexer or the full parser over it, rendering the
// result as a token dump, a canonical S-expression, or JSON. It never
// implements language semantics itself: every behavior it exercises lives
// in internal/lexer, internal/parser, internal/ast, and internal/creator.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/natalie-lang/natalie-parser/internal/creator"
	"github.com/natalie-lang/natalie-parser/internal/diag"
	"github.com/natalie-lang/natalie-parser/internal/lexer"
	"github.com/natalie-lang/natalie-parser/internal/parser"
	"github.com/spf13/cobra"
)

var logger *slog.Logger

func main() {
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	cmdRoot := &cobra.Command{
		Use:           "natalie-parse",
		Short:         "lexer and parser front end",
		Long:          `Lex or parse a single source file and render the result.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Root().PersistentFlags()
			logLevel, err := flags.GetString("log-level")
			if err != nil {
				return err
			}
			debug, err := flags.GetBool("debug")
			if err != nil {
				return err
			}
			quiet, err := flags.GetBool("quiet")
			if err != nil {
				return err
			}
			if debug && quiet {
				return fmt.Errorf("--debug and --quiet are mutually exclusive")
			}
			var lvl slog.Level
			switch {
			case debug:
				lvl = slog.LevelDebug
			case quiet:
				lvl = slog.LevelError
			default:
				switch strings.ToLower(logLevel) {
				case "debug":
					lvl = slog.LevelDebug
				case "info":
					lvl = slog.LevelInfo
				case "warn", "warning":
					lvl = slog.LevelWarn
				case "error":
					lvl = slog.LevelError
				default:
					return fmt.Errorf("log-level: unknown value %q", logLevel)
				}
			}
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
			return nil
		},
	}
	cmdRoot.PersistentFlags().Bool("debug", false, "enable debug logging (same as --log-level=debug)")
	cmdRoot.PersistentFlags().Bool("quiet", false, "only log errors (same as --log-level=error)")
	cmdRoot.PersistentFlags().String("log-level", "error", "logging level (debug|info|warn|error)")

	cmdRoot.AddCommand(cmdLex(), cmdParse(), cmdSexp())

	if err := cmdRoot.Execute(); err != nil {
		log.Fatal(err)
	}
}

func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func cmdLex() *cobra.Command {
	return &cobra.Command{
		Use:   "lex <file>",
		Short: "dump the token stream for a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			src, err := readSource(path)
			if err != nil {
				logger.Error("lex", "path", path, "error", err)
				return err
			}
			lx := lexer.New(src, path)
			for _, tok := range lx.Tokens() {
				if tok.Literal != "" {
					fmt.Printf("%s\t%s\t%q\n", tok.Span.String(), tok.Kind, tok.Literal)
				} else {
					fmt.Printf("%s\t%s\n", tok.Span.String(), tok.Kind)
				}
			}
			return nil
		},
	}
}

func cmdParse() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "parse a source file and report success or the first syntax error",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			src, err := readSource(path)
			if err != nil {
				logger.Error("parse", "path", path, "error", err)
				return err
			}
			_, perr := parser.New(src, parser.WithFilename(path)).Tree()
			if perr != nil {
				reportSyntaxError(path, src, perr)
				return perr
			}
			logger.Info("parse", "path", path, "result", "ok")
			return nil
		},
	}
}

func cmdSexp() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "sexp <file>",
		Short: "parse a source file and render its AST",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			src, err := readSource(path)
			if err != nil {
				logger.Error("sexp", "path", path, "error", err)
				return err
			}
			root, perr := parser.New(src, parser.WithFilename(path)).Tree()
			if perr != nil {
				reportSyntaxError(path, src, perr)
				return perr
			}
			if asJSON {
				out, err := json.MarshalIndent(creator.RenderHost(root), "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(out))
				return nil
			}
			fmt.Println(creator.Render(root))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "render the AST as JSON instead of an S-expression")
	return cmd
}

func reportSyntaxError(path, src string, err error) {
	se, ok := err.(*diag.SyntaxError)
	if !ok {
		logger.Error("parse", "path", path, "error", err)
		return
	}
	f := diag.NewFormatter()
	f.Source[path] = src
	f.Format(os.Stderr, se)
}
