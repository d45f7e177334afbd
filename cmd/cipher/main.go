package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"classical-cipher-backend/crypto"

	"github.com/spf13/cobra"
)

type options struct {
	text    string
	key     string
	key2    string
	decrypt bool
	trace   bool
}

func main() {
	if err := newRootCommand(os.Stdout).Execute(); err != nil {
		// cobra already printed the error
		os.Exit(1)
	}
}

func newRootCommand(out io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "cipher",
		Short: "Classical cipher tool",
		Long: `cipher encrypts and decrypts text with classical substitution and
transposition ciphers, and can print the step-by-step trace of a transform.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.text, "text", "t", "", "text to transform")
	flags.StringVarP(&opts.key, "key", "k", "", "key: integer, keyword, column count or JSON matrix such as [[3,3],[2,5]]")
	flags.StringVar(&opts.key2, "key2", "", "second key (affine b)")
	flags.BoolVarP(&opts.decrypt, "decrypt", "d", false, "decrypt instead of encrypt")
	flags.BoolVar(&opts.trace, "trace", false, "print every step of the transform")

	root.AddCommand(newListCommand(out))
	for _, info := range crypto.Catalogue() {
		root.AddCommand(newCipherCommand(info, opts, out))
	}
	return root
}

func newListCommand(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List supported ciphers",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, info := range crypto.Catalogue() {
				fmt.Fprintf(out, "%-22s %-13s %s\n", info.Kind, info.KeyShape, info.Description)
			}
			return nil
		},
	}
}

func newCipherCommand(info crypto.Info, opts *options, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   string(info.Kind),
		Short: info.Name,
		Long:  info.Description + "\n\nKey: " + info.KeyShape + ".",
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := crypto.ModeEncrypt
			if opts.decrypt {
				mode = crypto.ModeDecrypt
			}

			key, err := crypto.ParseKey(info.Kind, opts.key, opts.key2)
			if err != nil {
				slog.Error("invalid key", "cipher", info.Kind, "kind", crypto.ErrorKind(err), "err", err)
				return fmt.Errorf("invalid key: %w", err)
			}

			result, err := crypto.Transform(info.Kind, mode, opts.text, key)
			if err != nil {
				slog.Error("transform failed", "cipher", info.Kind, "mode", mode, "kind", crypto.ErrorKind(err), "err", err)
				return fmt.Errorf("cannot %s: %w", mode, err)
			}

			if opts.trace {
				trace, err := crypto.TraceOf(info.Kind, mode, opts.text, key)
				if err != nil {
					return fmt.Errorf("cannot trace: %w", err)
				}
				printTrace(out, trace)
			}

			fmt.Fprintln(out, result)
			return nil
		},
	}
}

func printTrace(out io.Writer, trace crypto.Trace) {
	for _, step := range trace {
		fmt.Fprintf(out, "%3d  %-6s → %-6s  %s\n", step.Index+1, step.Input, step.Output, step.Derivation)
		for _, stage := range step.Stages {
			fmt.Fprintf(out, "       %-8s %s\n", stage.Name+":", stage.Derivation)
		}
	}
}
