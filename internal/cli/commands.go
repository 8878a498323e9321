package cli

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	fediskema "github.com/reoring/fediskema"
	"github.com/reoring/fediskema/entity"
)

func validateCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file|-]",
		Short: "Decode a payload and report issues and warnings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, dm, opt, err := o.decode(cmd, args)
			out := cmd.OutOrStdout()
			printIssues(out, "warning", dm.Warnings)
			if err != nil {
				if iss, ok := fediskema.AsIssues(err); ok {
					printIssues(out, "error", iss)
					return fmt.Errorf("%s: %d issue(s)", k.Name(), len(iss))
				}
				return err
			}
			opt.Logger.Debug("decode.ok", "kind", string(k), "warnings", len(dm.Warnings))
			fmt.Fprintf(out, "OK %s\n", k.Name())
			return nil
		},
	}
}

func roundtripCmd(o *options) *cobra.Command {
	var indent bool
	c := &cobra.Command{
		Use:   "roundtrip [file|-]",
		Short: "Decode a payload and print its canonical re-encoding",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, dm, opt, err := o.decode(cmd, args)
			if err != nil {
				if iss, ok := fediskema.AsIssues(err); ok {
					printIssues(cmd.ErrOrStderr(), "error", iss)
				}
				return err
			}
			b, warnings, err := entity.EncodeWithWarnings(cmd.Context(), k, dm.Value, fediskema.EncodeOpt{
				Mode:     opt.Mode,
				MaxDepth: opt.MaxDepth,
				Logger:   opt.Logger,
			})
			printIssues(cmd.ErrOrStderr(), "warning", append(dm.Warnings, warnings...))
			if err != nil {
				return err
			}
			if indent {
				var buf bytes.Buffer
				if err := json.Indent(&buf, b, "", "  "); err != nil {
					return err
				}
				b = buf.Bytes()
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return err
		},
	}
	c.Flags().BoolVar(&indent, "indent", false, "pretty-print the output")
	return c
}

func schemaCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of an entity kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			k, err := o.resolveKind()
			if err != nil {
				return err
			}
			doc, err := entity.JSONSchema(k)
			if err != nil {
				return err
			}
			b, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return err
		},
	}
}

func kindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the entity kinds",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, k := range entity.Kinds() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-22s %s\n", k, k.Name())
			}
		},
	}
}
