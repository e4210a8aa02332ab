package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/futig/contract-workbench/internal/config"
	"github.com/futig/contract-workbench/internal/entity"
	"github.com/futig/contract-workbench/internal/integration/querybuilder"
	"github.com/futig/contract-workbench/internal/pkg/clipboard"
	pkglogger "github.com/futig/contract-workbench/internal/pkg/logger"
	"github.com/futig/contract-workbench/internal/usecase/preview"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/spf13/cobra"
)

type options struct {
	remote   bool
	copyJSON bool
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "query-preview [file]",
		Short: "Preview a structured contract query",
		Long: `Reads a structured query as JSON from a file or stdin and prints the
natural language description, expected results, execution strategy and the
normalized query JSON.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.remote, "remote", false, "describe the query with the query builder service (QUERY_BUILDER_* env)")
	cmd.Flags().BoolVar(&opts.copyJSON, "copy", false, "copy the normalized query JSON to the system clipboard")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "warn", "log level")

	return cmd
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	logger, err := pkglogger.New(opts.logLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx := ctxzap.ToContext(cmd.Context(), logger)

	q, err := readQuery(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	var describer preview.QueryDescriber = querybuilder.NewMockConnector(logger)
	if opts.remote {
		qbCfg, err := config.LoadQueryBuilder()
		if err != nil {
			return fmt.Errorf("load query builder config: %w", err)
		}
		describer = querybuilder.NewConnector(qbCfg, logger)
	}

	uc := preview.NewUsecase(describer, clipboard.NewSystem())

	p, err := uc.Build(ctx, q)
	if err != nil {
		return fmt.Errorf("build preview: %w", err)
	}

	printPreview(cmd.OutOrStdout(), p)

	if opts.copyJSON {
		if err := uc.CopyToClipboard(ctx, p.JSON); err != nil {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Query JSON copied to clipboard.")
	}

	return nil
}

// readQuery decodes the query from the file argument or from in. A literal
// null decodes to a nil query.
func readQuery(in io.Reader, args []string) (*entity.StructuredQuery, error) {
	var (
		data []byte
		err  error
	)

	if len(args) == 1 && args[0] != "-" {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(in)
	}
	if err != nil {
		return nil, fmt.Errorf("read query: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var q *entity.StructuredQuery
	if err := json.Unmarshal(data, &q); err != nil {
		return nil, fmt.Errorf("decode query: %w", err)
	}
	return q, nil
}

func printPreview(w io.Writer, p *entity.QueryPreview) {
	fmt.Fprintf(w, "Query\n  %s\n\n", p.NaturalLanguage)

	if len(p.Expectations) > 0 {
		fmt.Fprintln(w, "Expected results")
		for _, e := range p.Expectations {
			fmt.Fprintf(w, "  - %s\n", e)
		}
		fmt.Fprintln(w)
	}

	if p.Strategy != "" {
		fmt.Fprintf(w, "Strategy\n  %s\n\n", p.Strategy)
	}

	fmt.Fprintln(w, "JSON")
	for _, line := range strings.Split(p.JSON, "\n") {
		fmt.Fprintf(w, "  %s\n", line)
	}
}
