package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"stopwords/internal/core/sources"
	"stopwords/internal/core/stopwords"
	perr "stopwords/internal/platform/errors"
	"stopwords/internal/platform/logger"
	pnet "stopwords/internal/platform/net"
	pstrings "stopwords/internal/platform/strings"
	apisvc "stopwords/internal/services/api/stopwords/service"

	"github.com/spf13/cobra"
)

// errReported marks an error already written as a --json envelope
var errReported = errors.New("reported")

type app struct {
	out    io.Writer
	errOut io.Writer
	log    logger.Logger
	open   func() (*sources.Registry, error)

	jsonOut bool
	svc     *apisvc.Service
}

// run executes the CLI and returns the process exit status. The root logger
// is pointed at stderr first; stdout only carries results
func run(args []string, stdout, stderr io.Writer) int {
	opt := logger.FromEnv()
	opt.Writer = stderr
	logger.Init(opt)
	return runWith(args, stdout, stderr, sources.Default)
}

func runWith(args []string, stdout, stderr io.Writer, open func() (*sources.Registry, error)) int {
	opt := logger.FromEnv()
	opt.Writer = stderr
	opt.Component = "cli"

	a := &app{out: stdout, errOut: stderr, log: logger.New(opt), open: open}
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(context.Background()); err != nil {
		if !errors.Is(err, errReported) {
			a.printError(err)
		}
		return 1
	}
	return 0
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "stopwords",
		Short:         "Resolve stopword lists by language and source",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&a.jsonOut, "json", false, "Print the response envelope as JSON")

	root.AddCommand(
		a.getCommand(),
		a.sourcesCommand(),
		a.languagesCommand(),
		a.codeCommand(),
		a.versionCommand(),
	)
	return root
}

// service opens the registry on first use. Notices go to stderr unless the
// JSON envelope already carries them
func (a *app) service() (*apisvc.Service, error) {
	if a.svc != nil {
		return a.svc, nil
	}
	reg, err := a.open()
	if err != nil {
		return nil, err
	}
	sink := stopwords.SinkFunc(func(_ context.Context, n stopwords.Notice) {
		if !a.jsonOut {
			_, _ = fmt.Fprintf(a.errOut, "warning: %s\n", n.Message)
		}
	})
	a.svc = apisvc.New(stopwords.New(reg, stopwords.WithSink(sink)))
	a.log.Debug().Strs("sources", reg.Names()).Msg("registry opened")
	return a.svc, nil
}

// emit prints data as a success envelope in --json mode, or calls text
func (a *app) emit(data any, text func(w io.Writer) error) error {
	if !a.jsonOut {
		return text(a.out)
	}
	_, env := pnet.OK(data, "")
	return a.writeJSON(env)
}

// fail turns err into an error envelope in --json mode
func (a *app) fail(err error) error {
	if err == nil || !a.jsonOut {
		return err
	}
	_, env := pnet.Error(err, "")
	if werr := a.writeJSON(env); werr != nil {
		return werr
	}
	return errReported
}

func (a *app) writeJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printError writes the first line of the message after the error kind and
// indents the rest (candidate names, hints)
func (a *app) printError(err error) {
	prefix, msg := "error: ", err.Error()
	if e, ok := perr.As(err); ok {
		prefix, msg = fmt.Sprintf("error (%s): ", e.Code()), e.Message()
	}
	head, rest, _ := strings.Cut(msg, "\n")
	_, _ = fmt.Fprintf(a.errOut, "%s%s\n", prefix, head)
	if rest != "" {
		_, _ = fmt.Fprintln(a.errOut, pstrings.Indent(rest, "  "))
	}
}
