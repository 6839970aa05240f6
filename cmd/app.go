package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/sirupsen/logrus"

	"github.com/leonardinius/pepl/internal/capability"
	"github.com/leonardinius/pepl/internal/hostcall"
	"github.com/leonardinius/pepl/internal/peplerrors"
	"github.com/leonardinius/pepl/internal/stdlib"
)

type PeplApp struct {
	err      error
	out      io.Writer
	log      *logrus.Logger
	reporter peplerrors.ErrReporter
	host     *hostcall.MemoryHost
	invoker  *hostcall.Invoker
}

func NewPeplApp(stdout, stderr io.Writer) *PeplApp {
	log := logrus.New()
	log.SetOutput(stderr)
	log.SetLevel(logrus.WarnLevel)

	host := hostcall.NewMemoryHost()
	router := stdlib.NewRouter(
		stdlib.WithLogger(log),
		stdlib.WithCapabilities(capability.ModuleNames()...),
	)

	return &PeplApp{
		out:      stdout,
		log:      log,
		reporter: peplerrors.NewErrReporter(stderr),
		host:     host,
		invoker:  hostcall.NewInvoker(router, host, hostcall.WithLogger(log)),
	}
}

func (app *PeplApp) reportError(err error) {
	app.reporter.ReportError(err)
	app.err = err
}

func (app *PeplApp) Main(args []string) int {
	if len(args) > 0 && args[0] == "-v" {
		app.log.SetLevel(logrus.DebugLevel)
		args = args[1:]
	}

	var err error
	switch len(args) {
	case 1:
		err = app.runFile(args[0])
	case 0:
		err = app.runPrompt()
	default:
		err = fmt.Errorf("Usage: pepl [-v] [script]")
	}

	if err != nil {
		app.reportError(err)
	}

	if app.err != nil {
		return 64
	}

	return 0
}

func (app *PeplApp) runPrompt() error {
	rl, err := readline.New("> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil {
			return err
		}

		if err := app.run(context.Background(), line); err != nil {
			app.reporter.ReportError(err)
		}
	}
}

func (app *PeplApp) runFile(scriptPath string) error {
	f, err := os.Open(scriptPath)
	if err != nil {
		return err
	}
	defer f.Close()

	return app.RunScript(context.Background(), f)
}

// RunScript evaluates every line of r. A failing line is reported and the
// script continues; the app exit code records the failure.
func (app *PeplApp) RunScript(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		if err := app.run(ctx, scanner.Text()); err != nil {
			app.reportError(fmt.Errorf("[line %d] %w", lineNo, err))
		}
	}
	return scanner.Err()
}

func (app *PeplApp) run(ctx context.Context, line string) error {
	call, ok, err := ParseLine(line)
	if err != nil || !ok {
		return err
	}

	v, err := app.invoker.Invoke(ctx, call.Module, call.Function, call.Args)
	if err != nil {
		return err
	}

	fmt.Fprintln(app.out, v)
	return nil
}

// Host exposes the in-memory host serving capability calls.
func (app *PeplApp) Host() *hostcall.MemoryHost {
	return app.host
}
