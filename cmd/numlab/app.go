// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/katalvlaran/numlab/report"
	"github.com/katalvlaran/numlab/session"
)

// errUsage marks a command line that could not be understood.
var errUsage = errors.New("usage")

// app carries what every command needs.
type app struct {
	out         io.Writer
	log         *log.Logger
	sess        *session.Session
	sessionPath string
	style       string
	width       int
}

type command struct {
	summary string
	run     func(a *app, args []string) error
}

var commands = map[string]command{
	"linear":    {"Jacobi solve of an augmented matrix", runLinear},
	"bisect":    {"bisection root of f(x) = 0 on [a,b]", runBisect},
	"secant":    {"secant root of f(x) = 0", runSecant},
	"iterate":   {"fixed point x = φ(x) on [a,b]", runIterate},
	"newton":    {"Newton solve of a 2×2 nonlinear system", runNewton},
	"integrate": {"definite integral with Runge control", runIntegrate},
	"plot":      {"graph of f(x) with [a,b] highlighted", runPlot},
	"genmatrix": {"random augmented matrix", runGenMatrix},
	"session":   {"show | set | clear the session file", runSession},
}

func run(args []string, out io.Writer, logger *log.Logger) error {
	fs := flag.NewFlagSet("numlab", flag.ContinueOnError)
	fs.SetOutput(logger.Writer())
	sessionPath := fs.String("session", "", "YAML session file with default parameters")
	plain := fs.Bool("plain", false, "plain text output without terminal styling")
	width := fs.Int("width", report.DefaultWidth, "word-wrap width of reports")
	fs.Usage = func() { usage(fs) }
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		usage(fs)
		return fmt.Errorf("%w: missing command", errUsage)
	}

	a := &app{
		out:         out,
		log:         logger,
		sess:        &session.Session{},
		sessionPath: *sessionPath,
		width:       *width,
	}
	if *plain {
		a.style = "notty"
	}
	if *sessionPath != "" {
		s, err := session.LoadFile(*sessionPath)
		switch {
		case err == nil:
			a.sess = s
		case errors.Is(err, os.ErrNotExist):
			// a new session file is created by "session set"
		default:
			return err
		}
	}

	name := fs.Arg(0)
	cmd, ok := commands[name]
	if !ok {
		usage(fs)
		return fmt.Errorf("%w: unknown command %q", errUsage, name)
	}

	return cmd.run(a, fs.Args()[1:])
}

func usage(fs *flag.FlagSet) {
	w := fs.Output()
	fmt.Fprintln(w, "usage: numlab [-session file.yaml] [-plain] [-width n] <command> [flags]")
	fs.PrintDefaults()
	fmt.Fprintln(w, "\ncommands:")
	names := make([]string, 0, len(commands))
	for n := range commands {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintf(w, "  %-10s %s\n", n, commands[n].summary)
	}
}

// newFlags returns a sub-command flag set writing usage to the log.
func (a *app) newFlags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.log.Writer())

	return fs
}

// print renders markdown and writes it out.
func (a *app) print(md string) error {
	out, err := report.Render(md, a.width, a.style)
	if err != nil {
		return err
	}
	_, err = io.WriteString(a.out, out)

	return err
}

// fail prints a failure report and returns err for the exit status.
func (a *app) fail(title string, iterations int, err error) error {
	if perr := a.print(report.Failure(title, iterations, err)); perr != nil {
		return perr
	}

	return err
}

func (a *app) interval(flagValue string) (float64, float64, error) {
	if strings.TrimSpace(flagValue) != "" {
		iv, err := session.ParseInterval(flagValue)
		if err != nil {
			return 0, 0, err
		}

		return iv.A, iv.B, nil
	}

	return a.sess.RequireInterval()
}

func (a *app) accuracy(flagValue float64) (float64, error) {
	if flagValue != 0 {
		return flagValue, nil
	}

	return a.sess.RequireAccuracy()
}

func (a *app) equation(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	return a.sess.RequireEquation()
}
