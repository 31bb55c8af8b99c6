// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/katalvlaran/numlab/chart"
	"github.com/katalvlaran/numlab/linsys"
	"github.com/katalvlaran/numlab/matrix"
	"github.com/katalvlaran/numlab/nlsys"
	"github.com/katalvlaran/numlab/quad"
	"github.com/katalvlaran/numlab/report"
	"github.com/katalvlaran/numlab/roots"
	"github.com/katalvlaran/numlab/session"
)

func runLinear(a *app, args []string) error {
	fs := a.newFlags("linear")
	text := fs.String("matrix", "", `augmented matrix rows, e.g. "4 1 1 9\n1 3 1 7\n1 1 5 9"`)
	file := fs.String("file", "", "read the augmented matrix from a file")
	acc := fs.Float64("accuracy", 0, "stop when max |Δx| < accuracy")
	maxIter := fs.Int("max-iter", linsys.DefaultMaxIterations, "iteration cap")
	chartPath := fs.String("chart", "", "write an HTML convergence chart here")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		m   *matrix.Dense
		err error
	)
	switch {
	case *file != "":
		raw, rerr := os.ReadFile(*file)
		if rerr != nil {
			return rerr
		}
		m, err = matrix.ParseAugmented(string(raw))
	case *text != "":
		m, err = matrix.ParseAugmented(strings.ReplaceAll(*text, `\n`, "\n"))
	default:
		m, err = a.sess.RequireMatrix()
	}
	if err != nil {
		return err
	}
	accuracy, err := a.accuracy(*acc)
	if err != nil {
		return err
	}
	if *maxIter < 1 {
		return fmt.Errorf("%w: -max-iter must be >= 1", errUsage)
	}

	res, err := linsys.Solve(m, accuracy, linsys.WithMaxIterations(*maxIter))
	switch {
	case errors.Is(err, linsys.ErrNotDiagonallyDominant):
		a.log.Printf("warning: %v: convergence is not guaranteed", err)
		return a.fail("Linear system (Jacobi)", 0, err)
	case errors.Is(err, linsys.ErrNotConverged):
		if perr := a.print(report.Linear(res)); perr != nil {
			return perr
		}
		return err
	case err != nil:
		return err
	}

	if *chartPath != "" {
		if err = writeFile(*chartPath, func(f *os.File) error {
			return chart.Convergence(f, "Jacobi convergence", res.Errors, res.Solution)
		}); err != nil {
			return err
		}
	}

	return a.print(report.Linear(res))
}

// rootFlags are shared by bisect, secant and iterate.
type rootFlags struct {
	eq        *string
	interval  *string
	acc       *float64
	maxIter   *int
	plotPath  *string
	signCheck *bool
	start     *string
}

func (a *app) parseRootFlags(name, eqHelp string, args []string) (*rootFlags, error) {
	fs := a.newFlags(name)
	rf := &rootFlags{
		eq:        fs.String("eq", "", eqHelp),
		interval:  fs.String("interval", "", `interval "a b"`),
		acc:       fs.Float64("accuracy", 0, "accuracy"),
		maxIter:   fs.Int("max-iter", roots.DefaultMaxIterations, "iteration cap (secant, iterate)"),
		plotPath:  fs.String("plot", "", "write a graph of the function here (PNG)"),
		signCheck: fs.Bool("sign-check", roots.DefaultSignCheck, "bisect: require f(a)·f(b) <= 0"),
		start:     fs.String("x0", "", `secant: starting points "x0 x1" (default: the interval)`),
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return rf, nil
}

func (a *app) rootInputs(rf *rootFlags) (eq string, lo, hi, acc float64, err error) {
	if *rf.maxIter < 1 {
		return "", 0, 0, 0, fmt.Errorf("%w: -max-iter must be >= 1", errUsage)
	}
	if eq, err = a.equation(*rf.eq); err != nil {
		return "", 0, 0, 0, err
	}
	if lo, hi, err = a.interval(*rf.interval); err != nil {
		return "", 0, 0, 0, err
	}
	if acc, err = a.accuracy(*rf.acc); err != nil {
		return "", 0, 0, 0, err
	}

	return eq, lo, hi, acc, nil
}

func (a *app) rootOutcome(title, eq string, lo, hi float64, res roots.Result, err error, plotPath string) error {
	if res.Warning != nil {
		a.log.Printf("warning: %v", res.Warning)
	}
	if err != nil {
		return a.fail(title, res.Iterations, err)
	}
	if plotPath != "" {
		if perr := writeFile(plotPath, func(f *os.File) error {
			return chart.FunctionExpr(f, eq, lo, hi, chart.WithMarker(res.Root, res.FX, "root"))
		}); perr != nil {
			return perr
		}
	}

	return a.print(report.Root(title, eq, lo, hi, res))
}

func runBisect(a *app, args []string) error {
	rf, err := a.parseRootFlags("bisect", `equation f(x), e.g. "x^2 - 2" or "x^2 = 2"`, args)
	if err != nil {
		return err
	}
	eq, lo, hi, acc, err := a.rootInputs(rf)
	if err != nil {
		return err
	}
	var opts []roots.Option
	if *rf.signCheck {
		opts = append(opts, roots.WithSignCheck(true))
	}
	res, err := roots.Bisection(eq, lo, hi, acc, opts...)

	return a.rootOutcome("bisection", eq, lo, hi, res, err, *rf.plotPath)
}

func runSecant(a *app, args []string) error {
	rf, err := a.parseRootFlags("secant", "equation f(x)", args)
	if err != nil {
		return err
	}
	eq, lo, hi, acc, err := a.rootInputs(rf)
	if err != nil {
		return err
	}
	x0, x1 := lo, hi
	if *rf.start != "" {
		if x0, x1, err = session.ParsePair(*rf.start); err != nil {
			return err
		}
	}
	res, err := roots.Secant(eq, x0, x1, acc, roots.WithMaxIterations(*rf.maxIter))

	return a.rootOutcome("secant", eq, lo, hi, res, err, *rf.plotPath)
}

func runIterate(a *app, args []string) error {
	rf, err := a.parseRootFlags("iterate", `iteration function φ(x), e.g. "cos(x)"`, args)
	if err != nil {
		return err
	}
	eq, lo, hi, acc, err := a.rootInputs(rf)
	if err != nil {
		return err
	}
	res, err := roots.FixedPoint(eq, lo, hi, acc, roots.WithMaxIterations(*rf.maxIter))

	return a.rootOutcome("fixed point", eq, lo, hi, res, err, *rf.plotPath)
}

func runNewton(a *app, args []string) error {
	fs := a.newFlags("newton")
	sysFlag := fs.String("system", "", `two equations, e.g. "x^2 + y^2 = 4; x = y"`)
	start := fs.String("start", "", `starting point "x0 y0" (default: the interval)`)
	tol := fs.Float64("tol", 0, "stop when the Newton step is shorter than tol (default: accuracy)")
	maxIter := fs.Int("max-iter", nlsys.DefaultMaxIterations, "iteration cap")
	step := fs.Float64("h", nlsys.DefaultStep, "finite-difference step")
	if err := fs.Parse(args); err != nil {
		return err
	}

	system := *sysFlag
	var x0, y0 float64
	var err error
	if *start != "" {
		x0, y0, err = session.ParsePair(*start)
	} else {
		x0, y0, err = a.sess.RequireInterval()
	}
	if err != nil {
		return err
	}
	if *maxIter < 1 || !(*step > 0) || math.IsInf(*step, 0) {
		return fmt.Errorf("%w: -max-iter must be >= 1 and -h > 0", errUsage)
	}
	if system == "" {
		if system, err = a.sess.RequireSystem(); err != nil {
			return err
		}
	}
	t, err := a.accuracy(*tol)
	if err != nil {
		return err
	}

	res, err := nlsys.Newton(system, x0, y0, t, nlsys.WithMaxIterations(*maxIter), nlsys.WithStep(*step))
	switch {
	case errors.Is(err, nlsys.ErrNotConverged):
		if perr := a.print(report.System(system, res)); perr != nil {
			return perr
		}
		return err
	case err != nil:
		return a.fail("Nonlinear system (Newton)", res.Iterations, err)
	}

	return a.print(report.System(system, res))
}

func runIntegrate(a *app, args []string) error {
	fs := a.newFlags("integrate")
	method := fs.String("method", string(quad.Simpson), "one of "+methodNames())
	eqFlag := fs.String("eq", "", "integrand f(x)")
	ivFlag := fs.String("interval", "", `limits "a b"`)
	eps := fs.Float64("eps", 0, "Runge accuracy (default: accuracy)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	eq, err := a.equation(*eqFlag)
	if err != nil {
		return err
	}
	lo, hi, err := a.interval(*ivFlag)
	if err != nil {
		return err
	}
	e, err := a.accuracy(*eps)
	if err != nil {
		return err
	}

	res, err := quad.IntegrateExpr(*method, eq, lo, hi, e)
	if err != nil {
		return a.fail("Integral", res.Doublings, err)
	}

	return a.print(report.Integral(eq, lo, hi, res))
}

func runPlot(a *app, args []string) error {
	fs := a.newFlags("plot")
	eqFlag := fs.String("eq", "", "function f(x)")
	ivFlag := fs.String("interval", "", `highlighted interval "a b"`)
	out := fs.String("o", "graph.png", "output file; the extension selects the format")
	points := fs.Int("points", chart.DefaultPoints, "samples across the full range")
	if err := fs.Parse(args); err != nil {
		return err
	}

	eq, err := a.equation(*eqFlag)
	if err != nil {
		return err
	}
	lo, hi, err := a.interval(*ivFlag)
	if err != nil {
		return err
	}
	if *points < 2 {
		return fmt.Errorf("%w: -points must be >= 2", errUsage)
	}
	format := chart.DefaultFormat
	if i := strings.LastIndexByte(*out, '.'); i >= 0 && i < len(*out)-1 {
		format = strings.ToLower((*out)[i+1:])
	}

	if err = writeFile(*out, func(f *os.File) error {
		return chart.FunctionExpr(f, eq, lo, hi, chart.WithPoints(*points), chart.WithFormat(format))
	}); err != nil {
		return err
	}
	_, err = fmt.Fprintf(a.out, "wrote %s\n", *out)

	return err
}

func runGenMatrix(a *app, args []string) error {
	fs := a.newFlags("genmatrix")
	n := fs.Int("n", 3, "number of unknowns")
	seed := fs.Uint64("seed", 0, "random seed (0: time based)")
	dominant := fs.Bool("dominant", true, "make the matrix strictly diagonally dominant")
	save := fs.Bool("save", false, "store the matrix in the session file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	s := *seed
	if s == 0 {
		s = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
	gen := matrix.Random
	if *dominant {
		gen = matrix.RandomDominant
	}
	m, err := gen(*n, rng)
	if err != nil {
		return err
	}
	text := matrix.Format(m)

	if *save {
		if err = a.sess.SetMatrix(text); err != nil {
			return err
		}
		if err = a.saveSession(); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(a.out, text)

	return err
}

func runSession(a *app, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: session show | set | clear", errUsage)
	}
	switch args[0] {
	case "show":
		_, err := fmt.Fprint(a.out, a.sess.String())
		return err
	case "clear":
		a.sess.Clear()
		return a.saveSession()
	case "set":
		return a.sessionSet(args[1:])
	default:
		return fmt.Errorf("%w: unknown session action %q", errUsage, args[0])
	}
}

func (a *app) sessionSet(args []string) error {
	fs := a.newFlags("session set")
	iv := fs.String("interval", "", `interval "a b"`)
	acc := fs.Float64("accuracy", 0, "accuracy")
	m := fs.String("matrix", "", "augmented matrix rows")
	eq := fs.String("eq", "", "equation in x")
	sys := fs.String("system", "", "two equations in x and y")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *iv != "" {
		parsed, err := session.ParseInterval(*iv)
		if err != nil {
			return err
		}
		if err = a.sess.SetInterval(parsed.A, parsed.B); err != nil {
			return err
		}
	}
	if *acc != 0 {
		if err := a.sess.SetAccuracy(*acc); err != nil {
			return err
		}
	}
	if *m != "" {
		if err := a.sess.SetMatrix(strings.ReplaceAll(*m, `\n`, "\n")); err != nil {
			return err
		}
	}
	if *eq != "" {
		if err := a.sess.SetEquation(*eq); err != nil {
			return err
		}
	}
	if *sys != "" {
		if err := a.sess.SetSystem(*sys); err != nil {
			return err
		}
	}

	return a.saveSession()
}

func (a *app) saveSession() error {
	if a.sessionPath == "" {
		return fmt.Errorf("%w: -session file required", errUsage)
	}

	return a.sess.SaveFile(a.sessionPath)
}

func writeFile(path string, write func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = write(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

func methodNames() string {
	names := make([]string, 0, len(quad.Methods()))
	for _, m := range quad.Methods() {
		names = append(names, m.String())
	}

	return strings.Join(names, ", ")
}
