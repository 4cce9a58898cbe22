// Command zic-eval is the CLI front end for the expression-language
// interpreter: it reads a small textual expression grammar (pkg/srcexpr),
// type-checks it (pkg/typecheck), and drives the interpreter's partial,
// full, or approximation mode over it (pkg/interp). Its dispatch style
// (hand-rolled switch, no flag library, plain fmt.Fprintf to stdout/stderr)
// and its `deps install`/`deps update` subcommands follow cmd/able/main.go.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ziria-lang/interp-go/pkg/driver"
	"ziria-lang/interp-go/pkg/interp"
	"ziria-lang/interp-go/pkg/ir"
	"ziria-lang/interp-go/pkg/srcexpr"
	"ziria-lang/interp-go/pkg/typecheck"
)

const cliToolVersion = "zic-eval 0.0.0-dev"

const configFileName = "ziria-eval.yml"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 1
	}

	switch args[0] {
	case "--help", "-h":
		printUsage()
		return 0
	case "--version", "-V", "version":
		fmt.Fprintln(os.Stdout, cliToolVersion)
		return 0
	case "eval":
		return runEval(args[1:])
	case "prove":
		return runProve(args[1:])
	case "sat":
		return runSat(args[1:])
	case "deps":
		return runDeps(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", args[0])
		printUsage()
		return 1
	}
}

func printUsage() {
	fmt.Fprintln(os.Stdout, `usage:
  zic-eval eval [--partial] <expr-or-file>
  zic-eval prove <expr-or-file>
  zic-eval sat <expr-or-file>
  zic-eval deps install
  zic-eval deps update [source...]
  zic-eval --version`)
}

func runEval(args []string) int {
	partial := false
	var rest []string
	for _, a := range args {
		if a == "--partial" {
			partial = true
			continue
		}
		rest = append(rest, a)
	}
	if len(rest) != 1 {
		fmt.Fprintln(os.Stderr, "zic-eval eval requires exactly one expression or file argument")
		return 1
	}
	src, err := readSource(rest[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	node, err := parseAndElaborate(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	var res interp.Result
	if partial {
		res, err = interp.EvalPartial(node)
	} else {
		res, err = interp.EvalFull(node)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	for _, line := range res.Prints {
		fmt.Fprint(os.Stdout, line)
	}
	fmt.Fprintln(os.Stdout, prettyResult(res))
	return 0
}

func runProve(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "zic-eval prove requires exactly one expression or file argument")
		return 1
	}
	src, err := readSource(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	node, err := parseAndElaborate(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	ok, err := interp.Provable(node)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	fmt.Fprintln(os.Stdout, ok)
	return 0
}

func runSat(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "zic-eval sat requires exactly one expression or file argument")
		return 1
	}
	src, err := readSource(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	node, err := parseAndElaborate(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	ok, err := interp.Satisfiable(node)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	fmt.Fprintln(os.Stdout, ok)
	return 0
}

func runDeps(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "zic-eval deps requires a subcommand (install, update)")
		return 1
	}
	cfg, err := loadConfigFromCwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	cacheDir, err := resolveCacheDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to resolve cache directory: %v\n", err)
		return 1
	}
	switch args[0] {
	case "install":
		results, err := driver.InstallSources(cfg, cacheDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return 1
		}
		printFetchResults(results)
		return 0
	case "update":
		results, err := driver.UpdateSources(cfg, cacheDir, args[1:])
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return 1
		}
		printFetchResults(results)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "unknown deps subcommand %q\n", args[0])
		return 1
	}
}

func printFetchResults(results []driver.FetchResult) {
	for _, r := range results {
		fmt.Fprintf(os.Stdout, "%s: %s (%s) at %s\n", r.Name, r.Action, r.Commit, r.Path)
	}
}

//-----------------------------------------------------------------------------
// Helpers
//-----------------------------------------------------------------------------

func readSource(arg string) (string, error) {
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		data, err := os.ReadFile(arg)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", arg, err)
		}
		return string(data), nil
	}
	return arg, nil
}

func parseAndElaborate(src string) (ir.Expr, error) {
	node, err := srcexpr.Parse(src)
	if err != nil {
		return nil, err
	}
	e, _, err := typecheck.Elaborate(node, typecheck.NewEnv())
	if err != nil {
		return nil, err
	}
	return e, nil
}

func loadConfigFromCwd() (*driver.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("determine working directory: %w", err)
	}
	path, err := findConfig(cwd)
	if err != nil {
		if errors.Is(err, errConfigNotFound) {
			return driver.DefaultConfig(filepath.Join(cwd, configFileName)), nil
		}
		return nil, err
	}
	return driver.LoadConfig(path)
}

var errConfigNotFound = errors.New(configFileName + " not found")

func findConfig(start string) (string, error) {
	dir := start
	for {
		candidate := filepath.Join(dir, configFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errConfigNotFound
		}
		dir = parent
	}
}

func resolveCacheDir() (string, error) {
	if env := strings.TrimSpace(os.Getenv("ZIRIA_EVAL_HOME")); env != "" {
		return env, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".ziria-eval", "stdlib"), nil
}

func prettyResult(res interp.Result) string {
	return ir.Pretty(res.Expr)
}
