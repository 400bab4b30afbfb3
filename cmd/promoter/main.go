/*
Package main is the promoter cli tool: it reads candidate versions from
stdin and prints them in the order a resolver should try them.
*/
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"

	"github.com/woozymasta/promoter"
	"github.com/woozymasta/promoter/internal/lockfile"
)

type Options struct {
	// betteralign:ignore

	// Promotion policy
	OptionsPolicy OptionsPolicy `group:"Policy"`
	// Locked package state
	OptionsPackage OptionsPackage `group:"Package"`
	// Input and output
	OptionsIO OptionsIO `group:"Input and output"`
}

type OptionsPolicy struct {
	Level  *promoter.Level `short:"l" long:"level"  description:"How far the package may move: major, minor or patch (default: major)"`
	Strict bool            `short:"s" long:"strict" description:"Drop candidates outside the level relative to the locked version"`
}

type OptionsPackage struct {
	Locked     string `short:"L" long:"locked"     description:"Currently locked version"`
	Unlock     bool   `short:"u" long:"unlock"     description:"Allow moving away from the locked version (do not push it last)"`
	Prerelease bool   `short:"p" long:"prerelease" description:"Package constraint already names a prerelease"`
	LockFile   string `short:"f" long:"lockfile"   description:"YAML lock file with locked packages and policy defaults"`
	Name       string `short:"N" long:"name"       description:"Package name to look up in the lock file"`
}

type OptionsIO struct {
	Scheme  string `long:"scheme"        description:"Version scheme of input tags" choice:"semver" choice:"gomod" default:"semver"`
	Limit   int    `short:"n" long:"limit"   description:"Max number of output versions (<=0 = unlimited)" default:"0"`
	Verbose bool   `short:"v" long:"verbose" description:"Log debug details to stderr"`
}

// tag is a candidate read from input; the raw line is printed back.
type tag struct {
	raw string
	ver promoter.Version
}

func (t tag) Version() promoter.Version { return t.ver }

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main without process globals. Exit codes: 0 ok or help, 1 flag
// errors, 2 input or lock file errors.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opt Options
	parser := flags.NewParser(&opt, flags.HelpFlag|flags.PassDoubleDash|flags.AllowBoolValues)
	parser.LongDescription = `promoter orders candidate versions for a dependency resolver.
Versions within the requested level (patch, minor, major) of the locked
version come first, smallest bump first; the locked version itself is tried last.`
	if _, err := parser.ParseArgs(args); err != nil {
		var flagErr *flags.Error
		if errors.As(err, &flagErr) && flagErr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, err)
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 1
	}

	lvl := slog.LevelWarn
	if opt.OptionsIO.Verbose {
		lvl = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: lvl}))

	parse := parserFor(opt.OptionsIO.Scheme)

	policy, pkg, err := configure(opt, parse, logger)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 2
	}

	in, err := readTags(stdin, parse, logger)
	if err != nil {
		fmt.Fprintf(stderr, "read stdin: %v\n", err)
		return 2
	}

	logger.Debug("promoting",
		slog.String("level", policy.Level().String()),
		slog.Bool("strict", policy.Strict()),
		slog.Any("locked", pkg.Locked),
		slog.Bool("unlock", pkg.Unlocked),
		slog.Int("candidates", len(in)))

	out := policy.SortVersionsN(pkg, in, opt.OptionsIO.Limit)
	for _, c := range out {
		fmt.Fprintln(stdout, c.(tag).raw)
	}

	return 0
}

// configure builds the policy and the package from the lock file (if any)
// and then the flags; flags win.
func configure(opt Options, parse lockfile.ParseFunc, logger *slog.Logger) (promoter.Policy, promoter.Dependency, error) {
	var (
		policy promoter.Policy
		pkg    = promoter.Dependency{Name: opt.OptionsPackage.Name}
	)

	if path := strings.TrimSpace(opt.OptionsPackage.LockFile); path != "" {
		f, err := lockfile.Load(path)
		if err != nil {
			return policy, pkg, err
		}
		logger.Debug("loaded lock file", slog.String("path", path), slog.Int("packages", len(f.Packages)))

		if err := f.Apply(&policy); err != nil {
			return policy, pkg, fmt.Errorf("%s: %w", path, err)
		}

		if pkg.Name != "" {
			if pkg, err = f.Dependency(pkg.Name, parse); err != nil {
				return policy, pkg, err
			}
		} else {
			logger.Warn("lock file given without --name, no package lock applied", slog.String("path", path))
		}
	}

	if opt.OptionsPolicy.Level != nil {
		if err := policy.SetLevelValue(*opt.OptionsPolicy.Level); err != nil {
			return policy, pkg, err
		}
	}
	if opt.OptionsPolicy.Strict {
		policy.SetStrict(true)
	}

	if s := strings.TrimSpace(opt.OptionsPackage.Locked); s != "" {
		v, ok := parse(s)
		if !ok {
			return policy, pkg, fmt.Errorf("%w: locked version %q", lockfile.ErrBadVersion, s)
		}
		pkg.Locked = v
	}
	pkg.Unlocked = pkg.Unlocked || opt.OptionsPackage.Unlock
	pkg.Prerelease = pkg.Prerelease || opt.OptionsPackage.Prerelease

	return policy, pkg, nil
}

func parserFor(scheme string) lockfile.ParseFunc {
	if scheme == "gomod" {
		return func(s string) (promoter.Version, bool) {
			v, ok := promoter.ParseModVersion(s)
			return v, ok
		}
	}

	return func(s string) (promoter.Version, bool) {
		v, ok := promoter.ParseSemver(s)
		return v, ok
	}
}

// readTags reads one tag per line, skipping blanks and logging unparsable ones.
func readTags(r io.Reader, parse lockfile.ParseFunc, logger *slog.Logger) ([]promoter.Candidate, error) {
	in := make([]promoter.Candidate, 0, 1024)
	sc := bufio.NewScanner(r)
	const maxLine = 10 * 1024 * 1024
	buf := make([]byte, 0, 64*1024)
	sc.Buffer(buf, maxLine)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" {
			continue
		}

		v, ok := parse(s)
		if !ok {
			logger.Warn("skipping unparsable version", slog.String("tag", s))
			continue
		}
		in = append(in, tag{raw: s, ver: v})
	}

	return in, sc.Err()
}
