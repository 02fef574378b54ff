package behave

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/programme-lv/gradebook/internal/console"
	"github.com/programme-lv/gradebook/internal/logging"
	"github.com/programme-lv/gradebook/internal/roster"
	"golang.org/x/sync/errgroup"
)

type Result struct {
	File   string
	Case   Case
	Passed bool
	Detail string
	Output string
}

type Runner struct {
	log *slog.Logger
}

func NewRunner(log *slog.Logger) *Runner {
	if log == nil {
		log = logging.Discard()
	}
	return &Runner{log: log}
}

// Run replays a case against a fresh roster and checks the transcript.
func (r *Runner) Run(c Case) Result {
	var out bytes.Buffer
	log := r.log.With("case", c.ID)
	con := console.New(strings.NewReader(c.Input), &out, roster.New(),
		console.WithColor(false), console.WithLogger(log))

	res := Result{Case: c}
	if err := con.Run(); err != nil {
		res.Detail = fmt.Sprintf("session failed: %v", err)
		return res
	}
	res.Output = out.String()
	res.Passed, res.Detail = check(res.Output, c.Expect, c.Reject)
	log.Info("scenario finished", "name", c.Name, "passed", res.Passed)
	return res
}

func check(output string, expect, reject []string) (bool, string) {
	rest := output
	for _, want := range expect {
		i := strings.Index(rest, want)
		if i < 0 {
			if strings.Contains(output, want) {
				return false, fmt.Sprintf("out of order: %q", want)
			}
			return false, fmt.Sprintf("missing: %q", want)
		}
		rest = rest[i+len(want):]
	}
	for _, bad := range reject {
		if strings.Contains(output, bad) {
			return false, fmt.Sprintf("unexpected: %q", bad)
		}
	}
	return true, ""
}

// RunFiles parses and runs every file, at most parallelism files at a time.
// Each case owns its roster, so cases never share state. Results keep the
// order of files and of cases within a file.
func (r *Runner) RunFiles(ctx context.Context, paths []string, parallelism int) ([]Result, error) {
	if parallelism < 1 {
		parallelism = 1
	}
	perFile := make([][]Result, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for i, path := range paths {
		g.Go(func() error {
			cases, err := Parse(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			for _, c := range cases {
				if err := ctx.Err(); err != nil {
					return err
				}
				res := r.Run(c)
				res.File = path
				perFile[i] = append(perFile[i], res)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var results []Result
	for _, rs := range perFile {
		results = append(results, rs...)
	}
	return results, nil
}
