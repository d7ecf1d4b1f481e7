package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"go.trai.ch/tsrun/internal/core/domain"
	"go.trai.ch/tsrun/internal/hook"
	"go.trai.ch/tsrun/internal/ui/diagnostics"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var (
	sourceExtensions = []string{".ts", ".tsx", ".mts", ".cts"}
	skipDirs         = []string{"node_modules", ".git", domain.ToolDirName}

	mapComment = regexp.MustCompile(`(?m)^//# sourceMappingURL=([^/\s]+)\.map\s*$`)
)

// BuildOptions configure the build and watch commands.
type BuildOptions struct {
	RequestOptions
	// Module and Target override the configuration's output format.
	Module string
	Target string
	// Jobs bounds parallel compiles. Zero uses the number of CPUs.
	Jobs int
}

// Build compiles every source file below src into out, mirroring the directory layout.
func (a *App) Build(ctx context.Context, src, out string, opts BuildOptions) error {
	b, err := a.newBuilder(src, out, opts)
	if err != nil {
		return err
	}
	return b.all(ctx)
}

type builder struct {
	app     *App
	src     string
	out     string
	request RequestOptions
	module  string
	target  string
	jobs    int

	mu        sync.Mutex
	req       request
	formatter *diagnostics.Formatter
}

func (a *App) newBuilder(src, out string, opts BuildOptions) (*builder, error) {
	cwd := a.host.CurrentDirectory()
	src = domain.Canonicalize(cwd, src)
	if !a.host.DirectoryExists(src) {
		return nil, zerr.With(domain.ErrSourceDirMissing, "path", src)
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	b := &builder{
		app:     a,
		src:     src,
		out:     domain.Canonicalize(cwd, out),
		request: opts.RequestOptions,
		module:  opts.Module,
		target:  opts.Target,
		jobs:    jobs,
	}
	if err := b.reload(); err != nil {
		return nil, err
	}
	return b, nil
}

// reload re-reads tsrun.yaml and applies the format selectors.
func (b *builder) reload() error {
	req, err := b.app.resolve(b.request)
	if err != nil {
		return err
	}
	if b.module != "" {
		req.opts.CompilerOptions = req.opts.CompilerOptions.With("module", b.module)
	}
	if b.target != "" {
		req.opts.CompilerOptions = req.opts.CompilerOptions.With("target", b.target)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.req = req
	b.formatter = b.app.formatter(req.pretty)
	return nil
}

func (b *builder) current() request {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.req
}

// sources lists the files to compile. Declarations and anything under out are left out.
func (b *builder) sources() ([]string, error) {
	files, err := b.app.host.ReadDirectory(b.src, sourceExtensions, skipDirs)
	if err != nil {
		return nil, err
	}
	out := files[:0]
	for _, f := range files {
		if b.isSource(f) {
			out = append(out, f)
		}
	}
	return out, nil
}

func (b *builder) isSource(path string) bool {
	switch {
	case !slices.Contains(sourceExtensions, strings.ToLower(filepath.Ext(path))):
		return false
	case domain.IsDeclaration(path):
		return false
	case b.out != b.src && within(b.out, path):
		return false
	default:
		return within(b.src, path)
	}
}

func (b *builder) all(ctx context.Context) error {
	files, err := b.sources()
	if err != nil {
		return err
	}
	if b.app.changes != nil {
		b.app.changes.Prime(files...)
	}

	failed, err := b.compile(ctx, files)
	if err != nil {
		return err
	}
	b.app.logger.Info(fmt.Sprintf("compiled %d files into %s", len(files), b.out))
	if failed > 0 {
		return zerr.With(domain.ErrBuildFailed, "files", failed)
	}
	return nil
}

// compile transpiles files in parallel and returns how many had error diagnostics.
func (b *builder) compile(ctx context.Context, files []string) (int, error) {
	req := b.current()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.jobs)

	var failed atomic.Int64
	for _, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res := b.app.transpiler.Transpile(ctx, file, req.opts)
			if len(res.Diagnostics) > 0 {
				b.report(res.Diagnostics)
				if res.HasErrors() && !req.warn {
					failed.Add(1)
				}
			}
			if res.OutputText == "" {
				return nil
			}
			return b.write(file, res, req.opts.CompilerOptions)
		})
	}

	err := g.Wait()
	return int(failed.Load()), err
}

func (b *builder) report(diags []domain.Diagnostic) {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, _ = io.WriteString(b.app.stderr, b.formatter.Format(diags))
}

func (b *builder) write(file string, res domain.TranspilationResult, overrides domain.CompilerSettings) error {
	rel, err := filepath.Rel(b.src, file)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", file)
	}
	target := filepath.Join(b.out, outputName(rel, res.OutputText, overrides))

	if err := os.MkdirAll(filepath.Dir(target), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", target)
	}
	if err := os.WriteFile(target, []byte(res.OutputText), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", target)
	}
	if res.SourceMapText != "" {
		sourceMap := hook.Relocate(res.SourceMapText, file, target)
		if err := os.WriteFile(target+".map", []byte(sourceMap), domain.FilePerm); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", target+".map")
		}
	}
	b.app.logger.Debug("wrote " + target)
	return nil
}

// remove deletes the outputs of a source file that no longer exists.
func (b *builder) remove(file string) {
	rel, err := filepath.Rel(b.src, file)
	if err != nil {
		return
	}
	target := filepath.Join(b.out, outputName(rel, "", b.current().opts.CompilerOptions))
	for _, p := range []string{target, target + ".map"} {
		if err := os.Remove(p); err == nil {
			b.app.logger.Debug("removed " + p)
		}
	}
}

// outputName returns the output path for rel. The front end names the map after the
// emitted file, so a trailing sourceMappingURL comment is authoritative.
func outputName(rel, output string, overrides domain.CompilerSettings) string {
	if m := mapComment.FindStringSubmatch(output); m != nil {
		return filepath.Join(filepath.Dir(rel), m[1])
	}
	return strings.TrimSuffix(rel, filepath.Ext(rel)) + domain.OutputExtension(rel, overrides)
}

func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
