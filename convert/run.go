// Package convert drives a full generation run: locate course documents in
// the input, parse and audit them, plan the storyboard, resolve visuals and
// render the deck.
package convert

import (
	"archive/zip"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"sort"
	"strings"
	"time"

	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"sbc/archive"
	"sbc/assets"
	"sbc/convert/pptx"
	"sbc/course"
	"sbc/css"
	"sbc/spec"
	"sbc/state"
	"sbc/storyboard"
)

//go:embed default.css
var defaultStylesheet []byte

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("convert")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	src, err = filepath.Abs(src)
	if err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	env.DefaultTheme = defaultStylesheet
	if env.Cfg.Document.StylesheetPath != "" {
		data, err := os.ReadFile(env.Cfg.Document.StylesheetPath)
		if err != nil {
			return fmt.Errorf("unable to read theme css from %q: %w", env.Cfg.Document.StylesheetPath, err)
		}
		env.DefaultTheme = data
	}

	env.NoDirs, env.Overwrite = cmd.Bool("nodirs"), cmd.Bool("overwrite")

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, log)
}

// process determines input type (directory, bundle archive or single
// document) and dispatches accordingly.
func process(ctx context.Context, src, dst string, log *zap.Logger) error {
	fi, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("input source was not found (%s): %w", src, err)
	}

	if fi.Mode().IsDir() {
		return processDir(ctx, src, dst, log)
	}
	if !fi.Mode().IsRegular() {
		return fmt.Errorf("unexpected path mode for (%s)", src)
	}

	bundle, err := isBundleFile(src)
	if err != nil {
		return fmt.Errorf("unable to check archive type: %w", err)
	}
	if bundle {
		return processBundle(ctx, src, "", dst, log)
	}

	if !isCourseFile(src) {
		return fmt.Errorf("input was not recognized as course document or bundle (%s)", src)
	}
	file, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("unable to open input file: %w", err)
	}
	defer file.Close()
	return processCourse(ctx, file, filepath.Base(src), dst, log)
}

// processDir walks the tree finding course documents and bundles. Found paths
// are processed in natural order so unit_2 comes before unit_10.
func processDir(ctx context.Context, dir, dst string, log *zap.Logger) error {
	var found []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if info.Mode().IsRegular() {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return err
	}
	sort.Sort(natural.StringSlice(found))

	count := 0
	for _, path := range found {
		if err := ctx.Err(); err != nil {
			return err
		}

		bundle, err := isBundleFile(path)
		if err != nil {
			log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			continue
		}
		if bundle {
			count++
			if err := processBundle(ctx, path, filepath.Dir(strings.TrimPrefix(path, dir)), dst, log); err != nil {
				log.Error("Unable to process bundle", zap.String("file", path), zap.Error(err))
			}
			continue
		}
		if !isCourseFile(path) {
			log.Debug("Skipping file, not recognized as course document or bundle", zap.String("file", path))
			continue
		}

		count++
		file, err := os.Open(path)
		if err != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
			continue
		}
		src := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))
		if err := processCourse(ctx, file, src, dst, log); err != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
		}
		file.Close()
	}
	if count == 0 {
		log.Debug("Nothing to process", zap.String("dir", dir))
	}
	return nil
}

// processBundle walks a zip bundle and processes every course document in it.
func processBundle(ctx context.Context, path, pathOut, dst string, log *zap.Logger) error {
	count := 0
	err := archive.Walk(path, "", func(bundle string, f *zip.File) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !isCourseFile(f.FileHeader.Name) {
			log.Debug("Skipping file in bundle, not recognized as course document",
				zap.String("bundle", bundle), zap.String("file", f.FileHeader.Name))
			return nil
		}

		count++
		r, err := f.Open()
		if err != nil {
			log.Error("Unable to process file in bundle",
				zap.String("bundle", bundle), zap.String("file", f.FileHeader.Name), zap.Error(err))
			return nil
		}
		defer r.Close()

		if err := processCourse(ctx, r, filepath.Join(pathOut, f.FileHeader.Name), dst, log); err != nil {
			log.Error("Unable to process file in bundle",
				zap.String("bundle", bundle), zap.String("file", f.FileHeader.Name), zap.Error(err))
		}
		return nil
	})
	if err == nil && count == 0 {
		log.Debug("Nothing to process", zap.String("bundle", path))
	}
	return err
}

// processCourse converts a single course document. "src" is the source path
// relative to the original input, "dst" is the destination directory.
func processCourse(ctx context.Context, r io.Reader, src, dst string, log *zap.Logger) (rerr error) {
	env := state.EnvFromContext(ctx)

	var outputName string

	log.Info("Conversion starting", zap.String("from", src))
	defer func(start time.Time) {
		// image decoders and the rasterizer are not mature enough to trust
		// unconditionally, one bad document must not stop a batch
		if r := recover(); r != nil {
			log.Error("Conversion ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("conversion panic: %v", r)
		} else {
			log.Info("Conversion completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName))
		}
	}(time.Now())

	c, err := course.Parse(r, src, log)
	if err != nil {
		return fmt.Errorf("unable to parse course document (%s): %w", src, err)
	}

	th := &env.Cfg.Document.Thresholds
	for _, finding := range course.Audit(c, th.CognitiveLoadMinutes, th.DurationDriftTolerance) {
		log.Warn("Design audit", zap.String("document", src), zap.String("finding", finding))
	}

	board := storyboard.Build(c, th.ActivityTextCutoff, log)

	sheet := css.NewParser(log).Parse(env.DefaultTheme)
	theme := css.ThemeFromStylesheet(sheet)

	outputName = buildOutputPath(c, src, dst, env)

	if _, err := os.Stat(outputName); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		log.Warn("Overwriting existing file", zap.String("file", outputName))
		if err = os.Remove(outputName); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	resolved := resolveAssets(ctx, board, log)

	if err := pptx.Generate(ctx, board, resolved, outputName, &env.Cfg.Document, &theme, log); err != nil {
		return fmt.Errorf("unable to generate output: %w", err)
	}

	if env.Rpt != nil {
		env.Rpt.Store("result-"+filepath.Base(outputName), outputName)
	}
	return nil
}

// resolveAssets finds one image per unit that renders in image support mode.
// Results are indexed by unit - worker completion order never changes which
// slide gets which image. Failures leave nil entries, the deck renders those
// units text-only.
func resolveAssets(ctx context.Context, board *storyboard.Board, log *zap.Logger) []*assets.Resolved {
	env := state.EnvFromContext(ctx)
	out := make([]*assets.Resolved, len(board.Units))

	provider := newProvider(env)
	if provider == nil {
		log.Debug("Image search disabled")
		return out
	}

	cache, err := assets.OpenCache(env.Cfg.Assets.Cache.Directory, board.Course.Name, env.Cfg.Assets.Cache.Index, log)
	if err != nil {
		log.Warn("Unable to open asset cache, rendering without images", zap.Error(err))
		return out
	}
	defer cache.Close()

	resolver := assets.NewResolver(&env.Cfg.Assets, provider, cache, log)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(env.Cfg.Assets.Search.Concurrency)
	for i := range board.Units {
		if board.Units[i].Mode != spec.ModeImageSupport {
			continue
		}
		eg.Go(func() error {
			u := board.Units[i].Unit
			out[i] = resolver.Resolve(ctx, u.Resource(course.ResourceImageQuery), u.Title)
			return nil
		})
	}
	// workers degrade gracefully instead of failing, only cancellation
	// surfaces here
	if err := eg.Wait(); err != nil {
		log.Debug("Asset resolution interrupted", zap.Error(err))
	}
	return out
}

func newProvider(env *state.LocalEnv) assets.Provider {
	switch strings.ToLower(env.Cfg.Assets.Search.Provider) {
	case "none", "off":
		return nil
	default:
		return assets.NewOpenverse(&env.Cfg.Assets.Search)
	}
}
