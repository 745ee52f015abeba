// Package corpus finds stylesheets on disk (and optionally inside zip
// archives) and feeds them into the frequency model.
package corpus

import (
	"archive/zip"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/maruel/natural"
	"go.uber.org/zap"

	"csslearn/archive"
)

// ScanOptions narrows the scan. Zero value visits every directory and
// ignores archives.
type ScanOptions struct {
	SkipHidden bool     // skip files and directories which names start with "."
	SkipDirs   []string // directory names to skip anywhere in the tree
	Archives   bool     // look for stylesheets inside zip archives
}

func (o ScanOptions) skip(info os.FileInfo) bool {
	name := info.Name()
	if o.SkipHidden && strings.HasPrefix(name, ".") && name != "." && name != ".." {
		return true
	}
	return info.IsDir() && slices.Contains(o.SkipDirs, name)
}

// Scan returns absolute paths of all stylesheets under root in natural order.
// Stylesheets inside archives are reported as archive path joined with path
// of entry inside archive. Root may be a link to directory, linked files
// under root are reported, linked directories are not walked. Scan never
// fails: unreadable directories and broken archives are logged and skipped,
// cancelled context stops the walk and whatever has been found so far is
// returned.
func Scan(ctx context.Context, root string, opts ScanOptions, log *zap.Logger) []string {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("scan")

	found := []string{}

	root, err := filepath.Abs(root)
	if err != nil {
		log.Warn("Unable to resolve path", zap.String("path", root), zap.Error(err))
		return found
	}
	// walk does not follow links, root may be one
	target, err := filepath.EvalSymlinks(root)
	if err != nil {
		log.Warn("Unable to resolve path", zap.String("path", root), zap.Error(err))
		return found
	}

	err = filepath.Walk(target, func(path string, info os.FileInfo, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		// report paths under root as given
		if rel, err := filepath.Rel(target, path); err == nil {
			path = filepath.Join(root, rel)
		}

		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if path != root && opts.skip(info) {
			log.Debug("Skipping path by configuration", zap.String("path", path))
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.Mode()&os.ModeSymlink != 0 {
			// linked files are taken, linked directories are not descended into
			fi, err := os.Stat(path)
			if err != nil {
				log.Warn("Skipping broken link", zap.String("path", path), zap.Error(err))
				return nil
			}
			info = fi
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		if isStylesheet(filepath.Base(path)) {
			found = append(found, path)
			return nil
		}

		if !opts.Archives {
			return nil
		}
		isArchive, err := isArchiveFile(path)
		if err != nil {
			log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			return nil
		}
		if isArchive {
			entries, err := scanArchive(ctx, path, "")
			if err != nil {
				log.Warn("Unable to scan archive", zap.String("archive", path), zap.Error(err))
				return nil
			}
			if len(entries) == 0 {
				log.Debug("Nothing to process", zap.String("archive", path))
			}
			found = append(found, entries...)
		}
		return nil
	})
	if err != nil {
		log.Debug("Scan interrupted", zap.String("root", root), zap.Error(err))
	}

	sort.Sort(natural.StringSlice(found))
	return found
}

// scanArchive lists stylesheets inside archive located under prefix.
func scanArchive(ctx context.Context, path, prefix string) ([]string, error) {
	prefix = strings.Trim(prefix, "/")
	stylesheet := archive.WithExt(".css")
	match := func(name string) bool {
		if !stylesheet(name) {
			return false
		}
		return prefix == "" || name == prefix || strings.HasPrefix(name, prefix+"/")
	}

	var entries []string
	err := archive.Walk(path, match, func(_ string, f *zip.File) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		entries = append(entries, filepath.Join(path, filepath.FromSlash(f.FileHeader.Name)))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Resolve turns source given on the command line into list of stylesheets.
// Source could be a directory (see Scan), a stylesheet, a zip archive or a
// path inside archive ("archive.zip/path/in/archive") pointing either to a
// stylesheet or to a directory in archive. Archives given explicitly are
// always looked into regardless of options.
func Resolve(ctx context.Context, src string, opts ScanOptions, log *zap.Logger) ([]string, error) {
	src, err := filepath.Abs(src)
	if err != nil {
		return nil, err
	}

	for head := src; ; {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if fi, err := os.Stat(head); err == nil {
			return resolve(ctx, src, head, fi, opts, log)
		}
		// does not exists - probably path in archive
		parent := filepath.Dir(head)
		if parent == head {
			break
		}
		head = parent
	}
	return nil, fmt.Errorf("input source was not found (%s)", src)
}

func resolve(ctx context.Context, src, head string, fi os.FileInfo, opts ScanOptions, log *zap.Logger) ([]string, error) {
	tail := strings.TrimPrefix(strings.TrimPrefix(src, head), string(filepath.Separator))

	if fi.IsDir() {
		if len(tail) != 0 {
			// directory cannot have tail - it would be simple file
			return nil, fmt.Errorf("input source was not found (%s) => (%s)", head, tail)
		}
		return Scan(ctx, head, opts, log), nil
	}
	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("unexpected path mode for (%s)", head)
	}

	isArchive, err := isArchiveFile(head)
	if err != nil {
		return nil, fmt.Errorf("unable to check archive type: %w", err)
	}
	if isArchive {
		found, err := scanArchive(ctx, head, filepath.ToSlash(tail))
		if err != nil {
			return nil, fmt.Errorf("unable to process archive: %w", err)
		}
		if len(found) == 0 && len(tail) != 0 {
			return nil, fmt.Errorf("input source was not found in archive (%s) => (%s)", head, tail)
		}
		sort.Sort(natural.StringSlice(found))
		return found, nil
	}

	if len(tail) == 0 && isStylesheet(fi.Name()) {
		return []string{head}, nil
	}
	return nil, fmt.Errorf("input was not recognized as stylesheet or archive (%s)", head)
}
