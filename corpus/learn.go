package corpus

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"csslearn/archive"
	"csslearn/css"
	"csslearn/model"
)

// MaxFileSize limits size of a single stylesheet.
const MaxFileSize = 32 << 20

// Stats describes single learning pass.
type Stats struct {
	Files   int // files parsed
	Skipped int // files which could not be read
	Rules   int // rules extracted
}

// Learn parses every stylesheet in paths and feeds the rules into the model.
// Unreadable files are logged and skipped. Error is returned only when
// context is cancelled, model keeps everything observed before that.
func Learn(ctx context.Context, paths []string, p *css.Parser, m *model.Model, log *zap.Logger) (Stats, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("learn")

	var st Stats
	defer func(start time.Time) {
		log.Debug("Learning completed", zap.Int("files", st.Files), zap.Int("skipped", st.Skipped),
			zap.Int("rules", st.Rules), zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return st, err
		}

		data, err := ReadStylesheet(path)
		if err != nil {
			log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			st.Skipped++
			continue
		}

		rules := p.Parse(data, path)
		for _, r := range rules {
			m.ObserveRule(r)
		}
		st.Files++
		st.Rules += len(rules)
		log.Debug("Stylesheet processed", zap.String("file", path), zap.Int("rules", len(rules)))
	}
	return st, nil
}

// ReadStylesheet returns decoded text of the stylesheet. Path is either a
// plain file or an entry inside zip archive addressed as
// archive.zip/path/in/archive.css (see Scan).
func ReadStylesheet(path string) ([]byte, error) {
	raw, err := readFile(path)
	if err != nil {
		return nil, err
	}
	if err := checkText(raw); err != nil {
		return nil, err
	}
	return css.DecodeText(bytes.NewReader(raw))
}

func readFile(path string) ([]byte, error) {
	fi, err := os.Stat(path)
	if err != nil {
		// does not exists - probably path in archive
		if data, ok, aerr := readFromArchive(path); ok {
			return data, aerr
		}
		return nil, err
	}
	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("not a regular file: %s", path)
	}
	if fi.Size() > MaxFileSize {
		return nil, fmt.Errorf("file is too big: %d bytes", fi.Size())
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}

// readFromArchive looks for the longest existing prefix of path and when it
// is an archive reads rest of the path from it. ok is false when path does
// not point into an archive.
func readFromArchive(path string) (data []byte, ok bool, err error) {
	for head := filepath.Dir(path); head != filepath.Dir(head); head = filepath.Dir(head) {
		fi, serr := os.Stat(head)
		if serr != nil {
			continue
		}
		if !fi.Mode().IsRegular() {
			return nil, false, nil
		}
		if isArchive, aerr := isArchiveFile(head); aerr != nil || !isArchive {
			return nil, false, nil
		}

		entry := filepath.ToSlash(strings.TrimPrefix(strings.TrimPrefix(path, head), string(filepath.Separator)))
		found := false
		err = archive.Walk(head, func(name string) bool { return name == entry }, func(_ string, f *zip.File) error {
			found = true
			data, err = archive.ReadFile(f, MaxFileSize)
			return err
		})
		if err == nil && !found {
			err = fmt.Errorf("%s: %w", entry, fs.ErrNotExist)
		}
		return data, true, err
	}
	return nil, false, nil
}
