package commands

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"csslearn/config"
)

const (
	defaultOutputName = "synthesized"
	outputExt         = ".css"
)

// buildOutputPath returns output file path for synthesized stylesheet under
// dst. Name is either default or expanded from user-defined template which
// may include subdirectories. It cleans up path and if requested
// transliterates it.
func buildOutputPath(dst string, values Values, conf *config.SynthesisConfig, log *zap.Logger) string {
	name := defaultOutputName
	if conf.OutputNameTemplate != "" {
		if expanded := expandOutputNameTemplate(values, conf, log); expanded != "" {
			name = expanded
		}
	}
	return assemblePathWithSubdirs(dst, name, conf.FileNameTransliterate)
}

func expandOutputNameTemplate(values Values, conf *config.SynthesisConfig, log *zap.Logger) string {
	expandedName, err := expandTemplate(config.OutputNameTemplateFieldName, conf.OutputNameTemplate, values)
	if err != nil {
		log.Warn("Unable to prepare output filename", zap.Error(err))
		return ""
	}
	return filepath.FromSlash(strings.TrimSpace(expandedName))
}

// assemblePathWithSubdirs takes an expanded template name (which may contain
// path separators for subdirectories) and assembles it into a full output path,
// cleaning and transliterating segments as needed
func assemblePathWithSubdirs(outDir, expandedName string, transliterate bool) string {
	pathSegments := splitAndCleanPath(expandedName)

	if len(pathSegments) == 0 {
		return filepath.Join(outDir, defaultOutputName+outputExt)
	}

	fileName := strings.TrimSuffix(pathSegments[len(pathSegments)-1], outputExt)
	fileName = cleanPathSegment(fileName, transliterate) + outputExt

	dirParts := make([]string, 0, len(pathSegments)+1)
	dirParts = append(dirParts, outDir)
	for _, segment := range pathSegments[:len(pathSegments)-1] {
		dirParts = append(dirParts, cleanPathSegment(segment, transliterate))
	}

	dirParts = append(dirParts, fileName)
	return filepath.Join(dirParts...)
}

func splitAndCleanPath(path string) []string {
	path = strings.TrimSuffix(path, string(os.PathSeparator))
	segments := make([]string, 0, 8)

	for head, tail := filepath.Split(path); tail != ""; head, tail = filepath.Split(head) {
		segments = slices.Insert(segments, 0, tail)
		head = strings.TrimSuffix(head, string(os.PathSeparator))
		if head == "" {
			break
		}
	}

	return segments
}

func cleanPathSegment(segment string, transliterate bool) string {
	if transliterate {
		segment = slug.Make(segment)
	}
	return config.CleanFileName(segment)
}
