package crossref

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"subcheck/internal/logging"
	"subcheck/internal/reference"
	"subcheck/internal/subfile"
	"subcheck/internal/textcmp"
)

// Options configures a cross-reference run. No ambient state is consulted:
// every knob arrives here.
type Options struct {
	// Root is the directory holding the numbered episode folders.
	Root string
	// Folders are the episode numbers to scan. Required for explicit runs;
	// empty means "every numbered folder" for keyword runs.
	Folders []int
	// Threshold is the similar/different similarity boundary in [0,100].
	Threshold float64
	// Marker is the explicit tag literal (default reference.DefaultMarker).
	Marker string
	// Keywords are the keyword-mode literals (default reference.DefaultKeywords).
	Keywords []string
	// Logger receives run progress; nil means silent.
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	logger := o.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	return logging.WithComponent(logger, "crossref").
		With(logging.String(logging.FieldRunID, uuid.NewString()))
}

func (o Options) marker() string {
	if strings.TrimSpace(o.Marker) == "" {
		return reference.DefaultMarker
	}
	return strings.TrimSpace(o.Marker)
}

func checkRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("root path %q does not exist", root)
	}
	if !info.IsDir() {
		return fmt.Errorf("root path %q is not a directory", root)
	}
	return nil
}

// RunExplicit scans the requested folders for explicit reference tags and
// resolves each against its target folder's event ordinals.
func RunExplicit(opts Options) ([]Result, error) {
	if err := checkRoot(opts.Root); err != nil {
		return nil, err
	}
	logger := opts.logger()
	matcher := reference.NewExplicitMatcher(opts.marker())

	var results []Result
	for _, number := range opts.Folders {
		folderName := reference.PadFolder(strconv.Itoa(number))
		folder := filepath.Join(opts.Root, folderName)
		if _, err := os.Stat(folder); err != nil {
			continue
		}
		for _, path := range subtitleFiles(folder) {
			events := subfile.EventLines(path)
			for i, line := range events {
				ref, ok := matcher.Find(line)
				if !ok {
					continue
				}
				text, ok := subfile.DisplayText(line)
				if !ok || text == "" {
					continue
				}
				result := Result{
					Folder:       folderName,
					File:         filepath.Base(path),
					Line:         i + 1,
					Reference:    ref.Descriptor(opts.marker()),
					Text:         text,
					TargetFolder: ref.Folder,
					Status:       textcmp.StatusNotFound,
				}
				targetFolder := filepath.Join(opts.Root, ref.Folder)
				if file, targetText, found := FindByOrdinals(targetFolder, ref.Ordinals); found {
					status, score := textcmp.Classify(text, targetText, opts.Threshold)
					result.Status = status
					result.Similarity = &score
					result.TargetFile = file
					result.TargetText = targetText
					result.TargetLines = ref.Ordinals
				}
				results = append(results, result)
			}
		}
		logger.Debug("folder scanned", logging.String("folder", folderName))
	}

	summary := Summarize(results)
	logger.Info("explicit run complete",
		logging.Int("total", summary.Total),
		logging.Int("exact", summary.Exact),
		logging.Int("similar", summary.Similar),
		logging.Int("different", summary.Different),
		logging.Int("not_found", summary.NotFound),
	)
	return results, nil
}

// RunKeywords scans for keyword references in raw Dialogue lines and
// resolves each by free-text search against the referenced folder. Line
// numbers in the results are raw file line numbers, matching how the
// findings are acted on in an editor.
func RunKeywords(opts Options) ([]Result, error) {
	if err := checkRoot(opts.Root); err != nil {
		return nil, err
	}
	logger := opts.logger()
	matcher := reference.NewKeywordMatcher(opts.Keywords)

	folders, err := keywordFolders(opts)
	if err != nil {
		return nil, err
	}

	var results []Result
	for _, folderName := range folders {
		folder := filepath.Join(opts.Root, folderName)
		for _, path := range subtitleFiles(folder) {
			for i, line := range subfile.ReadLines(path) {
				if !strings.Contains(line, "Dialogue:") {
					continue
				}
				kw, ok := matcher.Find(line)
				if !ok {
					continue
				}
				text, ok := subfile.DisplayText(line)
				if !ok || text == "" {
					continue
				}
				result := Result{
					Folder:       folderName,
					File:         filepath.Base(path),
					Line:         i + 1,
					Reference:    kw.Descriptor(),
					Text:         text,
					TargetFolder: kw.Folder,
					Status:       textcmp.StatusNotFound,
				}
				if hit, found := FindByText(filepath.Join(opts.Root, kw.Folder), text); found {
					status, score := textcmp.Classify(text, hit.Text, opts.Threshold)
					result.Status = status
					result.Similarity = &score
					result.TargetFile = hit.File
					result.TargetText = hit.Text
					result.TargetLine = hit.Line
				}
				results = append(results, result)
			}
		}
		logger.Debug("folder scanned", logging.String("folder", folderName))
	}

	summary := Summarize(results)
	logger.Info("keyword run complete",
		logging.Int("total", summary.Total),
		logging.Int("exact", summary.Exact),
		logging.Int("similar", summary.Similar),
		logging.Int("different", summary.Different),
		logging.Int("not_found", summary.NotFound),
	)
	return results, nil
}

// keywordFolders resolves the folder list for a keyword run: the requested
// range when given, otherwise every all-digit directory under the root in
// sorted order.
func keywordFolders(opts Options) ([]string, error) {
	if len(opts.Folders) > 0 {
		names := make([]string, 0, len(opts.Folders))
		for _, number := range opts.Folders {
			names = append(names, reference.PadFolder(strconv.Itoa(number)))
		}
		return names, nil
	}

	entries, err := os.ReadDir(opts.Root)
	if err != nil {
		return nil, fmt.Errorf("list root %q: %w", opts.Root, err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() && isAllDigits(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func isAllDigits(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
