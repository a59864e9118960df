package catalog

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/stowage-dev/stowage/pkg/errors"
)

// Logger receives notices about skipped catalog lines.
// It matches the signature of charmbracelet/log's Debugf.
type Logger func(format string, args ...any)

func nopLogger(string, ...any) {}

// Catalog file formats accepted by LoadFileAs.
const (
	FormatAuto = "auto"
	FormatText = "text"
	FormatTOML = "toml"
)

// LoadFile reads a catalog from path, detecting the format by extension:
// ".toml" selects the TOML format, everything else the plain text format.
func LoadFile(path string, logf Logger) (*Catalog, error) {
	return LoadFileAs(path, FormatAuto, logf)
}

// LoadFileAs reads a catalog from path in the given format. FormatAuto and
// the empty string fall back to extension detection.
func LoadFileAs(path, format string, logf Logger) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open catalog %s", path)
	}
	defer f.Close()

	switch format {
	case "", FormatAuto:
		if strings.EqualFold(filepath.Ext(path), ".toml") {
			return ReadTOML(f)
		}
		return Read(f, logf)
	case FormatText:
		return Read(f, logf)
	case FormatTOML:
		return ReadTOML(f)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid catalog format: %q (must be one of: auto, text, toml)", format)
	}
}

// Read parses the plain text catalog format: one item per line,
// "<id> <name...>". Blank lines and lines starting with '#' are skipped.
// Malformed lines are skipped with a notice to logf.
func Read(r io.Reader, logf Logger) (*Catalog, error) {
	if logf == nil {
		logf = nopLogger
	}

	var items []Item
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		id, name, ok := splitItemLine(line)
		if !ok {
			logf("skipping malformed catalog line %d: %q", lineNo, line)
			continue
		}
		if err := errors.ValidateItemID(id); err != nil {
			logf("skipping catalog line %d: %v", lineNo, err)
			continue
		}
		if err := errors.ValidateItemName(name); err != nil {
			logf("skipping catalog line %d: %v", lineNo, err)
			continue
		}
		items = append(items, Item{ID: id, Name: name})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "read catalog")
	}
	return New(items), nil
}

// splitItemLine splits "<id> <name...>" into its parts. The name keeps
// interior whitespace but is trimmed at both ends.
func splitItemLine(line string) (int, string, bool) {
	fields := strings.SplitN(line, " ", 2)
	if len(fields) != 2 {
		return 0, "", false
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, "", false
	}
	name := strings.TrimSpace(fields[1])
	if name == "" {
		return 0, "", false
	}
	return id, name, true
}

// tomlFile mirrors the TOML catalog layout:
//
//	[[item]]
//	id = 1
//	name = "Torch"
//	weight = 2
type tomlFile struct {
	Items []Item `toml:"item"`
}

// ReadTOML parses the TOML catalog format. Entries keep file order, so
// first-match lookup behaves the same as for the text format.
func ReadTOML(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "read catalog")
	}
	var file tomlFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "parse TOML catalog")
	}
	for _, it := range file.Items {
		if err := errors.ValidateItemID(it.ID); err != nil {
			return nil, err
		}
		if err := errors.ValidateItemName(it.Name); err != nil {
			return nil, err
		}
		if it.Weight < 0 {
			return nil, errors.New(errors.ErrCodeInvalidCatalog, "item %d has negative weight %d", it.ID, it.Weight)
		}
	}
	return New(file.Items), nil
}
