package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"go.uber.org/multierr"

	"github.com/lc/hudconf/internal/filesys"
	"github.com/lc/hudconf/internal/hud"
	"github.com/lc/hudconf/internal/log"
	"github.com/lc/hudconf/internal/record"
)

var (
	// ErrMalformedFile is returned when the config file cannot be parsed at all.
	ErrMalformedFile = errors.New("malformed configuration file")
	// ErrWriteConfig is returned when the config file cannot be written.
	ErrWriteConfig = errors.New("writing configuration file")
)

const (
	// DefaultModName names the config file under the config directory.
	DefaultModName = "betterf3"
	// ConfigDir is the directory, relative to the game root, holding config files.
	ConfigDir = "config"

	filePerm = 0o644
	dirPerm  = 0o755
)

// Top-level document keys.
const (
	KeyModules      = "modules"
	KeyModulesLeft  = "modules_left"
	KeyModulesRight = "modules_right"
	KeyGeneral      = "general"
)

// Store reads and writes the overlay configuration file.
type Store struct {
	fs       filesys.FileOps
	root     string
	modName  string
	fileType FileType
}

// New creates a store rooted at the game directory root.
func New(fsys filesys.FileOps, root, modName string) *Store {
	return &Store{
		fs:      fsys,
		root:    root,
		modName: modName,
	}
}

// Default creates a store on the local disk for the default mod name.
func Default(root string) *Store {
	return New(filesys.OS(), root, DefaultModName)
}

// Path returns the canonical location of the file for t.
func (s *Store) Path(t FileType) string {
	return filepath.Join(s.root, ConfigDir, s.modName+"."+t.Ext())
}

// FileType returns the format Save writes, which is the one last loaded.
func (s *Store) FileType() FileType { return s.fileType }

// Report summarizes one Load.
type Report struct {
	Path   string
	Format FileType
	// Absent is set when there was no file and the defaults were kept.
	Absent bool
	Schema hud.Schema
	// Dropped counts records that were skipped.
	Dropped int
	// Placeholders counts modules replaced by a disabled spacer.
	Placeholders int
	// Issues aggregates a description of every degraded record.
	Issues error
}

func (r *Report) drop(err error) {
	r.Dropped++
	r.issue(err)
}

func (r *Report) issue(err error) {
	r.Issues = multierr.Append(r.Issues, err)
	log.Warn("config: degraded record", "path", r.Path, "error", err)
}

// Load reads the file for t into st. A missing file leaves st untouched.
// Only an unreadable or unparsable file is returned as an error;
// individual bad records are skipped and listed in the report.
func (s *Store) Load(st *State, t FileType) (*Report, error) {
	s.fileType = t
	path := s.Path(t)
	rep := &Report{Path: path, Format: t}

	data, err := s.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug("config: no file, keeping defaults", "path", path)
			rep.Absent = true
			return rep, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	doc, err := t.decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedFile, path, err)
	}

	_, legacy := doc[KeyModules]
	if legacy {
		rep.Schema = hud.Legacy
		loadLegacyModules(st, doc, rep)
	} else {
		rep.Schema = hud.Current
		loadColumns(st, doc, rep)
	}

	if general, ok := doc.Sub(KeyGeneral); ok {
		if legacy {
			loadLegacyOrder(st, general)
		}
		st.General = readGeneral(general)
	} else if doc.Has(KeyGeneral) {
		rep.issue(fmt.Errorf("%s is not a table", KeyGeneral))
	}

	st.loaded()
	log.Info("config: loaded", "path", path, "schema", rep.Schema.String(),
		"dropped", rep.Dropped, "placeholders", rep.Placeholders)
	return rep, nil
}

// Save writes st to the file of the last loaded format.
func (s *Store) Save(st *State) error {
	return s.SaveAs(st, s.fileType)
}

// SaveAs writes st in the current schema using format t, and makes t the
// format of subsequent saves. Failures are returned wrapped in
// ErrWriteConfig; nothing is retried.
func (s *Store) SaveAs(st *State, t FileType) error {
	s.fileType = t
	path := s.Path(t)

	data, err := t.encode(document(st))
	if err != nil {
		return fmt.Errorf("%w: encoding %s: %w", ErrWriteConfig, t, err)
	}
	if err := s.fs.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("%w: creating config directory: %w", ErrWriteConfig, err)
	}
	if err := filesys.AtomicWrite(s.fs, path, data, filePerm); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteConfig, path, err)
	}
	log.Info("config: saved", "path", path)
	return nil
}

// document renders st in the current schema.
func document(st *State) record.Record {
	return record.New().
		Set(KeyModulesLeft, exportColumn(st.Left)).
		Set(KeyModulesRight, exportColumn(st.Right)).
		Set(KeyGeneral, st.General.toRecord())
}

func exportColumn(ms []hud.Module) []record.Record {
	out := make([]record.Record, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.Export())
	}
	return out
}
