package simfile

import (
	"os"
	"path/filepath"

	"github.com/Conceptual-Machines/simfile-core/internal/notefield"
	"github.com/Conceptual-Machines/simfile-core/internal/rational"
	"github.com/Conceptual-Machines/simfile-core/internal/simerrors"
	"github.com/google/uuid"
)

// MetaEntry preserves one unrecognized tag's key/value in the order it
// appeared in the source file — Go map iteration order is undefined, and
// diagnostic printing wants source order even though the Meta map itself
// does not (SPEC_FULL.md §4).
type MetaEntry struct {
	Key   string
	Value string
}

// Simfile is the top-level parsed value: metadata, the global timing
// schedule, the freeform meta map, and the charts resolved against that
// schedule (spec.md §3).
type Simfile struct {
	ID uuid.UUID // correlation id only, never used for equality/ordering

	// BaseDir is the simfile's containing directory, threaded in
	// explicitly rather than via a process-wide working-directory
	// mutation (Design Notes §9). Asset accessors resolve relative paths
	// against it.
	BaseDir string

	Title    string
	Subtitle string
	Artist   string
	Genre    string
	Credit   string

	MusicPath      string
	BannerPath     string
	BackgroundPath string
	CDTitlePath    string

	SampleStart  rational.Time
	SampleLength rational.Time
	DisplayBPM   DisplayBPM
	Offset       rational.Time

	BPMSegments  []notefield.MeasureBPMPair
	StopSegments []notefield.MeasureMeasurePair

	Meta      map[string]string
	MetaOrder []MetaEntry

	Charts []*AugmentedChart
}

// New builds an empty Simfile ready for the parser to populate.
func New(baseDir string) *Simfile {
	return &Simfile{
		ID:      uuid.New(),
		BaseDir: baseDir,
		Meta:    make(map[string]string),
	}
}

// SetMeta records an unrecognized tag, preserving first-seen order.
func (s *Simfile) SetMeta(key, value string) {
	if _, exists := s.Meta[key]; !exists {
		s.MetaOrder = append(s.MetaOrder, MetaEntry{Key: key, Value: value})
	}
	s.Meta[key] = value
}

// Chart looks up a chart by difficulty name.
func (s *Simfile) Chart(diffName string) (*AugmentedChart, bool) {
	for _, c := range s.Charts {
		if c.DiffName == diffName {
			return c, true
		}
	}
	return nil, false
}

// resolveAsset joins a possibly-relative path against BaseDir.
func (s *Simfile) resolveAsset(rel string) (string, error) {
	if rel == "" {
		return "", simerrors.NewStructural("asset path is empty")
	}
	if filepath.IsAbs(rel) {
		return rel, nil
	}
	return filepath.Join(s.BaseDir, rel), nil
}

// openAsset lazily opens an asset file; the returned handle is the
// caller's to close (spec.md §6).
func (s *Simfile) openAsset(rel string) (*os.File, error) {
	full, err := s.resolveAsset(rel)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(full)
	if err != nil {
		return nil, simerrors.NewIO(full, err)
	}
	return f, nil
}

// MusicFile lazily opens the MUSIC asset.
func (s *Simfile) MusicFile() (*os.File, error) { return s.openAsset(s.MusicPath) }

// BannerFile lazily opens the BANNER asset.
func (s *Simfile) BannerFile() (*os.File, error) { return s.openAsset(s.BannerPath) }

// BackgroundFile lazily opens the BACKGROUND asset.
func (s *Simfile) BackgroundFile() (*os.File, error) { return s.openAsset(s.BackgroundPath) }

// CDTitleFile lazily opens the CDTITLE asset.
func (s *Simfile) CDTitleFile() (*os.File, error) { return s.openAsset(s.CDTitlePath) }
