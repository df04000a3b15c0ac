// Package mrdf is the editing session for a single MRDF record file.
//
// A Session owns one buffer, the active profile and the registry it was
// chosen from. Sessions are independent; nothing is shared between them.
package mrdf

import (
	"bytes"
	"os"

	"github.com/google/uuid"
	"github.com/vuuvv/errors"

	"github.com/joshuapare/mrdfkit/internal/logger"
	"github.com/joshuapare/mrdfkit/mrdf/codec"
	"github.com/joshuapare/mrdfkit/mrdf/detect"
	"github.com/joshuapare/mrdfkit/mrdf/edit"
	"github.com/joshuapare/mrdfkit/mrdf/profile"
	"github.com/joshuapare/mrdfkit/mrdf/record"
	"github.com/joshuapare/mrdfkit/pkg/types"
)

// BackupSuffix is appended to the file path by WriteBackup.
const BackupSuffix = ".bak"

// Options configures a Session.
type Options struct {
	// Registry defaults to profile.Builtin().
	Registry *profile.Registry
	// Specs are user profiles. Each is registered and contributes its detection rules.
	Specs []profile.Spec
	// DefaultProfile replaces the registry default when no detection rule matches.
	DefaultProfile string
}

// Session edits one file at a time.
//
// NOT thread-safe.
type Session struct {
	id         string
	reg        *profile.Registry
	det        *detect.Detector
	fallback   string
	profile    types.Profile
	detectedBy string
	path       string
	buf        *edit.Buffer
	size       int
	saved      []byte
}

// NewSession builds a session with nothing open.
func NewSession(opts Options) (*Session, error) {
	reg := opts.Registry
	if reg == nil {
		reg = profile.Builtin()
	}
	for _, s := range opts.Specs {
		if err := reg.Register(s.Profile); err != nil {
			return nil, errors.Wrapf(err, "register %s", s.Source)
		}
	}
	det, err := detect.New(reg, opts.Specs...)
	if err != nil {
		return nil, err
	}
	if opts.DefaultProfile != "" {
		if _, ok := reg.Lookup(opts.DefaultProfile); !ok {
			return nil, types.NotFound("profile", opts.DefaultProfile)
		}
	}
	return &Session{
		id:       uuid.NewString(),
		reg:      reg,
		det:      det,
		fallback: opts.DefaultProfile,
		profile:  reg.Default(),
	}, nil
}

// LoadSpecs loads the YAML profiles found in dirs, in order.
func LoadSpecs(dirs []string) ([]profile.Spec, error) {
	var out []profile.Spec
	for _, d := range dirs {
		specs, err := profile.LoadDir(d)
		if err != nil {
			return nil, err
		}
		out = append(out, specs...)
	}
	return out, nil
}

// ID identifies the session in logs.
func (s *Session) ID() string { return s.id }

// Registry returns the profiles available to SetProfile.
func (s *Session) Registry() *profile.Registry { return s.reg }

// Detector returns the detector used by Open and Load.
func (s *Session) Detector() *detect.Detector { return s.det }

// Profile returns the active profile.
func (s *Session) Profile() types.Profile { return s.profile }

// DetectedBy names the rule that picked the profile, or "manual" after SetProfile.
func (s *Session) DetectedBy() string { return s.detectedBy }

// Path returns the file the session saves to. It is empty after Load.
func (s *Session) Path() string { return s.path }

// IsOpen reports whether a buffer is loaded.
func (s *Session) IsOpen() bool { return s.buf != nil }

// Size returns the buffer length fixed at open.
func (s *Session) Size() int { return s.size }

// Buffer exposes the edit buffer for read-only inspection.
func (s *Session) Buffer() *edit.Buffer { return s.buf }

// Unsaved reports whether the working bytes differ from the last open or save.
func (s *Session) Unsaved() bool {
	return s.buf != nil && !bytes.Equal(s.saved, s.buf.View())
}

// Open reads path and detects its profile. On error the session is unchanged.
func (s *Session) Open(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("open failed", "session", s.id, "path", path, "error", err)
		return errors.WithStack(err)
	}
	s.load(path, path, data)
	return nil
}

// Load uses data as if it had been read from hint. The session has no path
// to save to until SaveAs.
func (s *Session) Load(hint string, data []byte) {
	s.load("", hint, data)
}

func (s *Session) load(path, hint string, data []byte) {
	m := s.det.Explain(hint, data)
	if m.Rule == detect.DefaultRule && s.fallback != "" {
		m.Profile = s.reg.Resolve(s.fallback)
	}
	s.path = path
	s.buf = edit.Open(data)
	s.saved = s.buf.Working()
	s.size = len(data)
	s.profile = m.Profile
	s.detectedBy = m.Rule
	logger.Info("opened", "session", s.id, "path", hint, "size", len(data),
		"profile", m.Profile.Key(), "rule", m.Rule)
}

// SetProfile switches the active profile. Pending edits keep their offsets.
func (s *Session) SetProfile(key string) error {
	p, ok := s.reg.Lookup(key)
	if !ok {
		return types.NotFound("profile", key)
	}
	s.profile = p
	s.detectedBy = "manual"
	logger.Debug("profile set", "session", s.id, "profile", key)
	return nil
}

// Fields parses the working buffer with the active profile.
func (s *Session) Fields() record.Result {
	if s.buf == nil {
		return record.Result{}
	}
	return record.Parse(s.buf.View(), s.profile.Fields())
}

// Def returns the named field of the active profile.
func (s *Session) Def(name string) (types.FieldDef, error) {
	d, ok := s.profile.Field(name)
	if !ok {
		return types.FieldDef{}, types.NotFound("field", name)
	}
	return d, nil
}

// Field decodes the named field from the working buffer.
func (s *Session) Field(name string) (types.FieldInstance, error) {
	if s.buf == nil {
		return types.FieldInstance{}, types.ErrNoFile
	}
	d, err := s.Def(name)
	if err != nil {
		return types.FieldInstance{}, err
	}
	v, raw, err := codec.Decode(s.buf.View(), d.Offset, d.Kind)
	if err != nil {
		return types.FieldInstance{}, err
	}
	return types.FieldInstance{Def: d, Offset: d.Offset, Raw: raw, Value: v}, nil
}

func (s *Session) mutate(op string, kv []any, fn func(*edit.Buffer) error) error {
	if s.buf == nil {
		return types.ErrNoFile
	}
	if err := fn(s.buf); err != nil {
		logger.Debug(op+" rejected", append([]any{"session", s.id, "error", err}, kv...)...)
		return err
	}
	logger.Debug(op, append([]any{"session", s.id}, kv...)...)
	return nil
}

// Apply parses literal for the named field and writes it.
func (s *Session) Apply(name, literal string) error {
	d, err := s.Def(name)
	if err != nil {
		return err
	}
	return s.mutate("apply", []any{"field", name, "value", literal}, func(b *edit.Buffer) error {
		return b.ApplyLiteral(d, literal)
	})
}

// ApplyValue writes v to the named field.
func (s *Session) ApplyValue(name string, v types.Value) error {
	d, err := s.Def(name)
	if err != nil {
		return err
	}
	return s.mutate("apply", []any{"field", name, "value", v.String()}, func(b *edit.Buffer) error {
		return b.ApplyField(d, v)
	})
}

// ApplyBits composes the checked masks of a bitmask field and writes the result.
func (s *Session) ApplyBits(name string, checked []uint32) error {
	d, err := s.Def(name)
	if err != nil {
		return err
	}
	return s.mutate("apply bits", []any{"field", name, "bits", checked}, func(b *edit.Buffer) error {
		return b.ApplyBitmask(d, checked)
	})
}

// Revert restores the named field from the original bytes.
func (s *Session) Revert(name string) error {
	d, err := s.Def(name)
	if err != nil {
		return err
	}
	return s.mutate("revert", []any{"field", name}, func(b *edit.Buffer) error {
		return b.RevertField(d)
	})
}

// Overwrite replaces length bytes at start with a hex literal such as "DE AD".
func (s *Session) Overwrite(start, length int, hex string) error {
	return s.mutate("overwrite", []any{"offset", start, "length", length}, func(b *edit.Buffer) error {
		return b.OverwriteHex(start, length, hex)
	})
}

// RevertBytes restores length bytes at start from the original.
func (s *Session) RevertBytes(start, length int) error {
	return s.mutate("revert bytes", []any{"offset", start, "length", length}, func(b *edit.Buffer) error {
		return b.RevertRange(start, length)
	})
}

// Discard drops every edit since open.
func (s *Session) Discard() error {
	return s.mutate("discard", nil, func(b *edit.Buffer) error {
		b.DiscardAll()
		return nil
	})
}

// Save writes the working buffer back to the opened path.
func (s *Session) Save() error {
	if s.buf == nil || s.path == "" {
		return types.ErrNoFile
	}
	return s.write(s.path)
}

// SaveAs writes the working buffer to path and makes it the session's path.
// The original snapshot is kept, so Discard still returns to the state at open.
func (s *Session) SaveAs(path string) error {
	if s.buf == nil {
		return types.ErrNoFile
	}
	if err := s.write(path); err != nil {
		return err
	}
	s.path = path
	return nil
}

func (s *Session) write(path string) error {
	if s.buf.Len() != s.size {
		return types.ErrSizeChanged
	}
	if err := writeFileLocked(path, s.buf.View()); err != nil {
		logger.Error("save failed", "session", s.id, "path", path, "error", err)
		return err
	}
	s.saved = s.buf.Working()
	logger.Info("saved", "session", s.id, "path", path, "size", s.size,
		"pending", s.buf.PendingCount(), "dirty_ranges", len(s.buf.DirtyRanges()))
	return nil
}

// WriteBackup writes the original snapshot next to the file as <path>.bak and
// returns the backup path.
func (s *Session) WriteBackup() (string, error) {
	if s.buf == nil || s.path == "" {
		return "", types.ErrNoFile
	}
	dst := s.path + BackupSuffix
	if err := writeFileLocked(dst, s.buf.Original()); err != nil {
		return "", err
	}
	logger.Info("backup written", "session", s.id, "path", dst)
	return dst, nil
}

// writeFileLocked replaces path's contents with data while holding an
// exclusive advisory lock, and syncs before returning.
func writeFileLocked(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return errors.WithStack(err)
	}
	defer f.Close()

	if err := lockFile(f); err != nil {
		return errors.Wrapf(err, "lock %s", path)
	}
	defer unlockFile(f)

	if err := f.Truncate(int64(len(data))); err != nil {
		return errors.WithStack(err)
	}
	if _, err := f.WriteAt(data, 0); err != nil {
		return errors.WithStack(err)
	}
	if err := f.Sync(); err != nil {
		return errors.WithStack(err)
	}
	return nil
}
