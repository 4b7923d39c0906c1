package netelem

import (
	"time"

	"sandboxcore/server/internal/wire"
)

// Bool is a non-interpolating boolean leaf.
type Bool struct {
	counter *VersionCounter
	version uint64
	value   bool
}

func NewBool(counter *VersionCounter) *Bool { return &Bool{counter: counter} }

func (b *Bool) Get() bool { return b.value }

// Set stamps the leaf dirty only if the value actually changed, so
// WriteDelta's "version increases iff the stored value differs" invariant
// holds even across repeated identical writes.
func (b *Bool) Set(v bool) {
	if b.value == v && b.version != 0 {
		return
	}
	b.value = v
	b.version = b.counter.Next()
}

func (b *Bool) MaxVersion() uint64 { return b.version }

func (b *Bool) WriteFull(w *wire.Writer) {
	if b.value {
		w.WriteByte(1)
	} else {
		w.WriteByte(0)
	}
}

func (b *Bool) WriteDelta(w *wire.Writer, fromVersion uint64) (bool, uint64) {
	if b.version <= fromVersion {
		return false, b.version
	}
	b.WriteFull(w)
	return true, b.version
}

func (b *Bool) ReadDelta(r *wire.Reader, _ time.Duration) error {
	v, err := r.ReadByte()
	if err != nil {
		return err
	}
	b.value = v != 0
	return nil
}

func (b *Bool) Tick(time.Duration) {}

// Int is a non-interpolating signed integer leaf (also used for enums,
// which callers store as their underlying integer code).
type Int struct {
	counter *VersionCounter
	version uint64
	value   int64
}

func NewInt(counter *VersionCounter) *Int { return &Int{counter: counter} }

func (i *Int) Get() int64 { return i.value }

func (i *Int) Set(v int64) {
	if i.value == v && i.version != 0 {
		return
	}
	i.value = v
	i.version = i.counter.Next()
}

func (i *Int) MaxVersion() uint64 { return i.version }

func (i *Int) WriteFull(w *wire.Writer) { w.WriteVLQI(i.value) }

func (i *Int) WriteDelta(w *wire.Writer, fromVersion uint64) (bool, uint64) {
	if i.version <= fromVersion {
		return false, i.version
	}
	i.WriteFull(w)
	return true, i.version
}

func (i *Int) ReadDelta(r *wire.Reader, _ time.Duration) error {
	v, err := r.ReadVLQI()
	if err != nil {
		return err
	}
	i.value = v
	return nil
}

func (i *Int) Tick(time.Duration) {}

// String is a non-interpolating UTF-8 string leaf.
type String struct {
	counter *VersionCounter
	version uint64
	value   string
}

func NewString(counter *VersionCounter) *String { return &String{counter: counter} }

func (s *String) Get() string { return s.value }

func (s *String) Set(v string) {
	if s.value == v && s.version != 0 {
		return
	}
	s.value = v
	s.version = s.counter.Next()
}

func (s *String) MaxVersion() uint64 { return s.version }

func (s *String) WriteFull(w *wire.Writer) { w.WriteString(s.value) }

func (s *String) WriteDelta(w *wire.Writer, fromVersion uint64) (bool, uint64) {
	if s.version <= fromVersion {
		return false, s.version
	}
	s.WriteFull(w)
	return true, s.version
}

func (s *String) ReadDelta(r *wire.Reader, _ time.Duration) error {
	v, err := r.ReadString()
	if err != nil {
		return err
	}
	s.value = v
	return nil
}

func (s *String) Tick(time.Duration) {}
