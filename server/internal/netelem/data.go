package netelem

import (
	"time"

	"sandboxcore/server/internal/core"
	"sandboxcore/server/internal/wire"
)

// Data is a blob leaf serialised via the Json tagged union. It snaps on
// receipt — data leaves never interpolate.
type Data struct {
	counter *VersionCounter
	version uint64
	value   core.Json
	rules   NetCompatibilityRules
}

func NewData(counter *VersionCounter, rules NetCompatibilityRules) *Data {
	return &Data{counter: counter, value: core.NewNull(), rules: rules}
}

func (d *Data) Get() core.Json { return d.value }

func (d *Data) Set(v core.Json) {
	d.value = v
	d.version = d.counter.Next()
}

func (d *Data) MaxVersion() uint64 { return d.version }

func (d *Data) WriteFull(w *wire.Writer) {
	inner := wire.NewWriter()
	wire.WriteJson(inner, d.value)
	wire.WriteFrame(w, inner.Bytes())
}

func (d *Data) WriteDelta(w *wire.Writer, fromVersion uint64) (bool, uint64) {
	if d.version <= fromVersion {
		return false, d.version
	}
	d.WriteFull(w)
	return true, d.version
}

func (d *Data) ReadDelta(r *wire.Reader, _ time.Duration) error {
	payload, err := wire.ReadFrame(r)
	if err != nil {
		return err
	}
	inner := wire.NewReader(payload)
	value, err := wire.ReadJson(inner)
	if err != nil {
		return err
	}
	if !d.rules.TolerateTrailingBytes && inner.Remaining() != 0 {
		return wire.ErrTruncated
	}
	d.value = value
	return nil
}

func (d *Data) Tick(time.Duration) {}
