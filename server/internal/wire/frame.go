package wire

// WriteFrame writes a length-prefixed frame: a VLQU byte count followed by
// the payload. Used to delimit individual entity deltas inside an
// EntityUpdate batch so a reader can skip a delta it doesn't recognize
// without losing sync on the rest of the batch.
func WriteFrame(w *Writer, payload []byte) {
	w.WriteVLQU(uint64(len(payload)))
	w.WriteBytes(payload)
}

// ReadFrame reads one length-prefixed frame and returns its payload bytes.
func ReadFrame(r *Reader) ([]byte, error) {
	n, err := r.ReadVLQU()
	if err != nil {
		return nil, err
	}
	return r.ReadBytes(int(n))
}
