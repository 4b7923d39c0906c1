package wire

import (
	"fmt"

	"sandboxcore/server/internal/core"
)

// Json tag bytes: a type byte then payload.
const (
	jsonTagNull byte = iota
	jsonTagFloat
	jsonTagBool
	jsonTagInt
	jsonTagString
	jsonTagArray
	jsonTagObject
)

// WriteJson encodes a core.Json value as a tagged union: a type byte
// followed by the type-specific payload (arrays/objects recurse).
func WriteJson(w *Writer, v core.Json) {
	switch v.Type() {
	case core.JsonNull:
		w.WriteByte(jsonTagNull)
	case core.JsonFloat:
		w.WriteByte(jsonTagFloat)
		f, _ := v.Float()
		w.WriteFloat32(float32(f))
	case core.JsonBool:
		w.WriteByte(jsonTagBool)
		b, _ := v.Bool()
		if b {
			w.WriteByte(1)
		} else {
			w.WriteByte(0)
		}
	case core.JsonInt:
		w.WriteByte(jsonTagInt)
		i, _ := v.Int()
		w.WriteVLQI(i)
	case core.JsonString:
		w.WriteByte(jsonTagString)
		s, _ := v.String()
		w.WriteString(s)
	case core.JsonArray:
		w.WriteByte(jsonTagArray)
		arr, _ := v.Array()
		w.WriteVLQU(uint64(len(arr)))
		for _, elem := range arr {
			WriteJson(w, elem)
		}
	case core.JsonObject:
		w.WriteByte(jsonTagObject)
		obj, _ := v.Object()
		keys := obj.Keys()
		w.WriteVLQU(uint64(len(keys)))
		for _, key := range keys {
			w.WriteString(key)
			value, _ := obj.Get(key)
			WriteJson(w, value)
		}
	default:
		w.WriteByte(jsonTagNull)
	}
}

// ReadJson decodes a tagged-union Json value. Readers must tolerate
// trailing bytes from newer senders (the caller decides how much of the
// buffer this value occupies via the surrounding frame) and an unknown tag
// byte is reported as a schema mismatch rather than silently coerced.
func ReadJson(r *Reader) (core.Json, error) {
	tag, err := r.ReadByte()
	if err != nil {
		return core.Json{}, err
	}
	switch tag {
	case jsonTagNull:
		return core.NewNull(), nil
	case jsonTagFloat:
		f, err := r.ReadFloat32()
		if err != nil {
			return core.Json{}, err
		}
		return core.NewFloat(float64(f)), nil
	case jsonTagBool:
		b, err := r.ReadByte()
		if err != nil {
			return core.Json{}, err
		}
		return core.NewBool(b != 0), nil
	case jsonTagInt:
		i, err := r.ReadVLQI()
		if err != nil {
			return core.Json{}, err
		}
		return core.NewInt(i), nil
	case jsonTagString:
		s, err := r.ReadString()
		if err != nil {
			return core.Json{}, err
		}
		return core.NewString(s), nil
	case jsonTagArray:
		n, err := r.ReadVLQU()
		if err != nil {
			return core.Json{}, err
		}
		elems := make([]core.Json, 0, n)
		for i := uint64(0); i < n; i++ {
			elem, err := ReadJson(r)
			if err != nil {
				return core.Json{}, err
			}
			elems = append(elems, elem)
		}
		return core.NewArray(elems), nil
	case jsonTagObject:
		n, err := r.ReadVLQU()
		if err != nil {
			return core.Json{}, err
		}
		obj := core.NewOrderedMap()
		for i := uint64(0); i < n; i++ {
			key, err := r.ReadString()
			if err != nil {
				return core.Json{}, err
			}
			value, err := ReadJson(r)
			if err != nil {
				return core.Json{}, err
			}
			obj.Set(key, value)
		}
		return core.NewObject(obj), nil
	default:
		return core.Json{}, fmt.Errorf("wire: unknown json tag %d", tag)
	}
}
