// Package core holds the data primitives shared across the simulation:
// a Json value, an ordered+hashed map, a bidirectional enum map, a sum
// type, and a step-indexed observer stream.
package core

import (
	"strconv"
	"strings"

	"github.com/iancoleman/orderedmap"
)

// JsonType tags the variant stored in a Json value.
type JsonType uint8

const (
	JsonNull JsonType = iota
	JsonFloat
	JsonBool
	JsonInt
	JsonString
	JsonArray
	JsonObject
)

// Json is a tagged-union value mirroring the wire encoding's Json variant:
// null, float64, bool, int64, utf8 string, array, or ordered string-keyed map.
type Json struct {
	kind JsonType
	f    float64
	b    bool
	i    int64
	s    string
	arr  []Json
	obj  *OrderedMap
}

func NewNull() Json          { return Json{kind: JsonNull} }
func NewFloat(v float64) Json { return Json{kind: JsonFloat, f: v} }
func NewBool(v bool) Json    { return Json{kind: JsonBool, b: v} }
func NewInt(v int64) Json    { return Json{kind: JsonInt, i: v} }
func NewString(v string) Json { return Json{kind: JsonString, s: v} }
func NewArray(v []Json) Json { return Json{kind: JsonArray, arr: v} }
func NewObject(v *OrderedMap) Json {
	if v == nil {
		v = NewOrderedMap()
	}
	return Json{kind: JsonObject, obj: v}
}

func (j Json) Type() JsonType { return j.kind }
func (j Json) IsNull() bool   { return j.kind == JsonNull }

func (j Json) Float() (float64, bool) {
	switch j.kind {
	case JsonFloat:
		return j.f, true
	case JsonInt:
		return float64(j.i), true
	}
	return 0, false
}

func (j Json) Bool() (bool, bool)     { return j.b, j.kind == JsonBool }
func (j Json) Int() (int64, bool) {
	switch j.kind {
	case JsonInt:
		return j.i, true
	case JsonFloat:
		return int64(j.f), true
	}
	return 0, false
}
func (j Json) String() (string, bool)  { return j.s, j.kind == JsonString }
func (j Json) Array() ([]Json, bool)   { return j.arr, j.kind == JsonArray }
func (j Json) Object() (*OrderedMap, bool) { return j.obj, j.kind == JsonObject }

// Query resolves a dotted/bracketed path ("movementSettings.walkSpeed",
// "drops[0].type") against the value, returning def when any segment is
// missing or of the wrong kind, in the manner of StarJson.hpp's query
// family.
func (j Json) Query(path string, def Json) Json {
	if path == "" {
		return j
	}
	cur := j
	for _, seg := range splitPath(path) {
		if seg.isIndex {
			arr, ok := cur.Array()
			if !ok || seg.index < 0 || seg.index >= len(arr) {
				return def
			}
			cur = arr[seg.index]
			continue
		}
		obj, ok := cur.Object()
		if !ok {
			return def
		}
		next, present := obj.Get(seg.key)
		if !present {
			return def
		}
		cur = next
	}
	return cur
}

type pathSegment struct {
	key     string
	index   int
	isIndex bool
}

func splitPath(path string) []pathSegment {
	var segs []pathSegment
	for _, dotPart := range strings.Split(path, ".") {
		rest := dotPart
		for {
			open := strings.IndexByte(rest, '[')
			if open < 0 {
				if rest != "" {
					segs = append(segs, pathSegment{key: rest})
				}
				break
			}
			if open > 0 {
				segs = append(segs, pathSegment{key: rest[:open]})
			}
			close := strings.IndexByte(rest[open:], ']')
			if close < 0 {
				break
			}
			idxStr := rest[open+1 : open+close]
			idx, err := strconv.Atoi(idxStr)
			if err == nil {
				segs = append(segs, pathSegment{index: idx, isIndex: true})
			}
			rest = rest[open+close+1:]
			if rest == "" {
				break
			}
		}
	}
	return segs
}

// OrderedMap is a string-keyed map that preserves insertion order, wrapping
// github.com/iancoleman/orderedmap (a teacher dependency) with a Json-typed
// accessor layer on top of its any-typed storage.
type OrderedMap struct {
	m *orderedmap.OrderedMap
}

func NewOrderedMap() *OrderedMap {
	return &OrderedMap{m: orderedmap.New()}
}

func (o *OrderedMap) Set(key string, value Json) {
	o.m.Set(key, value)
}

func (o *OrderedMap) Get(key string) (Json, bool) {
	raw, ok := o.m.Get(key)
	if !ok {
		return Json{}, false
	}
	value, ok := raw.(Json)
	return value, ok
}

func (o *OrderedMap) Delete(key string) { o.m.Delete(key) }

func (o *OrderedMap) Keys() []string { return o.m.Keys() }

func (o *OrderedMap) Len() int { return len(o.m.Keys()) }
