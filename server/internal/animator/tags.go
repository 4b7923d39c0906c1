package animator

import (
	"strconv"
	"strings"

	"sandboxcore/server/internal/core"
	"sandboxcore/server/internal/netelem"
)

// tagOverlay is the global tag dictionary plus per-part overlays applyPartTags
// substitutes into `<token>` placeholders in a part's image path. Stored as
// NetHashMaps so only the keys that actually change travel the wire.
type tagOverlay struct {
	counter *netelem.VersionCounter
	global  *netelem.HashMap
	parts   map[string]*netelem.HashMap
}

func newTagOverlay(counter *netelem.VersionCounter, group *netelem.Group, partNames []string) *tagOverlay {
	t := &tagOverlay{
		counter: counter,
		global:  netelem.NewHashMap(counter),
		parts:   make(map[string]*netelem.HashMap, len(partNames)),
	}
	group.Add(t.global)
	for _, name := range partNames {
		hm := netelem.NewHashMap(counter)
		t.parts[name] = hm
		group.Add(hm)
	}
	return t
}

func (t *tagOverlay) setGlobalTag(name string, value string, present bool) {
	if !present {
		t.global.Delete(name)
		return
	}
	t.global.Set(name, core.NewString(value))
}

func (t *tagOverlay) setPartTag(part, name, value string, present bool) {
	hm, ok := t.parts[part]
	if !ok {
		return
	}
	if !present {
		hm.Delete(name)
		return
	}
	hm.Set(name, core.NewString(value))
}

func (t *tagOverlay) globalTag(name string) (string, bool) {
	v, ok := t.global.Get(name)
	if !ok {
		return "", false
	}
	return jsonString(v)
}

func (t *tagOverlay) partTag(part, name string) (string, bool) {
	hm, ok := t.parts[part]
	if !ok {
		return "", false
	}
	v, ok := hm.Get(name)
	if !ok {
		return "", false
	}
	return jsonString(v)
}

func jsonString(v core.Json) (string, bool) {
	return v.String()
}

// applyPartTags substitutes every `<token>` occurrence in path using the
// part's tag overlay first, falling back to the global overlay. `<frame>`
// is special-cased to the caller-supplied current frame index, 1-based.
func (t *tagOverlay) applyPartTags(part, path string, frame int) string {
	var out strings.Builder
	for i := 0; i < len(path); {
		if path[i] != '<' {
			out.WriteByte(path[i])
			i++
			continue
		}
		end := strings.IndexByte(path[i:], '>')
		if end < 0 {
			out.WriteString(path[i:])
			break
		}
		token := path[i+1 : i+end]
		i += end + 1

		if token == "frame" {
			out.WriteString(strconv.Itoa(frame + 1))
			continue
		}
		if value, ok := t.partTag(part, token); ok {
			out.WriteString(value)
			continue
		}
		if value, ok := t.globalTag(token); ok {
			out.WriteString(value)
			continue
		}
		out.WriteByte('<')
		out.WriteString(token)
		out.WriteByte('>')
	}
	return out.String()
}
