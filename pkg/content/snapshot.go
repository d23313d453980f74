package content

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"sync"
)

var (
	allowlistOnce sync.Once
	allowlist     map[string]int // json name -> Patch field index
)

// Fields returns the snapshot field names Import recognises.
func Fields() []string {
	t := reflect.TypeFor[Patch]()
	names := make([]string, 0, t.NumField())
	for i := range t.NumField() {
		names = append(names, jsonName(t.Field(i)))
	}
	return names
}

// Import decodes a project snapshot and merges it over Default.
//
// Unknown keys are ignored and a recognised key whose value has the wrong
// type is skipped, so one bad field never discards the rest. When data is not
// a JSON object the result is Default and the error wraps ErrMalformedSnapshot.
// The returned Newsletter is always usable.
func Import(data []byte) (Newsletter, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Default(), fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}
	if raw == nil {
		return Default(), fmt.Errorf("%w: null", ErrMalformedSnapshot)
	}
	return Normalize(Merge(Default(), decodePatch(raw))), nil
}

// Normalize repairs structural problems a hand-edited or foreign snapshot can
// carry: an unknown feedback style, id counters behind existing ids, too many
// feedback options and a selection pointing at a missing article.
func Normalize(n Newsletter) Newsletter {
	out := n.Clone()
	if !out.FeedbackStyle.Valid() {
		out.FeedbackStyle = StyleEmoji
	}
	if out.Articles == nil {
		out.Articles = []Article{}
	}
	if out.FeedbackOptions == nil {
		out.FeedbackOptions = []FeedbackOption{}
	}
	if len(out.FeedbackOptions) > MaxFeedbackOptions {
		out.FeedbackOptions = out.FeedbackOptions[:MaxFeedbackOptions]
	}
	if m := maxArticleID(out.Articles); out.NextID <= m {
		out.NextID = m + 1
	}
	for _, o := range out.FeedbackOptions {
		if o.ID >= out.NextFeedbackID {
			out.NextFeedbackID = o.ID + 1
		}
	}
	if out.CurrentArticleID != nil && out.articleIndex(*out.CurrentArticleID) < 0 {
		out.CurrentArticleID = nil
	}
	return out
}

func decodePatch(raw map[string]json.RawMessage) Patch {
	loadAllowlist()
	var p Patch
	pv := reflect.ValueOf(&p).Elem()
	for key, msg := range raw {
		idx, ok := allowlist[key]
		if !ok {
			continue
		}
		field := pv.Field(idx)
		v := reflect.New(field.Type())
		if err := json.Unmarshal(msg, v.Interface()); err != nil {
			continue
		}
		field.Set(v.Elem())
	}
	return p
}

func loadAllowlist() {
	allowlistOnce.Do(func() {
		t := reflect.TypeFor[Patch]()
		allowlist = make(map[string]int, t.NumField())
		for i := range t.NumField() {
			allowlist[jsonName(t.Field(i))] = i
		}
	})
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	return name
}
