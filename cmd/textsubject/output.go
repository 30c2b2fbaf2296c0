package main

import (
	"fmt"
	"io"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/textsubject/internal/engine"
	"github.com/dshills/textsubject/internal/engine/buffer"
	"github.com/dshills/textsubject/internal/engine/cursor"
	"github.com/dshills/textsubject/internal/subject"
	"github.com/dshills/textsubject/internal/subject/seq"
)

// jumpLabels are handed out to jump targets in order.
const jumpLabels = "asdfghjklqwertyuiopzxcvbnm"

// target is a labelled jump target.
type target struct {
	label rune
	rng   buffer.Range
}

// jumpTargets labels up to n jump targets of subj.
func jumpTargets(subj *subject.Subject, n int) []target {
	var out []target
	labels := seq.Of([]rune(jumpLabels)...)
	for p := range seq.Zip(labels, seq.Take(subj.JumpTargets(), n)) {
		out = append(out, target{label: p.First, rng: p.Second})
	}
	return out
}

// parseSelections reads selections from a JSON array such as
//
//	[{"anchor":{"line":0,"character":4},"active":{"line":0,"character":7}}]
//
// An entry with only "anchor" is a caret.
func parseSelections(src string) ([]cursor.Selection, error) {
	if !gjson.Valid(src) {
		return nil, fmt.Errorf("selections: invalid JSON")
	}
	list := gjson.Parse(src)
	if !list.IsArray() {
		return nil, fmt.Errorf("selections: expected an array")
	}

	var sels []cursor.Selection
	for i, item := range list.Array() {
		anchor, ok := parsePosition(item.Get("anchor"))
		if !ok {
			return nil, fmt.Errorf("selections[%d]: missing anchor", i)
		}
		active := anchor
		if a := item.Get("active"); a.Exists() {
			if active, ok = parsePosition(a); !ok {
				return nil, fmt.Errorf("selections[%d]: bad active", i)
			}
		}
		sels = append(sels, cursor.NewSelection(anchor, active))
	}
	return sels, nil
}

func parsePosition(v gjson.Result) (buffer.Position, bool) {
	line, char := v.Get("line"), v.Get("character")
	if !line.Exists() || !char.Exists() {
		return buffer.Position{}, false
	}
	return buffer.NewPosition(int(line.Int()), int(char.Int())), true
}

// renderJSON builds the result document.
func renderJSON(subj *subject.Subject, editor *engine.Editor, targets []target) (string, error) {
	doc := editor.Document()
	out := "{}"
	var err error
	set := func(path string, value any) {
		if err == nil {
			out, err = sjson.Set(out, path, value)
		}
	}

	set("subject", string(subj.Name()))
	set("jumpPhase", subj.JumpPhaseType().String())
	set("text", editor.Buffer().Export())
	set("selections", []any{})
	for i, sel := range editor.Selections() {
		prefix := fmt.Sprintf("selections.%d.", i)
		set(prefix+"anchor.line", sel.Anchor.Line)
		set(prefix+"anchor.character", sel.Anchor.Character)
		set(prefix+"active.line", sel.Active.Line)
		set(prefix+"active.character", sel.Active.Character)
		set(prefix+"text", doc.GetText(sel.Range()))
	}
	for i, tg := range targets {
		prefix := fmt.Sprintf("targets.%d.", i)
		set(prefix+"label", string(tg.label))
		set(prefix+"start.line", tg.rng.Start.Line)
		set(prefix+"start.character", tg.rng.Start.Character)
		set(prefix+"text", doc.GetText(tg.rng))
	}
	if err != nil {
		return "", fmt.Errorf("rendering result: %w", err)
	}
	return out, nil
}

// renderText prints the document followed by one line per selection and
// per jump target.
func renderText(w io.Writer, editor *engine.Editor, targets []target) error {
	doc := editor.Document()
	if _, err := fmt.Fprintln(w, editor.Buffer().Export()); err != nil {
		return err
	}
	for _, sel := range editor.Selections() {
		r := sel.Range()
		if _, err := fmt.Fprintf(w, "-- %s %q\n", r, doc.GetText(r)); err != nil {
			return err
		}
	}
	for _, tg := range targets {
		if _, err := fmt.Fprintf(w, "%c  %s %q\n", tg.label, tg.rng, doc.GetText(tg.rng)); err != nil {
			return err
		}
	}
	return nil
}
