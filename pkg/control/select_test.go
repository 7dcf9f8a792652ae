package control

import (
	"errors"
	"testing"

	"github.com/goliatone/go-formselect/pkg/model"
)

type changeRecorder struct {
	values []model.Value
	events []model.ChangeEvent
}

func (r *changeRecorder) onChange(selected model.Value, event model.ChangeEvent) {
	r.values = append(r.values, selected)
	r.events = append(r.events, event)
}

func TestSelect_InvokesCallbackOnce(t *testing.T) {
	rec := &changeRecorder{}
	cfg := model.Config{ID: "pick", Items: sampleItems(), Value: model.IntValue(2), OnChange: rec.onChange}
	tree := Build(cfg)

	raw := struct{ Key string }{Key: "enter"}
	if err := Select(cfg, tree, 0, Interaction{Source: "test", Raw: raw}); err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(rec.values) != 1 {
		t.Fatalf("callback calls = %d, want 1", len(rec.values))
	}
	if !rec.values[0].Equal(model.IntValue(1)) {
		t.Fatalf("selected = %v, want 1", rec.values[0])
	}
	event := rec.events[0]
	if event.ControlID != "pick" || event.Source != "test" || event.Raw != raw {
		t.Fatalf("unexpected event %+v", event)
	}
	if event.Node.Text != "One" || event.Node.Index != 0 {
		t.Fatalf("unexpected node %+v", event.Node)
	}
	if !cfg.Value.Equal(model.IntValue(2)) {
		t.Fatalf("select must not change the configured value")
	}
}

func TestSelect_Placeholder(t *testing.T) {
	rec := &changeRecorder{}
	cfg := model.Config{ID: "pick", Items: sampleItems(), Placeholder: "Choose", Value: model.IntValue(1), OnChange: rec.onChange}
	if err := Select(cfg, Build(cfg), 0, Interaction{}); err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(rec.values) != 1 || !rec.values[0].Equal(model.StringValue("")) {
		t.Fatalf("placeholder should report the empty string, got %v", rec.values)
	}
	if !rec.events[0].Node.Placeholder {
		t.Fatalf("expected placeholder node")
	}
}

func TestSelect_Errors(t *testing.T) {
	rec := &changeRecorder{}
	cfg := model.Config{ID: "pick", Items: sampleItems(), OnChange: rec.onChange}
	tree := Build(cfg)

	if err := Select(cfg, tree, 5, Interaction{}); !errors.Is(err, ErrNoSuchEntry) {
		t.Fatalf("expected ErrNoSuchEntry, got %v", err)
	}
	cfg.Disabled = true
	if err := Select(cfg, tree, 0, Interaction{}); !errors.Is(err, ErrDisabled) {
		t.Fatalf("expected ErrDisabled, got %v", err)
	}
	if len(rec.values) != 0 {
		t.Fatalf("callback must not run on error")
	}
}

func TestSelect_NilCallback(t *testing.T) {
	cfg := model.Config{ID: "pick", Items: sampleItems()}
	if err := Select(cfg, Build(cfg), 1, Interaction{}); err != nil {
		t.Fatalf("nil callback should be a no-op, got %v", err)
	}
}

func TestSelectSubmitted_RestoresKind(t *testing.T) {
	rec := &changeRecorder{}
	cfg := model.Config{ID: "pick", Items: sampleItems(), Placeholder: "Choose", OnChange: rec.onChange}
	tree := Build(cfg)

	if err := SelectSubmitted(cfg, tree, "1", Interaction{Source: "html"}); err != nil {
		t.Fatalf("select submitted: %v", err)
	}
	if len(rec.values) != 1 || rec.values[0].Kind() != model.KindNumber {
		t.Fatalf("expected numeric value, got %v", rec.values)
	}
	if err := SelectSubmitted(cfg, tree, "3", Interaction{}); !errors.Is(err, ErrNoSuchEntry) {
		t.Fatalf("expected ErrNoSuchEntry, got %v", err)
	}
}
