package control

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formselect/pkg/model"
	"github.com/goliatone/go-formselect/pkg/styles"
	"github.com/goliatone/go-formselect/pkg/theme"
)

func sampleItems() []model.Option {
	return []model.Option{
		{Value: model.IntValue(1), Text: "One"},
		{Value: model.IntValue(2), Text: "Two"},
	}
}

func TestBuild_EntryCount(t *testing.T) {
	cases := []struct {
		name        string
		items       []model.Option
		placeholder string
		want        int
	}{
		{name: "no items", want: 0},
		{name: "placeholder only", placeholder: "Choose", want: 1},
		{name: "items", items: sampleItems(), want: 2},
		{name: "items and placeholder", items: sampleItems(), placeholder: "Choose", want: 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tree := Build(model.Config{ID: "pick", Items: tc.items, Placeholder: tc.placeholder})
			if got := tree.SelectableCount(); got != tc.want {
				t.Fatalf("entries = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestBuild_PlaceholderWithEmptyValue(t *testing.T) {
	tree := Build(model.Config{
		ID:          "pick",
		Items:       sampleItems(),
		Placeholder: "Choose",
		Value:       model.StringValue(""),
	})

	if diff := cmp.Diff([]string{"Choose", "One", "Two"}, tree.Texts()); diff != "" {
		t.Fatalf("menu mismatch (-want +got):\n%s", diff)
	}
	if tree.Input.Display != "Choose" || !tree.Input.ShowsPlaceholder {
		t.Fatalf("expected placeholder display, got %+v", tree.Input)
	}
	if !tree.Input.DisplayEmpty {
		t.Fatalf("placeholder should enable DisplayEmpty")
	}
	for _, entry := range tree.Menu.Entries[1:] {
		if entry.Selected {
			t.Fatalf("real option %q must not be selected", entry.Text)
		}
	}
	sentinel := tree.Menu.Entries[0]
	if !sentinel.Placeholder || !sentinel.Value.Equal(model.StringValue("")) {
		t.Fatalf("unexpected sentinel %+v", sentinel)
	}
}

func TestBuild_UnsetValueShowsPlaceholder(t *testing.T) {
	tree := Build(model.Config{ID: "pick", Items: sampleItems(), Placeholder: "Choose"})
	if tree.Input.Display != "Choose" {
		t.Fatalf("expected placeholder display, got %q", tree.Input.Display)
	}
}

func TestBuild_DisplaysMatchingOption(t *testing.T) {
	tree := Build(model.Config{ID: "pick", Items: sampleItems(), Value: model.IntValue(2)})
	if tree.Input.Display != "Two" {
		t.Fatalf("display = %q, want Two", tree.Input.Display)
	}
	if tree.Input.Selected != 1 || !tree.Menu.Entries[1].Selected {
		t.Fatalf("expected entry 1 selected, got %d", tree.Input.Selected)
	}
}

func TestBuild_NoMatchDisplaysNothing(t *testing.T) {
	tree := Build(model.Config{ID: "pick", Items: sampleItems(), Value: model.StringValue("2")})
	if tree.Input.Display != "" || tree.Input.Selected != -1 {
		t.Fatalf("string \"2\" must not match number 2: %+v", tree.Input)
	}
}

func TestBuild_Label(t *testing.T) {
	tree := Build(model.Config{ID: "pick"})
	if tree.Label != nil {
		t.Fatalf("no label expected")
	}
	if tree.Input.LabelledBy != "" {
		t.Fatalf("input should not reference a missing label")
	}

	for _, required := range []bool{false, true} {
		tree = Build(model.Config{ID: "pick", Label: "Size", Required: required}, WithTokens(theme.Tokens{CommonBlack: "#010101"}))
		if tree.Label == nil {
			t.Fatalf("label expected")
		}
		if tree.Label.Required != required {
			t.Fatalf("required marker = %v, want %v", tree.Label.Required, required)
		}
		if tree.Label.For != "pick" || tree.Label.ID != "pick-label" {
			t.Fatalf("unexpected label linkage %+v", tree.Label)
		}
		if tree.Label.Color != "#010101" || tree.Label.FocusColor != tree.Label.Color {
			t.Fatalf("label colour must stay fixed, got %+v", tree.Label)
		}
	}
}

func TestBuild_HelperText(t *testing.T) {
	tree := Build(model.Config{ID: "pick", Error: true})
	if tree.HelperText != nil {
		t.Fatalf("no helper text expected")
	}

	for _, errState := range []bool{false, true} {
		tree = Build(model.Config{ID: "pick", HelperText: "Pick one", Error: errState})
		if tree.HelperText == nil {
			t.Fatalf("helper text expected")
		}
		if tree.HelperText.Error != errState || tree.FormControl.Error != errState {
			t.Fatalf("error emphasis = %v, want %v", tree.HelperText.Error, errState)
		}
		if tree.Input.DescribedBy != "pick-helper-text" {
			t.Fatalf("unexpected describedby %q", tree.Input.DescribedBy)
		}
	}
}

func TestBuild_InputStyling(t *testing.T) {
	tree := Build(model.Config{ID: "pick", Disabled: true},
		WithTokens(theme.Tokens{BorderColor: "#cccccc"}),
		WithClasses(styles.Classes{Input: "field"}),
	)
	want := Input{
		ID:          "pick",
		InputID:     "pick-input",
		Class:       "field",
		Border:      "1px solid #cccccc",
		BorderColor: "#cccccc",
		Rounded:     true,
		FullWidth:   true,
		Disabled:    true,
		Indicator:   IndicatorChevronDown,
		Selected:    -1,
	}
	if diff := cmp.Diff(want, tree.Input); diff != "" {
		t.Fatalf("input mismatch (-want +got):\n%s", diff)
	}
	if tree.FormControl.Class != styles.DefaultFormControl || tree.FormControl.Variant != VariantOutlined {
		t.Fatalf("unexpected container %+v", tree.FormControl)
	}
}

func TestBuild_PlaceholderCollisionPrefersSentinel(t *testing.T) {
	tree := Build(model.Config{
		ID:          "pick",
		Placeholder: "Choose",
		Value:       model.StringValue(""),
		Items:       []model.Option{{Value: model.StringValue(""), Text: "Blank"}},
	})
	if tree.Input.Selected != 0 || tree.Input.Display != "Choose" {
		t.Fatalf("sentinel should win the collision, got %+v", tree.Input)
	}
}

func TestBuild_IsPure(t *testing.T) {
	cfg := model.Config{ID: "pick", Items: sampleItems(), Placeholder: "Choose", Value: model.IntValue(1)}
	first := Build(cfg)
	second := Build(cfg)
	if diff := cmp.Diff(first, second, cmp.AllowUnexported(model.Value{})); diff != "" {
		t.Fatalf("builds differ (-first +second):\n%s", diff)
	}
}
