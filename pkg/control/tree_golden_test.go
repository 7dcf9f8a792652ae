package control_test

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formselect/pkg/control"
	"github.com/goliatone/go-formselect/pkg/model"
	"github.com/goliatone/go-formselect/pkg/testsupport"
)

func TestBuild_Golden(t *testing.T) {
	cfg := testsupport.MustLoadConfig(t, filepath.Join("testdata", "select_config.json"))
	tree := control.Build(cfg)

	golden := filepath.Join("testdata", "select_tree.golden.json")
	encoded, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		t.Fatalf("marshal tree: %v", err)
	}
	if testsupport.WriteMaybeGolden(t, golden, append(encoded, '\n')) {
		return
	}

	var want control.Tree
	if err := json.Unmarshal(testsupport.MustReadGolden(t, golden), &want); err != nil {
		t.Fatalf("decode golden: %v", err)
	}
	if diff := testsupport.CompareGolden(want, tree, cmp.AllowUnexported(model.Value{})); diff != "" {
		t.Fatalf("tree mismatch (-want +got):\n%s", diff)
	}
}
