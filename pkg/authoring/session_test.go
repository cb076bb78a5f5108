package authoring

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-notecanvas/pkg/registry"
)

// scriptDriver replays canned answers so the interactive loop can run
// without a terminal.
type scriptDriver struct {
	t       *testing.T
	inputs  []string
	selects []string
	areas   []string
	infos   []string
}

func (d *scriptDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	if len(d.inputs) == 0 {
		d.t.Fatalf("unexpected input prompt: %s", cfg.Message)
	}
	out := d.inputs[0]
	d.inputs = d.inputs[1:]
	if out == "" {
		return cfg.Default, nil
	}
	return out, nil
}

func (d *scriptDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	if len(d.selects) == 0 {
		d.t.Fatalf("unexpected select prompt: %s", cfg.Message)
	}
	want := d.selects[0]
	d.selects = d.selects[1:]
	for i, option := range cfg.Options {
		if option == want {
			return i, nil
		}
	}
	d.t.Fatalf("option %q not offered in %v", want, cfg.Options)
	return -1, nil
}

func (d *scriptDriver) TextArea(_ context.Context, cfg TextAreaConfig) (string, error) {
	if len(d.areas) == 0 {
		d.t.Fatalf("unexpected textarea prompt: %s", cfg.Message)
	}
	out := d.areas[0]
	d.areas = d.areas[1:]
	return out, nil
}

func (d *scriptDriver) Info(_ context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

func TestRunInteractive_SaveFlow(t *testing.T) {
	reg := registry.New()
	reg.Seed()
	editor, err := NewEditor(reg)
	if err != nil {
		t.Fatalf("new editor: %v", err)
	}

	driver := &scriptDriver{
		t: t,
		// edit details, edit content, save
		selects: []string{actionEditDetails, actionEditContent, actionSave},
		// id (keep suggestion), name, description, width, height
		inputs: []string{"", "My Note", "scripted", "300", "200"},
		areas:  []string{"<p>scripted body</p>"},
	}

	if err := RunInteractive(context.Background(), editor, driver); err != nil {
		t.Fatalf("run: %v", err)
	}
	if editor.Open() {
		t.Fatalf("session should close after a successful save")
	}

	tpl, ok := reg.Get(editor.Draft().ID)
	if !ok {
		t.Fatalf("template not registered")
	}
	if tpl.Name != "My Note" || tpl.DefaultContent != "<p>scripted body</p>" {
		t.Fatalf("draft not applied: %+v", tpl)
	}
}

func TestRunInteractive_FailedSaveReportsAndContinues(t *testing.T) {
	reg := registry.New()
	reg.Seed()
	editor, err := NewEditor(reg)
	if err != nil {
		t.Fatalf("new editor: %v", err)
	}

	driver := &scriptDriver{
		t: t,
		// save with no name (fails), then cancel
		selects: []string{actionSave, actionCancel},
	}

	if err := RunInteractive(context.Background(), editor, driver); err != nil {
		t.Fatalf("run: %v", err)
	}
	if editor.Open() {
		t.Fatalf("cancel should have closed the session")
	}
	if len(driver.infos) == 0 || !strings.Contains(driver.infos[0], "save failed") {
		t.Fatalf("failed save should be reported, infos = %v", driver.infos)
	}
	if reg.IsCustom(editor.Draft().ID) {
		t.Fatalf("nothing should be registered")
	}
}
