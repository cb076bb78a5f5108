package authoring

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Session action labels shown by the interactive flow.
const (
	actionEditDetails = "edit details"
	actionEditContent = "edit content"
	actionPreview     = "toggle preview"
	actionToggleMode  = "switch basic/advanced"
	actionSave        = "save"
	actionCancel      = "cancel"
)

// RunInteractive drives an authoring session through a prompt driver until
// the editor closes. A failed save reports the error and loops; the session
// only ends on a successful save, a cancel, or an aborted prompt.
func RunInteractive(ctx context.Context, editor *Editor, driver PromptDriver) error {
	if editor == nil || driver == nil {
		return errors.New("authoring: editor and driver are required")
	}

	for editor.Open() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if msg := editor.Err(); msg != "" {
			if err := driver.Info(ctx, "save failed: "+msg); err != nil {
				return err
			}
			editor.DismissError()
		}

		choice, err := driver.Select(ctx, SelectConfig{
			Message: fmt.Sprintf("template %q (%s)", editor.Draft().ID, editor.Mode()),
			Options: []string{
				actionEditDetails, actionEditContent, actionPreview,
				actionToggleMode, actionSave, actionCancel,
			},
		})
		if err != nil {
			return err
		}

		switch choice {
		case 0:
			if err := promptDetails(ctx, editor, driver); err != nil {
				return err
			}
		case 1:
			if err := promptContent(ctx, editor, driver); err != nil {
				return err
			}
		case 2:
			editor.TogglePreview()
			if editor.Mode() == ModeBasicPreview {
				if err := driver.Info(ctx, editor.Preview()); err != nil {
					return err
				}
			}
		case 3:
			editor.ToggleAdvanced()
		case 4:
			// Save keeps the session open on failure; the loop surfaces the
			// error on the next pass.
			_ = editor.Save(ctx)
		case 5:
			editor.Cancel()
		}
	}
	return nil
}

func promptDetails(ctx context.Context, editor *Editor, driver PromptDriver) error {
	draft := editor.Draft()

	id, err := driver.Input(ctx, InputConfig{Message: "template id", Default: draft.ID})
	if err != nil {
		return err
	}
	name, err := driver.Input(ctx, InputConfig{Message: "template name", Default: draft.Name})
	if err != nil {
		return err
	}
	description, err := driver.Input(ctx, InputConfig{Message: "description", Default: draft.Description})
	if err != nil {
		return err
	}
	editor.SetDetails(id, name, description)

	width, err := promptDimension(ctx, driver, "default width", draft.Width)
	if err != nil {
		return err
	}
	height, err := promptDimension(ctx, driver, "default height", draft.Height)
	if err != nil {
		return err
	}
	editor.SetSize(width, height)
	return nil
}

func promptContent(ctx context.Context, editor *Editor, driver PromptDriver) error {
	draft := editor.Draft()
	if editor.Mode() == ModeAdvancedEdit {
		source, err := driver.TextArea(ctx, TextAreaConfig{
			Message: "renderer source",
			Default: draft.AdvancedSource,
			Help:    "template source compiled when the note first renders",
		})
		if err != nil {
			return err
		}
		editor.SetAdvancedSource(source)
		return nil
	}

	markup, err := driver.TextArea(ctx, TextAreaConfig{
		Message: "note markup",
		Default: draft.BasicMarkup,
	})
	if err != nil {
		return err
	}
	editor.SetBasicMarkup(markup)
	return nil
}

func promptDimension(ctx context.Context, driver PromptDriver, label string, current int) (int, error) {
	raw, err := driver.Input(ctx, InputConfig{
		Message: label,
		Default: strconv.Itoa(current),
		Validator: func(value string) error {
			if strings.TrimSpace(value) == "" {
				return nil
			}
			n, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil || n <= 0 {
				return fmt.Errorf("%s must be a positive integer", label)
			}
			return nil
		},
	})
	if err != nil {
		return 0, err
	}
	if strings.TrimSpace(raw) == "" {
		return current, nil
	}
	return strconv.Atoi(strings.TrimSpace(raw))
}
