package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/goliatone/go-notecanvas/pkg/authoring"
	"github.com/goliatone/go-notecanvas/pkg/canvas"
	"github.com/goliatone/go-notecanvas/pkg/model"
	"github.com/goliatone/go-notecanvas/pkg/storage"
	"github.com/goliatone/go-notecanvas/pkg/template"
)

func main() {
	action := flag.String("action", "render", "one of: list, add, render, export, author")
	dataDir := flag.String("data", ".notecanvas", "directory for persisted notes and templates")
	templatesDir := flag.String("templates", "", "optional directory of template documents to load")
	templateID := flag.String("template", "", "template id for add")
	noteID := flag.String("note", "", "note id for export")
	format := flag.String("format", template.FormatMarkdown, "export format: markdown, html, json")
	x := flag.Float64("x", 100, "x position for add")
	y := flag.Float64("y", 100, "y position for add")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	ctx := context.Background()

	store, err := storage.NewFileStore(*dataDir)
	if err != nil {
		log.Fatalf("open data dir: %v", err)
	}

	cv := canvas.New(canvas.WithStore(store))
	if *templatesDir != "" {
		if err := cv.Registry().LoadFS(os.DirFS(*templatesDir)); err != nil {
			log.Fatalf("load template documents: %v", err)
		}
	}
	if err := cv.Load(ctx); err != nil {
		log.Fatalf("load canvas state: %v", err)
	}

	if err := run(ctx, cv, store, *action, runArgs{
		templateID: *templateID,
		noteID:     *noteID,
		format:     *format,
		pos:        model.Position{X: *x, Y: *y},
		output:     *output,
	}); err != nil {
		if errors.Is(err, authoring.ErrAborted) {
			os.Exit(1)
		}
		log.Fatalf("%s failed: %v", *action, err)
	}
}

type runArgs struct {
	templateID string
	noteID     string
	format     string
	pos        model.Position
	output     string
}

func run(ctx context.Context, cv *canvas.Canvas, store storage.Store, action string, args runArgs) error {
	switch action {
	case "list":
		for _, tpl := range cv.Registry().List() {
			marker := " "
			if cv.Registry().IsCustom(tpl.ID) {
				marker = "*"
			}
			fmt.Printf("%s %-20s %s\n", marker, tpl.ID, tpl.Name)
		}
		for _, note := range cv.Notes().Notes() {
			fmt.Printf("  note %s (%s) at %.0f,%.0f\n",
				note.ID, note.TemplateID, note.Position.X, note.Position.Y)
		}
		return nil

	case "add":
		id, err := cv.AddNote(ctx, args.pos, args.templateID)
		if err != nil {
			return err
		}
		fmt.Println(id)
		return nil

	case "render":
		html, err := cv.Render(ctx)
		if err != nil {
			return err
		}
		return emit(args.output, html)

	case "export":
		if args.noteID == "" {
			return errors.New("export needs -note")
		}
		name, out, err := cv.Notes().ExportFile(args.noteID, args.format)
		if err != nil {
			return err
		}
		// A directory output takes the template's suggested filename.
		if info, statErr := os.Stat(args.output); statErr == nil && info.IsDir() {
			return emit(filepath.Join(args.output, name), out)
		}
		return emit(args.output, out)

	case "author":
		editor, err := authoring.NewEditor(cv.Registry(), authoring.WithStore(store))
		if err != nil {
			return err
		}
		return authoring.RunInteractive(ctx, editor, authoring.NewSurveyDriver())

	default:
		return fmt.Errorf("unknown action %q", action)
	}
}

func emit(path, content string) error {
	if path == "" {
		fmt.Println(content)
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return err
	}
	fmt.Printf("written to %s\n", path)
	return nil
}
