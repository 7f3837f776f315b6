package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	cardform "github.com/goliatone/go-cardform"
	"github.com/goliatone/go-cardform/pkg/orchestrator"
	"github.com/goliatone/go-cardform/pkg/render"
	"github.com/goliatone/go-cardform/pkg/renderers/tui"
	pkgtemplate "github.com/goliatone/go-cardform/pkg/template"
)

func main() {
	template := flag.String("template", "templates/badge.json", "template document path or URL")
	templateID := flag.String("template-id", "", "template identifier (defaults to the source location)")
	renderer := flag.String("renderer", "vanilla", "renderer to use (vanilla, tui)")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	ctx := context.Background()

	src := parseSource(*template)
	if src == nil {
		log.Fatalf("invalid template source: %q", *template)
	}

	loader := cardform.NewLoader(pkgtemplate.WithHTTPFallback(30 * time.Second))
	opts := []orchestrator.Option{orchestrator.WithLoader(loader)}

	if *renderer == "tui" {
		tuiRenderer, err := tui.New()
		if err != nil {
			log.Fatalf("Failed to configure tui renderer: %v", err)
		}
		registry := render.NewRegistry()
		registry.MustRegister(tuiRenderer)
		opts = append(opts, orchestrator.WithRegistry(registry), orchestrator.WithDefaultRenderer("tui"))
	}

	gen := orchestrator.New(opts...)

	req := orchestrator.Request{
		Source:     src,
		TemplateID: *templateID,
		Renderer:   *renderer,
	}

	result, err := gen.Generate(ctx, req)
	if err != nil {
		log.Fatalf("Failed to generate form: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, result, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Form written to %s\n", *output)
	} else {
		fmt.Println(string(result))
	}
}

func parseSource(raw string) pkgtemplate.Source {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return pkgtemplate.SourceFromURL(path)
	}
	return pkgtemplate.SourceFromFile(path)
}
