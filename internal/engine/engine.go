package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ivlev/pptxanim/internal/config"
	"github.com/ivlev/pptxanim/internal/director"
	"github.com/ivlev/pptxanim/internal/pptx"
)

type Project struct {
	Config   *config.Config
	Director *director.Director
}

func NewProject(cfg *config.Config, d *director.Director) *Project {
	return &Project{
		Config:   cfg,
		Director: d,
	}
}

// RunAll builds every input scenario. Scenarios are independent documents
// and are processed in parallel, up to Config.Workers at a time.
func (p *Project) RunAll(ctx context.Context) error {
	if len(p.Config.InputPaths) == 0 {
		return fmt.Errorf("no scenario inputs")
	}
	if err := os.MkdirAll(p.Config.OutputDir, 0755); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	if p.Config.Workers > 0 {
		g.SetLimit(p.Config.Workers)
	}

	for _, path := range p.Config.InputPaths {
		g.Go(func() error {
			_, err := p.Run(ctx, path)
			return err
		})
	}

	return g.Wait()
}

// Run builds the timing XML of every slide in the scenario at path and
// returns the files written. Each slide gets its own stream, so sequence
// ids restart at Config.BaseID per slide.
func (p *Project) Run(ctx context.Context, path string) ([]string, error) {
	scenario, err := director.ReadScenario(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения сценария: %w", err)
	}

	fmt.Printf("[*] Сценарий: %s | Слайдов: %d\n", path, len(scenario.Slides))

	var written []string
	for _, slide := range scenario.Slides {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		stream := pptx.NewStream(p.Config.BaseID)
		if err := p.Director.BuildSlide(stream, slide); err != nil {
			return written, fmt.Errorf("%s: %w", path, err)
		}
		if stream.Len() == 0 {
			fmt.Printf("[*] Слайд %d без анимаций, пропущен\n", slide.ID)
			continue
		}

		out := p.outputPath(path, slide.ID)
		if err := writeStream(stream, out); err != nil {
			return written, err
		}
		written = append(written, out)
		fmt.Printf("[+] Слайд %d: %d анимаций -> %s\n", slide.ID, len(slide.Animations), out)
	}

	return written, nil
}

func (p *Project) outputPath(input string, slideID int) string {
	base := filepath.Base(input)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(p.Config.OutputDir, fmt.Sprintf("%s_slide%d.xml", name, slideID))
}

func writeStream(stream *pptx.Stream, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := stream.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
