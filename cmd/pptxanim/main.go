package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/ivlev/pptxanim/internal/config"
	"github.com/ivlev/pptxanim/internal/director"
	"github.com/ivlev/pptxanim/internal/effects"
	"github.com/ivlev/pptxanim/internal/engine"
)

var version = "dev"

func main() {
	inputPtr := flag.String("input", "", "Сценарии YAML через запятую (по умолчанию: самый свежий файл в -scenarios)")
	outputPtr := flag.String("output", "output", "Папка для XML <p:timing> по слайдам")
	scenarioDirPtr := flag.String("scenarios", director.DefaultScenarioDir, "Папка со сценариями")
	baseIDPtr := flag.Int("base-id", 1, "Первый sequence id каждого слайда")
	workersPtr := flag.Int("workers", runtime.NumCPU(), "Потоки")
	watchPtr := flag.Bool("watch", false, "Пересобирать при изменении сценариев")
	listPtr := flag.Bool("list", false, "Показать доступные эффекты")
	examplePtr := flag.Bool("example", false, "Записать пример сценария в -scenarios")

	flag.Parse()

	if *listPtr {
		for _, name := range effects.Names() {
			e, _ := effects.New(name, nil)
			fmt.Printf("%-16s %s\n", name, e.PresetTag())
		}
		return
	}

	if *examplePtr {
		path, err := director.WriteExampleScenario(*scenarioDirPtr)
		if err != nil {
			log.Fatalf("[-] Ошибка записи сценария: %v", err)
		}
		fmt.Printf("[+] Пример сценария: %s\n", path)
		return
	}

	var inputs []string
	for _, p := range strings.Split(*inputPtr, ",") {
		if p = strings.TrimSpace(p); p != "" {
			inputs = append(inputs, p)
		}
	}
	if len(inputs) == 0 {
		latest, err := director.FindLatestScenario(*scenarioDirPtr)
		if err != nil {
			log.Fatalf("[-] Ошибка: %v. Положите сценарий в %s/ или запустите с -example", err, *scenarioDirPtr)
		}
		inputs = []string{latest}
		fmt.Printf("[*] Выбран сценарий: %s\n", latest)
	}

	cfg := &config.Config{
		InputPaths:   inputs,
		OutputDir:    *outputPtr,
		BaseID:       *baseIDPtr,
		Workers:      *workersPtr,
		Watch:        *watchPtr,
		BuildVersion: version,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	project := engine.NewProject(cfg, director.NewDirector())
	if err := project.RunAll(ctx); err != nil {
		if !cfg.Watch {
			log.Fatalf("[-] Ошибка проекта: %v", err)
		}
		log.Printf("[!] Ошибка проекта: %v", err)
	}

	if cfg.Watch {
		watch(ctx, cfg, project)
		return
	}

	fmt.Printf("[+++] Успех! Результат: %s\n", cfg.OutputDir)
}

// watch rebuilds a scenario whenever one of the inputs changes on disk.
func watch(ctx context.Context, cfg *config.Config, project *engine.Project) {
	inputs := make(map[string]bool)
	dirs := make(map[string]bool)
	for _, p := range cfg.InputPaths {
		abs, err := filepath.Abs(p)
		if err != nil {
			abs = p
		}
		inputs[abs] = true
		dirs[filepath.Dir(abs)] = true
	}

	var dirList []string
	for d := range dirs {
		dirList = append(dirList, d)
	}

	w, err := director.NewWatcher(dirList...)
	if err != nil {
		log.Fatalf("[-] Ошибка наблюдения: %v", err)
	}
	defer w.Close()

	fmt.Printf("[*] Наблюдение за %d сценариями (Ctrl+C для выхода)\n", len(inputs))
	for {
		select {
		case name, ok := <-w.Events:
			if !ok {
				return
			}
			if !inputs[name] {
				continue
			}
			if _, err := project.Run(ctx, name); err != nil {
				log.Printf("[!] %v", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Printf("[!] Ошибка наблюдения: %v", err)
		case <-ctx.Done():
			return
		}
	}
}
