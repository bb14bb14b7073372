package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/ivlev/svg2anim/internal/config"
	"github.com/ivlev/svg2anim/internal/engine"
)

func main() {
	inputPtr := flag.String("input", "assets", "Каталог с SVG-кадрами")
	outGIFPtr := flag.String("out-gif", "", "Путь к композитному GIF (пусто - не создавать)")
	outSVGPtr := flag.String("out-svg", "", "Путь к анимированному SVG (пусто - не создавать)")
	flameGIFPtr := flag.String("flame-gif", "", "Путь к GIF только с пламенем")
	flameSVGPtr := flag.String("flame-svg", "", "Путь к SVG только с пламенем (с промежуточными кадрами)")
	scenarioPtr := flag.String("scenario", "", "Путь к YAML-сценарию (пусто - встроенный)")
	writeScenarioPtr := flag.String("write-scenario", "", "Сохранить встроенный сценарий в файл и выйти")
	workersPtr := flag.Int("workers", runtime.NumCPU(), "Потоки растеризации")
	inbetweensPtr := flag.Int("inbetweens", -1, "Промежуточных кадров между ключевыми (-1 - из сценария)")
	easingPtr := flag.String("easing", "", "Сглаживание интерполяции: linear, in-out-quad, ... (пусто - из сценария)")
	frameMSPtr := flag.Int("frame-ms", 0, "Длительность кадра GIF в мс (0 - из сценария)")

	flag.Parse()

	if *writeScenarioPtr != "" {
		if err := config.WriteScenario(config.Default(), *writeScenarioPtr); err != nil {
			log.Fatalf("[-] Ошибка записи сценария: %v", err)
		}
		fmt.Printf("[+] Сценарий сохранен: %s\n", *writeScenarioPtr)
		return
	}

	scenario := config.Default()
	if *scenarioPtr != "" {
		loaded, err := config.ReadScenario(*scenarioPtr)
		if err != nil {
			log.Fatalf("[-] Ошибка чтения сценария: %v", err)
		}
		scenario = loaded
		fmt.Printf("[*] Используется сценарий: %s\n", *scenarioPtr)
	}

	// Переопределения из флагов
	if *inbetweensPtr >= 0 {
		scenario.Inbetweens = *inbetweensPtr
	}
	if *easingPtr != "" {
		scenario.Easing = *easingPtr
	}
	if *frameMSPtr > 0 {
		scenario.GIFFrameMS = *frameMSPtr
	}

	outGIF := *outGIFPtr
	outSVG := *outSVGPtr
	if outGIF == "" && outSVG == "" && *flameGIFPtr == "" && *flameSVGPtr == "" {
		// По умолчанию собираем оба композитных артефакта
		outGIF = filepath.Join("output", "skull_flame_combined.gif")
		outSVG = filepath.Join("output", "skull_flame_animated.svg")
	}

	for _, p := range []string{outGIF, outSVG, *flameGIFPtr, *flameSVGPtr} {
		if p != "" {
			os.MkdirAll(filepath.Dir(p), 0755)
		}
	}

	cfg := &config.Config{
		InputDir:  *inputPtr,
		OutputGIF: outGIF,
		OutputSVG: outSVG,
		FlameGIF:  *flameGIFPtr,
		FlameSVG:  *flameSVGPtr,
		Scenario:  *scenarioPtr,
		Workers:   *workersPtr,
	}

	project := engine.NewAnimationProject(cfg, scenario)
	if err := project.Run(); err != nil {
		log.Fatalf("[-] Ошибка проекта: %v", err)
	}

	fmt.Println("[+++] Успех!")
}
