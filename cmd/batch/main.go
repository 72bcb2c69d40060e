package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ecg-postprocessing/config"
	"ecg-postprocessing/internal/database"
	"ecg-postprocessing/internal/delineation"
	"ecg-postprocessing/internal/services"
)

func main() {
	signalDir := flag.String("signals", "", "каталог с файлами сигналов (по умолчанию SIGNAL_DIR)")
	outputDir := flag.String("out", "", "каталог для файлов признаков (по умолчанию OUTPUT_DIR)")
	sampleRate := flag.Float64("fs", 0, "частота дискретизации, Гц (по умолчанию SAMPLE_RATE)")
	oracleURL := flag.String("oracle", "", "URL сервиса делинеации (по умолчанию ORACLE_SERVICE_URL)")
	flag.Parse()

	config.InitLogger()
	cfg := config.Load()

	// Флаги командной строки имеют приоритет над окружением
	if *signalDir != "" {
		cfg.Pipeline.SignalDir = *signalDir
	}
	if *outputDir != "" {
		cfg.Pipeline.OutputDir = *outputDir
	}
	if *sampleRate > 0 {
		cfg.Pipeline.SampleRate = *sampleRate
	}
	if *oracleURL != "" {
		cfg.Oracle.ServiceURL = *oracleURL
	}

	log.Printf("Батчевая обработка: signals=%s, out=%s, fs=%.1f Гц",
		cfg.Pipeline.SignalDir, cfg.Pipeline.OutputDir, cfg.Pipeline.SampleRate)

	var dataService *services.DataService
	if cfg.Database.Enabled {
		db, err := database.Connect(cfg)
		if err != nil {
			log.Fatalf("Ошибка подключения к БД: %v", err)
		}
		if err := database.RunMigrations(db); err != nil {
			log.Fatalf("Ошибка миграций: %v", err)
		}
		dataService = services.NewDataService(db)
	}

	oracle := delineation.NewHTTPOracle(cfg.Oracle.ServiceURL, time.Duration(cfg.Oracle.Timeout)*time.Second)
	signalService := services.NewSignalService()
	batchService := services.NewBatchService(cfg, oracle, signalService, dataService)

	// Ctrl+C прерывает батч между файлами
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := batchService.Run(ctx); err != nil {
		log.Printf("Ошибка батчевой обработки: %v", err)
		os.Exit(1)
	}
}
