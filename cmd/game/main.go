package main

import (
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/younwookim/labyrinth/internal/application/replay"
	"github.com/younwookim/labyrinth/internal/application/system"
	"github.com/younwookim/labyrinth/internal/infrastructure/storage"
)

func main() {
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json, or auto)")
	replayFlag := flag.String("replay", "", "Replay input from file")
	seedFlag := flag.Int64("seed", 0, "RNG seed (0 = LABYRINTH_SEED or time)")
	configFlag := flag.String("config", "", "Config directory (default: embedded)")
	flag.Parse()

	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	seed := resolveSeed(*seedFlag)
	var input system.InputSource = system.NewInputSystem()
	var replayer *replay.Replayer
	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatal().Err(err).Str("file", *replayFlag).Msg("failed to load replay")
		}
		replayer = replay.NewReplayer(*data)
		seed = replayer.Seed()
		input = replayer
		log.Info().Str("file", *replayFlag).Int("frames", replayer.TotalFrames()).Msg("replaying")
	}

	var rec *replay.Recorder
	recordFile := *recordFlag
	if recordFile == "auto" {
		recordFile = replay.GenerateFilename()
	}
	if recordFile != "" {
		rec = replay.NewRecorder(seed)
		log.Info().Str("file", recordFile).Int64("seed", seed).Msg("recording enabled")
	}

	appName := getEnv("LABYRINTH_SAVE_APP", cfg.Settings.Save.AppName)
	stats, err := storage.Open(appName, log.Logger)
	if err != nil {
		log.Warn().Err(err).Msg("failed to open stats storage")
	}
	log.Info().Str("app", appName).Bool("persistent", stats.Persistent()).Msg("stats ready")

	app, err := NewApp(cfg, input, seed, stats, log.Logger, rec)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build game")
	}

	d := cfg.Settings.Display
	ebiten.SetWindowSize(d.ScreenWidth*d.Scale, d.ScreenHeight*d.Scale)
	ebiten.SetWindowTitle(d.Title)
	ebiten.SetTPS(d.Framerate)

	log.Info().Int64("seed", seed).Msg("starting game")
	runErr := ebiten.RunGame(app)

	if replayer != nil {
		log.Info().Int("frame", replayer.CurrentFrame()).Int("frames", replayer.TotalFrames()).Msg("replay stopped")
	}
	if rec != nil {
		if n, err := app.SaveRecording(recordFile); err != nil {
			log.Error().Err(err).Msg("failed to save recording")
		} else {
			log.Info().Str("file", recordFile).Int("frames", n).Msg("recording saved")
		}
	}
	if !isTermination(runErr) {
		log.Fatal().Err(runErr).Msg("game exited")
	}
}

// resolveSeed picks the flag, then LABYRINTH_SEED, then the clock
func resolveSeed(flagSeed int64) int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	if v := os.Getenv("LABYRINTH_SEED"); v != "" {
		if s, err := strconv.ParseInt(v, 10, 64); err == nil {
			return s
		}
		log.Warn().Str("LABYRINTH_SEED", v).Msg("ignoring invalid seed")
	}
	return time.Now().UnixNano()
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
