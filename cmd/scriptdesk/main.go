// Command scriptdesk runs the broadcast narration script service.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"scriptdesk/internal/api"
	"scriptdesk/internal/archive"
	"scriptdesk/internal/config"
	"scriptdesk/internal/entropy"
	"scriptdesk/internal/knowledge"
	"scriptdesk/internal/phrase"
	"scriptdesk/internal/script"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	slog.Info("scriptdesk — broadcast narration script service", "version", api.Version)

	// ── Knowledge base ────────────────────────────────────────────────
	kb, err := knowledge.LoadFile(cfg.KnowledgePath)
	if err != nil {
		slog.Error("failed to load knowledge base", "path", cfg.KnowledgePath, "error", err)
		os.Exit(1)
	}
	slog.Info("knowledge base loaded",
		"path", cfg.KnowledgePath,
		"cities", len(kb.Cities()),
		"landmarks", kb.LandmarkCount(),
	)

	// ── Phrase bank (coverage validated at load — fatal if malformed) ─
	bank, err := phrase.LoadFile(cfg.PhraseBankPath)
	if err != nil {
		slog.Error("failed to load phrase bank", "path", cfg.PhraseBankPath, "error", err)
		os.Exit(1)
	}
	slog.Info("phrase bank loaded", "path", cfg.PhraseBankPath, "tones", bank.Tones())

	// ── Script archive ────────────────────────────────────────────────
	os.MkdirAll(filepath.Dir(cfg.ArchivePath), 0755)
	db, err := archive.Open(cfg.ArchivePath)
	if err != nil {
		slog.Error("failed to open archive", "path", cfg.ArchivePath, "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("archive opened", "path", cfg.ArchivePath)

	// ── Entropy source for phrase selection ───────────────────────────
	var src entropy.Source = entropy.Crypto{}
	if rng := entropy.NewClient(cfg.RandomOrgKey); rng.Enabled() {
		slog.Info("random.org entropy enabled")
		src = rng
	}

	composer := script.NewComposer(kb, bank, src)

	// ── HTTP API ──────────────────────────────────────────────────────
	server := &api.Server{
		KB:       kb,
		Bank:     bank,
		Composer: composer,
		Archive:  db,
		Port:     cfg.Port,
		Origins:  cfg.CORSOrigins,
	}
	server.Start()

	fmt.Printf("scriptdesk is up: %d landmarks across %d cities, %d tones.\n",
		kb.LandmarkCount(), len(kb.Cities()), len(bank.Tones()))
	fmt.Printf("API: http://localhost:%d/api/v1/status\n", cfg.Port)

	// ── Wait for shutdown ─────────────────────────────────────────────
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	slog.Info("received signal, shutting down", "signal", sig)
}
