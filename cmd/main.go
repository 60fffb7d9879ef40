package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/nevisdale/coco3/internal/coco"
	"github.com/nevisdale/coco3/internal/ui"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
)

func parseAddr(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("bad address %q: %w", s, err)
	}
	return uint16(v), nil
}

func main() {
	cfg := coco.DefaultConfig()

	var (
		loadAddr   = flag.String("load", fmt.Sprintf("0x%04x", cfg.LoadAddr), "address the program is loaded at")
		entryAddr  = flag.String("start", "", "address to start executing the program at, reset vector if empty")
		headless   = flag.Bool("headless", false, "run without a window")
		cycles     = flag.Int("cycles", 1_000_000, "cycles to run in headless mode")
		logLevel   = flag.String("log-level", "info", "panic, fatal, error, warn, info, debug or trace")
		profileKey = flag.String("profile", "", "cpu or mem")
	)
	flag.StringVar(&cfg.SystemROM, "rom", "", "system ROM image")
	flag.StringVar(&cfg.CartridgeROM, "cart", "", "cartridge ROM image")
	flag.StringVar(&cfg.Program, "prg", "", "raw binary to load into RAM")
	flag.BoolVar(&cfg.AllRAM, "allram", false, "boot with the ROM overlay disabled")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		logrus.Fatalf("couldn't parse log level: %s", err)
	}
	logrus.SetLevel(level)

	switch *profileKey {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	default:
		logrus.Fatalf("unknown profile %q", *profileKey)
	}

	if cfg.LoadAddr, err = parseAddr(*loadAddr); err != nil {
		logrus.Fatal(err)
	}
	if *entryAddr != "" {
		addr, err := parseAddr(*entryAddr)
		if err != nil {
			logrus.Fatal(err)
		}
		cfg.EntryAddr = int(addr)
	}

	machine, err := coco.NewMachineFromConfig(cfg)
	if err != nil {
		logrus.Fatalf("couldn't create the machine: %s", err)
	}

	if *headless {
		n, err := machine.RunFor(*cycles)
		regs := machine.CPU().Registers()
		logrus.WithFields(logrus.Fields{
			"cycles": n,
			"pc":     fmt.Sprintf("$%04X", regs.PC),
			"cc":     regs.FlagsString(),
		}).Info("stopped")
		if err != nil {
			logrus.Error(err)
			os.Exit(1)
		}
		return
	}

	if err := ui.RunUI(ui.New(machine)); err != nil {
		logrus.Fatalf("ui: %s", err)
	}
}
