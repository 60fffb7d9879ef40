package coco

// Config describes what a Machine boots with.
type Config struct {
	SystemROM    string // path to the 32KB system ROM image, optional
	CartridgeROM string // path to a cartridge image, optional

	Program   string // raw binary loaded into RAM after reset, optional
	LoadAddr  uint16 // where Program is placed
	EntryAddr int    // PC after loading Program, -1 keeps the reset vector

	AllRAM bool // boot with the ROM overlay disabled
}

func DefaultConfig() Config {
	return Config{
		LoadAddr:  0x0e00,
		EntryAddr: -1,
	}
}
