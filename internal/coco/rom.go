package coco

import (
	"fmt"
	"io"
	"os"
)

// ReadROMFile reads a raw ROM image (system ROM or .ccc cartridge). Images of
// 8KB, 16KB and 32KB are accepted.
func ReadROMFile(path string) ([]uint8, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't open the file: %w", err)
	}
	defer file.Close()

	return readROM(file)
}

func readROM(r io.Reader) ([]uint8, error) {
	data, err := io.ReadAll(io.LimitReader(r, romSizeBytes+1))
	if err != nil {
		return nil, fmt.Errorf("couldn't read the image: %w", err)
	}
	switch len(data) {
	case 0x2000, 0x4000, 0x8000:
		return data, nil
	}
	if len(data) > romSizeBytes {
		return nil, fmt.Errorf("image is larger than %d bytes", romSizeBytes)
	}
	return nil, fmt.Errorf("unexpected image size %d bytes", len(data))
}

// ReadProgramFile reads a raw binary to be placed in RAM.
func ReadProgramFile(path string) ([]uint8, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't read the program: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("program is empty")
	}
	if len(data) > ioStartAddr {
		return nil, fmt.Errorf("program is larger than the address space: %d bytes", len(data))
	}
	return data, nil
}
