// Command roomdump opens a Super Metroid ROM, reconstructs a single room,
// prints a plain-text summary of it, and optionally dumps its rebuilt
// tile-set atlas as a BMP image.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"smroomcore/internal/debug"
	"smroomcore/internal/gfx"
	"smroomcore/internal/rom"
	"smroomcore/internal/smroom"
)

// config is the shape of the optional TOML configuration file; any value
// also settable by flag is overridden by an explicit flag.
type config struct {
	ROM struct {
		Path string `toml:"path"`
	} `toml:"rom"`
	Output struct {
		Dir string `toml:"dir"`
	} `toml:"output"`
}

func main() {
	romPath := flag.String("rom", "", "Path to a Super Metroid (U) ROM image")
	configPath := flag.String("config", "", "Path to a TOML config file ([rom] path, [output] dir)")
	roomIndex := flag.Int("room", 0, "Room index into the 263-entry room table")
	stateIndex := flag.Int("state", -1, "State index to select (-1 for the default STANDARD state)")
	atlasPath := flag.String("atlas", "", "If set, dump the room's tile-set atlas as a BMP to this path")
	atlasWidth := flag.Int("atlas-width", 16, "Tiles per row in the dumped atlas")
	scale := flag.Int("scale", 1, "Integer upscale factor applied to the dumped atlas")
	verbose := flag.Bool("v", false, "Enable verbose logging of the Room and GFX subsystems")
	flag.Parse()

	cfg := config{}
	if *configPath != "" {
		if _, err := toml.DecodeFile(*configPath, &cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
			os.Exit(1)
		}
	}

	path := *romPath
	if path == "" {
		path = cfg.ROM.Path
	}
	if path == "" {
		fmt.Println("Usage: roomdump -rom <path-to-rom> [-room N] [-state N] [-atlas out.bmp]")
		os.Exit(1)
	}

	if *roomIndex < 0 || *roomIndex >= rom.Rooms {
		fmt.Fprintf(os.Stderr, "Error: -room must be in [0, %d)\n", rom.Rooms)
		os.Exit(1)
	}

	r, err := rom.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ROM: %v\n", err)
		os.Exit(1)
	}

	var logger *debug.Logger
	if *verbose {
		logger = debug.NewLogger(4096)
		logger.SetComponentEnabled(debug.ComponentRoom, true)
		logger.SetComponentEnabled(debug.ComponentGFX, true)
		logger.SetMinLevel(debug.LogLevelDebug)
	}

	room, err := smroom.Open(r, int(rom.RoomOffsets[*roomIndex]), *stateIndex, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening room %d: %v\n", *roomIndex, err)
		os.Exit(1)
	}

	printSummary(room)

	if *verbose {
		for _, entry := range logger.Entries() {
			fmt.Println(entry.Format())
		}
	}

	outPath := *atlasPath
	if outPath == "" && cfg.Output.Dir != "" {
		outPath = fmt.Sprintf("%s/room%03d.bmp", cfg.Output.Dir, *roomIndex)
	}
	if outPath != "" {
		if err := dumpAtlas(room, outPath, *atlasWidth, *scale); err != nil {
			fmt.Fprintf(os.Stderr, "Error dumping atlas: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote tile-set atlas to %s\n", outPath)
	}
}

func printSummary(room *smroom.Room) {
	h := room.Header
	fmt.Printf("Room %d, region %d, %dx%d screens\n", h.Index, h.Region, h.Width, h.Height)
	fmt.Printf("State chain: ")
	for i, code := range room.StateCodes {
		if i > 0 {
			fmt.Printf(" -> ")
		}
		fmt.Print(smroom.StateCodeName(code))
	}
	fmt.Println()
	fmt.Printf("Music: %s / %s\n", rom.MusicControlName(room.State.MusicControl), rom.MusicTrackName(room.State.MusicTrack))
	fmt.Printf("Tile set %d, %d doors, %d assembled tiles\n", room.State.TileSet, len(room.Doors), len(room.TileSet))
}

func dumpAtlas(room *smroom.Room, path string, tilesWide, scaleFactor int) error {
	atlas := room.Atlas(tilesWide)
	img := gfx.ScaleAtlas(atlas, scaleFactor)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %q: %w", path, err)
	}
	defer f.Close()

	return gfx.DumpAtlasBMP(f, img)
}
