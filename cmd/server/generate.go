package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dungeon-api/internal/dungeon"
)

var (
	genSeed    int64
	genPreview bool
	genCfg     = dungeon.Config{
		Width:             40,
		Depth:             40,
		Divisions:         6,
		SizeConstrain:     8,
		AcceptableRatio:   3,
		WallWidth:         1,
		WallHeight:        3,
		DoorWidth:         2,
		SubtractedPercent: 30,
	}
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one layout and print it",
	Long:  `Generate a single dungeon layout without starting the server. Prints the layout as JSON, or as an ASCII map with --preview.`,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().Int64Var(&genSeed, "seed", 1, "generation seed")
	generateCmd.Flags().BoolVar(&genPreview, "preview", false, "print an ASCII map instead of JSON")
	generateCmd.Flags().IntVar(&genCfg.Width, "width", genCfg.Width, "dungeon width")
	generateCmd.Flags().IntVar(&genCfg.Depth, "depth", genCfg.Depth, "dungeon depth")
	generateCmd.Flags().IntVar(&genCfg.Divisions, "divisions", genCfg.Divisions, "partition iteration budget")
	generateCmd.Flags().BoolVar(&genCfg.Endless, "endless", false, "partition until nothing can split")
	generateCmd.Flags().IntVar(&genCfg.SizeConstrain, "size-constrain", genCfg.SizeConstrain, "minimum room extent")
	generateCmd.Flags().Float64Var(&genCfg.AcceptableRatio, "ratio", genCfg.AcceptableRatio, "acceptable room aspect ratio")
	generateCmd.Flags().IntVar(&genCfg.WallWidth, "wall-width", genCfg.WallWidth, "wall thickness")
	generateCmd.Flags().IntVar(&genCfg.WallHeight, "wall-height", genCfg.WallHeight, "wall height")
	generateCmd.Flags().IntVar(&genCfg.DoorWidth, "door-width", genCfg.DoorWidth, "door opening width")
	generateCmd.Flags().IntVar(&genCfg.DoorOffset, "door-offset", genCfg.DoorOffset, "door punch-through depth")
	generateCmd.Flags().IntVar(&genCfg.SubtractedPercent, "subtract", genCfg.SubtractedPercent, "percent of rooms to prune")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	l, err := dungeon.Generate(genSeed, genCfg)
	if err != nil {
		return err
	}

	if genPreview {
		fmt.Print(l.Render())
		fmt.Printf("seed=%d rooms=%d/%d doors=%d tiles=%d floors=%d\n",
			l.Seed, l.EnabledRoomCount(), len(l.Rooms),
			len(l.EnabledDoors()), len(l.Plan.Tiles), len(l.Plan.Floors))
		return nil
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(l)
}
