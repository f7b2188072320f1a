package main

import (
	"crypto/sha1"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bodgit/pacman/cheader"
	"github.com/bodgit/pacman/pac"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func prefix(v pac.Variant) string {
	if v == pac.PacMan {
		return "pacman"
	}
	return "mspacman"
}

func gameVariant(c *cli.Context, path string) (pac.Variant, error) {
	v, err := pac.DetectVariant(path)
	if err != nil {
		return v, err
	}

	switch c.String("game") {
	case "":
		return v, nil
	case "pacman":
		return pac.PacMan, nil
	case "mspacman":
		if v == pac.PacMan {
			return v, errors.New("no Ms. Pac-Man ROMs found (need boot1-6 or pacman.6* + u5/u6/u7)")
		}
		return v, nil
	}

	return v, fmt.Errorf("unknown game %q", c.String("game"))
}

func info(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	path := c.Args().First()

	v, err := gameVariant(c, path)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	f, err := pac.NewFileVariant(path, v)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding(" ")
	table.SetNoWhiteSpace(true)

	table.Append([]string{"Game:", f.Variant.String()})
	table.Append([]string{"Program:", strconv.Itoa(len(f.Program)) + " bytes"})
	table.Append([]string{"Tiles:", strconv.Itoa(len(f.Tiles))})
	table.Append([]string{"Sprites:", strconv.Itoa(len(f.Sprites))})
	table.Append([]string{"Palettes:", strconv.Itoa(len(f.Palettes))})
	table.Append([]string{"Waveforms:", strconv.Itoa(len(f.Wavetable))})

	table.Render()

	if c.Bool("verbose") {
		fmt.Println()

		table := tablewriter.NewWriter(os.Stdout)
		table.SetBorder(false)
		table.SetCenterSeparator("")
		table.SetColumnSeparator("")

		table.SetHeader([]string{"ROM", "Size", "SHA1"})

		for area := 0; area < pac.Areas; area++ {
			for i, b := range f.ROM[area] {
				if b == nil {
					table.Append([]string{pac.RoleString(area, i), "0", "-"})
					continue
				}

				table.Append([]string{pac.RoleString(area, i), strconv.Itoa(len(b)), fmt.Sprintf("%x", sha1.Sum(b))})
			}
		}

		table.Render()
	}

	return nil
}

func convert(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	path := c.Args().First()

	v, err := gameVariant(c, path)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	f, err := pac.NewFileVariant(path, v)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	p := prefix(f.Variant)

	for _, output := range []struct {
		filename string
		write    func(io.Writer) error
	}{
		{p + "_rom.h", func(w io.Writer) error { return cheader.Program(w, p, f.Program) }},
		{p + "_tilemap.h", func(w io.Writer) error { return cheader.Tiles(w, p, f.Tiles) }},
		{p + "_spritemap.h", func(w io.Writer) error { return cheader.Sprites(w, p, f.Sprites) }},
		{p + "_cmap.h", func(w io.Writer) error { return cheader.Colormap(w, p, f.Palettes) }},
		{p + "_wavetable.h", func(w io.Writer) error { return cheader.Wavetable(w, p, f.Wavetable) }},
	} {
		h, err := os.Create(filepath.Join(c.String("directory"), output.filename))
		if err != nil {
			return cli.NewExitError(err, 1)
		}

		if err := output.write(h); err != nil {
			h.Close()
			return cli.NewExitError(err, 1)
		}

		if err := h.Close(); err != nil {
			return cli.NewExitError(err, 1)
		}
	}

	return nil
}

func main() {
	app := cli.NewApp()

	app.Name = "pacrom"
	app.Usage = "Pac-Man and Ms. Pac-Man ROM conversion utility"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	gameFlag := &cli.StringFlag{
		Name:  "game",
		Usage: "force `GAME` to pacman or mspacman instead of detecting",
	}

	app.Commands = []*cli.Command{
		{
			Name:        "info",
			Usage:       "Info on a ROM set",
			Description: "",
			Action:      info,
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:    "verbose",
					Aliases: []string{"v"},
					Usage:   "increase verbosity",
				},
				gameFlag,
			},
		},
		{
			Name:        "convert",
			Usage:       "Create C headers from an existing set of ROM images",
			Description: "",
			Action:      convert,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "directory",
					Aliases: []string{"d"},
					Usage:   "output directory",
					Value:   cwd,
				},
				gameFlag,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
