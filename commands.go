package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/color-game/palette-studio/api"
	"github.com/color-game/palette-studio/colors"
	"github.com/color-game/palette-studio/datastore"
	"github.com/color-game/palette-studio/migrations"
	"github.com/color-game/palette-studio/models"
	"github.com/color-game/palette-studio/palette"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

func newCLI(s settings) *cli.App {
	return &cli.App{
		Name:  "palette-studio",
		Usage: "color conversion, contrast and brand palette tools",
		Commands: []*cli.Command{
			serveCommand(s),
			migrateCommand(s),
			convertCommand(),
			tintsCommand(),
			contrastCommand(),
			harmonyCommand(),
			generateCommand(s),
			tokenCommand(s),
		},
	}
}

type stores struct {
	palettes datastore.PaletteRepository
	daily    datastore.DailyPaletteRepository
	close    func() error
}

// openStores connects the configured backend. Postgres is migrated on open.
func openStores(cfg api.Config) (stores, error) {
	switch cfg.DatabaseType {
	case "memory":
		mem := datastore.NewMemoryStore()
		return stores{palettes: mem, daily: mem, close: func() error { return nil }}, nil
	case "postgres":
	default:
		return stores{}, fmt.Errorf("unsupported DB_TYPE %q", cfg.DatabaseType)
	}

	dbConn, err := datastore.NewDB(cfg.DatabaseType, datastore.BuildDBConnStr(
		cfg.DatabaseHost,
		cfg.DatabasePassword,
		cfg.DatabaseUser,
		cfg.DatabaseName,
		cfg.SSLMode,
	))
	if err != nil {
		return stores{}, fmt.Errorf("failed to connect to database: %v", err)
	}

	if err := migrations.RunMigrations(dbConn); err != nil {
		dbConn.Close()
		return stores{}, fmt.Errorf("failed to run migrations: %v", err)
	}

	paletteRepo, err := datastore.NewPaletteDatabase(dbConn)
	if err != nil {
		dbConn.Close()
		return stores{}, fmt.Errorf("failed to create palette repository: %v", err)
	}
	dailyRepo, err := datastore.NewDailyPaletteDatabase(dbConn)
	if err != nil {
		dbConn.Close()
		return stores{}, fmt.Errorf("failed to create daily palette repository: %v", err)
	}

	return stores{palettes: paletteRepo, daily: dailyRepo, close: dbConn.Close}, nil
}

// errMissingSecret stops commands that sign or verify tokens.
var errMissingSecret = errors.New("JWT_SECRET is not set")

func serveCommand(s settings) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "port", Usage: "listen address, overrides HTTP_PORT", Value: s.API.HTTPPort},
			&cli.StringFlag{Name: "db", Usage: "memory or postgres, overrides DB_TYPE", Value: s.API.DatabaseType},
		},
		Action: func(c *cli.Context) error {
			if s.API.JwtSecret == "" {
				return errMissingSecret
			}
			cfg := s.API
			cfg.HTTPPort = c.String("port")
			cfg.DatabaseType = c.String("db")

			st, err := openStores(cfg)
			if err != nil {
				return err
			}
			defer st.close()

			app := api.NewApplication(cfg, palette.NewGenerator(s.Generator), st.palettes, st.daily)

			log.Printf("palette studio starting with %s storage", cfg.DatabaseType)
			return app.Serve(http.NewServeMux())
		},
	}
}

func migrateCommand(s settings) *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "database migrations",
		Subcommands: []*cli.Command{
			{
				Name:  "up",
				Usage: "apply pending migrations",
				Action: func(c *cli.Context) error {
					cfg := s.API
					cfg.DatabaseType = "postgres"
					st, err := openStores(cfg)
					if err != nil {
						return err
					}
					return st.close()
				},
			},
			{
				Name:  "status",
				Usage: "list migrations that have not been applied",
				Action: func(c *cli.Context) error {
					dbConn, err := datastore.NewDB("postgres", datastore.BuildDBConnStr(
						s.API.DatabaseHost,
						s.API.DatabasePassword,
						s.API.DatabaseUser,
						s.API.DatabaseName,
						s.API.SSLMode,
					))
					if err != nil {
						return err
					}
					defer dbConn.Close()

					pending, err := migrations.Pending(dbConn)
					if err != nil {
						return err
					}
					if len(pending) == 0 {
						fmt.Fprintln(c.App.Writer, "no pending migrations")
						return nil
					}
					for _, m := range pending {
						fmt.Fprintf(c.App.Writer, "pending: %03d_%s\n", m.Version, m.Name)
					}
					return nil
				},
			},
		},
	}
}

func parseColorArg(c *cli.Context, position int) (colors.RGB, error) {
	arg := c.Args().Get(position)
	if arg == "" {
		return colors.RGB{}, fmt.Errorf("missing color argument %d", position+1)
	}
	rgb, err := colors.ParseColor(arg)
	if err == nil {
		return rgb, nil
	}
	hex, hexErr := colors.NormalizeHex(arg)
	if hexErr != nil {
		return colors.RGB{}, err
	}
	return colors.HexToRGB(hex)
}

func convertCommand() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "re-encode a color as hex, rgb or hsl",
		ArgsUsage: "<color>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "to", Aliases: []string{"t"}, Usage: "hex, rgb or hsl", Required: true},
		},
		Action: func(c *cli.Context) error {
			format, err := colors.ParseFormat(c.String("to"))
			if err != nil {
				return err
			}
			rgb, err := parseColorArg(c, 0)
			if err != nil {
				return err
			}

			input := c.Args().First()
			if _, err := colors.ParseColor(input); err != nil {
				input = rgb.Hex()
			}
			fmt.Fprintln(c.App.Writer, colors.ConvertColor(input, format))
			return nil
		},
	}
}

func tintsCommand() *cli.Command {
	return &cli.Command{
		Name:      "tints",
		Usage:     "print lighter tints and darker shades of a color",
		ArgsUsage: "<color>",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "tints", Value: 5},
			&cli.IntFlag{Name: "shades", Value: 5},
		},
		Action: func(c *cli.Context) error {
			rgb, err := parseColorArg(c, 0)
			if err != nil {
				return err
			}
			tints, err := colors.GenerateTints(rgb.Hex(), c.Int("tints"))
			if err != nil {
				return err
			}
			shades, err := colors.GenerateShades(rgb.Hex(), c.Int("shades"))
			if err != nil {
				return err
			}

			fmt.Fprintf(c.App.Writer, "base    %s\n", rgb.Hex())
			for _, t := range tints {
				fmt.Fprintf(c.App.Writer, "tint    %s\n", t)
			}
			for _, sh := range shades {
				fmt.Fprintf(c.App.Writer, "shade   %s\n", sh)
			}
			return nil
		},
	}
}

func verdict(pass bool) string {
	if pass {
		return "pass"
	}
	return "fail"
}

func contrastCommand() *cli.Command {
	return &cli.Command{
		Name:      "contrast",
		Usage:     "WCAG contrast ratio between two colors",
		ArgsUsage: "<foreground> <background>",
		Action: func(c *cli.Context) error {
			fg, err := parseColorArg(c, 0)
			if err != nil {
				return err
			}
			bg, err := parseColorArg(c, 1)
			if err != nil {
				return err
			}

			rating := colors.Rating(colors.Contrast(fg, bg))
			fmt.Fprintf(c.App.Writer, "%.2f:1  AA %s  AAA %s  UI %s\n",
				rating.Ratio, verdict(rating.AA), verdict(rating.AAA), verdict(rating.UI))
			return nil
		},
	}
}

func harmonyCommand() *cli.Command {
	return &cli.Command{
		Name:      "harmony",
		Usage:     "colors related to a base color by a harmony pattern",
		ArgsUsage: "<color>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "pattern", Aliases: []string{"p"}, Value: string(colors.Complementary)},
		},
		Action: func(c *cli.Context) error {
			pattern, err := colors.ParsePattern(c.String("pattern"))
			if err != nil {
				return err
			}
			rgb, err := parseColorArg(c, 0)
			if err != nil {
				return err
			}

			for _, h := range colors.Harmony(rgb.HSL(), pattern) {
				enc := models.NewColorEncodings(h.RGB())
				fmt.Fprintf(c.App.Writer, "%s  %s  %s\n", enc.Hex, enc.RGB, enc.HSL)
			}
			return nil
		},
	}
}

func generateCommand(s settings) *cli.Command {
	return &cli.Command{
		Name:      "generate",
		Usage:     "assemble brand palettes from one to three colors",
		ArgsUsage: "<color> [color] [color]",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "count", Value: s.Generator.Count},
			&cli.DurationFlag{Name: "delay", Usage: "wait before printing", Value: 0},
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "json", Usage: "json, yaml or css"},
		},
		Action: func(c *cli.Context) error {
			cfg := s.Generator
			cfg.Count = c.Int("count")
			cfg.Delay = c.Duration("delay")

			palettes, err := palette.NewGenerator(cfg).Generate(c.Context, c.Args().Slice())
			if err != nil {
				return err
			}
			return writePalettes(c, palettes, c.String("format"))
		},
	}
}

func writePalettes(c *cli.Context, palettes []models.Palette, format string) error {
	exportFormat, err := models.ParseExportFormat(format)
	if err != nil {
		return err
	}

	switch exportFormat {
	case models.ExportJSON:
		out, err := json.MarshalIndent(palettes, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(c.App.Writer, string(out))
	case models.ExportYAML:
		out, err := yaml.Marshal(palettes)
		if err != nil {
			return err
		}
		fmt.Fprint(c.App.Writer, string(out))
	default:
		blocks := make([]string, 0, len(palettes))
		for _, p := range palettes {
			blocks = append(blocks, p.CSSVariables())
		}
		fmt.Fprint(c.App.Writer, strings.Join(blocks, "\n"))
	}
	return nil
}

func tokenCommand(s settings) *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "issue an admin bearer token signed with JWT_SECRET",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "subject", Value: "admin"},
			&cli.DurationFlag{Name: "ttl", Value: 24 * time.Hour},
		},
		Action: func(c *cli.Context) error {
			if s.API.JwtSecret == "" {
				return errMissingSecret
			}
			token, expiry, err := models.NewAdminToken(c.String("subject"), s.API.JwtSecret, c.Duration("ttl"))
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, token)
			log.Printf("admin token for %s expires %s", c.String("subject"), expiry.Format(time.RFC3339))
			return nil
		},
	}
}
