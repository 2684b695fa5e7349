// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: derived from the pack's urfave/cli front ends (SPEC_FULL.md
// ambient-stack section); the core package (spec.md's in-scope engine)
// is a pure library, so this binary is the "external collaborator"
// spec.md §1 excludes from the core.

package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/mossbyte/lzans"
)

var log = logrus.New()

func main() {
	app := &cli.App{
		Name:  "lzansc",
		Usage: "compress or decompress files with the lzans codec",
		Commands: []*cli.Command{
			compressCommand(),
			decompressCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Error("lzansc failed")
		os.Exit(1)
	}
}

func compressCommand() *cli.Command {
	return &cli.Command{
		Name:      "c",
		Usage:     "compress a file",
		ArgsUsage: "<input>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Required: true, Usage: "output path"},
			&cli.IntFlag{Name: "level", Aliases: []string{"l"}, Value: lzans.LevelDefault, Usage: "compression level 1-9"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}},
		},
		Action: func(c *cli.Context) error {
			if c.Bool("verbose") {
				log.SetLevel(logrus.DebugLevel)
			}
			if c.NArg() != 1 {
				return cli.Exit("expected exactly one input path", 2)
			}

			in, err := os.ReadFile(c.Args().First())
			if err != nil {
				return cli.Exit(err, 1)
			}

			log.WithFields(logrus.Fields{
				"input": c.Args().First(),
				"bytes": len(in),
				"level": c.Int("level"),
			}).Debug("compressing")

			out, err := lzans.Encode(in, &lzans.EncodeOptions{Level: c.Int("level")})
			if err != nil {
				return cli.Exit(err, 1)
			}

			if err := os.WriteFile(c.String("output"), out, 0o644); err != nil {
				return cli.Exit(err, 1)
			}

			log.WithFields(logrus.Fields{
				"in":  len(in),
				"out": len(out),
			}).Info("compressed")
			fmt.Printf("%d -> %d bytes\n", len(in), len(out))
			return nil
		},
	}
}

func decompressCommand() *cli.Command {
	return &cli.Command{
		Name:      "d",
		Usage:     "decompress a file",
		ArgsUsage: "<input>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Required: true, Usage: "output path"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}},
		},
		Action: func(c *cli.Context) error {
			if c.Bool("verbose") {
				log.SetLevel(logrus.DebugLevel)
			}
			if c.NArg() != 1 {
				return cli.Exit("expected exactly one input path", 2)
			}

			in, err := os.ReadFile(c.Args().First())
			if err != nil {
				return cli.Exit(err, 1)
			}

			out, err := lzans.Decode(in)
			if err != nil {
				return cli.Exit(err, 1)
			}

			if err := os.WriteFile(c.String("output"), out, 0o644); err != nil {
				return cli.Exit(err, 1)
			}

			log.WithFields(logrus.Fields{
				"in":  len(in),
				"out": len(out),
			}).Info("decompressed")
			return nil
		},
	}
}
