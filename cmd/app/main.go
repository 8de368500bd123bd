package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"

	"github.com/1F47E/go-datamosh/internal/config"
	"github.com/1F47E/go-datamosh/internal/core"
	"github.com/1F47E/go-datamosh/internal/logger"
	"github.com/1F47E/go-datamosh/internal/tui"
)

var app = cli.NewApp()
var log = logger.Log

var runFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "ratio, r",
		Value: string(config.DefaultRatio),
		Usage: "aspect ratio: 1:1, 4:3, 16:9, 9:16",
	},
	cli.IntFlag{
		Name:  "width, w",
		Value: config.DefaultBaseWidth,
		Usage: "base width: 256, 512, 1024",
	},
	cli.IntFlag{
		Name:  "fps, f",
		Value: config.DefaultFPS,
		Usage: "frame rate: 1, 12, 24, 30",
	},
}

func init() {
	app.Name = "datamosh"
	app.Usage = "A file to video converter"
	app.UsageText = "datamosh [command] [options] filename"
	app.HideVersion = true
	app.Commands = []cli.Command{
		{
			Name:    "encode",
			Aliases: []string{"e"},
			Usage:   "Encode a file into a video",
			Flags: append(runFlags, cli.StringFlag{
				Name:  "output, o",
				Usage: "output file path, default <name>_datamosh.mp4",
			}),
			Action: encodeAction,
		},
		{
			Name:    "info",
			Aliases: []string{"i"},
			Usage:   "Show resolution, frame count and estimated duration",
			Flags:   runFlags,
			Action:  infoAction,
		},
	}
}

func encodeAction(c *cli.Context) error {
	filename, err := getFilename(c)
	if err != nil {
		return err
	}
	runCfg, err := getRunConfig(c)
	if err != nil {
		return err
	}
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	eventsCh := make(chan tui.Event)
	t := tui.New(eventsCh, ctx)
	go t.Run()

	out, err := core.NewCore(ctx, eventsCh, settings).Encode(filename, runCfg, c.String("output"))
	cancel()
	if err != nil {
		return err
	}
	log.Infof("Saved: %s", out)
	return nil
}

func infoAction(c *cli.Context) error {
	filename, err := getFilename(c)
	if err != nil {
		return err
	}
	runCfg, err := getRunConfig(c)
	if err != nil {
		return err
	}
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}

	r, err := core.NewCore(context.Background(), nil, settings).Info(filename, runCfg)
	if err != nil {
		return err
	}
	log.Infof("File size: %d bytes", r.SizeBytes)
	log.Infof("Resolution: %dx%d", r.Width, r.Height)
	log.Infof("Frames: %d", r.Frames)
	log.Infof("Estimated duration: %.2f sec @ %d fps", r.Seconds, r.FPS)
	return nil
}

func getFilename(c *cli.Context) (string, error) {
	f := c.Args().Get(0)
	if f == "" {
		return "", fmt.Errorf("Filename is required")
	}
	return f, nil
}

func getRunConfig(c *cli.Context) (config.RunConfig, error) {
	ratio, err := config.ParseAspectRatio(c.String("ratio"))
	if err != nil {
		return config.RunConfig{}, err
	}
	return config.NewRunConfig(ratio, c.Int("width"), c.Int("fps"))
}

func main() {
	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
