package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/npillmayer/animsync"
	"github.com/npillmayer/animsync/dom"
	"github.com/npillmayer/animsync/frame"
	"github.com/npillmayer/animsync/scene"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play --html page.html [--out result.html] scene.yaml",
	Short: "Play a scene on an HTML document",
	Long: `Plays the steps of a scene on an HTML document and writes the
document, as it looks after the scene has finished, as HTML.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		htmlPath, _ := cmd.Flags().GetString("html")
		outPath, _ := cmd.Flags().GetString("out")
		virtual, _ := cmd.Flags().GetBool("virtual")
		return runPlay(cmd.Context(), htmlPath, args[0], outPath, virtual)
	},
}

func init() {
	playCmd.Flags().String("html", "", "HTML document to animate")
	playCmd.Flags().String("out", "", "output file (default stdout)")
	playCmd.Flags().Bool("virtual", false, "play on a virtual clock, as fast as possible")
	_ = playCmd.MarkFlagRequired("html")
	rootCmd.AddCommand(playCmd)
}

// maximum number of frames of a virtual run, one hour at 60 fps
const maxVirtualFrames = 60 * 60 * 60

func runPlay(ctx context.Context, htmlPath, scenePath, outPath string, virtual bool) error {
	doc, err := loadDocument(htmlPath)
	if err != nil {
		return err
	}
	script, err := scene.Load(scenePath)
	if err != nil {
		return fmt.Errorf("%s: %w", scenePath, err)
	}
	failures := 0
	report := frame.WithErrorReporter(func(err error) {
		failures++
		tracer().Errorf("%v", err)
	})
	start := time.Now()
	if virtual {
		sched := frame.NewManual(start, config.FrameInterval())
		a := animsync.New(doc, frame.NewEngine(sched, report), config)
		done := scene.Play(a, script)
		steps, err := sched.RunUntilIdle(maxVirtualFrames)
		if err != nil {
			return err
		}
		tracer().Infof("played %d frames, %v of scene time", steps, sched.Now().Sub(start))
		if err := done.Err(); err != nil {
			return err
		}
	} else {
		if ctx == nil {
			ctx = context.Background()
		}
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
		defer stop()
		ticker := frame.NewTicker(config.FPS)
		a := animsync.New(doc, frame.NewEngine(ticker, report), config)
		started := make(chan *frame.Future, 1)
		ticker.Do(func() {
			started <- scene.Play(a, script)
		})
		err := (<-started).Wait(ctx)
		ticker.Stop()
		if err != nil {
			return err
		}
		tracer().Infof("played scene in %v", time.Since(start).Round(time.Millisecond))
	}
	if failures > 0 {
		tracer().Errorf("%d callback failure(s) during scene", failures)
	}
	return writeDocument(doc, outPath)
}

func loadDocument(path string) (*dom.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	doc, err := dom.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for _, sheetPath := range stylesheets {
		text, err := os.ReadFile(sheetPath)
		if err != nil {
			return nil, err
		}
		if err = doc.AddStyleSheet(string(text)); err != nil {
			return nil, fmt.Errorf("%s: %w", sheetPath, err)
		}
	}
	return doc, nil
}

func writeDocument(doc *dom.Document, path string) error {
	var w io.Writer = os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return doc.Render(w)
}
