package main

import (
	"fmt"
	"os"

	"github.com/knadh/koanf"
	"github.com/npillmayer/animsync"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/spf13/cobra"
)

// tracers of the library, configured by --verbose
var tracerKeys = []string{
	"animsync", "animsync.frame", "animsync.effect", "animsync.dom", "animsync.scene", "animsync.cmd",
}

var (
	verbose     bool
	stylesheets []string
	config      animsync.Config
)

var rootCmd = &cobra.Command{
	Use:   "animsync",
	Short: "animsync plays CSS animation scenes on HTML documents",
	Long: `animsync drives frame-synchronized CSS animations of DOM elements.
Scenes are YAML scripts of steps; results are written as HTML.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		conf, err := configure(cmd)
		if err != nil {
			return err
		}
		config, err = animsync.ConfigFrom(conf)
		return err
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "trace at debug level")
	rootCmd.PersistentFlags().Int("fps", 60, "frames per second")
	rootCmd.PersistentFlags().String("easing", "linear", "default timing function")
	rootCmd.PersistentFlags().String("unit", "px", "default unit of changed properties")
	rootCmd.PersistentFlags().StringSliceVar(&stylesheets, "css", nil, "additional stylesheets, applied after the document's <style>s")
}

// configure creates a configuration from the command line flags and sets up
// tracing from it. Keys are separated by '/', as tracer names contain dots.
func configure(cmd *cobra.Command) (schuko.Configuration, error) {
	conf := koanfadapter.New(koanf.New("/"), "", nil)
	conf.InitDefaults() // sets adapter "go"
	flags := cmd.Flags()
	fps, _ := flags.GetInt("fps")
	conf.Set(animsync.KeyFPS, fps)
	curve, _ := flags.GetString("easing")
	conf.Set(animsync.KeyEasing, curve)
	unit, _ := flags.GetString("unit")
	conf.Set(animsync.KeyUnit, unit)
	level := "Error"
	if verbose {
		level = "Debug"
	}
	conf.Set("tracelevel/root", level)
	for _, key := range tracerKeys {
		conf.Set("tracelevel/"+key, level)
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return nil, fmt.Errorf("cannot configure tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return conf, nil
}

func tracer() tracing.Trace {
	return tracing.Select("animsync.cmd")
}
