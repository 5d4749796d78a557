package main

import (
	"context"
	"fmt"
	"github.com/spf13/cobra"
	"github.com/willbeason/text-fractal/pkg/escape"
	"os"
)

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Args: cobra.ExactArgs(0),
		RunE: runCmd,
	}

	return cmd
}

func runCmd(cmd *cobra.Command, _ []string) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Welcome to the Mandelbrot Fractal Explorer Tutorial!")
	fmt.Fprintln(out, "This program will generate a textual representation of the Mandelbrot set.")
	fmt.Fprintln(out, "Pay attention to the comments explaining complex numbers and the iteration process.")
	fmt.Fprintln(out)

	frame := escape.DefaultFrame()

	fmt.Fprintln(out, "Rendering default view...")
	if err := frame.Render(out, escape.View{Zoom: 1.0}); err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Rendering a zoomed-in view...")
	// Zoom and offset values are usually found by exploration; this pair
	// lands on the shoulder between the main cardioid and the period-2 bulb.
	if err := frame.Render(out, escape.View{Zoom: 30.0, OffsetX: -0.75}); err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Tutorial finished. Happy exploring!")

	return nil
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
