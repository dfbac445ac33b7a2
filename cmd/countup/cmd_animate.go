package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"countup/internal/countup"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	animateDuration time.Duration
	animateFPS      int
	animateMarkdown bool
	animateSteps    int

	renderAt       time.Duration
	renderDuration time.Duration
)

// animateCmd counts labels up without the landing page
var animateCmd = &cobra.Command{
	Use:   "animate LABEL...",
	Short: "Count labels up from zero, printing every frame",
	Long: `Runs one independent animation per label and prints each frame as
"LABEL  TEXT". Labels that have no number, or that contain "/", are printed
once and left alone.

With --markdown nothing is animated: a table of frames sampled at even
steps is rendered instead.

Example:
  countup animate '$49' 2.4K 98% 10K+ 24/7
  countup animate --markdown --steps 4 '$49' 98%`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnimate,
}

// renderCmd prints one frame
var renderCmd = &cobra.Command{
	Use:   "render LABEL",
	Short: "Print the frame of LABEL at a given elapsed time",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d := renderDuration
		if d <= 0 {
			d = cfg.GetDuration()
		}
		fmt.Fprintln(cmd.OutOrStdout(), countup.Render(args[0], renderAt, d))
		return nil
	},
}

func runAnimate(cmd *cobra.Command, args []string) error {
	if err := validateAnimateFlags(); err != nil {
		return err
	}
	opts := animateOptions()
	out := cmd.OutOrStdout()

	if animateMarkdown && opts.Duration/time.Duration(animateSteps) <= 0 {
		return fmt.Errorf("--duration %s is too short for %d steps", opts.Duration, animateSteps)
	}

	if animateMarkdown {
		return printFrameTable(out, args, opts.Duration, animateSteps)
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	width := 0
	for _, a := range args {
		width = max(width, len(a))
	}

	var mu sync.Mutex
	emit := func(label, text string) {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintf(out, "%-*s  %s\n", width, label, text)
	}

	targets := make([]countup.Target, len(args))
	for i, label := range args {
		l, err := countup.ParseLabel(label)
		if err != nil || !l.Animatable() {
			logger.Debug("label left static", zap.String("label", label))
			emit(label, label)
		}
		targets[i] = countup.Target{
			Text: label,
			Sink: countup.SinkFunc(func(text string) { emit(label, text) }),
		}
	}

	logger.Info("animating labels",
		zap.Int("count", len(args)),
		zap.Duration("duration", opts.Duration),
		zap.Duration("frame_interval", opts.FrameInterval))

	if err := countup.AnimateAll(ctx, targets, opts); err != nil {
		return fmt.Errorf("animation interrupted: %w", err)
	}
	return nil
}

func validateAnimateFlags() error {
	if animateDuration < 0 {
		return fmt.Errorf("--duration must not be negative, got %s", animateDuration)
	}
	if animateFPS < 0 {
		return fmt.Errorf("--fps must not be negative, got %d", animateFPS)
	}
	if animateSteps < 1 {
		return fmt.Errorf("--steps must be at least 1, got %d", animateSteps)
	}
	return nil
}

func animateOptions() countup.Options {
	opts := countup.Options{
		Duration:      cfg.GetDuration(),
		FrameInterval: cfg.GetFrameInterval(),
	}
	if animateDuration > 0 {
		opts.Duration = animateDuration
	}
	if animateFPS > 0 {
		opts.FrameInterval = time.Second / time.Duration(animateFPS)
	}
	return opts
}

// frameTable builds a markdown table with one column per label and one
// row per step from zero to duration. The last row is always the final
// frame, labelled with duration even when steps does not divide it.
func frameTable(labels []string, duration time.Duration, steps int) string {
	if steps < 1 {
		steps = 1
	}
	step := max(duration/time.Duration(steps), countup.MinStep)

	columns := make([][]string, len(labels))
	for i, label := range labels {
		seq := countup.NewSequence(label, duration, countup.NewSteppedClock(step))
		for text := range seq.Texts() {
			columns[i] = append(columns[i], text)
		}
	}

	var sb strings.Builder
	sb.WriteString("| elapsed |")
	for _, l := range labels {
		fmt.Fprintf(&sb, " %s |", escapeCell(l))
	}
	sb.WriteString("\n|---|")
	sb.WriteString(strings.Repeat("---|", len(labels)))
	sb.WriteString("\n")

	for row := 0; row <= steps; row++ {
		elapsed := time.Duration(row) * step
		if row == steps {
			elapsed = duration
		}
		fmt.Fprintf(&sb, "| %s |", elapsed)
		for i, l := range labels {
			text := l
			n := len(columns[i])
			switch {
			case n == 0:
			case row < steps && row < n:
				text = columns[i][row]
			default:
				text = columns[i][n-1]
			}
			fmt.Fprintf(&sb, " %s |", escapeCell(text))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func printFrameTable(out io.Writer, labels []string, duration time.Duration, steps int) error {
	md := "## Frames\n\n" + frameTable(labels, duration, steps)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		return fmt.Errorf("failed to render frame table: %w", err)
	}
	_, err = fmt.Fprint(out, rendered)
	return err
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
