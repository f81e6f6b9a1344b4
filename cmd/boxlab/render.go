package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/boxlab/internal/style"
	"github.com/alexisbeaulieu97/boxlab/internal/tui"
	apperrors "github.com/alexisbeaulieu97/boxlab/pkg/errors"
)

const defaultRenderWidth = 120

type renderOptions struct {
	width int
	sets  []string
}

func newRenderCmd(flags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print one frame of the explorer and exit",
		Long: `Render the controls and the preview once, without keyboard input.

Adjust the starting records with --set, for example:

  boxlab render --set parent.width=450 --set child.display=flex --set grandchild.background-color=#FF0000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, flags, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.width, "width", "w", defaultRenderWidth, "Frame width in columns when stdout is not a terminal")
	cmd.Flags().StringArrayVar(&opts.sets, "set", nil, "Set a field before rendering (role.field=value)")

	return cmd
}

func runRender(cmd *cobra.Command, flags *rootFlags, opts *renderOptions) error {
	app, err := loadApp(flags)
	if err != nil {
		return err
	}
	defer app.Close()

	sheet := style.NewSheet()
	watchSheet(sheet, app.log)

	for _, assignment := range opts.sets {
		role, field, value, err := parseAssignment(assignment)
		if err != nil {
			return newCommandError("apply --set", assignment, err, "Use role.field=value, e.g. child.display=flex.")
		}
		if err := sheet.Update(role, field, value); err != nil {
			return newCommandError("apply --set", assignment, err, "Keep values inside the slider bounds listed by 'boxlab defaults'.")
		}
	}

	width := opts.width
	if !cmd.Flags().Changed("width") {
		if detected, ok := terminalWidth(cmd.OutOrStdout()); ok {
			width = detected
		}
	}

	tuiOpts := app.tuiOptions()
	tuiOpts.Animate = false
	frame := tui.NewModel(sheet, tuiOpts).Snapshot(width)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), frame)
	return err
}

func terminalWidth(w io.Writer) (int, bool) {
	file, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return 0, false
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return 0, false
	}
	return width, true
}

// parseAssignment reads "role.field=value". Pixel values may carry a px suffix.
func parseAssignment(s string) (style.Role, style.Field, style.Value, error) {
	key, raw, ok := strings.Cut(s, "=")
	if !ok {
		return 0, 0, nil, apperrors.NewValidationError("set", "expected role.field=value", nil)
	}
	roleName, fieldName, ok := strings.Cut(strings.TrimSpace(key), ".")
	if !ok {
		return 0, 0, nil, apperrors.NewValidationError("set", "expected role.field=value", nil)
	}

	role, ok := style.ParseRole(roleName)
	if !ok {
		return 0, 0, nil, apperrors.NewValidationError("set", fmt.Sprintf("unknown element %q", roleName), nil)
	}
	field, ok := style.ParseField(fieldName)
	if !ok {
		return 0, 0, nil, apperrors.NewValidationError("set", fmt.Sprintf("unknown field %q", fieldName), nil)
	}

	raw = strings.TrimSpace(raw)
	switch field.Kind() {
	case style.KindPixels:
		n, err := strconv.Atoi(strings.TrimSuffix(raw, "px"))
		if err != nil {
			return 0, 0, nil, apperrors.NewValidationError(field.String(), fmt.Sprintf("%q is not a pixel length", raw), err)
		}
		return role, field, style.Pixels(n), nil
	case style.KindPosition:
		return role, field, style.Position(raw), nil
	case style.KindDisplay:
		return role, field, style.Display(raw), nil
	default:
		color, err := style.ParseColor(raw)
		if err != nil {
			return 0, 0, nil, err
		}
		return role, field, color, nil
	}
}
