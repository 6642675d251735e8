package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/charlieparkes/listdistance/internal/app"
	"github.com/charlieparkes/listdistance/internal/distance"
	"github.com/charlieparkes/listdistance/internal/pairs"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var Cmd = &cobra.Command{
	Use:          "listdistance",
	Short:        "Sum the distance between the two sorted columns of " + app.InputPath,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func main() {
	if err := Cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(c *cobra.Command, args []string) error {
	w := bufio.NewWriter(c.OutOrStdout())
	defer w.Flush()

	if err := write(w, fmt.Sprintf("Attempting to read input from '%s'...", app.InputPath)); err != nil {
		return err
	}

	file, err := os.Open(app.InputPath)
	if err != nil {
		app.Log.Error("could not open input", zap.String("path", app.InputPath), zap.Error(err))
		return fmt.Errorf("open input %q: %w", app.InputPath, err)
	}
	defer file.Close()

	lists := pairs.Read(file, app.Diagnostics(c.ErrOrStderr()))

	if err := write(w, fmt.Sprintf("Finished reading file. Found %d valid pairs.", lists.Len())); err != nil {
		return err
	}

	if lists.Len() == 0 {
		return write(w, "No valid number pairs were read from the file.")
	}

	if len(lists.Left) != len(lists.Right) {
		app.Log.Error("internal inconsistency",
			zap.Int("left", len(lists.Left)),
			zap.Int("right", len(lists.Right)))
		return fmt.Errorf("read %d left and %d right numbers: %w",
			len(lists.Left), len(lists.Right), app.ErrInconsistentLists)
	}

	total := distance.Calculate(lists.Left, lists.Right)
	return write(w, "", fmt.Sprintf("Total distance between the lists: %d", total))
}

func write(w *bufio.Writer, lines ...string) error {
	for _, l := range lines {
		if _, err := w.WriteString(l + "\n"); err != nil {
			return err
		}
	}
	return w.Flush()
}
