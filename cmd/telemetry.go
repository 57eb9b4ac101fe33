package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/papapumpkin/tnguide/internal/telemetry"
)

// errNoTelemetryPath is returned when neither --file nor telemetry_path is set.
var errNoTelemetryPath = errors.New("telemetry: no file given and telemetry_path is not configured")

var telemetryCmd = &cobra.Command{
	Use:   "telemetry",
	Short: "View the JSONL session event log",
	Long: `Reads and formats the JSONL telemetry file written by the TUI.

Without --file, reads the configured telemetry_path.
With --session, shows only events from that session.
With --follow (-f), watches the file for new events (like tail -f).`,
	Annotations: map[string]string{annotationNoCatalog: "true"},
	RunE:        runTelemetry,
}

func init() {
	telemetryCmd.Flags().String("file", "", "telemetry file (default: telemetry_path)")
	telemetryCmd.Flags().String("session", "", "only show events from this session id")
	telemetryCmd.Flags().BoolP("follow", "f", false, "follow the file for new events")
	rootCmd.AddCommand(telemetryCmd)
}

func runTelemetry(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("file")
	if path == "" {
		path = current.cfg.TelemetryPath
	}
	if path == "" {
		return errNoTelemetryPath
	}
	sessionID, _ := cmd.Flags().GetString("session")
	follow, _ := cmd.Flags().GetBool("follow")

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("telemetry: open %s: %w", path, err)
	}
	defer f.Close()

	// Print all existing events.
	reader := bufio.NewReader(f)
	if err := printLines(cmd.OutOrStdout(), reader, sessionID); err != nil {
		return fmt.Errorf("telemetry: read %s: %w", path, err)
	}

	if !follow {
		return nil
	}

	return tailFollow(cmd.OutOrStdout(), reader, path, sessionID)
}

// printLines prints every complete line available from r.
func printLines(w io.Writer, r *bufio.Reader, sessionID string) error {
	for {
		line, err := r.ReadString('\n')
		if line = strings.TrimSpace(line); line != "" {
			printEvent(w, line, sessionID)
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// tailFollow watches the file for new data using fsnotify and prints new events.
func tailFollow(w io.Writer, r *bufio.Reader, path, sessionID string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("telemetry: create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("telemetry: watch %s: %w", path, err)
	}

	for event := range watcher.Events {
		if event.Op&fsnotify.Write == 0 {
			continue
		}
		if err := printLines(w, r, sessionID); err != nil {
			return fmt.Errorf("telemetry: read %s: %w", path, err)
		}
	}
	return nil
}

// printEvent decodes a JSONL line and prints a human-readable representation.
// Events from other sessions are skipped when sessionID is set.
func printEvent(w io.Writer, line, sessionID string) {
	var evt telemetry.Event
	if err := json.Unmarshal([]byte(line), &evt); err != nil {
		fmt.Fprintf(w, "??? %s\n", line)
		return
	}
	if sessionID != "" && evt.SessionID != sessionID {
		return
	}

	ts := evt.Timestamp.Local().Format(time.TimeOnly)
	parts := []string{fmt.Sprintf("[%s]", ts), evt.Kind}

	if evt.SessionID != "" {
		parts = append(parts, fmt.Sprintf("session=%s", shortID(evt.SessionID)))
	}
	if evt.Data != nil {
		if m, ok := evt.Data.(map[string]any); ok {
			parts = append(parts, formatDataMap(m))
		} else {
			data, _ := json.Marshal(evt.Data)
			parts = append(parts, string(data))
		}
	}

	fmt.Fprintln(w, strings.Join(parts, " "))
}

// shortID keeps the first block of a uuid.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

// formatDataMap formats a data map as key=value pairs sorted by key.
func formatDataMap(m map[string]any) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%v", k, m[k])
	}
	return b.String()
}
