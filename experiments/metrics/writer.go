package metrics

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
)

type SolveRecord struct {
	ID           int
	Position     string
	PositionHash uint64
	Move         string
	SearchMetric
}

type GameRecord struct {
	ID     int
	Agent1 string
	Agent2 string
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	RunID    string
	baseDir  string
	compress bool
}

// NewWriter creates a directory for one experiment run under root, named by
// the experiment, the current timestamp and a run ID.
func NewWriter(root, name string, compress bool) (*Writer, error) {
	runID := uuid.NewString()
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp+"-"+runID[:8])
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		RunID:    runID,
		baseDir:  baseDir,
		compress: compress,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

// compressedFile closes the zstd encoder before the file underneath it.
type compressedFile struct {
	*zstd.Encoder
	file *os.File
}

func (c compressedFile) Close() error {
	if err := c.Encoder.Close(); err != nil {
		c.file.Close()
		return err
	}
	return c.file.Close()
}

func (w *Writer) create(name string) (io.WriteCloser, string, error) {
	path := filepath.Join(w.baseDir, name+".csv")
	if w.compress {
		path += ".zst"
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, "", err
	}
	if !w.compress {
		return f, path, nil
	}

	enc, err := zstd.NewWriter(f)
	if err != nil {
		f.Close()
		return nil, "", err
	}
	return compressedFile{Encoder: enc, file: f}, path, nil
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) (err error) {
	f, path, err := w.create(name)
	if err != nil {
		return fmt.Errorf("failed to create %s file: %w", name, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	writer := csv.NewWriter(f)
	if err = writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	for _, row := range rows {
		if err = writer.Write(row); err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func (w *Writer) WriteSolveRecords(records []SolveRecord) error {
	header := []string{"id", "position", "position_hash", "goal", "outcome", "move", "duration", "iterations", "nodes_created", "nodes_pruned", "peak_nodes"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			record.Position,
			strconv.FormatUint(record.PositionHash, 16),
			record.Goal,
			record.Outcome,
			record.Move,
			record.Duration.String(),
			strconv.Itoa(record.Iterations),
			strconv.Itoa(record.NodesCreated),
			strconv.Itoa(record.NodesPruned),
			strconv.Itoa(record.PeakNodes),
		})
	}
	return w.writeCSV("solve_records", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent1", "agent2", "starting_player", "winner", "start_time", "end_time", "duration", "total_moves"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			record.Agent1,
			record.Agent2,
			strconv.Itoa(record.StartingPlayer),
			strconv.Itoa(record.Winner),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		})
	}
	return w.writeCSV("game_records", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "move", "goal", "outcome", "duration", "iterations", "nodes_created", "peak_nodes"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			strconv.Itoa(record.Player),
			record.Move,
			record.Goal,
			record.Outcome,
			record.Duration.String(),
			strconv.Itoa(record.Iterations),
			strconv.Itoa(record.NodesCreated),
			strconv.Itoa(record.PeakNodes),
		})
	}
	return w.writeCSV("move_records", header, rows)
}
