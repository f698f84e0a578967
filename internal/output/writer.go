package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/gnuchess-board-go/internal/config"
	"github.com/lgbarn/gnuchess-board-go/internal/session"
)

// ReportWriter is the interface for writing interpreted responses.
// Different implementations handle different output formats (text, JSON).
type ReportWriter interface {
	// WriteReport writes one report and the session state after it.
	WriteReport(s *session.Session, r *session.Report) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewReportWriter picks the writer matching the output configuration.
func NewReportWriter(w io.Writer, cfg *config.Config) ReportWriter {
	if cfg.Output.JSONFormat {
		return NewJSONWriterSingle(w, cfg)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes reports as human readable text.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WriteReport writes the status line, the move with its squares and, when
// configured, the board and roster.
func (tw *TextWriter) WriteReport(s *session.Session, r *session.Report) error {
	if r.Status == session.StatusGame {
		_, err := fmt.Fprintf(tw.w, "%s\n\n", r.GameText)
		return err
	}

	if r.Move != "" && r.Status != session.StatusHint {
		fmt.Fprintf(tw.w, "%d. %s", len(s.Moves()), r.Move)
		if r.Source.Valid() && r.Source != r.Dest {
			fmt.Fprintf(tw.w, " (%s-%s)", r.Source, r.Dest)
		}
		fmt.Fprintln(tw.w)
	}
	if r.Status == session.StatusHint {
		fmt.Fprintf(tw.w, "Hint: %s", r.Move)
		if r.Source.Valid() {
			fmt.Fprintf(tw.w, " (%s-%s)", r.Source, r.Dest)
		}
		fmt.Fprintln(tw.w)
	} else {
		fmt.Fprintln(tw.w, r.Message())
	}
	if r.BoardErr != nil {
		fmt.Fprintf(tw.w, "bad board output: %v\n", r.BoardErr)
	}

	if tw.cfg.Output.ShowBoard && r.Status != session.StatusHint {
		fmt.Fprintf(tw.w, "\n%s\n", FormatBoard(s.Registry()))
	}
	if tw.cfg.Output.ShowRoster {
		fmt.Fprintf(tw.w, "%s\n", FormatRoster(s.Registry()))
	}
	return nil
}

// Flush flushes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONOutput holds multiple reports for array output.
type JSONOutput struct {
	Reports []*JSONReport `json:"reports"`
}

// JSONWriter writes reports in JSON format.
// It buffers reports and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	cfg     *config.Config
	reports []*JSONReport
	single  bool // If true, write each report immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches reports and writes them as an array on Close().
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:       w,
		cfg:     cfg,
		reports: make([]*JSONReport, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each report immediately.
func NewJSONWriterSingle(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:      w,
		cfg:    cfg,
		single: true,
	}
}

// WriteReport converts the report now, since the session keeps changing,
// and writes it immediately in single mode.
func (jw *JSONWriter) WriteReport(s *session.Session, r *session.Report) error {
	jr := ReportToJSON(s, r, jw.cfg.Output.ShowRoster)
	if jw.single {
		return encode(jw.w, jr)
	}
	jw.reports = append(jw.reports, jr)
	return nil
}

// Flush writes all buffered reports as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.reports) == 0 {
		return nil
	}
	err := encode(jw.w, &JSONOutput{Reports: jw.reports})

	// Clear buffer after writing
	jw.reports = jw.reports[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

func encode(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
