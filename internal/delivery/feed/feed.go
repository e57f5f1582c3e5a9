package feed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/Xausdorf/tenant-ledger/internal/usecase/operation"
)

type Executor interface {
	Execute(ctx context.Context, op operation.Operation) (any, error)
}

// Entry keeps the record as it was read so it can be echoed back verbatim.
// Err is set when the record itself could not be decoded.
type Entry struct {
	Raw       json.RawMessage
	Operation operation.Operation
	Err       error
}

// Load reads a JSON array of operation records. Only a malformed array is
// fatal; a record that does not decode is kept with its Err set.
func Load(r io.Reader) ([]Entry, error) {
	var raws []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raws); err != nil {
		return nil, fmt.Errorf("decode feed: %w", err)
	}

	entries := make([]Entry, 0, len(raws))
	for _, raw := range raws {
		e := Entry{Raw: raw}
		var compact bytes.Buffer
		if err := json.Compact(&compact, raw); err == nil {
			e.Raw = compact.Bytes()
		}
		if err := json.Unmarshal(raw, &e.Operation); err != nil {
			e.Err = fmt.Errorf("invalid record: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

type Printer struct {
	w    io.Writer
	ok   *color.Color
	fail *color.Color
}

func NewPrinter(w io.Writer, colored bool) *Printer {
	p := &Printer{
		w:    w,
		ok:   color.New(color.FgGreen),
		fail: color.New(color.FgRed),
	}
	if colored {
		p.ok.EnableColor()
		p.fail.EnableColor()
	} else {
		p.ok.DisableColor()
		p.fail.DisableColor()
	}
	return p
}

// Print writes "<request> => <result>" where result is the JSON of the
// outcome or the error text.
func (p *Printer) Print(raw []byte, result any, err error) error {
	if err != nil {
		_, werr := fmt.Fprintf(p.w, "%s => %s\n", raw, p.fail.Sprint(err.Error()))
		return werr
	}
	body, merr := json.Marshal(result)
	if merr != nil {
		return fmt.Errorf("encode result: %w", merr)
	}
	_, werr := fmt.Fprintf(p.w, "%s => %s\n", raw, p.ok.Sprint(string(body)))
	return werr
}

type Summary struct {
	Succeeded int
	Failed    int
}

// Run executes every entry in order. A failed operation is printed and the
// run goes on; only output errors and cancellation stop it.
func Run(ctx context.Context, exec Executor, entries []Entry, p *Printer) (Summary, error) {
	var sum Summary
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		var (
			result any
			err    = e.Err
		)
		if err == nil {
			result, err = exec.Execute(ctx, e.Operation)
		}
		if err != nil {
			sum.Failed++
		} else {
			sum.Succeeded++
		}
		if perr := p.Print(e.Raw, result, err); perr != nil {
			return sum, perr
		}
	}
	return sum, nil
}
