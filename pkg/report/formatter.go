package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/swantron/funcdemo/internal/counter"
	"github.com/swantron/funcdemo/internal/swap"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Format is an output format accepted by --output
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
	FormatMsgpack  Format = "msgpack"
)

// Formats lists every supported output format
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatMarkdown, FormatMsgpack}

// ParseFormat resolves a format name
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported output format: %s (supported: text, json, yaml, markdown, msgpack)", name)
}

// Report is implemented by every program result that can be written out
type Report interface {
	// Text is the plain program output, without a trailing newline
	Text() string
}

// SwapReport represents the output structure for the swap demonstration
type SwapReport struct {
	Initial swap.Operands `json:"initial" yaml:"initial" msgpack:"initial"`
	Final   swap.Operands `json:"final" yaml:"final" msgpack:"final"`
	Steps   []swap.Step   `json:"steps" yaml:"steps" msgpack:"steps"`
	Value   int           `json:"value" yaml:"value" msgpack:"value"`
}

// NewSwapReport converts a swap result
func NewSwapReport(result *swap.Result) *SwapReport {
	return &SwapReport{
		Initial: result.Initial,
		Final:   result.Final,
		Steps:   result.Steps,
		Value:   result.Value,
	}
}

// Text returns c - a - b as a signed decimal
func (r *SwapReport) Text() string {
	return strconv.Itoa(r.Value)
}

// swapMarkdown renders the swap steps as a table
func swapMarkdown(r *SwapReport) string {
	var sb strings.Builder

	sb.WriteString("# Swap Demonstration\n\n")
	sb.WriteString("| Call | a | b | c |\n")
	sb.WriteString("|------|---|---|---|\n")
	sb.WriteString(fmt.Sprintf("| start | %d | %d | %d |\n", r.Initial.A, r.Initial.B, r.Initial.C))
	for _, step := range r.Steps {
		sb.WriteString(fmt.Sprintf("| `%s` | %d | %d | %d |\n", step.Call, step.After.A, step.After.B, step.After.C))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("**c - a - b** = %d - %d - %d = **%d**\n", r.Final.C, r.Final.A, r.Final.B, r.Value))

	return sb.String()
}

// LoopReport represents the output structure for the counter loop
type LoopReport struct {
	Start      int            `json:"start" yaml:"start" msgpack:"start"`
	Final      int            `json:"final" yaml:"final" msgpack:"final"`
	Iterations int            `json:"iterations" yaml:"iterations" msgpack:"iterations"`
	Printed    []int          `json:"printed" yaml:"printed" msgpack:"printed"`
	Calls      []counter.Call `json:"calls" yaml:"calls" msgpack:"calls"`
}

// NewLoopReport converts a loop trace
func NewLoopReport(trace *counter.Trace) *LoopReport {
	printed := trace.Printed
	if printed == nil {
		printed = []int{}
	}
	return &LoopReport{
		Start:      trace.Start,
		Final:      trace.Final,
		Iterations: trace.Iterations(),
		Printed:    printed,
		Calls:      trace.Calls,
	}
}

// Text returns every printed value followed by a space
func (r *LoopReport) Text() string {
	var sb strings.Builder
	for _, v := range r.Printed {
		sb.WriteString(strconv.Itoa(v))
		sb.WriteString(" ")
	}
	return sb.String()
}

// loopMarkdown renders the counter calls in the order they happened
func loopMarkdown(r *LoopReport) string {
	var sb strings.Builder

	sb.WriteString("# Static Counter Loop\n\n")
	sb.WriteString(fmt.Sprintf("- **Start**: %d\n", r.Start))
	sb.WriteString(fmt.Sprintf("- **Iterations**: %d\n", r.Iterations))
	sb.WriteString(fmt.Sprintf("- **Counter calls**: %d\n", len(r.Calls)))
	sb.WriteString(fmt.Sprintf("- **Final counter**: %d\n", r.Final))
	sb.WriteString(fmt.Sprintf("- **Output**: `%s`\n\n", r.Text()))

	if len(r.Calls) > 0 {
		sb.WriteString("| # | Site | Value |\n")
		sb.WriteString("|---|------|-------|\n")
		for i, call := range r.Calls {
			sb.WriteString(fmt.Sprintf("| %d | %s | %d |\n", i+1, call.Site, call.Value))
		}
	}

	return sb.String()
}

// ToMarkdown converts a report to Markdown format
func ToMarkdown(r Report) (string, error) {
	switch v := r.(type) {
	case *SwapReport:
		return swapMarkdown(v), nil
	case *LoopReport:
		return loopMarkdown(v), nil
	default:
		return "", fmt.Errorf("no markdown layout for %T", r)
	}
}

// ToJSON marshals a report as indented JSON
func ToJSON(r Report) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// ToYAML marshals a report as YAML
func ToYAML(r Report) ([]byte, error) {
	return yaml.Marshal(r)
}

// ToMsgpack marshals a report as MessagePack
func ToMsgpack(r Report) ([]byte, error) {
	return msgpack.Marshal(r)
}

// Write renders r in the given format to w
func Write(w io.Writer, format Format, r Report) error {
	var (
		data []byte
		err  error
	)

	switch format {
	case FormatText:
		data = []byte(r.Text())
	case FormatMarkdown:
		var md string
		md, err = ToMarkdown(r)
		data = []byte(md)
	case FormatJSON:
		data, err = ToJSON(r)
		data = append(data, '\n')
	case FormatYAML:
		data, err = ToYAML(r)
	case FormatMsgpack:
		data, err = ToMsgpack(r)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", format, err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
