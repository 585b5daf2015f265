package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/MKhiriev/go-type-keeper/internal/adapter"
	"github.com/MKhiriev/go-type-keeper/internal/logger"
	"github.com/MKhiriev/go-type-keeper/internal/utils"
	"github.com/google/uuid"
)

const usage = `usage:
  client validate <scope> <type> <file|->
  client types
  client version`

var _ Client = (*App)(nil)

// App is the command-line client.
type App struct {
	server adapter.ServerAdapter
	in     io.Reader
	out    io.Writer

	logger *logger.Logger
}

// NewApp creates an App printing results to out. Documents named "-" are read
// from in.
func NewApp(server adapter.ServerAdapter, in io.Reader, out io.Writer, logger *logger.Logger) *App {
	return &App{server: server, in: in, out: out, logger: logger}
}

// Run implements [Client]. Every invocation gets its own trace id, sent to
// the server with each request.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w\n%s", ErrUsage, usage)
	}

	traceID := uuid.NewString()
	ctx = utils.WithTraceID(ctx, traceID)
	log := a.logger.With().Str("trace_id", traceID).Str("command", args[0]).Logger()
	log.Debug().Strs("args", args[1:]).Msg("running command")

	switch args[0] {
	case "validate":
		if len(args) != 4 {
			return fmt.Errorf("%w\n%s", ErrUsage, usage)
		}
		return a.validate(ctx, args[1], args[2], args[3])
	case "types":
		if len(args) != 1 {
			return fmt.Errorf("%w\n%s", ErrUsage, usage)
		}
		return a.listTypes(ctx)
	case "version":
		if len(args) != 1 {
			return fmt.Errorf("%w\n%s", ErrUsage, usage)
		}
		return a.version(ctx)
	default:
		return fmt.Errorf("%w %q\n%s", ErrUnknownCommand, args[0], usage)
	}
}

func (a *App) validate(ctx context.Context, scope, typeName, file string) error {
	payload, err := a.readDocument(file)
	if err != nil {
		return err
	}

	result, err := a.server.Validate(ctx, scope, typeName, payload)
	if err != nil {
		return fmt.Errorf("validate %s.%s: %w", scope, typeName, err)
	}

	if !result.Valid {
		for _, issue := range result.Errors {
			fmt.Fprintf(a.out, "%s\n", issue.Message)
		}
		return fmt.Errorf("%w: %d error(s)", ErrInvalidPayload, len(result.Errors))
	}

	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	if err = enc.Encode(result.Data); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}

func (a *App) readDocument(file string) (any, error) {
	var (
		data []byte
		err  error
	)
	if file == "-" {
		data, err = io.ReadAll(a.in)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return nil, fmt.Errorf("read document %s: %w", file, err)
	}

	var payload any
	if err = json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decode document %s: %w", file, err)
	}
	return payload, nil
}

func (a *App) listTypes(ctx context.Context) error {
	types, err := a.server.ListTypes(ctx)
	if err != nil {
		return fmt.Errorf("list types: %w", err)
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SCOPE\tNAME\tKIND\tDESCRIPTION")
	for _, t := range types {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.Scope, t.Name, t.Kind, t.Description)
	}
	return w.Flush()
}

func (a *App) version(ctx context.Context) error {
	v, err := a.server.GetServerVersion(ctx)
	if err != nil {
		return fmt.Errorf("get server version: %w", err)
	}
	fmt.Fprintf(a.out, "Server version: %s\n", v)
	return nil
}
