package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/agext/levenshtein"
	"github.com/google/uuid"

	"github.com/labtrail/labtrail/ent"
	"github.com/labtrail/labtrail/ent/analyte"
	"github.com/labtrail/labtrail/ent/analytealias"
	"github.com/labtrail/labtrail/ent/patient"
	"github.com/labtrail/labtrail/pkg/events"
	"github.com/labtrail/labtrail/pkg/llm"
	"github.com/labtrail/labtrail/pkg/models"
)

// Tool names exposed to the LLM.
const (
	ToolFuzzySearch = "fuzzy_search"
	ToolExecuteSQL  = "execute_sql"
	ToolShowPlot    = "show_plot"
	ToolShowTable   = "show_table"
)

const (
	fuzzySearchLimit = 8
	fuzzyMinScore    = 0.35
)

// FuzzySearchParams looks up likely names when the LLM is unsure of an exact
// spelling.
type FuzzySearchParams struct {
	Term  string `json:"term" jsonschema:"description=Approximate name to search for"`
	Scope string `json:"scope" jsonschema:"enum=parameters,enum=analytes,enum=patients,description=What to search: raw parameter names / known analytes / the user's patients"`
}

// ExecuteSQLParams runs one validated read-only statement.
type ExecuteSQLParams struct {
	SQL string `json:"sql" jsonschema:"description=A single read-only SELECT or WITH statement"`
}

// ShowPlotParams renders a plot on the client. Data may be omitted to reuse
// the last query result.
type ShowPlotParams struct {
	Data            *models.QueryResult `json:"data,omitempty" jsonschema:"description=Rows to plot; omit to reuse the last query result"`
	PlotTitle       string              `json:"plot_title" jsonschema:"description=Title shown above the plot"`
	ReplacePrevious bool                `json:"replace_previous,omitempty" jsonschema:"description=Replace the previously shown plot instead of adding one"`
}

// ShowTableParams renders a table on the client, same fallback semantics as
// show_plot.
type ShowTableParams struct {
	Data            *models.QueryResult `json:"data,omitempty" jsonschema:"description=Rows to display; omit to reuse the last query result"`
	TableTitle      string              `json:"table_title" jsonschema:"description=Title shown above the table"`
	ReplacePrevious bool                `json:"replace_previous,omitempty" jsonschema:"description=Replace the previously shown table instead of adding one"`
}

// Outcome is one executed tool call. Response goes back to the LLM; Events
// are display events the orchestrator emits; Cache updates the session's
// last query result when set.
type Outcome struct {
	Response string
	Events   []events.Event
	Cache    *models.QueryResult
}

// TurnContext is the per-call state the toolset needs from the orchestrator.
type TurnContext struct {
	UserID     uuid.UUID
	MessageID  string
	Scope      *Scope
	LastResult *models.QueryResult
}

// Toolset implements the four capabilities the conversational LLM can call.
type Toolset struct {
	entClient   *ent.Client
	executor    *Executor
	tableRowCap int
	definitions []models.ToolDefinition
}

// NewToolset builds the toolset and its JSON schemas.
func NewToolset(entClient *ent.Client, executor *Executor, tableRowCap int) (*Toolset, error) {
	defs, err := buildDefinitions()
	if err != nil {
		return nil, err
	}
	return &Toolset{
		entClient:   entClient,
		executor:    executor,
		tableRowCap: tableRowCap,
		definitions: defs,
	}, nil
}

func buildDefinitions() ([]models.ToolDefinition, error) {
	fuzzy, err := llm.SchemaFor[FuzzySearchParams]()
	if err != nil {
		return nil, fmt.Errorf("failed to build fuzzy_search schema: %w", err)
	}
	execSQL, err := llm.SchemaFor[ExecuteSQLParams]()
	if err != nil {
		return nil, fmt.Errorf("failed to build execute_sql schema: %w", err)
	}
	plot, err := llm.SchemaFor[ShowPlotParams]()
	if err != nil {
		return nil, fmt.Errorf("failed to build show_plot schema: %w", err)
	}
	table, err := llm.SchemaFor[ShowTableParams]()
	if err != nil {
		return nil, fmt.Errorf("failed to build show_table schema: %w", err)
	}
	return []models.ToolDefinition{
		{
			Name:        ToolFuzzySearch,
			Description: "Find likely parameter names, analytes, or patient names when the exact spelling is unknown.",
			Parameters:  fuzzy,
		},
		{
			Name:        ToolExecuteSQL,
			Description: "Run a single read-only SQL query against the lab database. Results are returned and cached for display tools.",
			Parameters:  execSQL,
		},
		{
			Name:        ToolShowPlot,
			Description: "Show the user a plot. Omit data to plot the most recent query result.",
			Parameters:  plot,
		},
		{
			Name:        ToolShowTable,
			Description: "Show the user a table. Omit data to display the most recent query result.",
			Parameters:  table,
		},
	}, nil
}

// Definitions returns the tool schemas handed to the LLM on every call.
func (t *Toolset) Definitions() []models.ToolDefinition {
	return t.definitions
}

// Execute dispatches one accumulated tool call. A non-nil error means the
// tool failed; the orchestrator encodes it as a tool-error response so the
// LLM can self-correct.
func (t *Toolset) Execute(ctx context.Context, turn *TurnContext, call models.ToolCall) (*Outcome, error) {
	switch call.Name {
	case ToolFuzzySearch:
		var params FuzzySearchParams
		if err := json.Unmarshal(call.Arguments, &params); err != nil {
			return nil, fmt.Errorf("invalid fuzzy_search arguments: %w", err)
		}
		return t.fuzzySearch(ctx, turn, params)
	case ToolExecuteSQL:
		var params ExecuteSQLParams
		if err := json.Unmarshal(call.Arguments, &params); err != nil {
			return nil, fmt.Errorf("invalid execute_sql arguments: %w", err)
		}
		return t.executeSQL(ctx, turn, params)
	case ToolShowPlot:
		var params ShowPlotParams
		if err := json.Unmarshal(call.Arguments, &params); err != nil {
			return nil, fmt.Errorf("invalid show_plot arguments: %w", err)
		}
		return t.showPlot(turn, params)
	case ToolShowTable:
		var params ShowTableParams
		if err := json.Unmarshal(call.Arguments, &params); err != nil {
			return nil, fmt.Errorf("invalid show_table arguments: %w", err)
		}
		return t.showTable(turn, params)
	default:
		return nil, fmt.Errorf("unknown tool %q", call.Name)
	}
}

func (t *Toolset) fuzzySearch(ctx context.Context, turn *TurnContext, params FuzzySearchParams) (*Outcome, error) {
	term := strings.TrimSpace(params.Term)
	if term == "" {
		return nil, fmt.Errorf("term is required")
	}

	candidates, err := t.candidates(ctx, turn.UserID, params.Scope)
	if err != nil {
		return nil, err
	}

	type hit struct {
		Name  string  `json:"name"`
		Score float64 `json:"score"`
	}
	lower := strings.ToLower(term)
	var hits []hit
	for _, c := range candidates {
		score := levenshtein.Match(lower, strings.ToLower(c), nil)
		if score >= fuzzyMinScore {
			hits = append(hits, hit{Name: c, Score: score})
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].Score > hits[j].Score })
	if len(hits) > fuzzySearchLimit {
		hits = hits[:fuzzySearchLimit]
	}

	response, err := json.Marshal(map[string]any{"matches": hits})
	if err != nil {
		return nil, err
	}
	return &Outcome{Response: string(response)}, nil
}

// candidates lists the strings a scope searches over. Analytes are global;
// parameter names and patients belong to the user.
func (t *Toolset) candidates(ctx context.Context, userID uuid.UUID, scope string) ([]string, error) {
	switch scope {
	case "analytes":
		rows, err := t.entClient.Analyte.Query().
			Select(analyte.FieldName, analyte.FieldCode).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list analytes: %w", err)
		}
		out := make([]string, 0, len(rows)*2)
		for _, a := range rows {
			out = append(out, a.Name, a.Code)
		}
		aliases, err := t.entClient.AnalyteAlias.Query().
			Select(analytealias.FieldDisplay).
			Strings(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list aliases: %w", err)
		}
		return append(out, aliases...), nil
	case "patients":
		names, err := t.entClient.Patient.Query().
			Where(patient.UserIDEQ(userID)).
			Select(patient.FieldFullName).
			Strings(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list patients: %w", err)
		}
		return names, nil
	case "parameters", "":
		return t.executor.ParameterNames(ctx, userID)
	default:
		return nil, fmt.Errorf("unknown scope %q; use parameters, analytes, or patients", scope)
	}
}

func (t *Toolset) executeSQL(ctx context.Context, turn *TurnContext, params ExecuteSQLParams) (*Outcome, error) {
	result, err := t.executor.Query(ctx, turn.UserID, params.SQL, turn.Scope)
	if err != nil {
		return nil, err
	}
	response, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}
	return &Outcome{Response: string(response), Cache: result}, nil
}

func (t *Toolset) showPlot(turn *TurnContext, params ShowPlotParams) (*Outcome, error) {
	data, err := displayData(params.Data, turn.LastResult, "plot")
	if err != nil {
		return nil, err
	}
	resultID := uuid.New().String()
	outcome := &Outcome{
		Response: `{"status":"displayed"}`,
		Events: []events.Event{
			events.NewMessageEvent(events.EventPlotResult, turn.MessageID, map[string]any{
				"plot_title":       params.PlotTitle,
				"rows":             data.Rows,
				"columns":          data.Columns,
				"result_id":        resultID,
				"replace_previous": params.ReplacePrevious,
			}),
		},
	}
	if thumb := renderThumbnail(data, params.PlotTitle); thumb != "" {
		outcome.Events = append(outcome.Events,
			events.NewMessageEvent(events.EventThumbnailUpdate, turn.MessageID, map[string]any{
				"plot_title": params.PlotTitle,
				"result_id":  resultID,
				"thumbnail":  thumb,
			}))
	}
	return outcome, nil
}

func (t *Toolset) showTable(turn *TurnContext, params ShowTableParams) (*Outcome, error) {
	data, err := displayData(params.Data, turn.LastResult, "table")
	if err != nil {
		return nil, err
	}
	rows := data.Rows
	truncated := false
	if len(rows) > t.tableRowCap {
		rows = rows[:t.tableRowCap]
		truncated = true
	}
	return &Outcome{
		Response: `{"status":"displayed"}`,
		Events: []events.Event{
			events.NewMessageEvent(events.EventTableResult, turn.MessageID, map[string]any{
				"table_title":      params.TableTitle,
				"rows":             rows,
				"columns":          data.Columns,
				"truncated":        truncated,
				"replace_previous": params.ReplacePrevious,
			}),
		},
	}, nil
}

func displayData(explicit, cached *models.QueryResult, kind string) (*models.QueryResult, error) {
	if explicit != nil && len(explicit.Rows) > 0 {
		return explicit, nil
	}
	if cached != nil && len(cached.Rows) > 0 {
		return cached, nil
	}
	return nil, fmt.Errorf("no data for the %s: pass data or run execute_sql first", kind)
}
