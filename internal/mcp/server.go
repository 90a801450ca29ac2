package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/bornholm/cocomo/internal/cocomo"
	"github.com/bornholm/cocomo/internal/format"
	"github.com/bornholm/cocomo/internal/model"
	"github.com/bornholm/cocomo/internal/stats"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

// Server represents the MCP server for cocomo operations
type Server struct {
	server *mcp.Server
	store  *ChrootedStore
	config *model.Config
}

// ServerOptions contains options for the MCP server
type ServerOptions struct {
	RootDir string
	Config  *model.Config
}

// NewServer creates a new MCP server for cocomo operations
func NewServer(opts *ServerOptions) (*Server, error) {
	rootDir := opts.RootDir
	if rootDir == "" {
		rootDir = "."
	}

	store, err := NewChrootedStore(rootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create chrooted store: %w", err)
	}

	config := opts.Config
	if config == nil {
		config = model.DefaultConfig()
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "cocomo",
		Version: "1.0.0",
	}, nil)

	s := &Server{
		server: server,
		store:  store,
		config: config,
	}

	s.registerTools()

	return s, nil
}

// Run starts the MCP server on stdio transport
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// Close closes the server and releases resources
func (s *Server) Close() error {
	return s.store.Close()
}

func (s *Server) registerTools() {
	// Estimation tools
	s.registerEstimateTool()
	s.registerListAttributesTool()

	// Project tools
	s.registerListProjectsTool()
	s.registerCreateProjectTool()
	s.registerGetProjectTool()
	s.registerSetRatingTool()
	s.registerEstimateProjectTool()
	s.registerDeleteProjectTool()

	// Config tools
	s.registerGetConfigTool()
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

func (s *Server) estimatorOptions() []cocomo.Option {
	return s.config.EstimatorOptions()
}

// summarize renders an estimate for tool results
func (s *Server) summarize(label string, sloc int, est *cocomo.Estimator, result cocomo.Result) string {
	var sb strings.Builder
	if label != "" {
		fmt.Fprintf(&sb, "Project: %s\n", label)
	}
	fmt.Fprintf(&sb, "Size: %d SLOC\n", sloc)
	fmt.Fprintf(&sb, "Class: %s\n", est.Class())
	fmt.Fprintf(&sb, "EAF: %s\n\n", format.FormatFloat(est.EAF(), s.config.Precision))
	sb.WriteString(format.FormatResult(result, s.config.Precision))

	cost := stats.CalculateCost(result, s.config)
	fmt.Fprintf(&sb, "\nCost: %.2f %s (%.0f hours)\n", cost.TotalCost, cost.Currency, cost.Hours)
	return sb.String()
}

// estimate tool
type estimateArgs struct {
	SLOC    int               `json:"sloc" jsonschema:"the total number of source lines of code, a positive integer"`
	Class   string            `json:"class,omitempty" jsonschema:"the project class: organic, semi-detached or embedded (or O, S, E), defaults to the configured class"`
	Ratings map[string]string `json:"ratings,omitempty" jsonschema:"attribute ratings keyed by attribute name (rely, data, cplx...), values VL, L, N, H, VH, XH; missing attributes are nominal"`
}

func (s *Server) registerEstimateTool() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "estimate",
		Description: "Estimate effort (person-months), development time (months) and people required with the COCOMO model",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args estimateArgs) (*mcp.CallToolResult, any, error) {
		class := s.config.GetDefaultClass()
		if args.Class != "" {
			var err error
			class, err = cocomo.ParseClass(args.Class)
			if err != nil {
				return nil, nil, err
			}
		}

		est, err := cocomo.New(class, args.Ratings, s.estimatorOptions()...)
		if err != nil {
			return nil, nil, err
		}

		result, err := est.Estimate(args.SLOC)
		if err != nil {
			return nil, nil, err
		}

		zap.S().Debugw("mcp estimate", "sloc", args.SLOC, "class", class, "effort", result.Effort)

		return textResult(s.summarize("", args.SLOC, est, result)), nil, nil
	})
}

// list_attributes tool
type listAttributesArgs struct{}

func (s *Server) registerListAttributesTool() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_attributes",
		Description: "List the 15 effort adjustment attributes, their multiplier for every rating, and the project classes",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args listAttributesArgs) (*mcp.CallToolResult, any, error) {
		var sb strings.Builder
		sb.WriteString(format.FormatTable())
		sb.WriteString("\nProject classes:\n")
		for _, class := range cocomo.Classes() {
			p, _ := cocomo.ProfileOf(class)
			fmt.Fprintf(&sb, "  %s: a=%.2f b=%.2f c=%.2f d=%.2f\n", class, p.A, p.B, p.C, p.D)
		}
		return textResult(sb.String()), nil, nil
	})
}

// list_projects tool
type listProjectsArgs struct {
	Dir string `json:"dir,omitempty" jsonschema:"the directory to list projects from, defaults to current directory"`
}

func (s *Server) registerListProjectsTool() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_projects",
		Description: "List all project files in a directory",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args listProjectsArgs) (*mcp.CallToolResult, any, error) {
		dir := args.Dir
		if dir == "" {
			dir = "."
		}

		files, err := s.store.ListProjects(dir)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to list projects: %w", err)
		}

		if len(files) == 0 {
			return textResult("No project files found."), nil, nil
		}

		result := "Project files:\n"
		for _, f := range files {
			result += fmt.Sprintf("- %s\n", f)
		}

		return textResult(result), nil, nil
	})
}

// create_project tool
type createProjectArgs struct {
	Path        string `json:"path" jsonschema:"the file path for the project"`
	Label       string `json:"label" jsonschema:"the label/name for the project"`
	Description string `json:"description,omitempty" jsonschema:"optional description for the project"`
	SLOC        int    `json:"sloc,omitempty" jsonschema:"optional source lines of code"`
	Class       string `json:"class,omitempty" jsonschema:"optional project class, defaults to the configured class"`
}

func (s *Server) registerCreateProjectTool() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_project",
		Description: "Create a new project file",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args createProjectArgs) (*mcp.CallToolResult, any, error) {
		class := s.config.GetDefaultClass()
		if args.Class != "" {
			var err error
			class, err = cocomo.ParseClass(args.Class)
			if err != nil {
				return nil, nil, err
			}
		}
		if args.SLOC < 0 {
			return nil, nil, fmt.Errorf("%w: SLOC must not be negative", cocomo.ErrInvalidArgument)
		}

		project := model.NewProject(args.Label)
		project.Description = args.Description
		project.SetSLOC(args.SLOC)
		project.SetClass(class)

		if err := s.store.SaveProject(args.Path, project); err != nil {
			return nil, nil, fmt.Errorf("failed to create project: %w", err)
		}

		return textResult(fmt.Sprintf("Created project '%s' at %s with ID %s", args.Label, args.Path, project.ID)), nil, nil
	})
}

// get_project tool
type getProjectArgs struct {
	Path string `json:"path" jsonschema:"the file path to the project"`
}

func (s *Server) registerGetProjectTool() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_project",
		Description: "Get details of a project file",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args getProjectArgs) (*mcp.CallToolResult, any, error) {
		project, err := s.store.LoadProject(args.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load project: %w", err)
		}

		result := fmt.Sprintf("Project: %s\n", project.Label)
		result += fmt.Sprintf("ID: %s\n", project.ID)
		if project.Description != "" {
			result += fmt.Sprintf("Description: %s\n", project.Description)
		}
		result += fmt.Sprintf("Size: %d SLOC\n", project.SLOC)
		result += fmt.Sprintf("Class: %s\n", project.Class)
		result += "Ratings:\n"
		for _, attr := range cocomo.Attributes() {
			result += fmt.Sprintf("  %s: %s\n", attr, project.Rating(attr))
		}
		result += fmt.Sprintf("Created: %s\n", project.CreatedAt.Format("2006-01-02 15:04:05"))
		result += fmt.Sprintf("Updated: %s\n", project.UpdatedAt.Format("2006-01-02 15:04:05"))

		return textResult(result), nil, nil
	})
}

// set_rating tool
type setRatingArgs struct {
	Path      string `json:"path" jsonschema:"the file path to the project"`
	Attribute string `json:"attribute" jsonschema:"the attribute to rate (rely, data, cplx, time, stor, virt, turn, acap, aexp, pcap, vexp, lexp, modp, tool, sced)"`
	Rating    string `json:"rating" jsonschema:"the rating: VL, L, N, H, VH, XH or very-low ... extra-high"`
}

func (s *Server) registerSetRatingTool() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "set_rating",
		Description: "Set the rating of one attribute of a project",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args setRatingArgs) (*mcp.CallToolResult, any, error) {
		project, err := s.store.LoadProject(args.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load project: %w", err)
		}

		if err := project.SetRating(args.Attribute, args.Rating); err != nil {
			return nil, nil, err
		}

		if err := s.store.SaveProject(args.Path, project); err != nil {
			return nil, nil, fmt.Errorf("failed to save project: %w", err)
		}

		return textResult(fmt.Sprintf("Attribute %s set to %s", args.Attribute, project.Ratings[args.Attribute])), nil, nil
	})
}

// estimate_project tool
type estimateProjectArgs struct {
	Path string `json:"path" jsonschema:"the file path to the project"`
}

func (s *Server) registerEstimateProjectTool() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "estimate_project",
		Description: "Estimate effort, development time and people required for a project file",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args estimateProjectArgs) (*mcp.CallToolResult, any, error) {
		project, err := s.store.LoadProject(args.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load project: %w", err)
		}

		est, result, err := project.Estimate(s.estimatorOptions()...)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to estimate project: %w", err)
		}

		return textResult(s.summarize(project.Label, project.SLOC, est, result)), nil, nil
	})
}

// delete_project tool
type deleteProjectArgs struct {
	Path string `json:"path" jsonschema:"the file path to the project to delete"`
}

func (s *Server) registerDeleteProjectTool() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "delete_project",
		Description: "Delete a project file",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args deleteProjectArgs) (*mcp.CallToolResult, any, error) {
		if err := s.store.DeleteProject(args.Path); err != nil {
			return nil, nil, fmt.Errorf("failed to delete project: %w", err)
		}

		return textResult(fmt.Sprintf("Deleted project at %s", args.Path)), nil, nil
	})
}

// get_config tool
type getConfigArgs struct{}

func (s *Server) registerGetConfigTool() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_config",
		Description: "Get the current cocomo configuration",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args getConfigArgs) (*mcp.CallToolResult, any, error) {
		result := "Configuration:\n"
		result += fmt.Sprintf("  Default Class: %s\n", s.config.GetDefaultClass())
		result += fmt.Sprintf("  Strict Ratings: %v\n", s.config.StrictRatings)
		result += fmt.Sprintf("  Precision: %d\n", s.config.Precision)
		result += fmt.Sprintf("  Monthly Rate: %.2f %s\n", s.config.MonthlyRate, s.config.Currency)
		result += fmt.Sprintf("  Hours Per Month: %.0f\n", s.config.GetHoursPerMonth())

		return textResult(result), nil, nil
	})
}
