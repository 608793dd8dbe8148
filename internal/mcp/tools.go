package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ganot/punchcard/internal/domain/project"
	"github.com/ganot/punchcard/internal/domain/report"
	"github.com/ganot/punchcard/internal/timefmt"
)

// CreateProjectInput defines the input for the create_project tool.
type CreateProjectInput struct {
	Title   string `json:"title" jsonschema:"The unique project title" jsonschema_extras:"required=true"`
	Details string `json:"details,omitempty" jsonschema:"Optional free-form project description"`
}

// CreateProjectOutput defines the output for the create_project tool.
type CreateProjectOutput struct {
	ProjectID int64  `json:"project_id" jsonschema:"The ID of the created project"`
	Title     string `json:"title" jsonschema:"The registered title"`
}

// TimerInput identifies a project for the timer tools.
type TimerInput struct {
	ProjectID int64 `json:"project_id" jsonschema:"The project ID" jsonschema_extras:"required=true"`
}

// TimerOutput describes the interval affected by a timer tool.
type TimerOutput struct {
	ProjectID  int64  `json:"project_id" jsonschema:"The project ID"`
	StartTime  string `json:"start_time" jsonschema:"When the interval started"`
	EndTime    string `json:"end_time,omitempty" jsonschema:"When the interval ended, empty while running"`
	Duration   string `json:"duration,omitempty" jsonschema:"Elapsed time as HH:MM:SS"`
	Cumulative string `json:"cumulative,omitempty" jsonschema:"Total project time as HH:MM:SS"`
}

// ListProjectsInput defines the input for the list_projects tool.
type ListProjectsInput struct {
	AvailableOnly bool `json:"available_only,omitempty" jsonschema:"List only projects with no open interval"`
}

// ListProjectsOutput defines the output for the list_projects tool.
type ListProjectsOutput struct {
	Projects []project.Project `json:"projects" jsonschema:"The registered projects"`
}

// TimeReportInput defines the input for the time_report tool.
type TimeReportInput struct {
	ProjectID *int64 `json:"project_id,omitempty" jsonschema:"Restrict the report to one project, omit for all"`
}

// TimeReportOutput defines the output for the time_report tool.
type TimeReportOutput struct {
	Records   []report.Row `json:"records" jsonschema:"One row per logged interval"`
	TotalTime string       `json:"total_time" jsonschema:"Summed closed durations, formatted"`
}

// registerTools adds all tracker tools to the server.
func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "create_project",
		Description: "Register a new project to track time against. Titles must be unique.",
	}, s.handleCreateProject)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "start_timer",
		Description: "Start the timer for a project. Only one project can run at a time.",
	}, s.handleStartTimer)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "stop_timer",
		Description: "Stop the running timer for a project and record the elapsed interval.",
	}, s.handleStopTimer)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_projects",
		Description: "List registered projects, optionally only those without an open interval.",
	}, s.handleListProjects)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "time_report",
		Description: "Report logged intervals and total time for one project or all projects.",
	}, s.handleTimeReport)
}

func (s *Server) handleCreateProject(ctx context.Context, req *mcp.CallToolRequest, input CreateProjectInput) (*mcp.CallToolResult, CreateProjectOutput, error) {
	proj, err := s.projects.Create(ctx, project.CreateRequest{
		Title:   input.Title,
		Details: input.Details,
	})
	if err != nil {
		return nil, CreateProjectOutput{}, err
	}

	output := CreateProjectOutput{ProjectID: proj.ID, Title: proj.Title}
	result := &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Text: fmt.Sprintf("Project %q created (ID: %d)", proj.Title, proj.ID),
			},
		},
	}
	return result, output, nil
}

func (s *Server) handleStartTimer(ctx context.Context, req *mcp.CallToolRequest, input TimerInput) (*mcp.CallToolResult, TimerOutput, error) {
	interval, err := s.tracker.Start(ctx, input.ProjectID)
	if err != nil {
		return nil, TimerOutput{}, err
	}

	output := TimerOutput{
		ProjectID: input.ProjectID,
		StartTime: interval.StartTime.Format(timefmt.TimestampLayout),
	}
	result := &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Text: fmt.Sprintf("Timer started for project %d at %s", input.ProjectID, output.StartTime),
			},
		},
	}
	return result, output, nil
}

func (s *Server) handleStopTimer(ctx context.Context, req *mcp.CallToolRequest, input TimerInput) (*mcp.CallToolResult, TimerOutput, error) {
	interval, err := s.tracker.Stop(ctx, input.ProjectID)
	if err != nil {
		return nil, TimerOutput{}, err
	}

	output := TimerOutput{
		ProjectID:  input.ProjectID,
		StartTime:  interval.StartTime.Format(timefmt.TimestampLayout),
		Duration:   interval.Duration,
		Cumulative: interval.Cumulative,
	}
	if interval.EndTime != nil {
		output.EndTime = interval.EndTime.Format(timefmt.TimestampLayout)
	}
	result := &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Text: fmt.Sprintf("Timer stopped for project %d, duration %s (total %s)", input.ProjectID, interval.Duration, interval.Cumulative),
			},
		},
	}
	return result, output, nil
}

func (s *Server) handleListProjects(ctx context.Context, req *mcp.CallToolRequest, input ListProjectsInput) (*mcp.CallToolResult, ListProjectsOutput, error) {
	var (
		projects []project.Project
		err      error
	)
	if input.AvailableOnly {
		projects, err = s.projects.ListAvailable(ctx)
	} else {
		projects, err = s.projects.List(ctx)
	}
	if err != nil {
		return nil, ListProjectsOutput{}, err
	}

	result := &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Text: fmt.Sprintf("%d projects", len(projects)),
			},
		},
	}
	return result, ListProjectsOutput{Projects: projects}, nil
}

func (s *Server) handleTimeReport(ctx context.Context, req *mcp.CallToolRequest, input TimeReportInput) (*mcp.CallToolResult, TimeReportOutput, error) {
	records, err := s.reports.Records(ctx, input.ProjectID)
	if err != nil {
		return nil, TimeReportOutput{}, err
	}

	total, err := s.reports.TotalSeconds(ctx, input.ProjectID)
	if err != nil {
		return nil, TimeReportOutput{}, err
	}

	output := TimeReportOutput{
		Records:   records,
		TotalTime: timefmt.FormatSeconds(total),
	}
	result := &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Text: fmt.Sprintf("%d records, total time %s", len(records), output.TotalTime),
			},
		},
	}
	return result, output, nil
}
