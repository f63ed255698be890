package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/daybook/pkg/mood"
	"tableflip.dev/daybook/pkg/search"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerWriteEntryTool(srv, svc)
	registerGetEntryTool(srv, svc)
	registerDeleteEntryTool(srv, svc)
	registerListEntriesTool(srv, svc)
	registerSearchEntriesTool(srv, svc)
	registerGetCalendarTool(srv, svc)
	registerListMoodsTool(srv, svc)
	registerSuggestTool(srv, svc)
}

func moodEnum() []string {
	all := mood.All()
	values := make([]string, 0, len(all))
	for _, m := range all {
		values = append(values, string(m))
	}
	return values
}

func registerWriteEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"write_entry",
		mcp.WithDescription("Create or replace the diary entry for a date."),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("Entry text, up to 5000 characters."),
		),
		mcp.WithString("date",
			mcp.Description("Entry date as YYYY-MM-DD; defaults to today."),
		),
		mcp.WithString("mood",
			mcp.Description("Mood for the day."),
			mcp.Enum(moodEnum()...),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Content string `json:"content"`
			Date    string `json:"date"`
			Mood    string `json:"mood"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.SaveEntry(ctx, args.Date, args.Content, args.Mood)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerGetEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_entry",
		mcp.WithDescription("Fetch the diary entry for a date."),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("Entry date as YYYY-MM-DD."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		date, err := request.RequireString("date")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.EntryByDate(ctx, date)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerDeleteEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_entry",
		mcp.WithDescription("Delete the diary entry for a date."),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("Entry date as YYYY-MM-DD."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		date, err := request.RequireString("date")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		if err := svc.DeleteEntry(ctx, date); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"deleted": date,
		})
	})
}

func registerListEntriesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_entries",
		mcp.WithDescription("List every diary entry, oldest first."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		results, err := svc.ListEntries(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"entries": results,
			"count":   len(results),
		})
	})
}

func registerSearchEntriesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"search_entries",
		mcp.WithDescription("Search entries by content with optional mood and date filters. Results carry a relevance score and highlighted content."),
		mcp.WithString("query",
			mcp.Description("Case-insensitive search text."),
		),
		mcp.WithString("mood",
			mcp.Description("Only return entries with this mood."),
			mcp.Enum(moodEnum()...),
		),
		mcp.WithString("start_date",
			mcp.Description("Inclusive lower date bound, YYYY-MM-DD."),
		),
		mcp.WithString("end_date",
			mcp.Description("Inclusive upper date bound, YYYY-MM-DD."),
		),
		mcp.WithString("sort",
			mcp.Description("Sort key; date descending is the default."),
			mcp.Enum("date", "relevance"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results to return (default 20)."),
			mcp.Min(1),
			mcp.Max(100),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Query     string `json:"query"`
			Mood      string `json:"mood"`
			StartDate string `json:"start_date"`
			EndDate   string `json:"end_date"`
			Sort      string `json:"sort"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		limit := request.GetInt("limit", 20)

		opts := search.Options{
			Query:     args.Query,
			StartDate: args.StartDate,
			EndDate:   args.EndDate,
		}
		if strings.TrimSpace(args.Mood) != "" {
			m, err := mood.ForAlias(args.Mood)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			opts.Mood = m
		}
		if args.Sort == "relevance" {
			opts.SortBy = search.SortByRelevance
		}

		results, err := svc.SearchEntries(ctx, opts, limit)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"query":   args.Query,
			"limit":   limit,
			"results": results,
			"count":   len(results),
		})
	})
}

func registerGetCalendarTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_calendar",
		mcp.WithDescription("Build the 42-cell calendar grid and statistics for a month."),
		mcp.WithNumber("year",
			mcp.Description("Target year; defaults to the current year."),
		),
		mcp.WithNumber("month",
			mcp.Description("Target month 1-12; defaults to the current month. Out-of-range values roll into adjacent years."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		now := time.Now()
		year := request.GetInt("year", now.Year())
		month := request.GetInt("month", int(now.Month()))

		dto, err := svc.Calendar(ctx, year, time.Month(month))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerListMoodsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_moods",
		mcp.WithDescription("List the selectable moods with symbols and aliases."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		moods := svc.Moods()
		return toJSONResult(map[string]any{
			"moods": moods,
			"count": len(moods),
		})
	})
}

func registerSuggestTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"suggest_completions",
		mcp.WithDescription("Suggest search completions for a word prefix, drawn from entry contents."),
		mcp.WithString("prefix",
			mcp.Required(),
			mcp.Description("Word prefix to complete; at least three characters of context are needed for matches."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		prefix, err := request.RequireString("prefix")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		words, err := svc.Suggestions(ctx, prefix)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"prefix":      prefix,
			"suggestions": words,
			"count":       len(words),
		})
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
