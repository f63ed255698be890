package find

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/mood"
	"tableflip.dev/daybook/pkg/printers"
	"tableflip.dev/daybook/pkg/search"
)

type Find struct {
	ShowID    bool
	Query     string
	Mood      string
	StartDate string
	EndDate   string
	ByRank    bool
	Ascending bool
	Suggest   bool
	Service   *app.Service
}

func (n *Find) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not search, no service")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	if n.Suggest {
		words, err := n.Service.Suggestions(ctx, n.Query)
		if err != nil {
			return err
		}
		pp.Suggestions(words)
		return nil
	}

	opts := search.Options{
		Query:     n.Query,
		StartDate: n.StartDate,
		EndDate:   n.EndDate,
	}
	if n.Mood != "" {
		m, err := mood.ForAlias(n.Mood)
		if err != nil {
			return err
		}
		opts.Mood = m
	}
	if n.ByRank {
		opts.SortBy = search.SortByRelevance
	}
	if n.Ascending {
		opts.SortOrder = search.OrderAscending
	}

	results, err := n.Service.Search(ctx, opts)
	if err != nil {
		return err
	}
	pp.SearchResults(n.Query, results)
	return nil
}
