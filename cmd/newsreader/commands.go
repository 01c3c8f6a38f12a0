package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"newsreader-core/core/domain"
	"newsreader-core/core/interfaces"
	"newsreader-core/core/preferences"
)

func newResolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <url>",
		Short: "Resolve a shared content URL to its kind and id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dest, err := a.client.Resolve(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.print(dest)
		},
	}
}

func newNotifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "notify <payload-json>",
		Short: "Resolve the destination of a push notification payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var payload map[string]interface{}
			if err := json.Unmarshal([]byte(args[0]), &payload); err != nil {
				return fmt.Errorf("payload is not a JSON object: %w", err)
			}
			var target domain.Destination
			nav := interfaces.NavigatorFunc(func(dest domain.Destination) { target = dest })
			if err := a.client.HandleNotification(cmd.Context(), payload, nav); err != nil {
				return err
			}
			return a.print(target)
		},
	}
}

func newSearchCmd(a *app) *cobra.Command {
	var videos bool
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search posts, or videos with --videos",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions := a.client.NewSessions()
			defer sessions.Close()

			surface := sessions.Posts
			if videos {
				surface = sessions.Videos
			}
			snap := surface.Submit(cmd.Context(), args[0])
			if snap.Err != nil {
				return snap.Err
			}
			return a.print(snap.Results)
		},
	}
	cmd.Flags().BoolVar(&videos, "videos", false, "Search videos instead of posts")
	return cmd
}

func newAuthorsCmd(a *app) *cobra.Command {
	var (
		pages  int
		search string
	)
	cmd := &cobra.Command{
		Use:   "authors",
		Short: "List authors, following pagination for --pages pages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions := a.client.NewSessions()
			defer sessions.Close()

			if err := sessions.Authors.Search(cmd.Context(), search); err != nil {
				return err
			}
			for i := 1; i < pages; i++ {
				more, err := sessions.Authors.LoadMore(cmd.Context())
				if err != nil {
					return err
				}
				if !more {
					break
				}
			}
			return a.print(sessions.Authors.Snapshot().Items)
		},
	}
	cmd.Flags().IntVar(&pages, "pages", 1, "Number of pages to load")
	cmd.Flags().StringVar(&search, "search", "", "Filter authors by name")
	return cmd
}

func newHomeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "home",
		Short: "Load every home screen section",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			feed, err := a.client.LoadHome(cmd.Context())
			if err != nil {
				return err
			}
			for _, section := range feed.Failed() {
				a.logger.Warn("Home section failed", map[string]interface{}{
					"section": section,
					"error":   feed.Errors[section].Error(),
				})
			}
			return a.print(feed)
		},
	}
}

func newWeatherCmd(a *app) *cobra.Command {
	var city, district string
	cmd := &cobra.Command{
		Use:   "weather",
		Short: "Show the forecast for the stored city, storing --city first when given",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if city != "" {
				loc := preferences.Location{City: city, District: district}
				if err := a.client.Preferences.SetLocation(ctx, loc); err != nil {
					return err
				}
			}
			forecast, err := a.client.LocalWeather(ctx)
			if err != nil {
				return err
			}
			return a.print(forecast)
		},
	}
	cmd.Flags().StringVar(&city, "city", "", "City to store before fetching")
	cmd.Flags().StringVar(&district, "district", "", "District to store with --city")
	return cmd
}
