package fleet

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/martinsuchenak/orbitd/internal/analytics"
	"github.com/martinsuchenak/orbitd/internal/model"
	"github.com/paularlott/cli"
)

// Commands returns the fleet command group. All commands operate against a
// running orbitd server over the HTTP API.
func Commands() []*cli.Command {
	return []*cli.Command{
		listCommand(),
		getCommand(),
		statsCommand(),
		topCommand(),
		insightsCommand(),
		toggleVASCommand(),
	}
}

// connectionFlags are shared by every fleet subcommand
func connectionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "server",
			Aliases: []string{"s"},
			Usage:   "Server URL",
			EnvVars: []string{"ORBITD_SERVER_URL"},
		},
		&cli.StringFlag{
			Name:    "api-token",
			Usage:   "Bearer token for the API",
			EnvVars: []string{"ORBITD_API_TOKEN"},
		},
	}
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:        "list",
		Usage:       "List terminals",
		Description: "List terminals, optionally narrowed by facet filters and searches",
		Flags: append(connectionFlags(),
			&cli.StringFlag{Name: "acquirer", Usage: "Comma-separated acquirer ids"},
			&cli.StringFlag{Name: "orbit", Usage: "Comma-separated orbit type ids"},
			&cli.StringFlag{Name: "pos", Usage: "Comma-separated POS connection or vendor group ids"},
			&cli.StringFlag{Name: "hardware", Usage: "Comma-separated hardware model or vendor group ids"},
			&cli.StringFlag{Name: "vas", Usage: "Comma-separated VAS or category group ids"},
			&cli.StringFlag{Name: "feature", Usage: "Comma-separated feature ids"},
			&cli.StringFlag{Name: "status", Usage: "Comma-separated statuses"},
			&cli.StringFlag{Name: "merchant", Usage: "Merchant name substring"},
			&cli.StringFlag{Name: "industry", Usage: "Industry substring"},
		),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			criteria := model.FilterCriteria{
				Acquirers:      parseList(cmd.GetString("acquirer")),
				OrbitTypes:     parseList(cmd.GetString("orbit")),
				PosConnections: parseList(cmd.GetString("pos")),
				Hardware:       parseList(cmd.GetString("hardware")),
				VAS:            parseList(cmd.GetString("vas")),
				Features:       parseList(cmd.GetString("feature")),
				Statuses:       parseList(cmd.GetString("status")),
				MerchantSearch: cmd.GetString("merchant"),
				IndustrySearch: cmd.GetString("industry"),
			}

			var result struct {
				Terminals []model.Terminal `json:"terminals"`
				Matched   int              `json:"matched"`
				Total     int              `json:"total"`
			}
			if err := apiPost(cmd, "/api/terminals/filter", criteria, &result); err != nil {
				return err
			}

			for i := range result.Terminals {
				t := &result.Terminals[i]
				fmt.Printf("%s\t%-11s\t%-28s\t%s\n", t.ID, t.Status, t.MerchantName, t.Location)
			}
			fmt.Printf("\nShowing %d of %d terminals\n", result.Matched, result.Total)
			return nil
		},
	}
}

func getCommand() *cli.Command {
	return &cli.Command{
		Name:        "get",
		Usage:       "Get a terminal",
		Description: "Show one terminal by ID",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "id", Required: true},
		},
		Flags: connectionFlags(),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			var t model.Terminal
			if err := apiGet(cmd, "/api/terminals/"+cmd.GetStringArg("id"), &t); err != nil {
				return err
			}
			printTerminal(&t)
			return nil
		},
	}
}

func statsCommand() *cli.Command {
	return &cli.Command{
		Name:        "stats",
		Usage:       "Fleet statistics",
		Description: "Show the fleet summary, status distribution, and revenue by industry",
		Flags:       connectionFlags(),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			var summary analytics.FleetSummary
			if err := apiGet(cmd, "/api/analytics/summary", &summary); err != nil {
				return err
			}
			var dist map[string]int
			if err := apiGet(cmd, "/api/analytics/status", &dist); err != nil {
				return err
			}
			var revenue map[string]int
			if err := apiGet(cmd, "/api/analytics/revenue", &revenue); err != nil {
				return err
			}

			fmt.Printf("Terminals:     %d (%d online, %d offline)\n", summary.Total, summary.Online, summary.Offline)
			fmt.Printf("Total volume:  $%d\n", summary.TotalVolume)
			fmt.Printf("Avg uptime:    %.1f%%\n", summary.AverageUptime)
			fmt.Println("\nStatus distribution:")
			for _, s := range model.Statuses {
				if n, ok := dist[string(s)]; ok {
					fmt.Printf("  %-12s %d\n", s, n)
				}
			}
			fmt.Println("\nRevenue by industry:")
			for _, c := range model.MerchantTypes {
				if v, ok := revenue[c]; ok {
					fmt.Printf("  %-12s $%d\n", c, v)
				}
			}
			return nil
		},
	}
}

func topCommand() *cli.Command {
	return &cli.Command{
		Name:        "top",
		Usage:       "Top merchants",
		Description: "Show merchants ranked by total daily volume",
		Flags: append(connectionFlags(),
			&cli.StringFlag{Name: "limit", Usage: "Number of merchants to show", DefaultValue: "5"},
		),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			var rows []analytics.MerchantSummary
			path := "/api/analytics/top-merchants?limit=" + url.QueryEscape(cmd.GetString("limit"))
			if err := apiGet(cmd, path, &rows); err != nil {
				return err
			}
			for i, row := range rows {
				fmt.Printf("%2d. %-32s $%-8d %d terminals, %.1f%% uptime\n",
					i+1, row.Name, row.TotalVolume, row.TerminalCount, row.AverageUptime)
			}
			return nil
		},
	}
}

func insightsCommand() *cli.Command {
	return &cli.Command{
		Name:        "insights",
		Usage:       "Terminal insights",
		Description: "Show activity insights for one terminal",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "id", Required: true},
		},
		Flags: append(connectionFlags(),
			&cli.StringFlag{Name: "period", Usage: "day, week, month, or year", DefaultValue: "day"},
		),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			var bundle analytics.InsightsBundle
			path := fmt.Sprintf("/api/terminals/%s/insights?period=%s",
				cmd.GetStringArg("id"), url.QueryEscape(cmd.GetString("period")))
			if err := apiGet(cmd, path, &bundle); err != nil {
				return err
			}

			fmt.Printf("Insights for %s (%s)\n", bundle.TerminalID, bundle.Period)
			fmt.Printf("  Uptime:        %.1f%%\n", bundle.UptimePercent)
			fmt.Printf("  Total volume:  $%d over %d samples\n", bundle.TotalVolume, len(bundle.Series))
			fmt.Printf("  Approval rate: %.1f%%\n", bundle.ApprovalRate)
			if bundle.TopFeature != "" {
				fmt.Printf("  Top feature:   %s\n", bundle.TopFeature)
			}
			return nil
		},
	}
}

func toggleVASCommand() *cli.Command {
	return &cli.Command{
		Name:        "toggle-vas",
		Usage:       "Toggle a VAS",
		Description: "Toggle a value-added service on a terminal",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "id", Required: true},
			&cli.StringArg{Name: "vas", Required: true},
		},
		Flags: connectionFlags(),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			var t model.Terminal
			path := fmt.Sprintf("/api/terminals/%s/vas/%s/toggle", cmd.GetStringArg("id"), cmd.GetStringArg("vas"))
			if err := apiPost(cmd, path, nil, &t); err != nil {
				return err
			}
			for _, vas := range t.VASFeatures {
				if vas.ID == cmd.GetStringArg("vas") {
					state := "disabled"
					if vas.Enabled {
						state = "enabled"
					}
					fmt.Printf("%s is now %s on %s\n", vas.ID, state, t.ID)
				}
			}
			return nil
		},
	}
}

// HTTP helpers

func serverURL(cmd *cli.Command) string {
	if v := cmd.GetString("server"); v != "" {
		return strings.TrimRight(v, "/")
	}
	if v := os.Getenv("ORBITD_SERVER_URL"); v != "" {
		return strings.TrimRight(v, "/")
	}
	return "http://localhost:8080"
}

func apiGet(cmd *cli.Command, path string, out any) error {
	return apiDo(cmd, http.MethodGet, path, nil, out)
}

func apiPost(cmd *cli.Command, path string, body, out any) error {
	return apiDo(cmd, http.MethodPost, path, body, out)
}

func apiDo(cmd *cli.Command, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = strings.NewReader(string(data))
	}

	req, err := http.NewRequest(method, serverURL(cmd)+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := cmd.GetString("api-token"); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("server error: %s", apiErr.Error)
		}
		return fmt.Errorf("server error: %s", resp.Status)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func printTerminal(t *model.Terminal) {
	fmt.Printf("ID:        %s\n", t.ID)
	fmt.Printf("Status:    %s\n", t.Status)
	fmt.Printf("Merchant:  %s (%s)\n", t.MerchantName, t.MerchantType)
	fmt.Printf("Location:  %s (%.4f, %.4f)\n", t.Location, t.Latitude, t.Longitude)
	fmt.Printf("Acquirer:  %s\n", t.Acquirer)
	fmt.Printf("Orbit:     %s\n", t.OrbitType)
	fmt.Printf("Hardware:  %s %s\n", t.HardwareBrand, t.HardwareModel)
	if t.PosConnection != "" {
		fmt.Printf("POS:       %s\n", t.PosConnection)
	}
	if len(t.Features) > 0 {
		fmt.Printf("Features:  %s\n", strings.Join(t.Features, ", "))
	}
	fmt.Printf("Volume:    $%d\n", t.Volume)
	fmt.Printf("Uptime:    %.1f%%\n", t.Uptime)
	fmt.Println("VAS:")
	for _, vas := range t.VASFeatures {
		mark := " "
		if vas.Enabled {
			mark = "x"
		}
		fmt.Printf("  [%s] %s (%s)\n", mark, vas.Label, vas.ID)
	}
}

func parseList(s string) []string {
	if s == "" {
		return nil
	}
	var result []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}
