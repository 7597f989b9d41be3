package history

import (
	"fmt"
	"strings"

	dbpkg "github.com/dtnitsch/rentledger/pkg/db"
	"github.com/urfave/cli/v2"
)

func HistoryAction(c *cli.Context) error {
	var database *dbpkg.DB
	var err error
	if c.IsSet("db") {
		database, err = dbpkg.OpenAt(c.String("db"))
	} else {
		database, err = dbpkg.Open()
	}
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer database.Close()

	runs, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No recorded runs")
		return nil
	}

	// Print table header
	fmt.Printf("%-6s %-20s %-8s %-8s %-12s %-8s %-9s %s\n",
		"ID", "Created", "Format", "Events", "Revenue", "Servers", "Vehicles", "Source")
	fmt.Println(strings.Repeat("-", 100))

	for _, r := range runs {
		fmt.Printf("%-6d %-20s %-8s %-8d %-12s %-8d %-9d %s\n",
			r.RunID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.Format,
			r.TotalEvents,
			r.TotalRevenue,
			r.ServerCount,
			r.VehicleCount,
			r.Source,
		)
	}

	fmt.Printf("\nTotal: %d runs\n", len(runs))
	return nil
}
