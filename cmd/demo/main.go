// Command demo generates a deterministic player pool, runs the ranker for
// one requester, and prints the ranked, explained suggestion list.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	app "github.com/okian/deuce/internal/app"
	"github.com/okian/deuce/internal/fixtures"
	"github.com/okian/deuce/pkg/logger"
)

// Default configuration constants.
const (
	defaultPoolSize = 24
	defaultSeed     = 42
)

func main() {
	var (
		poolSize = flag.Int("users", defaultPoolSize, "Number of users in the generated pool")
		seed     = flag.Int64("seed", defaultSeed, "Random seed (same seed, same pool)")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	_ = logger.SetLevelString("warn")

	ctx := context.Background()

	svc := app.New()
	if err := svc.Start(ctx); err != nil {
		os.Stderr.WriteString("failed to start service: " + err.Error() + "\n")
		return
	}
	defer svc.Stop()

	pool := fixtures.NewGenerator(*seed, time.Now()).Generate(*poolSize)
	fixtures.Load(svc.Store(), pool)

	requester := pool.Availabilities[0]
	fmt.Printf("pool: %d users, %d friendships, %d past matches\n",
		len(pool.UserIDs), len(pool.Friendships), len(pool.Matches))
	fmt.Printf("requester %s, window %s - %s\n\n",
		requester.UserID,
		requester.Window.Start.Format("15:04"),
		requester.Window.End.Format("15:04"))

	result, err := svc.Suggest(ctx, requester.UserID, requester.ID)
	if err != nil {
		os.Stderr.WriteString("suggest failed: " + err.Error() + "\n")
		return
	}

	if len(result.Candidates) == 0 {
		fmt.Println("no eligible candidates")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tSCORE\tOVERLAP\tCANDIDATE\tREASONS")
	for i, c := range result.Candidates {
		fmt.Fprintf(w, "%d\t%.1f\t%d min\t%s\t%s\n",
			i+1, c.Score, c.OverlapMinutes,
			c.CandidateUserID.String()[:8],
			strings.Join(c.Reasons, "; "))
	}
	_ = w.Flush()
}
