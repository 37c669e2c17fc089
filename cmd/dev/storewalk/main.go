// Dev smoke tool: runs a full request/tip/rating/leaderboard flow against
// a scratch database and prints the results. Useful for eyeballing the
// store without writing a test.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	dbfs "github.com/nightset/nightset/db"
	"github.com/nightset/nightset/internal/db"
	"github.com/nightset/nightset/internal/repository/sqlite"
	"github.com/nightset/nightset/internal/service"
	"github.com/nightset/nightset/pkg/models"
)

func main() {
	ctx := context.Background()

	dir, err := os.MkdirTemp("", "storewalk")
	if err != nil {
		log.Fatalf("tempdir: %v", err)
	}
	defer os.RemoveAll(dir)

	database, err := db.New(ctx, filepath.Join(dir, "storewalk.db"), nil)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer database.Close()

	if err := db.Migrate(ctx, database, dbfs.Migrations); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	store := service.New(sqlite.New(database, nil), nil)

	alice, err := store.CreateUser(ctx, models.UserPayload{Name: "Alice", Contact: "a@x.com", Role: models.RoleRegular})
	if err != nil {
		log.Fatalf("create user: %v", err)
	}
	fmt.Printf("user %d: %s\n", alice.ID, alice.Name)

	event, err := store.CreateEvent(ctx, models.EventPayload{
		EventName: "Rave", DJName: "DJ Bob", Venue: "Warehouse", Capacity: 100, ScheduledAt: 1767225600000,
	})
	if err != nil {
		log.Fatalf("create event: %v", err)
	}
	fmt.Printf("event %d: %s at %s\n", event.ID, event.EventName, event.Venue)

	playlist, err := store.CreatePlaylist(ctx, models.PlaylistPayload{
		DJName: "DJ Bob", EventID: event.ID, SongList: []string{"SongA", "SongB"},
	})
	if err != nil {
		log.Fatalf("create playlist: %v", err)
	}
	fmt.Printf("playlist %d: %d songs\n", playlist.ID, len(playlist.SongList))

	if _, err := store.CreatePlaylist(ctx, models.PlaylistPayload{DJName: "DJ Bob", EventID: 99, SongList: []string{"SongC"}}); err != nil {
		fmt.Printf("playlist for unknown event rejected: %v\n", err)
	}

	dj, err := store.CreateUser(ctx, models.UserPayload{Name: "DJ Bob", Contact: "bob@x.com", Role: models.RoleDJ})
	if err != nil {
		log.Fatalf("create dj: %v", err)
	}
	if _, err := store.InitLeaderboardEntry(ctx, dj.ID, dj.Name); err != nil {
		log.Fatalf("init leaderboard: %v", err)
	}
	for _, r := range []uint8{5, 4, 4} {
		if err := store.UpdateLeaderboardAfterRating(ctx, dj.ID, r); err != nil {
			log.Fatalf("fold rating: %v", err)
		}
	}
	if err := store.UpdateLeaderboardAfterTip(ctx, dj.ID, 25); err != nil {
		log.Fatalf("fold tip: %v", err)
	}

	djs, err := store.SearchDJs(ctx, "", 4, "")
	if err != nil {
		log.Fatalf("search djs: %v", err)
	}
	for _, e := range djs {
		fmt.Printf("dj %d %q: avg %.2f over %d ratings, %d tipped\n",
			e.DJID, e.DJName, e.AvgRating, e.TotalRatings, e.TotalTips)
	}
}
