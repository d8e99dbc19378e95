// Command loadcatalog performs the one-time bulk import of the reference
// figure catalog. It reads an AmiiboAPI-format dump from a local file or
// fetches it over HTTP, then upserts every entry into the items table, so
// re-running against a newer dump refreshes the catalog in place.
//
// Usage:
//
//	loadcatalog -db figureshelf.db -file dump.json
//	loadcatalog -db figureshelf.db -url https://www.amiiboapi.com/api/amiibo/
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/ocallan/figureshelf/internal/domain"
	"github.com/ocallan/figureshelf/internal/repository/sqlite"
)

// dump mirrors the AmiiboAPI response shape.
type dump struct {
	Amiibo []dumpEntry `json:"amiibo"`
}

type dumpEntry struct {
	Head         string `json:"head"`
	Tail         string `json:"tail"`
	Name         string `json:"name"`
	Character    string `json:"character"`
	GameSeries   string `json:"gameSeries"`
	AmiiboSeries string `json:"amiiboSeries"`
	Type         string `json:"type"`
	Image        string `json:"image"`
	Release      struct {
		NA *string `json:"na"`
		EU *string `json:"eu"`
		JP *string `json:"jp"`
		AU *string `json:"au"`
	} `json:"release"`
}

func main() {
	dbPath := flag.String("db", "figureshelf.db", "path to the SQLite database")
	filePath := flag.String("file", "", "path to a catalog dump file")
	url := flag.String("url", "", "URL to fetch the catalog dump from")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if (*filePath == "") == (*url == "") {
		slog.Error("exactly one of -file or -url is required")
		os.Exit(1)
	}

	raw, err := readDump(*filePath, *url)
	if err != nil {
		slog.Error("read catalog dump", "error", err)
		os.Exit(1)
	}

	var d dump
	if err := json.Unmarshal(raw, &d); err != nil {
		slog.Error("parse catalog dump", "error", err)
		os.Exit(1)
	}
	slog.Info("catalog dump parsed", "entries", len(d.Amiibo))

	db, err := sqlite.New(*dbPath)
	if err != nil {
		slog.Error("open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.Migrate(ctx); err != nil {
		slog.Error("run migrations", "error", err)
		os.Exit(1)
	}

	items := db.Items()
	loaded := 0
	for _, entry := range d.Amiibo {
		item, err := toItem(entry)
		if err != nil {
			slog.Warn("skipping entry", "name", entry.Name, "error", err)
			continue
		}
		if err := items.Upsert(ctx, item); err != nil {
			slog.Error("upsert item", "id", item.ID, "error", err)
			os.Exit(1)
		}
		loaded++
	}

	slog.Info("catalog loaded", "items", loaded, "skipped", len(d.Amiibo)-loaded)
}

func readDump(filePath, url string) ([]byte, error) {
	if filePath != "" {
		return os.ReadFile(filePath)
	}

	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

func toItem(entry dumpEntry) (*domain.Item, error) {
	if entry.Head == "" || entry.Tail == "" {
		return nil, fmt.Errorf("missing head/tail id")
	}
	if entry.Name == "" {
		return nil, fmt.Errorf("missing name")
	}

	item := &domain.Item{
		// head+tail is the source catalog's stable identifier.
		ID:        entry.Head + entry.Tail,
		Name:      entry.Name,
		Character: entry.Character,
		Series:    entry.GameSeries,
		SubSeries: entry.AmiiboSeries,
		Kind:      entry.Type,
		ImageURL:  entry.Image,
	}

	// Earliest known regional release wins; entries without one stay nil.
	for _, date := range []*string{entry.Release.NA, entry.Release.EU, entry.Release.JP, entry.Release.AU} {
		if date == nil || *date == "" {
			continue
		}
		t, err := time.Parse("2006-01-02", *date)
		if err != nil {
			continue
		}
		if item.ReleaseDate == nil || t.Before(*item.ReleaseDate) {
			item.ReleaseDate = &t
		}
	}

	return item, nil
}
