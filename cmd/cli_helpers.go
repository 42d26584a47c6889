package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/phukemrunal322-hue/cosmos-sub003/internal/config"
	"github.com/phukemrunal322-hue/cosmos-sub003/internal/status"
	"github.com/phukemrunal322-hue/cosmos-sub003/models"
	"github.com/phukemrunal322-hue/cosmos-sub003/store"
	"github.com/spf13/viper"
)

const dateLayout = "2006-01-02"

// now is swapped in tests.
var now = time.Now

func isJSON() bool {
	return viper.GetBool("json")
}

func isVerbose() bool {
	return viper.GetBool("verbose")
}

func printJSON(w io.Writer, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}

// openRecords opens the configured record source.
func openRecords() (store.RecordSource, error) {
	rc := config.LoadRecordsConfig()
	src, err := store.Open(rc.Driver, rc.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s records at %s: %w", rc.Driver, rc.Path, err)
	}
	LogError(fmt.Sprintf("reading %s records from %s", rc.Driver, rc.Path), nil)
	return src, nil
}

// loadRecords reads every record from the configured source.
func loadRecords(ctx context.Context) (models.RecordSet, error) {
	src, err := openRecords()
	if err != nil {
		return models.RecordSet{}, err
	}
	defer func() { _ = src.Close() }()
	return store.LoadAll(ctx, src)
}

// labelStorePath keeps remembered labels next to the records.
func labelStorePath() string {
	return filepath.Join(filepath.Dir(config.GetRecordsPath()), "labels")
}

// dayLocation is the zone calendar days are read in, the clock's own.
func dayLocation() *time.Location {
	return now().Location()
}

func openLabelStore() *store.LabelStore {
	return store.NewLabelStore(labelStorePath(), dayLocation())
}

// newResolver builds a resolver from the configured status options and the
// labels remembered on disk.
func newResolver(ctx context.Context) *status.Resolver {
	holder := status.NewCatalogHolder(status.NewCatalog(config.LoadStatusOptions()))
	mem := status.NewLabelMemory(dayLocation())
	n := openLabelStore().Restore(ctx, mem)
	LogError(fmt.Sprintf("restored %d remembered labels", n), nil)
	return status.NewResolver(holder, mem)
}

// parseDay reads a day argument relative to today.
func parseDay(v string) (time.Time, error) {
	today := now()
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "today":
		return day, nil
	case "tomorrow":
		return day.AddDate(0, 0, 1), nil
	case "yesterday":
		return day.AddDate(0, 0, -1), nil
	}
	t, err := time.ParseInLocation(dateLayout, strings.TrimSpace(v), today.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD, today, tomorrow or yesterday", v)
	}
	return t, nil
}
