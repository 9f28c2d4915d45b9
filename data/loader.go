package data

import (
	"os"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"

	"github.com/tantralabs/vol-smile/logger"
	"github.com/tantralabs/vol-smile/models"
)

// A quote snapshot read once, in full, before the pipeline runs.
type Snapshot struct {
	ID       string
	LoadedAt time.Time
	Source   string
	Quotes   []models.Quote
}

// LoadQuotes reads an option quote snapshot from a csv file.
func LoadQuotes(csvFile string) (Snapshot, error) {
	snapshot := Snapshot{
		ID:       uuid.New().String(),
		LoadedAt: time.Now().UTC(),
		Source:   csvFile,
	}
	dataFile, err := os.Open(csvFile)
	if err != nil {
		return snapshot, err
	}
	defer dataFile.Close()

	var quotes []*models.Quote
	if err := gocsv.UnmarshalFile(dataFile, &quotes); err != nil {
		return snapshot, err
	}
	snapshot.Quotes = make([]models.Quote, len(quotes))
	for i := range quotes {
		snapshot.Quotes[i] = *quotes[i]
	}
	logger.Infof("Loaded %v quotes from %v (snapshot %v)", len(snapshot.Quotes), csvFile, snapshot.ID)
	return snapshot, nil
}
