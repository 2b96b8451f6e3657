// Package engine generates synthetic raw datasets with the kind of noise the
// production exports exhibit: mixed date formats, comma decimals, missing
// clock times, stray irrelevant rows and inconsistent field spellings.
package engine

import (
	"bufio"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"opsrecon/internal/source"
)

type GeneratorConfig struct {
	Scheduled int
	Technical int
	Noise     float64 // 0..1 share of malformed or irrelevant records
	Seed      int64
	Now       time.Time
}

var technicians = []string{
	"Julien Mercier",
	"MERCIER Julien",
	"Claire Fontaine",
	"fontaine",
	"Antoine Lefebvre",
	"Sophie Marchand",
	"N. Perrot",
	"stagiaire",
	"",
}

var technicalCategories = []string{
	"Migration AvocatMail",
	"Installation Adwin",
	"Analyse poste",
	"migration serveur",
	"AvocatMail - reprise",
}

var irrelevantCategories = []string{
	"Réunion interne",
	"Formation",
	"Congés",
}

// Generate produces the two raw datasets.
func Generate(cfg GeneratorConfig) (backoffice, support []source.RawRecord) {
	if cfg.Now.IsZero() {
		cfg.Now = time.Now()
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	start := cfg.Now.AddDate(0, -3, 0)

	for i := 0; i < cfg.Scheduled; i++ {
		day := start.AddDate(0, 0, rng.Intn(90))
		rec := source.RawRecord{
			"Date":        formatDate(rng, day),
			"Type":        "BackOffice production",
			"Responsable": pick(rng, technicians),
			"Duree":       formatDuration(rng, 2+rng.Float64()*5),
			"Heure":       fmt.Sprintf("%02d:%02d", 8+rng.Intn(3), 15*rng.Intn(4)),
		}
		if rng.Float64() < cfg.Noise {
			corrupt(rng, rec)
		}
		backoffice = append(backoffice, rec)
	}

	for i := 0; i < cfg.Technical; i++ {
		day := start.AddDate(0, 0, rng.Intn(90))
		rec := source.RawRecord{
			"DATE INTERVENTION": formatDate(rng, day),
			"Evenement":         pick(rng, technicalCategories),
			"Technicien":        pick(rng, technicians),
			"Duree (h)":         formatDuration(rng, 0.25+rng.Float64()*2),
			"Dossier":           fmt.Sprintf("DOS-%04d", 1+rng.Intn(400)),
			"Nb_Utilisateurs":   1 + rng.Intn(12),
		}
		// Roughly half of the interventions carry a precise clock time.
		if rng.Float64() < 0.5 {
			rec["Heure Debut"] = fmt.Sprintf("%02d:%02d", 9+rng.Intn(8), 15*rng.Intn(4))
		}
		if rng.Float64() < cfg.Noise {
			corrupt(rng, rec)
		}
		support = append(support, rec)
	}

	return backoffice, support
}

// formatDate emits one of the date spellings seen in the wild.
func formatDate(rng *rand.Rand, day time.Time) string {
	switch rng.Intn(3) {
	case 0:
		return day.Format("02/01/2006")
	case 1:
		return day.Format("02/01/2006") + " 00:00"
	default:
		return day.Format("2006-01-02T15:04:05")
	}
}

// formatDuration emits hours as a plain number, a comma decimal or H:M.
func formatDuration(rng *rand.Rand, hours float64) any {
	switch rng.Intn(3) {
	case 0:
		return hours
	case 1:
		return fmt.Sprintf("%.2f", hours)
	default:
		h := int(hours)
		m := int((hours - float64(h)) * 60)
		return fmt.Sprintf("%d:%02d", h, m)
	}
}

// corrupt degrades a record the way flaky exports do.
func corrupt(rng *rand.Rand, rec source.RawRecord) {
	switch rng.Intn(4) {
	case 0:
		delete(rec, "Date")
		delete(rec, "DATE INTERVENTION")
	case 1:
		setCategory(rec, pick(rng, irrelevantCategories))
	case 2:
		setDuration(rec, "n/a")
	default:
		rec["Date"] = "31/02/2025"
	}
}

func setCategory(rec source.RawRecord, category string) {
	if _, ok := rec["Type"]; ok {
		rec["Type"] = category
		return
	}
	rec["Evenement"] = category
}

func setDuration(rec source.RawRecord, value any) {
	if _, ok := rec["Duree"]; ok {
		rec["Duree"] = value
		return
	}
	rec["Duree (h)"] = value
}

func pick(rng *rand.Rand, values []string) string {
	return values[rng.Intn(len(values))]
}

// Save writes records as one JSON object per line to <dir>/<dataset>.jsonl.
func Save(dir, dataset string, records []source.RawRecord) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("%s.jsonl", dataset))
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create dataset file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	encoder := json.NewEncoder(writer)
	for _, rec := range records {
		if err := encoder.Encode(rec); err != nil {
			return fmt.Errorf("failed to encode record: %w", err)
		}
	}
	return writer.Flush()
}
