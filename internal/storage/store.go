package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/transitlab/internal/batch"
	"github.com/san-kum/transitlab/internal/units"
)

// Store keeps batch runs on disk, one directory per run: metadata.json with
// the run summary and results.csv with one row per object in display units.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string    `json:"id"`
	Catalog   string    `json:"catalog"`
	Timestamp time.Time `json:"timestamp"`
	Objects   int       `json:"objects"`
	Failures  int       `json:"failures"`
}

var csvHeader = []string{
	"object",
	"period_days", "mstar_solar", "rstar_solar",
	"depth", "depth_err", "duration_days", "duration_err_days",
	"rp2rs", "rp2rs_err", "rplanet_km", "rplanet_err_km",
	"a_au", "v_kms", "alpha_deg", "alpha_err_deg",
	"error",
}

func (s *Store) Save(catalog string, results []batch.ObjectResult) (string, error) {
	runID := fmt.Sprintf("%s_%d", catalog, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Catalog:   catalog,
		Timestamp: time.Now(),
		Objects:   len(results),
		Failures:  batch.Failures(results),
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "results.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write(csvHeader); err != nil {
		return "", err
	}

	for _, r := range results {
		row := []string{
			r.Inputs.Name,
			f(r.Inputs.PeriodDays), f(r.Inputs.StellarMassSolar), f(r.Inputs.StellarRadiusSolar),
			f(r.Inputs.TransitDepth), f(r.Inputs.TransitDepthErr),
			f(r.Inputs.TransitDurationDays), f(r.Inputs.TransitDurationErrDays),
		}
		if r.Err != nil {
			row = append(row, "", "", "", "", "", "", "", "", r.Err.Error())
		} else {
			row = append(row,
				f(r.Outputs.RadiusRatio), f(r.Outputs.RadiusRatioErr),
				f(units.MetersToKm(r.Outputs.PlanetRadiusM)), f(units.MetersToKm(r.Outputs.PlanetRadiusErrM)),
				f(units.MetersToAU(r.Outputs.SemiMajorAxisM)), f(units.MetersToKm(r.Outputs.OrbitalSpeedMS)),
				f(units.RadiansToDegrees(r.Outputs.InclinationOffsetRad)), f(units.RadiansToDegrees(r.Outputs.InclinationOffsetErr)),
				"",
			)
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	w.Flush()
	return runID, w.Error()
}

func f(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) List() ([]*RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []*RunMetadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.Load(e.Name())
		if err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

// LoadResults reads back the per-object CSV rows of a run, header first.
func (s *Store) LoadResults(runID string) ([][]string, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "results.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return csv.NewReader(file).ReadAll()
}

// ExportJSON writes a run's metadata and rows as one JSON document.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	rows, err := s.LoadResults(runID)
	if err != nil {
		return err
	}

	doc := struct {
		Meta    *RunMetadata        `json:"meta"`
		Objects []map[string]string `json:"objects"`
	}{Meta: meta}

	if len(rows) > 0 {
		header := rows[0]
		for _, row := range rows[1:] {
			obj := make(map[string]string, len(header))
			for i, col := range header {
				if i < len(row) {
					obj[col] = row[i]
				}
			}
			doc.Objects = append(doc.Objects, obj)
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
