package knowledge

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LoadFromFiles returns the default tables with optional file overrides
// applied on top: a CSV of compatibility rows and an XLSX of benefit
// coefficients. Either path may be empty. Override files are best-effort the
// same way the planner treats agronomy config files: a missing or partially
// malformed file keeps the built-in values for the rows it cannot read.
func LoadFromFiles(traitsCSV, benefitsXLSX string) (Tables, error) {
	t := Default()

	if traitsCSV != "" {
		if err := t.loadTraitsCSV(traitsCSV); err != nil {
			return Tables{}, fmt.Errorf("load traits csv: %w", err)
		}
	}
	if benefitsXLSX != "" {
		_ = t.loadBenefitsXLSX(benefitsXLSX)
	}
	return t, nil
}

func (t *Tables) loadTraitsCSV(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	head, err := cr.Read()
	if err != nil {
		return err
	}

	norm := func(s string) string {
		s = strings.TrimSpace(s)
		s = strings.TrimPrefix(s, "\ufeff") // BOM
		s = strings.ToLower(s)
		s = strings.ReplaceAll(s, " ", "")
		s = strings.ReplaceAll(s, "-", "")
		s = strings.ReplaceAll(s, "_", "")
		return s
	}
	hmap := map[string]int{}
	for i, h := range head {
		hmap[norm(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[norm(k)]; ok {
				return idx
			}
		}
		return -1
	}

	cCrop := findAny("Crop", "crop_name", "name")
	cGood := findAny("GoodNext", "good_next", "follows_well")
	cAvoid := findAny("AvoidNext", "avoid_next", "avoid")
	cDemand := findAny("NitrogenDemand", "nitrogen_demand", "n_demand")

	if cCrop == -1 {
		return fmt.Errorf("traits CSV missing a crop column. Found headers: %v", head)
	}

	splitList := func(s string) []string {
		var out []string
		for _, p := range strings.Split(s, ";") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, strings.ToLower(p))
			}
		}
		return out
	}

	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		get := func(idx int) string {
			if idx < 0 || idx >= len(rec) {
				return ""
			}
			return rec[idx]
		}

		crop := strings.ToLower(strings.TrimSpace(get(cCrop)))
		if crop == "" {
			continue
		}
		tr := t.traits[crop]
		if v := splitList(get(cGood)); v != nil {
			tr.GoodNext = v
		}
		if v := splitList(get(cAvoid)); v != nil {
			tr.AvoidNext = v
		}
		if v := strings.TrimSpace(get(cDemand)); v != "" {
			tr.NitrogenDemand = strings.ToLower(v)
		}
		t.traits[crop] = tr
	}
	return nil
}

// loadBenefitsXLSX reads per-crop coefficient overrides from the first sheet:
// crop | nitrogen_fixation | soil_organic_matter | erosion_control |
// pest_management | weed_suppression | economic_value.
func (t *Tables) loadBenefitsXLSX(path string) error {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return err
	}
	defer x.Close()

	sheets := x.GetSheetList()
	if len(sheets) == 0 {
		return nil
	}
	rows, err := x.GetRows(sheets[0])
	if err != nil || len(rows) < 2 {
		return err
	}

	num := func(rec []string, idx int, def float64) float64 {
		if idx >= len(rec) {
			return def
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[idx]), 64)
		if err != nil {
			return def
		}
		return v
	}

	for _, rec := range rows[1:] {
		if len(rec) == 0 {
			continue
		}
		crop := strings.ToLower(strings.TrimSpace(rec[0]))
		if crop == "" {
			continue
		}
		b := t.benefits[crop]
		b.NitrogenFixation = num(rec, 1, b.NitrogenFixation)
		b.SoilOrganicMatter = num(rec, 2, b.SoilOrganicMatter)
		b.ErosionControl = num(rec, 3, b.ErosionControl)
		b.PestManagement = num(rec, 4, b.PestManagement)
		b.WeedSuppression = num(rec, 5, b.WeedSuppression)
		b.EconomicValue = num(rec, 6, b.EconomicValue)
		t.benefits[crop] = b
	}
	return nil
}
