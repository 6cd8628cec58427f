package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// AdditiveInfo es el cuerpo tipado que devuelve el analizador de ingredientes.
// El shape reemplaza al payload duck-typed original: se decodifica y valida
// antes de persistirse en el slot de resultados.
type AdditiveInfo struct {
	CommonName       string           `json:"common_name"`
	ChemicalName     string           `json:"chemical_name"`
	Category         string           `json:"category"`
	Usages           []string         `json:"usages"`
	Properties       Properties       `json:"properties"`
	HealthProfile    HealthProfile    `json:"health_profile"`
	RegulatoryStatus RegulatoryStatus `json:"regulatory_status"`
}

type Properties struct {
	Brightness     string `json:"brightness"`
	Stability      string `json:"stability"`
	CostEfficiency string `json:"cost_efficiency"`
}

type HealthProfile struct {
	Safety         Safety         `json:"safety"`
	PotentialRisks PotentialRisks `json:"potential_risks"`
}

type Safety struct {
	Status      string `json:"status"`
	EvaluatedBy string `json:"evaluated_by"`
	Year        int    `json:"year"`
}

type PotentialRisks struct {
	Environmental    string   `json:"environmental"`
	DigestiveEffect  string   `json:"digestive_effect"`
	LongTermEffect   string   `json:"long_term_effect"`
	MetabolismEffect string   `json:"metabolism_effect"`
	VulnerableGroups []string `json:"vulnerable_groups"`
}

type RegulatoryStatus struct {
	AcceptableDailyIntake AcceptableDailyIntake `json:"acceptable_daily_intake"`
	CountryRegulations    []CountryRegulation   `json:"country_regulations"`
}

type AcceptableDailyIntake struct {
	ValueMgPerKgBw float64 `json:"value_mg_per_kg_bw"`
	Source         string  `json:"source"`
}

type CountryRegulation struct {
	Region string `json:"region"`
	Status string `json:"status"`
	Note   string `json:"note"`
}

// ScanModes validos para una peticion de analisis.
const (
	ScanModeFood        = "food"
	ScanModeBarcode     = "barcode"
	ScanModeIngredients = "ingredients"
)

// ValidScanMode reporta si mode es uno de los modos soportados.
func ValidScanMode(mode string) bool {
	switch mode {
	case ScanModeFood, ScanModeBarcode, ScanModeIngredients:
		return true
	}
	return false
}

var ErrIncompleteAdditiveInfo = errors.New("incomplete additive info")

// Validate verifica los campos minimos que la vista de resultados necesita.
func (a AdditiveInfo) Validate() error {
	var missing []string
	if strings.TrimSpace(a.CommonName) == "" {
		missing = append(missing, "common_name")
	}
	if strings.TrimSpace(a.ChemicalName) == "" {
		missing = append(missing, "chemical_name")
	}
	if strings.TrimSpace(a.Category) == "" {
		missing = append(missing, "category")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrIncompleteAdditiveInfo, strings.Join(missing, ", "))
	}
	return nil
}

// ScanResult es el envoltorio almacenado en el slot de ultimo resultado.
// Se sobrescribe en cada analisis exitoso, sin versionado.
type ScanResult struct {
	ID           string       `json:"id"`
	Mode         string       `json:"mode"`
	AdditiveInfo AdditiveInfo `json:"additive_info"`
	CapturedAt   time.Time    `json:"captured_at"`
}
