package service

import (
	"strings"

	"rag-mecanico/internal/models"
)

// lineClass pairs a keyword set with the slot it fills. Order is priority.
type lineClass struct {
	keywords []string
	slot     func(info *models.TechnicalInfo) *[]string
}

var lineClasses = []lineClass{
	{
		keywords: []string{"paso", "procedimiento", "instrucción", "método"},
		slot:     func(info *models.TechnicalInfo) *[]string { return &info.Procedures },
	},
	{
		keywords: []string{"especificación", "tolerancia", "medida", "valor", "psi", "rpm", "voltios"},
		slot:     func(info *models.TechnicalInfo) *[]string { return &info.Specifications },
	},
	{
		keywords: []string{"advertencia", "precaución", "peligro", "importante", "nota"},
		slot:     func(info *models.TechnicalInfo) *[]string { return &info.Warnings },
	},
	{
		keywords: []string{"herramienta", "equipo", "llave", "medidor"},
		slot:     func(info *models.TechnicalInfo) *[]string { return &info.Tools },
	},
}

// ExtractTechnicalInfo classifies each non-empty line of the retrieved
// passages. A line lands in the first class whose keywords it contains
// (substring, case-insensitive); lines matching no class are dropped.
func ExtractTechnicalInfo(context string) models.TechnicalInfo {
	var info models.TechnicalInfo

	for _, line := range strings.Split(context, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		for _, class := range lineClasses {
			if containsAny(lower, class.keywords) {
				slot := class.slot(&info)
				*slot = append(*slot, line)
				break
			}
		}
	}

	return info
}

// containsAny is plain substring matching: "nota" also matches "anotar".
func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
