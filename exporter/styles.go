package exporter

import "github.com/xuri/excelize/v2"

// styleManager caches workbook styles so each style is created only once per file.
type styleManager struct {
	file  *excelize.File
	cache map[string]int
}

func newStyleManager(f *excelize.File) *styleManager {
	return &styleManager{file: f, cache: make(map[string]int)}
}

// header returns a bold, centered, bordered style with a light fill.
func (sm *styleManager) header() (int, error) {
	return sm.getOrCreate("header", &excelize.Style{
		Font:      &excelize.Font{Bold: true, Family: defaultFontFamily, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D9E1F2"}},
		Border:    defaultBorder(),
	})
}

// cell returns a left-aligned bordered style for data rows.
func (sm *styleManager) cell() (int, error) {
	return sm.getOrCreate("cell", &excelize.Style{
		Font:      &excelize.Font{Family: defaultFontFamily, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
		Border:    defaultBorder(),
	})
}

func (sm *styleManager) getOrCreate(key string, style *excelize.Style) (int, error) {
	if id, ok := sm.cache[key]; ok {
		return id, nil
	}

	id, err := sm.file.NewStyle(style)
	if err != nil {
		return 0, err
	}

	sm.cache[key] = id
	return id, nil
}

const defaultFontFamily = "Calibri"

func defaultBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "BFBFBF", Style: 1},
		{Type: "right", Color: "BFBFBF", Style: 1},
		{Type: "top", Color: "BFBFBF", Style: 1},
		{Type: "bottom", Color: "BFBFBF", Style: 1},
	}
}
