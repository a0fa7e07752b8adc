package services

import (
	"strings"

	"backend/internal/domain/models"
	"backend/internal/repositories"
	"backend/internal/utils"
)

// PriceListService resolves the rate snapshot for one execution date.
type PriceListService struct {
	Repo      repositories.PriceListRepository
	RequestID string
}

// GetForDate assembles the price list valid on the given date. Rows are
// ordered newest-valid-from first, so the first row per item type wins when
// validity windows overlap. An empty table is fine; the engine falls back to
// its constants.
func (s PriceListService) GetForDate(date string) (models.PriceList, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		date = utils.Today()
	}

	rows, err := s.Repo.ListForDate(date)
	if err != nil {
		return models.PriceList{}, err
	}

	list := models.PriceList{}
	seen := map[string]bool{}
	for _, row := range rows {
		key := row.Category + "/" + row.Item.Type
		if seen[key] {
			continue
		}
		seen[key] = true

		switch row.Category {
		case "transport":
			list.Transport = append(list.Transport, row.Item)
		case "work":
			list.Work = append(list.Work, row.Item)
		default:
			list.Other = append(list.Other, row.Item)
		}
	}
	return list, nil
}
