package repositories

import (
	"database/sql"
	"fmt"

	intconfig "backend/internal/config"
	"backend/internal/domain/models"
)

// PriceListRepository reads the date-scoped rate rows.
type PriceListRepository struct {
	DB *sql.DB
}

func (r PriceListRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// PriceRow is one rate row with its category.
type PriceRow struct {
	Category string
	Item     models.PriceItem
}

// ListForDate returns all rate rows valid on the given date (YYYY-MM-DD).
// An empty result is not an error; the engine has its own fallbacks.
func (r PriceListRepository) ListForDate(date string) ([]PriceRow, error) {
	query := `
		SELECT COALESCE(category,''),
		       COALESCE(item_type,''),
		       COALESCE(description,''),
		       COALESCE(price,0),
		       COALESCE(unit,''),
		       COALESCE(valid_from,''),
		       COALESCE(valid_to,'')
		FROM price_list_items
		WHERE valid_from <= ?
		  AND (valid_to IS NULL OR valid_to = '' OR valid_to >= ?)
		ORDER BY valid_from DESC, id`

	rows, err := r.db().Query(query, date, date)
	if err != nil {
		if err == sql.ErrNoRows {
			return []PriceRow{}, nil
		}
		return nil, fmt.Errorf("list price items: %w", err)
	}
	defer rows.Close()

	out := []PriceRow{}
	for rows.Next() {
		var row PriceRow
		if err := rows.Scan(
			&row.Category,
			&row.Item.Type,
			&row.Item.Description,
			&row.Item.Price,
			&row.Item.Unit,
			&row.Item.ValidFrom,
			&row.Item.ValidTo,
		); err != nil {
			return nil, fmt.Errorf("scan price item: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
