package analyzing

import (
	"time"

	"github.com/dashly/sales-analytics-api/internal/domain"
	"github.com/dashly/sales-analytics-api/pkg/utils"
)

// resolveWindow computes the current analysis window from a period keyword,
// anchored to the latest day present in the dataset. Custom bounds are
// inclusive calendar dates; an end past the anchor is clamped to it.
func resolveWindow(ds *domain.Dataset, period, customStart, customEnd string) (domain.PeriodWindow, error) {
	anchor, ok := ds.MaxDate()
	if !ok {
		return domain.PeriodWindow{}, domain.NewValidationError("Файл не содержит данных.")
	}

	switch period {
	case domain.PeriodCustom:
		return resolveCustomWindow(anchor, customStart, customEnd)

	case domain.PeriodToday:
		return domain.PeriodWindow{Start: anchor, End: anchor}, nil

	case domain.PeriodWeek:
		return domain.PeriodWindow{Start: anchor.AddDate(0, 0, -6), End: anchor}, nil

	case domain.PeriodMonth:
		return domain.PeriodWindow{Start: anchor.AddDate(0, 0, -29), End: anchor}, nil

	case domain.PeriodAll:
		min, _ := ds.MinDate()
		return domain.PeriodWindow{Start: min, End: anchor}, nil

	default:
		return domain.PeriodWindow{}, domain.NewValidationError("Неподдерживаемый период")
	}
}

func resolveCustomWindow(anchor time.Time, customStart, customEnd string) (domain.PeriodWindow, error) {
	if customStart == "" || customEnd == "" {
		return domain.PeriodWindow{}, domain.NewValidationError("custom_start и custom_end требуются для настраиваемого периода")
	}

	start, err := utils.ParseDate(customStart)
	if err != nil {
		return domain.PeriodWindow{}, domain.Validationf("Неверная дата custom_start: %s", customStart)
	}

	end, err := utils.ParseDate(customEnd)
	if err != nil {
		return domain.PeriodWindow{}, domain.Validationf("Неверная дата custom_end: %s", customEnd)
	}

	start = utils.TruncateToDay(start)
	end = utils.TruncateToDay(end)

	if start.After(end) {
		return domain.PeriodWindow{}, domain.NewValidationError("custom_start должен быть перед custom_end")
	}
	if end.After(anchor) {
		end = anchor
	}

	return domain.PeriodWindow{Start: start, End: end}, nil
}
