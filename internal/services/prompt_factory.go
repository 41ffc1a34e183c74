package services

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"voya/internal/models/db_models"
	"voya/pkg/utils"
)

// CandidateItem is one point of interest eligible for the itinerary. The
// JSON tags match the item shape the prompt's output example demands, so
// the serialized input list and the expected output use the same keys.
type CandidateItem struct {
	ContentID string  `json:"contentId"`
	Title     string  `json:"title"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Category  string  `json:"category"`
}

// DayTarget is the number of items one travel day must receive.
type DayTarget struct {
	DayNumber   int
	TargetCount int
}

// TravelDayCount returns the inclusive number of travel days. A malformed
// range (end before start) yields 1 rather than a zero or negative count.
func TravelDayCount(startDate, endDate time.Time) int {
	days := int(endDate.Sub(startDate).Hours()/24) + 1
	if days <= 0 {
		return 1
	}
	return days
}

// PartitionItemsAcrossDays splits itemCount across dayCount days so that
// counts differ by at most one; the first itemCount%dayCount days take the
// larger share.
func PartitionItemsAcrossDays(itemCount, dayCount int) []DayTarget {
	if dayCount < 1 {
		dayCount = 1
	}

	base := itemCount / dayCount
	remainder := itemCount % dayCount

	targets := make([]DayTarget, dayCount)
	for i := 0; i < dayCount; i++ {
		count := base
		if i < remainder {
			count++
		}
		targets[i] = DayTarget{DayNumber: i + 1, TargetCount: count}
	}
	return targets
}

// dailyPlanOutputExample is the literal output shape embedded in the
// prompt. It is validated against the daily-plan schema in tests, so the
// prompt's description of the response and the response validator cannot
// drift apart.
const dailyPlanOutputExample = `{
  "scheduleId": "3fa85f64-5717-4562-b3fc-2c963f66afa6",
  "dailyPlans": [
    {
      "dayNumber": 1,
      "items": [
        {"contentId": "126508", "title": "Gyeongbokgung Palace", "latitude": 37.579617, "longitude": 126.977041, "category": "TOURIST_SPOT"}
      ]
    }
  ]
}`

// BuildDailyPlanPrompt renders the full instruction payload for the model:
// role framing, the hard constraints, the per-day targets, the literal
// output example and the concrete input data.
func BuildDailyPlanPrompt(scheduleID uuid.UUID, startDate, endDate time.Time, items []CandidateItem) (string, error) {
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("%w: item serialization: %v", utils.ErrPromptConstruction, err)
	}

	dayCount := TravelDayCount(startDate, endDate)
	targets := PartitionItemsAcrossDays(len(items), dayCount)

	var distribution strings.Builder
	for _, target := range targets {
		fmt.Fprintf(&distribution, "* Day %d: %d places\n", target.DayNumber, target.TargetCount)
	}

	return fmt.Sprintf(`You are a travel itinerary planning expert AI.
Distribute the given places **evenly across the travel days**, and order each day's `+"`items`"+` array so the **route flows naturally**.

### Rules
1. The number of `+"`items`"+` for each day must exactly match the [Per-day targets].
2. Duplicate places (`+"`contentId`"+`) are never allowed.
3. category must be one of the input values. (%s)
4. Order each day's places as follows:
   - The first place is that day's starting point (the previous night's accommodation, or the trip's start on day one).
   - The last place is an accommodation (`+"`ACCOMMODATION`"+`, if one is scheduled that day).
   - Arrange the rest by geographic proximity.
5. Assume a stay of 1-2 hours per place so a day's total is never overloaded.

### Per-day targets
%s
### Output format
`+"```json"+`
%s
`+"```"+`

### Input
* Travel period: %s ~ %s
* Schedule ID: %s
* Places:
%s

Now generate the JSON according to the rules.
`,
		strings.Join(db_models.AllCategories, ", "),
		distribution.String(),
		dailyPlanOutputExample,
		startDate.Format("2006-01-02"),
		endDate.Format("2006-01-02"),
		scheduleID,
		string(itemsJSON),
	), nil
}
