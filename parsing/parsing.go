// Package parsing plucks normalized values out of duckling-style
// entities delivered in the tracker's latest message. Entity extraction
// itself happens upstream in the dialogue engine; this package only
// interprets the value shapes the extractor produces.
package parsing

import (
	"time"

	"bankbot-actions/model"
)

// AmountOfMoney is a parsed amount-of-money entity: a numeric amount
// with its ISO currency code.
type AmountOfMoney struct {
	Amount   float64
	Currency string
}

// Currency parses a duckling currency or amount-of-money entity into an
// amount and currency code. The second return is false when the entity
// is missing or carries no recognizable unit.
func Currency(entity *model.Entity) (AmountOfMoney, bool) {
	if entity == nil {
		return AmountOfMoney{}, false
	}

	info := entity.AdditionalInfo
	if info == nil {
		// Some extractors inline the details into the value.
		info, _ = entity.Value.(map[string]any)
	}
	if info == nil {
		return AmountOfMoney{}, false
	}

	unit, _ := info["unit"].(string)
	if unit == "" {
		return AmountOfMoney{}, false
	}

	amount, _ := asFloat(info["value"])
	return AmountOfMoney{Amount: amount, Currency: unit}, true
}

// Time parses a duckling time entity into a timestamp. Duckling sends
// either an RFC 3339 string or an object holding one under "value".
func Time(entity *model.Entity) (time.Time, bool) {
	if entity == nil {
		return time.Time{}, false
	}
	return parseTimeValue(entity.Value)
}

// TimeInterval parses a duckling interval entity into inclusive start
// and end times. Open-ended intervals yield a zero time on the open side.
func TimeInterval(entity *model.Entity) (start, end time.Time, ok bool) {
	if entity == nil {
		return
	}
	value, isMap := entity.Value.(map[string]any)
	if !isMap {
		return
	}

	start, startOK := parseTimeValue(value["from"])
	end, endOK := parseTimeValue(value["to"])
	ok = startOK || endOK
	return
}

func parseTimeValue(value any) (time.Time, bool) {
	switch v := value.(type) {
	case string:
		t, err := time.Parse(time.RFC3339, v)
		return t, err == nil
	case map[string]any:
		return parseTimeValue(v["value"])
	default:
		return time.Time{}, false
	}
}

func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}
