package network

import (
	"fmt"
	"strconv"
	"strings"

	"smartcloth/internal/engine"
	"smartcloth/internal/models"
)

// Requests sent to the network module.
const (
	cmdPing         = "PING"
	cmdCheckWifi    = "CHECK-WIFI"
	cmdGetBarcode   = "GET-BARCODE"
	cmdGetProduct   = "GET-PRODUCT:"
	cmdSave         = "SAVE"
	lineMealStart   = "MEAL-START"
	linePlateStart  = "PLATE-START"
	lineFood        = "FOOD"
	lineMealEnd     = "MEAL-END"
	lineEndTransfer = "END-TRANSMISSION"
)

// Replies from the network module.
const (
	replyPong           = "PONG"
	replyWifiOK         = "WIFI-OK"
	replyNoWifi         = "NO-WIFI"
	replyBarcode        = "BARCODE:"
	replyNoBarcode      = "NO-BARCODE"
	replyProduct        = "PRODUCT:"
	replyNoProduct      = "NO-PRODUCT"
	replyProductTimeout = "PRODUCT-TIMEOUT"
	replyHTTPError      = "ERROR-HTTP:"
	replyWaitingForData = "WAITING-FOR-DATA"
	replySavedOK        = "SAVED-OK"
)

// parseProduct decodes "PRODUCT:<code>;<name>;<carbs>;<fat>;<protein>;<kcal>",
// values per gram.
func parseProduct(line string) (models.Product, error) {
	fields := strings.Split(strings.TrimPrefix(line, replyProduct), ";")
	if len(fields) != 6 {
		return models.Product{}, fmt.Errorf("product reply has %d fields: %q", len(fields), line)
	}
	values := make([]float64, 4)
	for i, f := range fields[2:] {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return models.Product{}, fmt.Errorf("product field %d: %w", i+2, err)
		}
		values[i] = v
	}
	return models.Product{
		Barcode: fields[0],
		Name:    fields[1],
		PerGram: models.Nutrients{Carbs: values[0], Fat: values[1], Protein: values[2], Kcal: values[3]},
	}, nil
}

// parseHTTPError decodes "ERROR-HTTP:<code>".
func parseHTTPError(line string) error {
	code, err := strconv.Atoi(strings.TrimPrefix(line, replyHTTPError))
	if err != nil {
		return fmt.Errorf("malformed http error %q: %w", line, err)
	}
	return &engine.HTTPError{Code: code}
}

// encodeMeal renders a meal as the line sequence sent after WAITING-FOR-DATA.
func encodeMeal(m models.Meal) []string {
	lines := []string{lineMealStart}
	plate, started := 0, false
	for _, it := range m.Items {
		if !started || it.Plate != plate {
			lines = append(lines, linePlateStart)
			plate, started = it.Plate, true
		}
		lines = append(lines, fmt.Sprintf("%s,%d,%s", lineFood, it.GroupID, strconv.FormatFloat(it.Grams, 'f', 2, 64)))
	}
	at := m.SavedAt
	lines = append(lines,
		fmt.Sprintf("%s,%s,%s", lineMealEnd, at.Format("02.01.2006"), at.Format("15:04:05")),
		lineEndTransfer,
	)
	return lines
}
