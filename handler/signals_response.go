package handler

import (
	"encoding/json"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

type signalsResponse struct {
	signals any
	status  int
}

func (s signalsResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		data, err := json.Marshal(s.signals)
		if err != nil {
			return err
		}
		return datastar.NewSSE(w, r).PatchSignals(data)
	}
	return JSON(s.signals, WithJSONStatus(s.status)).Render(w, r)
}

// Signals patches client signals for DataStar requests and falls back to a
// JSON body with the given status for everything else. status only reaches
// JSON clients: a DataStar stream always opens with 200, and its clients
// read the outcome from the patched signals.
func Signals(signals any, status int) Response {
	if status == 0 {
		status = http.StatusOK
	}
	return signalsResponse{signals: signals, status: status}
}
