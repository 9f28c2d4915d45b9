package smile

import (
	"github.com/tantralabs/vol-smile/models"
)

// CalcParams derives the risk reversal and butterfly from the smile
// markers. NaN markers flow through unchanged; this stage does not
// re-validate.
func CalcParams(markers models.SmileMarkers) models.SmileParams {
	return models.SmileParams{
		AtmIv:        markers.AtmIv,
		RiskReversal: markers.Call25Iv - markers.Put25Iv,
		Butterfly:    (markers.Call25Iv+markers.Put25Iv)/2 - markers.AtmIv,
	}
}
