package scoring

import (
	"math"
	"strings"

	"github.com/guarzo/merchforecast/internal/model"
)

// genreMultipliers weight merch appetite by genre. Metal and rock
// crowds buy shirts; dance and regional genres mostly do not.
var genreMultipliers = map[string]float64{
	"metal":      1.6,
	"rock":       1.5,
	"punk":       1.4,
	"indie":      1.3,
	"rap":        1.2,
	"hip hop":    1.2,
	"pop":        1.0,
	"k-pop":      1.1,
	"eletronica": 0.9,
	"edm":        0.9,
	"sertanejo":  0.8,
	"funk":       0.7,
	"pagode":     0.7,
	"axe":        0.7,
}

// cityMultipliers weight by local market size. Unknown cities take
// the conservative default below.
var cityMultipliers = map[string]float64{
	"são paulo":      1.2,
	"rio de janeiro": 1.1,
	"porto alegre":   1.05,
	"curitiba":       1.0,
	"belo horizonte": 1.0,
	"brasília":       0.95,
	"salvador":       0.9,
	"recife":         0.9,
	"fortaleza":      0.9,
}

const defaultCityMult = 0.9

// SalesPotential rates shirt sales prospects 0-100 for an event. The
// hype score feeds in at 40% weight, audience size (or capacity as a
// weaker stand-in) adds up to 30 points, festivals add 15, and genre
// and city multipliers scale the whole.
func SalesPotential(ev model.Event, hypeScore float64) float64 {
	score := hypeScore * 0.4

	switch {
	case ev.EstimatedAudience > 0:
		score += math.Min(float64(ev.EstimatedAudience)/10000*30, 30)
	case ev.Venue != nil && ev.Venue.Capacity > 0:
		score += math.Min(float64(ev.Venue.Capacity)/10000*20, 20)
	}

	if ev.IsFestival {
		score += 15
	} else if ev.EventType == "tour_stop" {
		score += 5
	}

	genre := "pop"
	if ev.Artist != nil && ev.Artist.Genre != "" {
		genre = strings.ToLower(ev.Artist.Genre)
	}
	if mult, ok := genreMultipliers[genre]; ok {
		score *= mult
	}

	cityMult := defaultCityMult
	if ev.Venue != nil && ev.Venue.City != "" {
		city := strings.ToLower(strings.TrimSpace(ev.Venue.City))
		if mult, ok := cityMultipliers[city]; ok {
			cityMult = mult
		}
	}
	score *= cityMult

	return math.Min(round1(score), 100)
}
