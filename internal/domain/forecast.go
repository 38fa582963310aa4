package domain

// MarineConditions are the current sea-state readings for a location.
// Any field may be nil when the provider omits it.
type MarineConditions struct {
	WaveHeightM      *float64
	WaveDirectionDeg *float64
	WavePeriodS      *float64
	Time             *string
}

// WindConditions are the current wind readings for a location.
type WindConditions struct {
	SpeedKmh     *float64
	DirectionDeg *float64
}

// Forecast is the merged surf forecast for a beach.
type Forecast struct {
	BeachName string   `json:"playa"`
	Latitude  float64  `json:"latitud"`
	Longitude float64  `json:"longitud"`
	Current   Readings `json:"prevision_actual"`
}

// Readings groups the current wave and wind readings.
type Readings struct {
	Waves      WaveReading `json:"olas"`
	Wind       WindReading `json:"viento"`
	ObservedAt *string     `json:"momento_lectura"`
}

// WaveReading is the wave part of a forecast.
type WaveReading struct {
	HeightM        *float64 `json:"altura_metros"`
	DirectionDeg   *float64 `json:"direccion_grados"`
	DirectionLabel string   `json:"direccion_texto"`
	PeriodS        *float64 `json:"periodo_segundos"`
}

// WindReading is the wind part of a forecast.
type WindReading struct {
	SpeedKmh       *float64 `json:"velocidad_kmh"`
	DirectionDeg   *float64 `json:"direccion_grados"`
	DirectionLabel string   `json:"direccion_texto"`
}

// NewForecast merges marine and wind readings for beach b.
func NewForecast(b Beach, marine MarineConditions, wind WindConditions) *Forecast {
	return &Forecast{
		BeachName: b.Name,
		Latitude:  b.Latitude,
		Longitude: b.Longitude,
		Current: Readings{
			Waves: WaveReading{
				HeightM:        marine.WaveHeightM,
				DirectionDeg:   marine.WaveDirectionDeg,
				DirectionLabel: ToCardinal(marine.WaveDirectionDeg),
				PeriodS:        marine.WavePeriodS,
			},
			Wind: WindReading{
				SpeedKmh:       wind.SpeedKmh,
				DirectionDeg:   wind.DirectionDeg,
				DirectionLabel: ToCardinal(wind.DirectionDeg),
			},
			ObservedAt: marine.Time,
		},
	}
}
