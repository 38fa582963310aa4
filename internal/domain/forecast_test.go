package domain

import "testing"

func TestNewForecast_MergesReadings(t *testing.T) {
	b := Beach{ID: "pantin", Name: "Pantín", Latitude: 43.63, Longitude: -8.11, Country: "España"}
	ts := "2026-10-18T10:00"
	marine := MarineConditions{
		WaveHeightM:      ptr(1.8),
		WaveDirectionDeg: ptr(300),
		WavePeriodS:      ptr(12.3),
		Time:             &ts,
	}
	wind := WindConditions{SpeedKmh: ptr(14.2), DirectionDeg: ptr(46)}

	f := NewForecast(b, marine, wind)

	if f.BeachName != "Pantín" || f.Latitude != 43.63 || f.Longitude != -8.11 {
		t.Errorf("Unexpected beach fields: %+v", f)
	}
	if *f.Current.Waves.HeightM != 1.8 || *f.Current.Waves.PeriodS != 12.3 {
		t.Errorf("Unexpected wave readings: %+v", f.Current.Waves)
	}
	if f.Current.Waves.DirectionLabel != "Northwest" {
		t.Errorf("Expected wave direction Northwest, got %s", f.Current.Waves.DirectionLabel)
	}
	if f.Current.Wind.DirectionLabel != "Northeast" {
		t.Errorf("Expected wind direction Northeast, got %s", f.Current.Wind.DirectionLabel)
	}
	if f.Current.ObservedAt == nil || *f.Current.ObservedAt != ts {
		t.Errorf("Expected observation time %s, got %v", ts, f.Current.ObservedAt)
	}
}

func TestNewForecast_MissingReadings(t *testing.T) {
	f := NewForecast(Beach{Name: "Riazor"}, MarineConditions{}, WindConditions{})

	if f.Current.Waves.HeightM != nil || f.Current.Wind.SpeedKmh != nil {
		t.Error("Expected nil readings to stay nil")
	}
	if f.Current.Waves.DirectionLabel != NotAvailable || f.Current.Wind.DirectionLabel != NotAvailable {
		t.Errorf("Expected %s labels, got %+v", NotAvailable, f.Current)
	}
}
