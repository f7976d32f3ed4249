package classify

import (
	"testing"

	"github.com/jengzang/vessel-intervals-go/internal/models"
	"github.com/jengzang/vessel-intervals-go/internal/ports"
	"github.com/stretchr/testify/assert"
)

func port(name string, km float64) *models.PortAnalysis {
	return &models.PortAnalysis{Name: name, Distance: km}
}

func TestClassify(t *testing.T) {
	th := DefaultThresholds()
	docked := models.NewNavStatus("0.0")
	maneuvering := models.NewNavStatus("1.0")
	transit := models.NewNavStatus("2.0")

	tests := []struct {
		name       string
		nav        models.NavStatus
		start, end *models.PortAnalysis
		wantType   models.ActivityType
		wantReason string
	}{
		{"missing start port", docked, nil, port("Ceuta", 1), models.ActivityUndefined, models.ReasonNoPortData},
		{"missing end port", docked, port("Ceuta", 1), nil, models.ActivityUndefined, models.ReasonNoPortData},
		{"docked at 3.9 km", docked, port("Algeciras", 3.9), port("Algeciras", 3.9), models.ActivityDocked, ""},
		{"docked at 4.1 km is undefined", docked, port("Algeciras", 4.1), port("Algeciras", 4.1), models.ActivityUndefined, models.ReasonConditionsNot},
		{"docked exactly at 4 km is undefined", docked, port("Algeciras", 4), port("Algeciras", 1), models.ActivityUndefined, models.ReasonConditionsNot},
		{"docked between two ports", docked, port("Algeciras", 1), port("Ceuta", 1), models.ActivityUndefined, models.ReasonConditionsNot},
		{"maneuvering at 9.9 km", maneuvering, port("Ceuta", 9.9), port("Ceuta", 2), models.ActivityManeuvering, ""},
		{"maneuvering at 10.1 km", maneuvering, port("Ceuta", 10.1), port("Ceuta", 2), models.ActivityUndefined, models.ReasonConditionsNot},
		{"transit between ports", transit, port("Ceuta", 30), port("Algeciras", 0.5), models.ActivityTransit, ""},
		{"transit back to the same port", transit, port("Ceuta", 1), port("Ceuta", 1), models.ActivityUndefined, models.ReasonConditionsNot},
		{"far from every port", maneuvering, port("Ceuta", 41), port("Ceuta", 2), models.ActivityUndefined, "more than 40 km from any port"},
		{"unknown status", models.NewNavStatus("7.0"), port("Ceuta", 1), port("Ceuta", 1), models.ActivityUndefined, models.ReasonConditionsNot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.nav, tt.start, tt.end, th)
			assert.Equal(t, tt.wantType, got.Type)
			assert.Equal(t, tt.wantReason, got.Reason)
			assert.NotEmpty(t, got.Label)
		})
	}
}

func TestClassifyCarriesPorts(t *testing.T) {
	th := DefaultThresholds()

	c := Classify(models.NewNavStatus("0.0"), port("Tanger Med", 0.3), port("Tanger Med", 0.4), th)
	assert.Equal(t, "Tanger Med", c.Port)
	assert.Equal(t, "docked_tangermed", ActivityID(c))

	c = Classify(models.NewNavStatus("2.0"), port("Tanger Med", 0.3), port("Ceuta", 0.4), th)
	assert.Equal(t, "Tanger Med", c.FromPort)
	assert.Equal(t, "Ceuta", c.ToPort)
	assert.Equal(t, "transit_tangermed_ceuta", ActivityID(c))
	assert.Equal(t, "Transit Tanger Med → Ceuta", c.Label)

	c = Classify(models.NewNavStatus("1.0"), nil, nil, th)
	assert.Equal(t, "undefined", ActivityID(c))
}

func TestClassifyCustomThresholds(t *testing.T) {
	th := Thresholds{DockedKm: 1, ManeuveringKm: 2, UndefinedBeyondKm: 5}

	c := Classify(models.NewNavStatus("0.0"), port("Ceuta", 1.5), port("Ceuta", 0.5), th)
	assert.Equal(t, models.ActivityUndefined, c.Type)

	c = Classify(models.NewNavStatus("0.0"), port("Ceuta", 6), port("Ceuta", 0.5), th)
	assert.Equal(t, "more than 5 km from any port", c.Reason)
}

func TestIntervalUsesEndpointPorts(t *testing.T) {
	iv := models.Interval{
		NavStatus: models.NewNavStatus("1.0"),
		StartPort: port("Algeciras", 2),
		EndPort:   port("Algeciras", 3),
	}
	assert.Equal(t, models.ActivityManeuvering, Interval(iv, nil, DefaultThresholds()).Type)
}

func TestIntervalLooksUpUntaggedPorts(t *testing.T) {
	lat, lon := 36.0, -5.4 // ~15 km from Algeciras, beyond the tagging radius
	iv := models.Interval{
		NavStatus: models.NewNavStatus("1.0"),
		StartLat:  &lat,
		StartLon:  &lon,
		EndLat:    &lat,
		EndLon:    &lon,
	}

	c := Interval(iv, ports.Default(), DefaultThresholds())
	assert.Equal(t, models.ActivityUndefined, c.Type)
	assert.Equal(t, models.ReasonConditionsNot, c.Reason, "port data exists, it is just too far for maneuvering")

	assert.Equal(t, models.ReasonNoPortData, Interval(models.Interval{}, ports.Default(), DefaultThresholds()).Reason)
}
