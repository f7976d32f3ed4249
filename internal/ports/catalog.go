package ports

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jengzang/vessel-intervals-go/internal/models"
	"github.com/jengzang/vessel-intervals-go/internal/spatial"
)

// Catalog is an ordered, immutable list of reference ports
type Catalog struct {
	ports []models.Port
}

// DefaultPorts is the Strait of Gibraltar catalog the logs were recorded against
var DefaultPorts = []models.Port{
	{Name: "Algeciras", Lat: 36.128740148, Lon: -5.439981128},
	{Name: "Tanger Med", Lat: 35.880312709, Lon: -5.515627045},
	{Name: "Ceuta", Lat: 35.889, Lon: -5.307},
}

// NewCatalog copies the given ports. Order matters: ties go to the earlier entry.
func NewCatalog(ports []models.Port) *Catalog {
	cp := make([]models.Port, len(ports))
	copy(cp, ports)
	return &Catalog{ports: cp}
}

// Default returns a catalog over DefaultPorts
func Default() *Catalog {
	return NewCatalog(DefaultPorts)
}

// Load reads a JSON array of {"name","lat","lon"} from path
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read port catalog: %w", err)
	}

	var ports []models.Port
	if err := json.Unmarshal(data, &ports); err != nil {
		return nil, fmt.Errorf("failed to parse port catalog: %w", err)
	}
	if len(ports) == 0 {
		return nil, fmt.Errorf("port catalog %s is empty", path)
	}

	for i, p := range ports {
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("port #%d has no name", i)
		}
		if !spatial.ValidCoordinate(p.Lat, p.Lon) {
			return nil, fmt.Errorf("port %q has invalid coordinates", p.Name)
		}
	}

	return NewCatalog(ports), nil
}

// Ports returns a copy of the catalog entries
func (c *Catalog) Ports() []models.Port {
	cp := make([]models.Port, len(c.ports))
	copy(cp, c.ports)
	return cp
}

// Len returns the number of ports
func (c *Catalog) Len() int {
	return len(c.ports)
}

// Nearest returns the closest port to lat/lon. ok is false when a coordinate
// is missing or the catalog is empty; callers treat that as "port unknown".
func (c *Catalog) Nearest(lat, lon *float64) (models.PortAnalysis, bool) {
	if lat == nil || lon == nil || len(c.ports) == 0 {
		return models.PortAnalysis{}, false
	}

	best := -1
	bestDist := 0.0
	for i, p := range c.ports {
		d := spatial.DistanceKm(*lat, *lon, p.Lat, p.Lon)
		if best < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}

	return models.PortAnalysis{
		Name:     c.ports[best].Name,
		Distance: spatial.Round2(bestDist),
	}, true
}

// NearestWithin returns the nearest port only when it lies within maxKm (inclusive)
func (c *Catalog) NearestWithin(lat, lon *float64, maxKm float64) *models.PortAnalysis {
	pa, ok := c.Nearest(lat, lon)
	if !ok || pa.Distance > maxKm {
		return nil
	}
	return &pa
}
